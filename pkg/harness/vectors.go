package harness

// Key material and reference table for the deterministic signing test.
// One private/public key pair and one message hash cover the whole run;
// each vector fixes the nonce scalar and the signature it must produce.

// PrivateKey is the fixed signing key.
var PrivateKey = [32]byte{
	0x30, 0x8d, 0x6c, 0x77, 0xcc, 0x43, 0xf7, 0xb8,
	0x4f, 0x44, 0x74, 0xdc, 0x2f, 0x99, 0xf6, 0x33,
	0x3e, 0x26, 0x8a, 0x0c, 0x94, 0x4c, 0xde, 0x56,
	0xff, 0xb5, 0x27, 0xb7, 0x7f, 0xa6, 0x11, 0x0c,
}

// PublicKey is the matching verification key, uncompressed x||y.
var PublicKey = [64]byte{
	0x16, 0xa6, 0xbd, 0x9a, 0x66, 0x66, 0x36, 0xd0,
	0x72, 0x86, 0xde, 0x78, 0xb9, 0xa1, 0xe7, 0xf6,
	0xdd, 0x67, 0x75, 0xb2, 0xc6, 0xf4, 0x2c, 0xcf,
	0x83, 0x2d, 0xe4, 0x5e, 0x1e, 0x22, 0x9d, 0x84,
	0x0a, 0xca, 0x0d, 0xdd, 0xe8, 0xf5, 0xc8, 0x2f,
	0x84, 0x10, 0xb5, 0x62, 0xc2, 0x3a, 0x46, 0xde,
	0xcd, 0xcb, 0x59, 0x6e, 0x40, 0x02, 0xcb, 0x10,
	0xc6, 0x2f, 0x5b, 0x5e, 0xb5, 0xf2, 0xa7, 0xd7,
}

// SignedHash is the message hash every vector signs.
var SignedHash = [32]byte{
	0xc7, 0x9a, 0x27, 0x4d, 0x91, 0xbb, 0x92, 0x9f,
	0x29, 0x16, 0xf8, 0x9c, 0xb2, 0xa6, 0xec, 0x66,
	0xa0, 0xcd, 0xb4, 0x4a, 0x14, 0x97, 0x63, 0x65,
	0x3f, 0x28, 0x08, 0x52, 0xbb, 0xa5, 0x3b, 0x0e,
}

// Vector pairs a raw nonce with the signature it must deterministically
// produce.
type Vector struct {
	Nonce     [32]byte
	Signature [64]byte
}

// Vectors is the reference table driving the harness.
var Vectors = []Vector{
	{
		Nonce: [32]byte{
			0x48, 0x4a, 0x19, 0x66, 0x02, 0x50, 0x0e, 0xf2,
			0xd0, 0xbe, 0x90, 0x84, 0x23, 0x8e, 0x45, 0x09,
			0x6c, 0x23, 0x8b, 0x1b, 0x74, 0xa8, 0x6b, 0x17,
			0x46, 0x62, 0x75, 0xd2, 0xfa, 0x27, 0x7e, 0x1b,
		},
		Signature: [64]byte{
			0x21, 0xea, 0x0f, 0xfd, 0x35, 0x43, 0xdf, 0x7a,
			0xdb, 0xf5, 0x4f, 0x88, 0x0e, 0x9d, 0xd2, 0xa7,
			0x26, 0x4f, 0x2f, 0x96, 0xe9, 0x85, 0x5f, 0x67,
			0xa9, 0x82, 0x46, 0xfe, 0x46, 0xef, 0x92, 0x9d,
			0x3c, 0x59, 0x7c, 0x22, 0x4b, 0x69, 0x80, 0xf7,
			0x01, 0x46, 0x09, 0xce, 0x13, 0x59, 0xfd, 0x21,
			0xd1, 0x45, 0x65, 0xfb, 0xb0, 0x82, 0x1b, 0x91,
			0xce, 0x1e, 0x87, 0xf5, 0xe5, 0xc8, 0xdc, 0x9c,
		},
	},
	{
		Nonce: [32]byte{
			0xea, 0x40, 0xe8, 0x9d, 0xf6, 0x63, 0xf4, 0x3e,
			0x71, 0xf2, 0x6b, 0x7f, 0xcd, 0xa0, 0x15, 0x59,
			0x13, 0x4f, 0xa9, 0x17, 0xbd, 0x5f, 0xbc, 0xf3,
			0x36, 0xfb, 0x48, 0x14, 0x8f, 0x59, 0x99, 0x1d,
		},
		Signature: [64]byte{
			0x9a, 0x84, 0x64, 0x3b, 0xd1, 0xb8, 0xe2, 0xa6,
			0xe3, 0xc7, 0x96, 0x9b, 0xfa, 0x00, 0xac, 0x65,
			0x19, 0xa8, 0x3e, 0x22, 0x2e, 0x40, 0x7d, 0x90,
			0x98, 0x92, 0xce, 0x3b, 0x77, 0x4e, 0x8c, 0x41,
			0xe7, 0xa1, 0xcd, 0xb1, 0xc4, 0x0a, 0xc0, 0x73,
			0xfa, 0x87, 0x5f, 0xa5, 0xae, 0xcf, 0x27, 0x14,
			0x06, 0x38, 0x9f, 0x4c, 0x7f, 0xaa, 0xf9, 0x76,
			0x6e, 0x49, 0x03, 0x0c, 0xc8, 0x33, 0x26, 0x03,
		},
	},
	{
		Nonce: [32]byte{
			0x99, 0xde, 0xf2, 0x6b, 0xa6, 0xfe, 0x92, 0x0f,
			0xd6, 0x33, 0x3a, 0x1b, 0x21, 0x2c, 0xcb, 0xd2,
			0x50, 0x81, 0x57, 0xad, 0x26, 0x31, 0xea, 0x56,
			0x23, 0x94, 0x69, 0x3b, 0xc3, 0xe7, 0x96, 0xd7,
		},
		Signature: [64]byte{
			0x47, 0x1a, 0x16, 0x6b, 0xde, 0x2e, 0x34, 0xb3,
			0xc6, 0x80, 0xa2, 0x18, 0xed, 0xa7, 0xfa, 0xc6,
			0x7f, 0xfc, 0x77, 0xae, 0x80, 0xce, 0x18, 0x90,
			0x51, 0x1f, 0x4d, 0x23, 0x8a, 0x96, 0x62, 0x25,
			0xa7, 0x5a, 0xc7, 0x47, 0x68, 0xa2, 0xf0, 0x76,
			0x5e, 0x01, 0x6b, 0x29, 0xb2, 0x9d, 0xba, 0x3b,
			0x71, 0x8a, 0x7c, 0xfd, 0xaa, 0x49, 0x53, 0xe0,
			0x90, 0x62, 0xce, 0x06, 0x95, 0x55, 0xd4, 0xc4,
		},
	},
	{
		Nonce: [32]byte{
			0x91, 0xda, 0x2c, 0xea, 0x22, 0xc3, 0x08, 0x44,
			0x5c, 0x01, 0x0e, 0x2b, 0x00, 0x74, 0x44, 0x05,
			0x14, 0x50, 0x25, 0x92, 0xb3, 0xde, 0xe9, 0xcd,
			0xb0, 0x67, 0x25, 0x10, 0x26, 0x8a, 0x66, 0xb6,
		},
		Signature: [64]byte{
			0x89, 0xaa, 0x32, 0x68, 0x08, 0xbf, 0x3f, 0xd8,
			0xbb, 0x13, 0xc5, 0x51, 0xa6, 0x0e, 0x13, 0x3f,
			0xb5, 0x6f, 0x96, 0xcd, 0x7d, 0x9f, 0xe7, 0xd4,
			0x17, 0xef, 0xad, 0x93, 0x14, 0xed, 0x4f, 0x0f,
			0xdb, 0x34, 0xc1, 0xc3, 0xf4, 0xc9, 0x11, 0x9e,
			0xd7, 0xe7, 0x23, 0xbc, 0xd3, 0x5c, 0x73, 0x57,
			0xd5, 0x74, 0x75, 0x90, 0xaf, 0x4e, 0x60, 0x47,
			0x57, 0xe0, 0x16, 0xc2, 0x0d, 0x9e, 0xce, 0x44,
		},
	},
	{
		Nonce: [32]byte{
			0x3d, 0x3d, 0x65, 0x81, 0x9d, 0xc3, 0xd1, 0x23,
			0xde, 0x2d, 0xe0, 0x92, 0x99, 0x7d, 0x0b, 0xb5,
			0xab, 0x93, 0x02, 0x0a, 0x8b, 0x0d, 0x37, 0xe3,
			0xe0, 0x0f, 0xf7, 0x91, 0x60, 0x39, 0xf4, 0x97,
		},
		Signature: [64]byte{
			0x56, 0x99, 0xc2, 0x70, 0x77, 0x34, 0x71, 0x9a,
			0xdb, 0xcf, 0xb3, 0xc1, 0x0a, 0x5d, 0x2a, 0x18,
			0xbd, 0x35, 0xcc, 0x46, 0x6c, 0xfb, 0x87, 0x0a,
			0xe2, 0xc2, 0x6f, 0xdf, 0x23, 0x70, 0x2c, 0x49,
			0xc0, 0xd7, 0x2a, 0x54, 0xf6, 0xd6, 0x46, 0x5f,
			0xb0, 0x59, 0xe0, 0x70, 0x58, 0xae, 0x64, 0x9c,
			0x3f, 0x2d, 0x48, 0xad, 0xf6, 0x66, 0xe9, 0x03,
			0x88, 0xf7, 0x0a, 0x0e, 0x2a, 0xec, 0xba, 0x12,
		},
	},
	{
		Nonce: [32]byte{
			0x4e, 0xa9, 0xce, 0xda, 0xce, 0xe2, 0xe9, 0x58,
			0x43, 0xcd, 0x90, 0x70, 0x75, 0xc6, 0xe8, 0x58,
			0x19, 0x74, 0x09, 0x0a, 0x75, 0xa3, 0xfb, 0xbd,
			0x38, 0x97, 0xba, 0x92, 0xb3, 0x87, 0x81, 0x88,
		},
		Signature: [64]byte{
			0x4a, 0x20, 0xe6, 0xf3, 0xf0, 0x96, 0xc4, 0xad,
			0x6b, 0xe4, 0x95, 0xae, 0xeb, 0xee, 0xa9, 0xb8,
			0x90, 0x45, 0x87, 0xfb, 0x32, 0x8e, 0x30, 0xce,
			0x49, 0xaa, 0x11, 0x7f, 0x11, 0x2a, 0xba, 0xa1,
			0x54, 0xe0, 0xb3, 0x68, 0x25, 0x76, 0x5c, 0xf9,
			0x0b, 0x46, 0xdf, 0x8d, 0x8b, 0x99, 0x1b, 0x9d,
			0x2d, 0x9f, 0xfb, 0x52, 0xcc, 0x32, 0xb2, 0x4c,
			0x2a, 0x93, 0xff, 0x23, 0xe5, 0xf7, 0x88, 0x9f,
		},
	},
	{
		Nonce: [32]byte{
			0x8d, 0xbc, 0xea, 0x73, 0x54, 0x1b, 0x93, 0x29,
			0xc6, 0xb6, 0x82, 0xbc, 0xd2, 0xa6, 0xeb, 0x68,
			0x09, 0x9c, 0x64, 0x97, 0x34, 0xc9, 0x3c, 0xe8,
			0x56, 0xd7, 0x3a, 0xdb, 0x32, 0x78, 0xb6, 0x0a,
		},
		Signature: [64]byte{
			0x91, 0x1a, 0x54, 0x4e, 0xc3, 0x77, 0x3b, 0x37,
			0x48, 0x84, 0xbc, 0x84, 0xc2, 0x6d, 0x32, 0x9b,
			0xc9, 0x5f, 0x24, 0x7c, 0x4d, 0x29, 0xc7, 0xd6,
			0xd5, 0x23, 0xf5, 0x25, 0x49, 0x6f, 0xf0, 0xd3,
			0xa3, 0x0f, 0xf7, 0x2a, 0xa9, 0x86, 0xb1, 0xd1,
			0xf0, 0x31, 0xa5, 0x71, 0x40, 0x8c, 0xc4, 0x0f,
			0x56, 0xa0, 0x8c, 0x4b, 0xfc, 0x7d, 0xe5, 0x98,
			0x90, 0xdb, 0xcd, 0x68, 0xe9, 0x4b, 0x4f, 0x9c,
		},
	},
	{
		Nonce: [32]byte{
			0x2b, 0xe8, 0x71, 0x47, 0x76, 0x0c, 0x8e, 0x96,
			0x7c, 0xcf, 0x2b, 0x78, 0xc2, 0x89, 0xbd, 0xef,
			0x8d, 0x2f, 0x7a, 0xe7, 0xa0, 0xab, 0x8b, 0x84,
			0xa8, 0x43, 0xe6, 0x33, 0x36, 0x67, 0xcd, 0x08,
		},
		Signature: [64]byte{
			0x6d, 0xa1, 0x3e, 0xf9, 0xf0, 0x53, 0x89, 0x67,
			0xb0, 0xf4, 0xe3, 0x86, 0xb3, 0x56, 0x7a, 0x9a,
			0xcf, 0xba, 0x94, 0xb8, 0xba, 0xbf, 0xb6, 0xa0,
			0x7f, 0xaa, 0xc4, 0xd8, 0xcb, 0x2c, 0x3a, 0xf4,
			0x11, 0xc4, 0x3a, 0x17, 0x52, 0x10, 0x5d, 0xde,
			0x72, 0x5d, 0x5a, 0xc1, 0xd9, 0x3a, 0x5f, 0x56,
			0xb8, 0x79, 0x78, 0x4c, 0x71, 0xb3, 0x05, 0x69,
			0x52, 0x63, 0x06, 0xe8, 0xe3, 0xe2, 0xfa, 0x10,
		},
	},
	{
		Nonce: [32]byte{
			0x87, 0x2f, 0x09, 0x31, 0x90, 0xcf, 0xeb, 0x70,
			0x96, 0x9a, 0x67, 0x59, 0xa9, 0x8b, 0x40, 0xe3,
			0xfe, 0xfd, 0xeb, 0x37, 0x53, 0xcf, 0x62, 0xfe,
			0x27, 0x13, 0x7b, 0xe6, 0x08, 0xf0, 0x3d, 0x1c,
		},
		Signature: [64]byte{
			0x7c, 0x93, 0x91, 0x44, 0x1e, 0x84, 0x07, 0xc2,
			0x22, 0xd3, 0x92, 0x3b, 0xb0, 0xfe, 0x41, 0xe8,
			0x8d, 0x1e, 0x1d, 0xd5, 0x56, 0x56, 0x05, 0x31,
			0x44, 0xc8, 0xa2, 0x4b, 0xee, 0xdc, 0x8c, 0x36,
			0x3f, 0xc5, 0xe9, 0xfa, 0x57, 0x1e, 0x20, 0x5f,
			0xc5, 0x97, 0xd1, 0xe8, 0x84, 0xaf, 0x74, 0x10,
			0xc6, 0x08, 0x6b, 0x3e, 0xea, 0x61, 0x7c, 0x9a,
			0x77, 0x54, 0x31, 0x8b, 0x3b, 0x8b, 0x04, 0xc5,
		},
	},
	{
		Nonce: [32]byte{
			0xca, 0x8b, 0x60, 0xf1, 0x88, 0x6d, 0xb6, 0xf7,
			0x33, 0x4f, 0xcc, 0x39, 0x9c, 0xf4, 0x82, 0xe7,
			0xde, 0x42, 0x37, 0x8d, 0xb9, 0x97, 0xa6, 0x5e,
			0x4b, 0x0e, 0xc8, 0xaa, 0x09, 0xbc, 0xee, 0xac,
		},
		Signature: [64]byte{
			0x69, 0xc1, 0x7c, 0x3f, 0xaa, 0x06, 0x0a, 0x00,
			0x0d, 0xdf, 0x08, 0x1d, 0x38, 0xe3, 0xa8, 0xc5,
			0xe7, 0xa5, 0x80, 0xbd, 0x48, 0x27, 0xdf, 0x20,
			0x12, 0x36, 0x9f, 0x4b, 0xfd, 0x59, 0x2a, 0x92,
			0x95, 0x71, 0xa3, 0x0c, 0x58, 0x7d, 0x6a, 0x6d,
			0x7b, 0x1f, 0xc1, 0x43, 0x5a, 0x6d, 0x55, 0x8e,
			0xe0, 0xc5, 0x76, 0xc6, 0xf0, 0xdc, 0x92, 0x77,
			0x23, 0x14, 0x49, 0xb6, 0xa6, 0xe5, 0x1d, 0x1c,
		},
	},
}
