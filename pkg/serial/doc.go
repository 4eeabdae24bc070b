// Package serial provides the shared byte transport used for the
// self-test report.
package serial

// The transport is a duplex byte channel (serial-over-USB in the original
// hardware) owned by a single process-lifetime Cell. The foreground
// harness and the interrupt-style service routine both touch the same
// transport; exclusive access is arbitrated by masking the transport's
// interrupt lines through an irq.Controller.
//
// Producer: the self-test harness (report lines)
// Consumer: whatever sits on the host side of the transport
