package wsport

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

func TestRoundTrip(t *testing.T) {
	server := httptest.NewServer(websocket.Handler(func(ws *websocket.Conn) {
		for {
			var frame []byte
			if err := websocket.Message.Receive(ws, &frame); err != nil {
				return
			}
			if err := websocket.Message.Send(ws, frame); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	tr, err := Dial("ws"+strings.TrimPrefix(server.URL, "http"), server.URL)
	require.NoError(t, err)
	defer tr.Close()

	_, err = tr.Write([]byte("ping"))
	require.NoError(t, err)
	tr.Poll()

	var buf [16]byte
	n := 0
	for i := 0; i < 100 && n == 0; i++ {
		time.Sleep(10 * time.Millisecond)
		tr.Poll()
		n, err = tr.Read(buf[:])
		require.NoError(t, err)
	}
	require.Equal(t, "ping", string(buf[:n]))
}

func TestReadEmpty(t *testing.T) {
	tr := &Transport{}
	var buf [8]byte
	n, err := tr.Read(buf[:])
	require.NoError(t, err)
	require.Zero(t, n)
}
