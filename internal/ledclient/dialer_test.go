package ledclient

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledlink/internal/shared/types"
)

func TestDialConnectsToLiveListener(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, aerr := listener.Accept()
		if aerr == nil {
			accepted <- conn
		}
	}()

	cfg := types.DefaultConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = listener.Addr().(*net.TCPAddr).Port

	conn, err := Dial(cfg)
	require.NoError(t, err)
	defer conn.Close()

	server := <-accepted
	defer server.Close()

	assert.Equal(t, server.LocalAddr().String(), conn.RemoteAddr().String())
}

func TestDialFailsWhenConnectionRefused(t *testing.T) {
	// Grab a free port, then close the listener so the connect is refused.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := types.DefaultConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = port
	cfg.DialTimeoutSec = 1

	conn, err := Dial(cfg)
	require.Error(t, err)
	assert.Nil(t, conn)
}
