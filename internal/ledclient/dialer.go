package ledclient

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"ledlink/internal/shared/types"
)

// Dial establishes the single TCP connection to the LED command server, with
// the configured keep-alive policy armed on the socket before the serve loop
// starts. Failure to connect has no recovery path; the caller decides whether
// to abort.
func Dial(cfg *types.Config) (net.Conn, error) {
	dialer := net.Dialer{
		Timeout: time.Duration(cfg.DialTimeoutSec) * time.Second,
		KeepAliveConfig: net.KeepAliveConfig{
			Enable:   cfg.KeepAliveConf.Enabled,
			Idle:     time.Duration(cfg.IdleSec) * time.Second,
			Interval: time.Duration(cfg.IntervalSec) * time.Second,
			Count:    cfg.Count,
		},
	}
	if !cfg.KeepAliveConf.Enabled {
		// KeepAlive >= 0 would still arm the stdlib default probing.
		dialer.KeepAlive = -1
	}

	addr := net.JoinHostPort(cfg.Address, strconv.Itoa(cfg.Port))
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("led command server dial failed: %w", err)
	}
	return conn, nil
}
