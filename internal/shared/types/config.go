package types

// ClientConf contains the remote endpoint and read-buffer parameters.
type ClientConf struct {
	Address        string `ini:"address"`
	Port           int    `ini:"port"`
	BufferSize     int    `ini:"bufferSize"`
	DialTimeoutSec int    `ini:"dial_timeout_sec"`
}

// KeepAliveConf carries the TCP keep-alive policy applied to the connection
// before the serve loop starts. Times are in seconds, matching what the
// kernel expects for TCP_KEEPIDLE / TCP_KEEPINTVL.
type KeepAliveConf struct {
	Enabled     bool `ini:"enabled"`
	IdleSec     int  `ini:"idle_sec"`
	IntervalSec int  `ini:"interval_sec"`
	Count       int  `ini:"count"`
}

// LogConf contains logging specific configuration
type LogConf struct {
	Level string `ini:"level"`
}

// Config is the unified configuration structure for ledlink.
type Config struct {
	ClientConf    `ini:"client"`
	KeepAliveConf `ini:"keepalive"`
	LogConf       `ini:"log"`
}

// DefaultConfig returns the configuration matching the stock dev-kit setup:
// the board runs a SoftAP at 192.168.10.1 with the command server on 50007.
func DefaultConfig() *Config {
	return &Config{
		ClientConf: ClientConf{
			Address:        "192.168.10.1",
			Port:           50007,
			BufferSize:     1024,
			DialTimeoutSec: 15,
		},
		KeepAliveConf: KeepAliveConf{
			Enabled:     true,
			IdleSec:     10,
			IntervalSec: 1,
			Count:       2,
		},
		LogConf: LogConf{
			Level: "info",
		},
	}
}
