package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledlink/internal/shared/types"
)

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg := types.DefaultConfig()

	err := Load(cfg, filepath.Join(t.TempDir(), "ledlink.ini"))
	require.NoError(t, err)

	assert.Equal(t, "192.168.10.1", cfg.Address)
	assert.Equal(t, 50007, cfg.Port)
	assert.Equal(t, 1024, cfg.BufferSize)
	assert.True(t, cfg.KeepAliveConf.Enabled)
	assert.Equal(t, 10, cfg.IdleSec)
	assert.Equal(t, 1, cfg.IntervalSec)
	assert.Equal(t, 2, cfg.Count)
}

func TestLoadOverridesFromFile(t *testing.T) {
	iniPath := filepath.Join(t.TempDir(), "ledlink.ini")
	content := `
[client]
address = 10.0.0.2
port = 6000

[keepalive]
enabled = false

[log]
level = debug
`
	require.NoError(t, os.WriteFile(iniPath, []byte(content), 0644))

	cfg := types.DefaultConfig()
	require.NoError(t, Load(cfg, iniPath))

	assert.Equal(t, "10.0.0.2", cfg.Address)
	assert.Equal(t, 6000, cfg.Port)
	assert.False(t, cfg.KeepAliveConf.Enabled)
	assert.Equal(t, "debug", cfg.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, 1024, cfg.BufferSize)
	assert.Equal(t, 10, cfg.IdleSec)
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	iniPath := filepath.Join(t.TempDir(), "ledlink.ini")
	require.NoError(t, os.WriteFile(iniPath, []byte("[client]\naddress = 10.0.0.2\nport = 6000\n"), 0644))

	t.Setenv("LEDLINK_ADDRESS", "172.16.0.9")
	t.Setenv("LEDLINK_PORT", "7001")

	cfg := types.DefaultConfig()
	require.NoError(t, Load(cfg, iniPath))

	assert.Equal(t, "172.16.0.9", cfg.Address)
	assert.Equal(t, 7001, cfg.Port)
}
