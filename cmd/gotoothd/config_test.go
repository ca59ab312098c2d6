package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyACM0", cfg.Device)
	assert.Equal(t, 115200, cfg.Baud)
	assert.Equal(t, 2*time.Second, cfg.CmdTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseConfigOverrides(t *testing.T) {
	cfg, err := ParseConfig([]string{
		"--device=/dev/rfcomm0",
		"--baud=57600",
		"--scan-interval-ms=200",
		"--redis-addr=redis.local:6379",
		"--log-level=debug",
	})
	require.NoError(t, err)
	assert.Equal(t, "/dev/rfcomm0", cfg.Device)
	assert.Equal(t, 57600, cfg.Baud)
	assert.Equal(t, 200.0, cfg.ScanIntervalMs)
	assert.Equal(t, "redis.local:6379", cfg.RedisAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	_, err := ParseConfig([]string{"--not-a-flag"})
	assert.Error(t, err)
}
