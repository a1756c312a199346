package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "127.0.0.1:3000", want: NetAddress{Host: "127.0.0.1", Port: 3000}},
		{name: "empty host", input: ":9000", want: NetAddress{Host: "", Port: 9000}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non-numeric port", input: "localhost:http", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "port zero", input: "localhost:0", expectError: true},
		{name: "invalid host", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:8081",
		"-d", "postgres://localhost/favs",
		"-config", "/etc/favs.json",
		"-log-level", "info",
		"-session-sign-key", "sign",
		"-request-timeout", "45s",
		"-source-url", "http://source.local",
		"-consumer-key", "ck",
		"-consumer-secret", "cs",
		"-page-size", "150",
		"-sync-timeout", "20s",
		"-redis", "localhost:6379",
		"-resync-interval", "10m",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/favs", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/favs.json", cfg.JSONFilePath)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "sign", cfg.App.SessionSignKey)
	assert.Equal(t, "http://source.local", cfg.Adapter.BaseURL)
	assert.Equal(t, "ck", cfg.Adapter.ConsumerKey)
	assert.Equal(t, "cs", cfg.Adapter.ConsumerSecret)
	assert.Equal(t, 150, cfg.Sync.PageSize)
	assert.Equal(t, 20*time.Second, cfg.Sync.Timeout)
	assert.Equal(t, "localhost:6379", cfg.Lock.RedisAddress)
	assert.Equal(t, 10*time.Minute, cfg.Workers.ResyncInterval)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nope"})
	assert.Error(t, err)
}
