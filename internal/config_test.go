package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", t.TempDir())

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.Equal("INFO", config.LogLevel)
	req.Equal("0.0.0.0:8080", config.HTTPAddress())
	req.Equal("0.0.0.0:9090", config.GRPCAddress())
	req.Equal(64, config.ConnectionBufferSize)
	req.Equal(2*time.Second, config.DeliveryTimeout)
	req.Equal(10*time.Second, config.StreamWriteTimeout)
	req.Equal(30*time.Second, config.HeartbeatInterval)
	req.Empty(config.CensoredWords)
	req.Zero(config.DebugInspectorPort)
	req.NoError(config.Validate())
}

func TestConfig_Overrides(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", "/tmp/chat")
	t.Setenv("PORT", "3000")
	t.Setenv("DELIVERY_TIMEOUT", "250ms")
	t.Setenv("CENSORED_WORDS", "foo,bar")
	t.Setenv("CHARACTER_REPLACEMENT", "#")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.Equal(3000, config.Port)
	req.Equal(250*time.Millisecond, config.DeliveryTimeout)
	req.Equal("foo,bar", config.CensoredWords)
	char, err := CharacterRune(config.CharReplacement)
	req.NoError(err)
	req.Equal('#', char)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Port: 8080, GRPCPort: 9090, ConnectionBufferSize: 1, DeliveryTimeout: time.Second, StreamWriteTimeout: time.Second, HeartbeatInterval: time.Second}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"Zero buffer", func(c *Config) { c.ConnectionBufferSize = 0 }},
		{"Zero delivery timeout", func(c *Config) { c.DeliveryTimeout = 0 }},
		{"Zero stream write timeout", func(c *Config) { c.StreamWriteTimeout = 0 }},
		{"Zero heartbeat", func(c *Config) { c.HeartbeatInterval = 0 }},
		{"Same ports", func(c *Config) { c.GRPCPort = c.Port }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.mutate(&config)
			require.Error(t, config.Validate())
		})
	}
	require.NoError(t, valid.Validate())
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := CharacterRune("€")
	req.NoError(err)
	req.Equal('€', r)

	_, err = CharacterRune("")
	req.Error(err)
	_, err = CharacterRune("**")
	req.Error(err)
}
