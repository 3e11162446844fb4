package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "discord", cfg.Backend)
	assert.Equal(t, "Modules/Info/Info.txt", cfg.InfoPath)
	assert.Equal(t, "sip.log", cfg.LogFile)
	assert.Empty(t, cfg.DiscordToken)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SIP_BACKEND", "github")
	t.Setenv("SIP_DISCORD_TOKEN", "token-123")
	t.Setenv("SIP_DISCORD_CHANNEL_ID", "chan-456")
	t.Setenv("SIP_INFO_PATH", "other/Info.txt")
	t.Setenv("SIP_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "github", cfg.Backend)
	assert.Equal(t, "token-123", cfg.DiscordToken)
	assert.Equal(t, "chan-456", cfg.DiscordChannelID)
	assert.Equal(t, "other/Info.txt", cfg.InfoPath)
	assert.True(t, cfg.Debug)
}
