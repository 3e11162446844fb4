// Package config loads the portal's runtime configuration once at startup.
// Business logic never reads the environment directly; the loaded struct
// is passed down by reference.
package config

import (
	"fmt"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
	"github.com/joho/godotenv"
)

// Config captures everything the portal needs for one run. Credentials are
// read here and stay immutable for the process lifetime.
type Config struct {
	// Backend selects the news store: "discord" (default) or "github".
	Backend string `hcl:"backend" env:"BACKEND" default:"discord"`

	// Discord channel backend. Both values are required for the News tab
	// to work; missing values degrade it to a single explanatory entry.
	DiscordToken     string `hcl:"discord_token" env:"DISCORD_TOKEN"`
	DiscordChannelID string `hcl:"discord_channel_id" env:"DISCORD_CHANNEL_ID"`
	// DiscordAPIBase overrides the REST endpoint, mainly for tests.
	DiscordAPIBase string `hcl:"discord_api_base" env:"DISCORD_API_BASE"`

	// GitHub raw-file backend.
	GitHubRawBase     string   `hcl:"github_raw_base" env:"GITHUB_RAW_BASE" default:"https://raw.githubusercontent.com/XbxAtWork/seamhanian_archives101/main/Modules/News"`
	GitHubContentsURL string   `hcl:"github_contents_url" env:"GITHUB_CONTENTS_URL" default:"https://api.github.com/repos/XbxAtWork/seamhanian_archives101/contents/Modules/News"`
	GitHubToken       string   `hcl:"github_token" env:"GITHUB_TOKEN"`
	GitHubNewsFiles   []string `hcl:"github_news_files" env:"GITHUB_NEWS_FILES" default:"newsTest.txt"`

	InfoPath string `hcl:"info_path" env:"INFO_PATH" default:"Modules/Info/Info.txt"`
	LogFile  string `hcl:"log_file" env:"LOG_FILE" default:"sip.log"`
	Debug    bool   `hcl:"debug" env:"DEBUG"`
}

// Load reads .env if present, then resolves the config from sip.hcl /
// sip.local.hcl and SIP_-prefixed environment variables.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix:          "SIP",
		SkipFlags:          true,
		AllowUnknownFields: true,
		Files:              []string{"./sip.hcl", "./sip.local.hcl"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".hcl": aconfighcl.New(),
		},
	})

	if err := loader.Load(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
