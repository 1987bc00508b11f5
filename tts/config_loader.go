package tts

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	homedir "github.com/mitchellh/go-homedir"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/viper"
)

// SetDefaults sets default values in Viper for TTS configuration.
func SetDefaults() {
	defaults := DefaultConfig()

	viper.SetDefault("tts.enabled", defaults.Enabled)
	viper.SetDefault("tts.provider", defaults.Provider)
	viper.SetDefault("tts.text_length_limit", defaults.TextLengthLimit)
	viper.SetDefault("tts.timeout", int(defaults.Timeout/time.Second))

	viper.SetDefault("tts.voices.macos.voice", defaults.Voices.MacOS.Voice)
	viper.SetDefault("tts.voices.macos.rate", defaults.Voices.MacOS.Rate)
	viper.SetDefault("tts.voices.macos.quality", defaults.Voices.MacOS.Quality)

	viper.SetDefault("tts.voices.elevenlabs.voice_id", defaults.Voices.ElevenLabs.VoiceID)
	viper.SetDefault("tts.voices.elevenlabs.model", defaults.Voices.ElevenLabs.Model)
	viper.SetDefault("tts.voices.elevenlabs.output_format", defaults.Voices.ElevenLabs.OutputFormat)

	viper.SetDefault("tts.responses.enabled", defaults.Responses.Enabled)
	viper.SetDefault("tts.completion.enabled", defaults.Completion.Enabled)
	viper.SetDefault("tts.notifications.enabled", defaults.Notifications.Enabled)

	viper.SetDefault("engineer.name", "")
}

// ConfigPaths returns the candidate config file locations in lookup order:
// the working directory's .claude/config.json, the user config directory,
// then a dotfile in the home directory.
func ConfigPaths() []string {
	paths := []string{filepath.Join(".claude", "config.json")}

	scope := gap.NewScope(gap.User, "hooksay")
	if p, err := scope.ConfigPath("config.json"); err == nil {
		paths = append(paths, p)
	}

	if home, err := homedir.Dir(); err == nil {
		paths = append(paths, filepath.Join(home, ".hooksay", "config.json"))
	}

	return paths
}

// LoadConfig loads the merged TTS configuration: documented defaults,
// overlaid by the first readable config file, overlaid by environment
// variables. A missing or malformed file is tolerated and never surfaces
// to the caller.
func LoadConfig() Config {
	SetDefaults()

	for _, path := range ConfigPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		viper.SetConfigFile(path)
		viper.SetConfigType("json")
		if err := viper.ReadInConfig(); err != nil {
			log.Warn("Could not parse configuration file", "path", path, "err", err)
			continue
		}
		log.Debug("Using configuration file", "path", path)
		break
	}

	cfg := FromViper()

	if err := env.Parse(&cfg); err != nil {
		log.Warn("Could not parse environment overrides", "err", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Warn("Invalid TTS configuration, using defaults", "err", err)
		return DefaultConfig()
	}

	return cfg
}

// FromViper builds a Config from the current Viper state.
func FromViper() Config {
	cfg := DefaultConfig()

	if viper.IsSet("tts.enabled") {
		cfg.Enabled = viper.GetBool("tts.enabled")
	}
	if viper.IsSet("tts.provider") {
		cfg.Provider = viper.GetString("tts.provider")
	}
	if viper.IsSet("tts.text_length_limit") {
		cfg.TextLengthLimit = viper.GetInt("tts.text_length_limit")
	}
	if viper.IsSet("tts.timeout") {
		cfg.Timeout = time.Duration(viper.GetInt("tts.timeout")) * time.Second
	}

	if viper.IsSet("tts.voices.macos.voice") {
		cfg.Voices.MacOS.Voice = viper.GetString("tts.voices.macos.voice")
	}
	if viper.IsSet("tts.voices.macos.rate") {
		cfg.Voices.MacOS.Rate = viper.GetInt("tts.voices.macos.rate")
	}
	if viper.IsSet("tts.voices.macos.quality") {
		cfg.Voices.MacOS.Quality = viper.GetInt("tts.voices.macos.quality")
	}

	if viper.IsSet("tts.voices.elevenlabs.voice_id") {
		cfg.Voices.ElevenLabs.VoiceID = viper.GetString("tts.voices.elevenlabs.voice_id")
	}
	if viper.IsSet("tts.voices.elevenlabs.model") {
		cfg.Voices.ElevenLabs.Model = viper.GetString("tts.voices.elevenlabs.model")
	}
	if viper.IsSet("tts.voices.elevenlabs.output_format") {
		cfg.Voices.ElevenLabs.OutputFormat = viper.GetString("tts.voices.elevenlabs.output_format")
	}

	if viper.IsSet("tts.responses.enabled") {
		cfg.Responses.Enabled = viper.GetBool("tts.responses.enabled")
	}
	if viper.IsSet("tts.completion.enabled") {
		cfg.Completion.Enabled = viper.GetBool("tts.completion.enabled")
	}
	if viper.IsSet("tts.notifications.enabled") {
		cfg.Notifications.Enabled = viper.GetBool("tts.notifications.enabled")
	}

	return cfg
}
