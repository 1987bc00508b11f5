package tts

import (
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

// Credentials holds runtime secrets read from the environment.
type Credentials struct {
	ElevenLabsAPIKey string `env:"ELEVENLABS_API_KEY"`
}

// LoadCredentials reads credentials from the process environment.
func LoadCredentials() Credentials {
	var creds Credentials
	if err := env.Parse(&creds); err != nil {
		log.Warn("Could not read credentials from environment", "err", err)
	}
	return creds
}

// SelectProvider decides which backend handles synthesis. A configured
// macos provider is an explicit operator override and always wins; the
// cloud is attempted only when it is both configured and usable. The
// decision is made once per invocation and never retried mid-call.
func SelectProvider(cfg Config, creds Credentials) Provider {
	if Provider(cfg.Provider) != ProviderElevenLabs {
		return ProviderMacOS
	}
	if creds.ElevenLabsAPIKey == "" {
		log.Warn("No ElevenLabs API key, falling back to native macOS TTS")
		return ProviderMacOS
	}
	return ProviderElevenLabs
}
