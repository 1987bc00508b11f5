package tts

import (
	"fmt"
	"time"
)

// Config contains all TTS configuration options.
type Config struct {
	// Master switch. When off, nothing is ever spoken.
	Enabled bool `json:"enabled" env:"HOOKSAY_TTS_ENABLED"`

	// Provider selects the backend: "macos" or "elevenlabs".
	Provider string `json:"provider" env:"HOOKSAY_TTS_PROVIDER"`

	// TextLengthLimit caps the normalized text, in runes.
	TextLengthLimit int `json:"text_length_limit" env:"HOOKSAY_TTS_TEXT_LENGTH_LIMIT"`

	// Timeout bounds one local synthesis subprocess.
	Timeout time.Duration `json:"-" env:"HOOKSAY_TTS_TIMEOUT"`

	// Voices holds per-backend voice profiles.
	Voices VoicesConfig `json:"voices"`

	// Per-feature toggles, each gated by Enabled.
	Responses     Toggle `json:"responses"`
	Completion    Toggle `json:"completion"`
	Notifications Toggle `json:"notifications"`
}

// Toggle is a single feature switch.
type Toggle struct {
	Enabled bool `json:"enabled"`
}

// VoicesConfig groups the per-backend voice profiles.
type VoicesConfig struct {
	MacOS      MacOSVoice      `json:"macos"`
	ElevenLabs ElevenLabsVoice `json:"elevenlabs"`
}

// MacOSVoice configures the native `say` backend.
type MacOSVoice struct {
	Voice   string `json:"voice" env:"HOOKSAY_TTS_MACOS_VOICE"`
	Rate    int    `json:"rate" env:"HOOKSAY_TTS_MACOS_RATE"`
	Quality int    `json:"quality" env:"HOOKSAY_TTS_MACOS_QUALITY"`
}

// ElevenLabsVoice configures the ElevenLabs backend.
type ElevenLabsVoice struct {
	VoiceID      string `json:"voice_id" env:"HOOKSAY_TTS_ELEVENLABS_VOICE_ID"`
	Model        string `json:"model" env:"HOOKSAY_TTS_ELEVENLABS_MODEL"`
	OutputFormat string `json:"output_format" env:"HOOKSAY_TTS_ELEVENLABS_OUTPUT_FORMAT"`
}

// DefaultConfig returns a Config with documented defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		Provider:        string(ProviderMacOS),
		TextLengthLimit: 2000,
		Timeout:         120 * time.Second,
		Voices: VoicesConfig{
			MacOS: MacOSVoice{
				Voice:   "Lee (Premium)",
				Rate:    200,
				Quality: 127,
			},
			ElevenLabs: ElevenLabsVoice{
				VoiceID:      "FNMROvc7ZdHldafWFMqC",
				Model:        "eleven_turbo_v2_5",
				OutputFormat: "mp3_44100_128",
			},
		},
		Responses:     Toggle{Enabled: true},
		Completion:    Toggle{Enabled: false},
		Notifications: Toggle{Enabled: true},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch Provider(c.Provider) {
	case ProviderMacOS, ProviderElevenLabs:
	default:
		return fmt.Errorf("%w: provider '%s' must be one of [macos elevenlabs]", ErrInvalidConfig, c.Provider)
	}

	if c.TextLengthLimit <= 0 {
		return fmt.Errorf("%w: text_length_limit must be positive, got %d", ErrInvalidConfig, c.TextLengthLimit)
	}

	if c.Timeout < time.Second {
		return fmt.Errorf("%w: timeout must be at least 1 second, got %v", ErrInvalidConfig, c.Timeout)
	}

	if c.Voices.MacOS.Rate < 1 {
		return fmt.Errorf("%w: macos rate must be positive, got %d", ErrInvalidConfig, c.Voices.MacOS.Rate)
	}

	return nil
}

// ResponsesEnabled reports whether spoken responses are active
// (master switch AND responses toggle).
func (c *Config) ResponsesEnabled() bool {
	return c.Enabled && c.Responses.Enabled
}

// CompletionEnabled reports whether completion announcements are active.
func (c *Config) CompletionEnabled() bool {
	return c.Enabled && c.Completion.Enabled
}

// NotificationsEnabled reports whether notification speech is active.
func (c *Config) NotificationsEnabled() bool {
	return c.Enabled && c.Notifications.Enabled
}
