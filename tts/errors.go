package tts

import "errors"

// Common errors for the TTS system.
var (
	// Engine errors
	ErrEngineNotAvailable = errors.New("TTS engine is not available")
	ErrMissingAPIKey      = errors.New("cloud API key is not set")
	ErrSynthesisFailed    = errors.New("speech synthesis failed")

	// Input errors
	ErrNoSpeakableContent = errors.New("no speakable content")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")

	// General errors
	ErrTimeout = errors.New("operation timed out")
)
