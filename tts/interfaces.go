package tts

import "context"

// Engine is the synthesis capability shared by all backends. The dispatcher
// holds no knowledge of a backend beyond this contract.
type Engine interface {
	// Name returns the backend identifier for logging and diagnostics.
	Name() string

	// Available reports whether the backend can be used right now
	// (binary on PATH, credential present, and so on).
	Available() bool

	// Synthesize speaks the given clean text, blocking until playback
	// completes or the context expires.
	Synthesize(ctx context.Context, text string) error
}

// Result is the terminal outcome of one speak invocation. It is never
// persisted; diagnostics go to the log, the success flag to the exit code.
type Result struct {
	Success    bool
	Provider   Provider
	Diagnostic string
}

// Provider identifies a synthesis backend.
type Provider string

const (
	// ProviderMacOS is the native `say` backend.
	ProviderMacOS Provider = "macos"

	// ProviderElevenLabs is the ElevenLabs cloud backend.
	ProviderElevenLabs Provider = "elevenlabs"
)
