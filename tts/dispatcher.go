package tts

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// Dispatcher orchestrates one speak invocation: normalize the raw text,
// pick a backend, synthesize, and fall back from the cloud to the local
// engine on failure. Errors never escape Speak; the caller always gets a
// Result.
type Dispatcher struct {
	cfg   Config
	creds Credentials
	local Engine
	cloud Engine
}

// NewDispatcher creates a dispatcher over the two backends. The local
// engine is the last resort and has no fallback of its own.
func NewDispatcher(cfg Config, creds Credentials, local, cloud Engine) *Dispatcher {
	return &Dispatcher{
		cfg:   cfg,
		creds: creds,
		local: local,
		cloud: cloud,
	}
}

// Speak normalizes raw text and synthesizes it, blocking until playback
// finishes. Empty text after cleaning aborts before any backend is
// invoked. A cloud failure triggers exactly one local attempt.
func (d *Dispatcher) Speak(ctx context.Context, raw string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Synthesis panicked", "panic", r)
			res = Result{
				Provider:   res.Provider,
				Diagnostic: fmt.Sprintf("unexpected failure: %v", r),
			}
		}
	}()

	clean := Normalize(raw, d.cfg.TextLengthLimit)
	if clean == "" {
		return Result{Diagnostic: ErrNoSpeakableContent.Error()}
	}

	provider := SelectProvider(d.cfg, d.creds)

	if provider == ProviderElevenLabs {
		log.Debug("Synthesizing", "provider", d.cloud.Name(), "chars", len(clean))
		err := d.cloud.Synthesize(ctx, clean)
		if err == nil {
			return Result{Success: true, Provider: ProviderElevenLabs}
		}
		log.Warn("Cloud synthesis failed, falling back to native macOS TTS", "err", err)
	}

	log.Debug("Synthesizing", "provider", d.local.Name(), "chars", len(clean))
	if err := d.local.Synthesize(ctx, clean); err != nil {
		return Result{Provider: ProviderMacOS, Diagnostic: err.Error()}
	}
	return Result{Success: true, Provider: ProviderMacOS}
}
