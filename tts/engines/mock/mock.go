// Package mock provides a controllable TTS engine for tests.
package mock

import (
	"context"

	"github.com/dgnsrekt/hooksay/tts"
)

// Engine implements tts.Engine with inspectable state.
type Engine struct {
	name      string
	failure   error
	available bool
	callCount int
	lastText  string
}

var _ tts.Engine = (*Engine)(nil)

// New creates a mock engine that succeeds by default.
func New(name string) *Engine {
	return &Engine{name: name, available: true}
}

// Name returns the configured engine name.
func (e *Engine) Name() string { return e.name }

// Available reports the configured availability.
func (e *Engine) Available() bool { return e.available }

// Synthesize records the call and returns the configured failure, if any.
func (e *Engine) Synthesize(ctx context.Context, text string) error {
	e.callCount++
	e.lastText = text
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.failure
}

// SetFailure makes subsequent Synthesize calls return err.
func (e *Engine) SetFailure(err error) { e.failure = err }

// SetAvailable controls what Available reports.
func (e *Engine) SetAvailable(ok bool) { e.available = ok }

// CallCount returns how many times Synthesize was invoked.
func (e *Engine) CallCount() int { return e.callCount }

// LastText returns the text passed to the most recent Synthesize call.
func (e *Engine) LastText() string { return e.lastText }
