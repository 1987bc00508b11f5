// Package engines provides the text-to-speech backend implementations.
package engines

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dgnsrekt/hooksay/tts"
)

// MacOS speaks through the native `say` command. One Synthesize call runs
// one blocking subprocess, bounded by the configured timeout.
type MacOS struct {
	voice   tts.MacOSVoice
	timeout time.Duration
}

var _ tts.Engine = (*MacOS)(nil)

// NewMacOS creates the native backend with the given voice profile.
func NewMacOS(voice tts.MacOSVoice, timeout time.Duration) *MacOS {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &MacOS{voice: voice, timeout: timeout}
}

// Name returns the backend identifier.
func (e *MacOS) Name() string { return string(tts.ProviderMacOS) }

// Available reports whether the say binary is on PATH.
func (e *MacOS) Available() bool {
	_, err := exec.LookPath("say")
	return err == nil
}

// args builds the say argv for the given text.
func (e *MacOS) args(text string) []string {
	return []string{
		"-v", e.voice.Voice,
		"-r", strconv.Itoa(e.voice.Rate),
		"--quality", strconv.Itoa(e.voice.Quality),
		text,
	}
}

// Synthesize speaks text via say, blocking until the process exits.
// Timeout expiry kills the process and returns a distinguishable error.
func (e *MacOS) Synthesize(ctx context.Context, text string) error {
	if !e.Available() {
		return fmt.Errorf("say: %w", tts.ErrEngineNotAvailable)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(ctx, "say", e.args(text)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("say: %w after %v", tts.ErrTimeout, e.timeout)
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("say failed: %w: %s", err, msg)
		}
		return fmt.Errorf("say failed: %w", err)
	}

	log.Debug("say finished", "voice", e.voice.Voice, "took", time.Since(start))
	return nil
}

// ListVoices returns the names of the installed say voices.
func ListVoices(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, "say", "-v", "?").Output()
	if err != nil {
		return nil, fmt.Errorf("could not list voices: %w", err)
	}

	var voices []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			voices = append(voices, fields[0])
		}
	}
	return voices, nil
}
