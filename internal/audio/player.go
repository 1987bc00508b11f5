// Package audio plays synthesized MP3 audio through the default output
// device.
package audio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
	mp3 "github.com/hajimehoshi/go-mp3"
)

// Player decodes an MP3 stream and plays it, blocking until playback
// completes. The oto context can only be created once per process, which
// fits the one-synthesis-per-invocation model here.
type Player struct{}

// NewPlayer creates a player. Audio device initialization is deferred to
// the first Play call so constructing a player never fails.
func NewPlayer() *Player { return &Player{} }

// Play decodes and plays the MP3 stream. The context cancels playback.
func (p *Player) Play(ctx context.Context, mp3Stream io.Reader) error {
	decoder, err := mp3.NewDecoder(mp3Stream)
	if err != nil {
		return fmt.Errorf("mp3 decode failed: %w", err)
	}

	op := &oto.NewContextOptions{
		SampleRate:   decoder.SampleRate(),
		ChannelCount: 2, // go-mp3 always emits 16-bit stereo
		Format:       oto.FormatSignedInt16LE,
	}
	otoCtx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}
	<-ready

	player := otoCtx.NewPlayer(decoder)
	defer player.Close() //nolint:errcheck
	player.Play()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}

	return player.Err()
}
