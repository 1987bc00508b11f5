package engines

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dgnsrekt/hooksay/tts"
)

const (
	elevenLabsBaseURL = "https://api.elevenlabs.io/v1"

	// The ElevenLabs API provides no completion signal beyond the HTTP
	// response; this client timeout is the only bound on the call.
	defaultElevenLabsTimeout = 60 * time.Second
)

// AudioPlayer plays a stream of encoded audio, blocking until done.
type AudioPlayer interface {
	Play(ctx context.Context, mp3 io.Reader) error
}

// ElevenLabs synthesizes speech through the ElevenLabs HTTP API and plays
// the returned MP3 audio locally.
type ElevenLabs struct {
	apiKey  string
	voice   tts.ElevenLabsVoice
	baseURL string
	client  *http.Client
	player  AudioPlayer
}

var _ tts.Engine = (*ElevenLabs)(nil)

// ElevenLabsOption configures the ElevenLabs backend.
type ElevenLabsOption func(*ElevenLabs)

// WithBaseURL sets a custom API base URL.
func WithBaseURL(u string) ElevenLabsOption {
	return func(e *ElevenLabs) { e.baseURL = u }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ElevenLabsOption {
	return func(e *ElevenLabs) { e.client = c }
}

// NewElevenLabs creates the cloud backend. The player receives the
// synthesized MP3 stream.
func NewElevenLabs(apiKey string, voice tts.ElevenLabsVoice, player AudioPlayer, opts ...ElevenLabsOption) *ElevenLabs {
	e := &ElevenLabs{
		apiKey:  apiKey,
		voice:   voice,
		baseURL: elevenLabsBaseURL,
		client:  &http.Client{Timeout: defaultElevenLabsTimeout},
		player:  player,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the backend identifier.
func (e *ElevenLabs) Name() string { return string(tts.ProviderElevenLabs) }

// Available reports whether an API key is present.
func (e *ElevenLabs) Available() bool { return e.apiKey != "" }

// elevenLabsRequest is the request body for the text-to-speech endpoint.
type elevenLabsRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id,omitempty"`
}

// elevenLabsErrorResponse is the error body shape the API returns.
type elevenLabsErrorResponse struct {
	Detail struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"detail"`
}

// Synthesize converts text to audio via the API and plays it, blocking
// until playback completes.
func (e *ElevenLabs) Synthesize(ctx context.Context, text string) error {
	if e.apiKey == "" {
		return tts.ErrMissingAPIKey
	}

	body, err := json.Marshal(elevenLabsRequest{Text: text, ModelID: e.voice.Model})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/text-to-speech/%s", e.baseURL, url.PathEscape(e.voice.VoiceID))
	if e.voice.OutputFormat != "" {
		endpoint += "?output_format=" + url.QueryEscape(e.voice.OutputFormat)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("xi-api-key", e.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	start := time.Now()
	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("elevenlabs request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return e.apiError(resp)
	}

	log.Debug("elevenlabs responded", "took", time.Since(start))

	if err := e.player.Play(ctx, resp.Body); err != nil {
		return fmt.Errorf("audio playback failed: %w", err)
	}
	return nil
}

// apiError decodes a non-200 response into an error.
func (e *ElevenLabs) apiError(resp *http.Response) error {
	var body elevenLabsErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Detail.Message == "" {
		return fmt.Errorf("%w: elevenlabs returned HTTP %d", tts.ErrSynthesisFailed, resp.StatusCode)
	}
	return fmt.Errorf("%w: elevenlabs returned HTTP %d: %s (%s)",
		tts.ErrSynthesisFailed, resp.StatusCode, body.Detail.Message, body.Detail.Status)
}
