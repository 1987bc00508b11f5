package tts_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dgnsrekt/hooksay/tts"
	"github.com/dgnsrekt/hooksay/tts/engines/mock"
)

func testConfig(provider string) tts.Config {
	cfg := tts.DefaultConfig()
	cfg.Provider = provider
	return cfg
}

func TestSpeakSkipsBackendsWhenNothingToSay(t *testing.T) {
	local := mock.New("macos")
	cloud := mock.New("elevenlabs")
	d := tts.NewDispatcher(testConfig("macos"), tts.Credentials{}, local, cloud)

	res := d.Speak(context.Background(), "```\nonly code\n```")

	if res.Success {
		t.Error("expected failure for empty speakable content")
	}
	if res.Diagnostic != "no speakable content" {
		t.Errorf("diagnostic = %q", res.Diagnostic)
	}
	if local.CallCount() != 0 || cloud.CallCount() != 0 {
		t.Errorf("backends invoked: local=%d cloud=%d", local.CallCount(), cloud.CallCount())
	}
}

func TestSpeakUsesLocalWhenConfigured(t *testing.T) {
	local := mock.New("macos")
	cloud := mock.New("elevenlabs")
	creds := tts.Credentials{ElevenLabsAPIKey: "present"}
	d := tts.NewDispatcher(testConfig("macos"), creds, local, cloud)

	res := d.Speak(context.Background(), "Hello there, this is a test.")

	if !res.Success {
		t.Fatalf("speak failed: %s", res.Diagnostic)
	}
	if res.Provider != tts.ProviderMacOS {
		t.Errorf("provider = %q", res.Provider)
	}
	if cloud.CallCount() != 0 {
		t.Errorf("cloud invoked %d times with macos configured", cloud.CallCount())
	}
	if local.CallCount() != 1 {
		t.Errorf("local invoked %d times, want 1", local.CallCount())
	}
}

func TestSpeakUsesCloudWhenCredentialed(t *testing.T) {
	local := mock.New("macos")
	cloud := mock.New("elevenlabs")
	creds := tts.Credentials{ElevenLabsAPIKey: "present"}
	d := tts.NewDispatcher(testConfig("elevenlabs"), creds, local, cloud)

	res := d.Speak(context.Background(), "Hello there, this is a test.")

	if !res.Success {
		t.Fatalf("speak failed: %s", res.Diagnostic)
	}
	if res.Provider != tts.ProviderElevenLabs {
		t.Errorf("provider = %q", res.Provider)
	}
	if local.CallCount() != 0 {
		t.Errorf("local invoked %d times after cloud success", local.CallCount())
	}
}

func TestSpeakFallsBackToLocalOnCloudFailure(t *testing.T) {
	local := mock.New("macos")
	cloud := mock.New("elevenlabs")
	cloud.SetFailure(errors.New("quota exceeded"))
	creds := tts.Credentials{ElevenLabsAPIKey: "present"}
	d := tts.NewDispatcher(testConfig("elevenlabs"), creds, local, cloud)

	res := d.Speak(context.Background(), "Hello there, this is a test.")

	if !res.Success {
		t.Fatalf("fallback failed: %s", res.Diagnostic)
	}
	if res.Provider != tts.ProviderMacOS {
		t.Errorf("provider = %q, want fallback to macos", res.Provider)
	}
	if cloud.CallCount() != 1 || local.CallCount() != 1 {
		t.Errorf("calls: cloud=%d local=%d, want 1 and 1", cloud.CallCount(), local.CallCount())
	}
}

func TestSpeakSkipsCloudWithoutCredential(t *testing.T) {
	local := mock.New("macos")
	cloud := mock.New("elevenlabs")
	d := tts.NewDispatcher(testConfig("elevenlabs"), tts.Credentials{}, local, cloud)

	res := d.Speak(context.Background(), "Hello there, this is a test.")

	if !res.Success {
		t.Fatalf("speak failed: %s", res.Diagnostic)
	}
	if cloud.CallCount() != 0 {
		t.Errorf("cloud invoked %d times without a credential", cloud.CallCount())
	}
	if local.CallCount() != 1 {
		t.Errorf("local invoked %d times, want 1", local.CallCount())
	}
}

func TestSpeakReportsLocalFailure(t *testing.T) {
	local := mock.New("macos")
	local.SetFailure(errors.New("say exited with status 1"))
	cloud := mock.New("elevenlabs")
	d := tts.NewDispatcher(testConfig("macos"), tts.Credentials{}, local, cloud)

	res := d.Speak(context.Background(), "Hello there, this is a test.")

	if res.Success {
		t.Error("expected failure result")
	}
	if !strings.Contains(res.Diagnostic, "say exited") {
		t.Errorf("diagnostic = %q", res.Diagnostic)
	}
	if res.Provider != tts.ProviderMacOS {
		t.Errorf("provider = %q", res.Provider)
	}
}

func TestSpeakPassesCleanedText(t *testing.T) {
	local := mock.New("macos")
	cloud := mock.New("elevenlabs")
	d := tts.NewDispatcher(testConfig("macos"), tts.Credentials{}, local, cloud)

	res := d.Speak(context.Background(), "# Heading\nHello **world** \U0001F680")
	if !res.Success {
		t.Fatalf("speak failed: %s", res.Diagnostic)
	}

	got := local.LastText()
	if strings.ContainsAny(got, "#*") {
		t.Errorf("markdown leaked to backend: %q", got)
	}
	if strings.Contains(got, "\U0001F680") {
		t.Errorf("emoji leaked to backend: %q", got)
	}
	if !strings.Contains(got, "world") {
		t.Errorf("content lost: %q", got)
	}
}

func TestSpeakTruncatesToConfiguredLimit(t *testing.T) {
	local := mock.New("macos")
	cloud := mock.New("elevenlabs")
	cfg := testConfig("macos")
	cfg.TextLengthLimit = 30
	d := tts.NewDispatcher(cfg, tts.Credentials{}, local, cloud)

	res := d.Speak(context.Background(), strings.Repeat("lorem ipsum ", 40))
	if !res.Success {
		t.Fatalf("speak failed: %s", res.Diagnostic)
	}
	if got := len([]rune(local.LastText())); got > 33 {
		t.Errorf("backend received %d runes, want at most 33", got)
	}
}

type panickyEngine struct{ name string }

func (e *panickyEngine) Name() string    { return e.name }
func (e *panickyEngine) Available() bool { return true }
func (e *panickyEngine) Synthesize(context.Context, string) error {
	panic("backend blew up")
}

func TestSpeakRecoversFromBackendPanic(t *testing.T) {
	d := tts.NewDispatcher(testConfig("macos"), tts.Credentials{},
		&panickyEngine{name: "macos"}, mock.New("elevenlabs"))

	res := d.Speak(context.Background(), "Hello there, this is a test.")

	if res.Success {
		t.Error("expected failure result after panic")
	}
	if !strings.Contains(res.Diagnostic, "backend blew up") {
		t.Errorf("diagnostic = %q", res.Diagnostic)
	}
}
