package mock

import (
	"context"
	"errors"
	"testing"
)

func TestEngineRecordsCalls(t *testing.T) {
	e := New("macos")

	if err := e.Synthesize(context.Background(), "hello"); err != nil {
		t.Fatalf("synthesize failed: %v", err)
	}
	if e.CallCount() != 1 {
		t.Errorf("call count = %d", e.CallCount())
	}
	if e.LastText() != "hello" {
		t.Errorf("last text = %q", e.LastText())
	}
}

func TestEngineConfiguredFailure(t *testing.T) {
	e := New("macos")
	want := errors.New("boom")
	e.SetFailure(want)

	if err := e.Synthesize(context.Background(), "hello"); !errors.Is(err, want) {
		t.Errorf("err = %v, want configured failure", err)
	}
	if e.CallCount() != 1 {
		t.Errorf("failed call not counted")
	}
}

func TestEngineHonorsContext(t *testing.T) {
	e := New("macos")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := e.Synthesize(ctx, "hello"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
