package main

import (
	"encoding/json"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dgnsrekt/hooksay/internal/hooklog"
	"github.com/dgnsrekt/hooksay/tts"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Handle hook events from the assistant runtime",
}

// postToolUseCmd reads one JSON hook event from stdin, records it, and
// fires a background speak for response text. It always exits 0: the hook
// runner must never be blocked or failed by speech.
var postToolUseCmd = &cobra.Command{
	Use:   "post-tool-use",
	Short: "Log a tool-result event and speak the response if enabled",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runPostToolUse(cmd.InOrStdin())
	},
}

func runPostToolUse(stdin io.Reader) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		log.Debug("Could not read hook event", "err", err)
		return
	}

	var event map[string]any
	if err := json.Unmarshal(data, &event); err != nil {
		log.Debug("Ignoring malformed hook event", "err", err)
		return
	}

	if err := hooklog.New("logs").Append("post_tool_use", data); err != nil {
		log.Warn("Could not log hook event", "err", err)
	}

	cfg := tts.LoadConfig()
	if !cfg.ResponsesEnabled() {
		return
	}
	if !strings.EqualFold(os.Getenv("HOOKSAY_RESPONSE_TTS"), "true") {
		return
	}

	text := responseText(event)
	if !speakable(text) {
		return
	}
	speakInBackground(text)
}

// responseText pulls response-like text out of a tool event payload.
func responseText(event map[string]any) string {
	switch resp := event["tool_response"].(type) {
	case string:
		return resp
	case map[string]any:
		for _, key := range []string{"content", "output", "result"} {
			if s, ok := resp[key].(string); ok {
				return s
			}
		}
	}
	return ""
}

// noiseMarkers flag text that is tool output rather than prose.
var noiseMarkers = []string{
	"error:", "404", "500", "traceback", "exception",
	"usage:", "command not found", "permission denied",
}

// speakable filters out text not worth speaking: too short to be a real
// response, or carrying obvious tool-output markers.
func speakable(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 20 {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, marker := range noiseMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

// speakInBackground re-invokes this binary to synthesize in a detached
// process, so the triggering hook returns immediately.
func speakInBackground(text string) {
	exe, err := os.Executable()
	if err != nil {
		log.Debug("Could not resolve own executable", "err", err)
		return
	}

	cmd := exec.Command(exe, text)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		log.Debug("Could not start background speech", "err", err)
		return
	}
	_ = cmd.Process.Release()
}

func init() {
	hookCmd.AddCommand(postToolUseCmd)
}
