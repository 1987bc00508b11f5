// Package hooklog appends hook events to per-event JSON log files.
package hooklog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Logger writes hook events under a log directory. Each event name gets
// its own file holding a single JSON array, so the upstream hook runner
// can read the log back directly.
type Logger struct {
	dir string
}

// New creates a logger rooted at dir. The directory is created lazily on
// first append.
func New(dir string) *Logger {
	return &Logger{dir: dir}
}

// Path returns the log file path for an event name.
func (l *Logger) Path(name string) string {
	return filepath.Join(l.dir, name+".json")
}

// Append adds one event to the named log. A corrupt existing log is
// restarted rather than failing the hook.
func (l *Logger) Append(name string, event json.RawMessage) error {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("could not create log directory: %w", err)
	}

	path := l.Path(name)

	var events []json.RawMessage
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &events); err != nil {
			events = nil
		}
	}
	events = append(events, event)

	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode log: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("could not write log: %w", err)
	}
	return nil
}
