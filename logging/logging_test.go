//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lined.log")
	l, err := NewLogger(path, LevelWarn)
	if err != nil {
		t.Fatalf("NewLogger failed: %+v", err)
	}
	l.Info("hidden")
	l.Warn("terminal", "backend", "tcell")
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %+v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected one record, got %d: %s", len(lines), b)
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("Record is not JSON: %+v", err)
	}
	if record["msg"] != "terminal" || record["backend"] != "tcell" || record["level"] != "WARN" {
		t.Errorf("Unexpected record: %+v", record)
	}
}

func TestNewLoggerWithoutFile(t *testing.T) {
	l, err := NewLogger("", LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger failed: %+v", err)
	}
	l.Info("dropped")
	if err := l.Close(); err != nil {
		t.Errorf("Close failed: %+v", err)
	}
}

func TestNewLoggerBadPath(t *testing.T) {
	if _, err := NewLogger(filepath.Join(t.TempDir(), "missing", "lined.log"), LevelInfo); err == nil {
		t.Errorf("NewLogger succeeded on a missing directory")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"DEBUG": slog.LevelDebug,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"Warn":  slog.LevelWarn,
		"ERROR": slog.LevelError,
		"bogus": slog.LevelInfo,
	}
	for name, want := range tests {
		if got := ParseLevel(name); got != want {
			t.Errorf("ParseLevel(%s) = %v, wanted %v", name, got, want)
		}
		if want := name != "bogus"; ValidLevel(name) != want {
			t.Errorf("ValidLevel(%s) = %v", name, !want)
		}
	}
}
