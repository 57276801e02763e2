// Package history persists the most-recently-used interpreter prefixes so
// the interactive form can offer them again.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"deskentry/internal/paths"
)

// MaxEntries bounds the history; older entries are evicted first.
const MaxEntries = 15

const historyFileName = "history.json"

// Store loads and saves the ordered interpreter list, most recent first.
type Store interface {
	Load() ([]string, error)
	Save(entries []string) error
}

// historyFile is the persisted JSON shape.
type historyFile struct {
	Interpreters []string `json:"interpreters"`
}

// FileStore persists the history as a JSON file.
type FileStore struct {
	Path string
}

// DefaultStore returns the file-backed store at the standard location.
func DefaultStore(dirs paths.Dirs) FileStore {
	return FileStore{Path: FilePath(dirs)}
}

// FilePath returns the history file location. DESKENTRY_STATE_DIR overrides
// the state directory so tests and portable setups can relocate it.
func FilePath(dirs paths.Dirs) string {
	if override := strings.TrimSpace(os.Getenv("DESKENTRY_STATE_DIR")); override != "" {
		return filepath.Join(override, historyFileName)
	}
	return filepath.Join(dirs.StateDir(), historyFileName)
}

// Load reads the persisted list. A missing file is an empty history, and a
// hand-edited file is normalized on the way in.
func (s FileStore) Load() ([]string, error) {
	contents, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}

	var file historyFile
	if err := json.Unmarshal(contents, &file); err != nil {
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}
	return Normalize(file.Interpreters), nil
}

// Save writes the list atomically: temp file in the destination directory,
// then rename into place.
func (s FileStore) Save(entries []string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("prepare history directory: %w", err)
	}

	buf, err := json.MarshalIndent(historyFile{Interpreters: Normalize(entries)}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), "history-*.json")
	if err != nil {
		return fmt.Errorf("create temp history: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		return fmt.Errorf("write history temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close history temp: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}

// Record is the pure most-recently-used insert: the value moves to the
// front, an existing exact-text duplicate is removed, and the list is capped
// at MaxEntries with the oldest entry evicted.
func Record(entries []string, value string) []string {
	if strings.TrimSpace(value) == "" {
		return Normalize(entries)
	}

	out := make([]string, 0, len(entries)+1)
	out = append(out, value)
	for _, entry := range entries {
		if entry == value {
			continue
		}
		out = append(out, entry)
	}
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}

// Normalize drops empty entries, deduplicates by exact text keeping the
// most recent occurrence, and applies the MaxEntries cap.
func Normalize(entries []string) []string {
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		out = append(out, entry)
		if len(out) == MaxEntries {
			break
		}
	}
	return out
}
