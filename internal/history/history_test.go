package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"deskentry/internal/paths"
)

func TestRecordMovesToFront(t *testing.T) {
	entries := []string{"/usr/bin/python3", "/opt/jdk/bin/java", "wine"}
	got := Record(entries, "wine")
	want := []string{"wine", "/usr/bin/python3", "/opt/jdk/bin/java"}
	assertEntries(t, got, want)
}

func TestRecordNewEntry(t *testing.T) {
	got := Record([]string{"bash"}, "/usr/local/bin/python3.13")
	assertEntries(t, got, []string{"/usr/local/bin/python3.13", "bash"})
}

func TestRecordCapsAtMax(t *testing.T) {
	var entries []string
	for i := 0; i < MaxEntries; i++ {
		entries = append(entries, fmt.Sprintf("interp-%d", i))
	}

	got := Record(entries, "newest")
	if len(got) != MaxEntries {
		t.Fatalf("len = %d, want %d", len(got), MaxEntries)
	}
	if got[0] != "newest" {
		t.Errorf("got[0] = %q, want newest", got[0])
	}
	for _, entry := range got {
		if entry == fmt.Sprintf("interp-%d", MaxEntries-1) {
			t.Error("oldest entry should have been evicted")
		}
	}
}

func TestRecordIgnoresBlank(t *testing.T) {
	entries := []string{"bash"}
	got := Record(entries, "   ")
	assertEntries(t, got, []string{"bash"})
}

func TestRecordCaseSensitive(t *testing.T) {
	got := Record([]string{"Wine"}, "wine")
	assertEntries(t, got, []string{"wine", "Wine"})
}

func TestNormalize(t *testing.T) {
	got := Normalize([]string{"a", "", "b", "a", "  ", "c"})
	assertEntries(t, got, []string{"a", "b", "c"})
}

func TestLoadMissingFile(t *testing.T) {
	store := FileStore{Path: filepath.Join(t.TempDir(), "history.json")}
	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if entries != nil {
		t.Fatalf("entries = %v, want nil", entries)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := (FileStore{Path: path}).Load(); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := FileStore{Path: filepath.Join(dir, "state", "history.json")}

	want := []string{"/opt/py/bin/python3.12", "wine --fullscreen", "bash"}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertEntries(t, got, want)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := FileStore{Path: filepath.Join(dir, "history.json")}
	if err := store.Save([]string{"bash"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	items, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, item := range items {
		if strings.HasPrefix(item.Name(), "history-") {
			t.Errorf("leftover temp file %s", item.Name())
		}
	}
	if len(items) != 1 {
		t.Errorf("directory holds %d entries, want only the history file", len(items))
	}
}

func TestSaveNormalizes(t *testing.T) {
	store := FileStore{Path: filepath.Join(t.TempDir(), "history.json")}
	if err := store.Save([]string{"a", "", "a", "b"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertEntries(t, got, []string{"a", "b"})
}

func TestFilePath(t *testing.T) {
	dirs := paths.Dirs{StateHome: "/home/u/.local/state"}

	t.Setenv("DESKENTRY_STATE_DIR", "")
	if got, want := FilePath(dirs), "/home/u/.local/state/deskentry/history.json"; got != want {
		t.Fatalf("FilePath = %s, want %s", got, want)
	}

	override := t.TempDir()
	t.Setenv("DESKENTRY_STATE_DIR", override)
	if got, want := FilePath(dirs), filepath.Join(override, "history.json"); got != want {
		t.Fatalf("FilePath with override = %s, want %s", got, want)
	}
}

func assertEntries(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v vs %v)", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
