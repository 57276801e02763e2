package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCategoriesCommandListsVocabulary(t *testing.T) {
	setupTestHome(t)

	cmd := newCategoriesCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("categories returned error: %v", err)
	}

	got := stdout.String()
	for _, want := range []string{"Utility", "Game", "Development"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected category %q in output", want)
		}
	}
}

func TestCategoriesCommandIncludesConfiguredExtras(t *testing.T) {
	home := setupTestHome(t)

	cfgDir := filepath.Join(home, ".config", "deskentry")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgBody := "extra_categories:\n  - HamRadio\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(cfgBody), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newCategoriesCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("categories returned error: %v", err)
	}
	if !strings.Contains(stdout.String(), "HamRadio") {
		t.Errorf("expected configured extra category, got %q", stdout.String())
	}
}
