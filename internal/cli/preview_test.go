package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func TestPreviewCommandRendersDescriptor(t *testing.T) {
	home := setupTestHome(t)

	cmd := newPreviewCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetArgs([]string{
		"--script", "/opt/tools/backup.sh",
		"--icon", "/opt/tools/backup.png",
		"--name", "My Backup",
		"--method", "direct",
		"--comment", "Nightly backup",
		"--categories", "Utility,System",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("preview returned error: %v", err)
	}

	scriptDir := filepath.Join(home, ".local", "bin", "my-backup")
	want := fmt.Sprintf(`[Desktop Entry]
Version=1.1
Type=Application
Name=My Backup
Exec="%s/backup.sh"
Icon=%s
Terminal=false
Comment=Nightly backup
Categories=Utility;System;
Path=%s
StartupNotify=true
`, scriptDir, filepath.Join(home, ".local", "share", "icons", "my-backup.png"), scriptDir)

	if got := stdout.String(); got != want {
		t.Errorf("descriptor mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPreviewCommandRequiresScript(t *testing.T) {
	setupTestHome(t)

	cmd := newPreviewCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--name", "My Backup"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "--script is required") {
		t.Fatalf("expected missing-script error, got %v", err)
	}
}

func TestPreviewCommandJSON(t *testing.T) {
	home := setupTestHome(t)
	outputJSON = true

	cmd := newPreviewCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetArgs([]string{
		"--script", "/opt/tools/run_me.sh",
		"--icon", "/opt/tools/run_me.svg",
		"--method", "direct",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("preview returned error: %v", err)
	}

	var payload struct {
		Token      string `json:"token"`
		Descriptor string `json:"descriptor"`
		Plan       struct {
			IconFile string `json:"icon_file"`
		} `json:"plan"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &payload); err != nil {
		t.Fatalf("parse JSON: %v\n%s", err, stdout.String())
	}

	if payload.Token != "run-me" {
		t.Errorf("token = %q, want run-me", payload.Token)
	}
	if !strings.Contains(payload.Descriptor, "Name=Run Me") {
		t.Errorf("descriptor missing suggested name:\n%s", payload.Descriptor)
	}
	wantIcon := filepath.Join(home, ".local", "share", "icons", "run-me.svg")
	if payload.Plan.IconFile != wantIcon {
		t.Errorf("icon target = %q, want %q", payload.Plan.IconFile, wantIcon)
	}
}
