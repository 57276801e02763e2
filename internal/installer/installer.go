// Package installer executes the multi-step installation that turns a
// validated request into an application launcher: copy the script and icon
// into per-user locations, commit the descriptor atomically, and handle the
// optional desktop copy and interpreter history as soft steps.
package installer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"deskentry/internal/history"
	"deskentry/internal/launcher"
	"deskentry/internal/paths"
	"deskentry/pkg/desktopfile"
)

// Step names one stage of the installation sequence.
type Step string

const (
	StepValidate        Step = "validate"
	StepScriptDir       Step = "script-dir"
	StepCopyScript      Step = "copy-script"
	StepMarkExecutable  Step = "mark-executable"
	StepIconDir         Step = "icon-dir"
	StepCopyIcon        Step = "copy-icon"
	StepApplicationsDir Step = "applications-dir"
	StepWriteDescriptor Step = "write-descriptor"
	StepDesktopCopy     Step = "desktop-copy"
	StepRecordHistory   Step = "record-history"
)

// StepError reports which step failed; completed steps are not rolled back.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Warning records a soft-step failure that did not abort the installation.
type Warning struct {
	Step    Step   `json:"step"`
	Message string `json:"message"`
}

// Outcome summarizes one installation attempt.
type Outcome struct {
	// Plan holds every target path the installation used.
	Plan paths.InstallPlan `json:"plan"`
	// Exec is the synthesized launch command.
	Exec launcher.ExecCommand `json:"exec"`
	// Completed lists the steps that ran to completion, in order.
	Completed []Step `json:"completed"`
	// FailedStep names the fatal step; empty on success.
	FailedStep Step `json:"failed_step,omitempty"`
	// Warnings lists soft failures such as an unavailable desktop folder.
	Warnings []Warning `json:"warnings,omitempty"`
	// DesktopCopied reports whether the desktop duplicate was written.
	DesktopCopied bool `json:"desktop_copied"`
}

// Logger receives one line per step. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// Installer runs installations. The zero value skips history recording and
// logging.
type Installer struct {
	// History receives the interpreter prefix when the command qualifies.
	History history.Store
	// Logger, when set, gets a line per completed step.
	Logger Logger
}

// Install runs the full sequence for one request. Validation happens before
// any filesystem mutation; a failure in any fatal step stops the sequence and
// leaves already-copied files in place. The desktop copy and history steps
// only warn.
func (ins Installer) Install(req launcher.Request, plan paths.InstallPlan, cmd launcher.ExecCommand) (Outcome, error) {
	out := Outcome{Plan: plan, Exec: cmd}

	if errs := launcher.ValidateRequest(req); len(errs) > 0 {
		return ins.fail(out, StepValidate, errs)
	}
	ins.complete(&out, StepValidate, "validated request for %q", req.Name)

	if err := paths.EnsureDir(plan.ScriptDir); err != nil {
		return ins.fail(out, StepScriptDir, err)
	}
	ins.complete(&out, StepScriptDir, "ensured script directory %s", plan.ScriptDir)

	if err := copyFile(req.ScriptPath, plan.ScriptFile); err != nil {
		return ins.fail(out, StepCopyScript, err)
	}
	ins.complete(&out, StepCopyScript, "copied script %s to %s", req.ScriptPath, plan.ScriptFile)

	if err := markExecutable(plan.ScriptFile); err != nil {
		return ins.fail(out, StepMarkExecutable, err)
	}
	ins.complete(&out, StepMarkExecutable, "ensured execute permission on %s", plan.ScriptFile)

	if err := paths.EnsureDir(filepath.Dir(plan.IconFile)); err != nil {
		return ins.fail(out, StepIconDir, err)
	}
	ins.complete(&out, StepIconDir, "ensured icon directory %s", filepath.Dir(plan.IconFile))

	if err := copyFile(req.IconPath, plan.IconFile); err != nil {
		return ins.fail(out, StepCopyIcon, err)
	}
	ins.complete(&out, StepCopyIcon, "copied icon %s to %s", req.IconPath, plan.IconFile)

	if err := paths.EnsureDir(filepath.Dir(plan.DescriptorFile)); err != nil {
		return ins.fail(out, StepApplicationsDir, err)
	}
	ins.complete(&out, StepApplicationsDir, "ensured applications directory %s", filepath.Dir(plan.DescriptorFile))

	entry := Descriptor(req, plan, cmd)
	if err := writeDescriptor(plan.DescriptorFile, entry.Marshal()); err != nil {
		return ins.fail(out, StepWriteDescriptor, err)
	}
	ins.complete(&out, StepWriteDescriptor, "wrote descriptor %s", plan.DescriptorFile)

	ins.copyToDesktop(req, plan, &out)
	ins.recordInterpreter(cmd, &out)

	return out, nil
}

// Descriptor builds the desktop entry for a request and its plan. The icon
// always points at the installed copy and the working directory at the
// per-app script directory.
func Descriptor(req launcher.Request, plan paths.InstallPlan, cmd launcher.ExecCommand) desktopfile.Entry {
	return desktopfile.Entry{
		Name:       req.Name,
		Exec:       cmd.Line,
		Icon:       plan.IconFile,
		Terminal:   req.Terminal,
		Comment:    req.Comment,
		Categories: req.Categories,
		Path:       plan.ScriptDir,
	}
}

// copyToDesktop duplicates the committed descriptor onto the desktop folder.
// Failures warn instead of aborting; the menu entry is already installed.
func (ins Installer) copyToDesktop(req launcher.Request, plan paths.InstallPlan, out *Outcome) {
	if !req.CopyToDesktop {
		return
	}
	if plan.DesktopFile == "" {
		ins.warn(out, StepDesktopCopy, "no desktop folder available, skipping desktop copy")
		return
	}

	if err := paths.EnsureDir(filepath.Dir(plan.DesktopFile)); err != nil {
		ins.warn(out, StepDesktopCopy, "prepare desktop folder: %v", err)
		return
	}
	if err := copyFile(plan.DescriptorFile, plan.DesktopFile); err != nil {
		ins.warn(out, StepDesktopCopy, "copy descriptor to desktop: %v", err)
		return
	}
	out.DesktopCopied = true
	ins.complete(out, StepDesktopCopy, "copied descriptor to %s", plan.DesktopFile)
}

// recordInterpreter appends a qualifying interpreter prefix to the history.
// Only explicit user input qualifies; auto-resolved defaults never do.
func (ins Installer) recordInterpreter(cmd launcher.ExecCommand, out *Outcome) {
	if !cmd.Recordable || ins.History == nil {
		return
	}

	entries, err := ins.History.Load()
	if err != nil {
		ins.warn(out, StepRecordHistory, "load interpreter history: %v", err)
		return
	}
	if err := ins.History.Save(history.Record(entries, cmd.Interpreter)); err != nil {
		ins.warn(out, StepRecordHistory, "save interpreter history: %v", err)
		return
	}
	ins.complete(out, StepRecordHistory, "recorded interpreter %q", cmd.Interpreter)
}

func (ins Installer) fail(out Outcome, step Step, err error) (Outcome, error) {
	out.FailedStep = step
	ins.logf("step %s failed: %v", step, err)
	return out, &StepError{Step: step, Err: err}
}

func (ins Installer) complete(out *Outcome, step Step, format string, v ...any) {
	out.Completed = append(out.Completed, step)
	ins.logf(format, v...)
}

func (ins Installer) warn(out *Outcome, step Step, format string, v ...any) {
	message := fmt.Sprintf(format, v...)
	out.Warnings = append(out.Warnings, Warning{Step: step, Message: message})
	ins.logf("step %s: %s", step, message)
}

func (ins Installer) logf(format string, v ...any) {
	if ins.Logger != nil {
		ins.Logger.Printf(format, v...)
	}
}

// copyFile copies a regular file preserving permission bits and the
// modification time.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	source, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer source.Close()

	dest, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(dest, source); err != nil {
		dest.Close()
		return fmt.Errorf("copy to %s: %w", dst, err)
	}
	if err := dest.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}

	// OpenFile applies the umask; restore the exact source bits.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod %s: %w", dst, err)
	}
	if err := os.Chtimes(dst, time.Now(), info.ModTime()); err != nil {
		return fmt.Errorf("preserve mtime of %s: %w", dst, err)
	}
	return nil
}

// markExecutable adds the user, group, and other execute bits to the copied
// script. Existing bits are never removed.
func markExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat script copy: %w", err)
	}
	mode := info.Mode()
	if mode&0o111 == 0o111 {
		return nil
	}
	if err := os.Chmod(path, mode|0o111); err != nil {
		return fmt.Errorf("set execute permission: %w", err)
	}
	return nil
}

// writeDescriptor commits the descriptor atomically: temp file in the
// destination directory, then rename. Readers never observe a partial file.
func writeDescriptor(path string, contents []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "descriptor-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp descriptor: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(contents); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp descriptor: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp descriptor: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp descriptor: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("commit descriptor: %w", err)
	}
	return nil
}
