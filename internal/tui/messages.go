package tui

import "deskentry/internal/installer"

// installResultMsg delivers the finished installation back to the form.
type installResultMsg struct {
	outcome installer.Outcome
	err     error
}
