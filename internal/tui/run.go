package tui

import (
	"io"
	"os"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive form and blocks until it exits. The returned
// error is the installation failure, if any; quitting the form early is not
// an error.
func Run(out io.Writer, form FormModel) error {
	p := tea.NewProgram(form, tea.WithOutput(out))

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(FormModel); ok {
		return m.Err()
	}
	return nil
}

// Interactive reports whether the writer can host the form: a character
// device with a capable terminal attached.
func Interactive(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	if info.Mode()&os.ModeCharDevice == 0 {
		return false
	}
	if runtime.GOOS != "windows" {
		term := os.Getenv("TERM")
		if term == "" || strings.EqualFold(term, "dumb") {
			return false
		}
	}
	return true
}
