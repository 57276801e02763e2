package launcher

import (
	"fmt"
	"path/filepath"
	"strings"

	"deskentry/internal/paths"
)

// iconExtensions lists the icon formats desktop environments accept without
// conversion; lower-cased with leading dot.
var iconExtensions = []string{".png", ".svg", ".xpm"}

// Request is one immutable entry-generation attempt, built by a frontend
// (flags or the interactive form) once the user confirms input.
type Request struct {
	// Name is the human-readable application name shown in menus.
	Name string `json:"name"`
	// ScriptPath is the absolute source path of the script or program.
	ScriptPath string `json:"script_path"`
	// IconPath is the absolute source path of the icon file.
	IconPath string `json:"icon_path"`
	// Method selects the execution strategy.
	Method Method `json:"method"`
	// Interpreter is the optional interpreter/command prefix.
	Interpreter string `json:"interpreter,omitempty"`
	// Terminal marks the entry to run in a terminal window.
	Terminal bool `json:"terminal"`
	// Comment is the optional descriptor Comment= value.
	Comment string `json:"comment,omitempty"`
	// Categories holds the selected menu categories.
	Categories []string `json:"categories,omitempty"`
	// CopyToDesktop duplicates the descriptor onto the Desktop folder.
	CopyToDesktop bool `json:"copy_to_desktop"`
}

// ValidateRequest checks the request before any filesystem mutation: the
// name must be non-empty, script and icon must exist as regular files, and
// the icon extension must be a supported format. It returns every problem
// found, not just the first.
func ValidateRequest(req Request) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "application name is required"})
	}
	if !req.Method.valid() {
		errs = append(errs, ValidationError{Field: "method", Message: fmt.Sprintf("unknown execution method %q", string(req.Method))})
	}

	errs = append(errs, checkSourceFile("script", req.ScriptPath)...)
	errs = append(errs, checkSourceFile("icon", req.IconPath)...)

	if req.IconPath != "" {
		ext := strings.ToLower(filepath.Ext(req.IconPath))
		if !supportedIconExtension(ext) {
			errs = append(errs, ValidationError{
				Field:   "icon",
				Message: fmt.Sprintf("unsupported icon extension %q (want %s)", ext, strings.Join(iconExtensions, ", ")),
			})
		}
	}

	return errs
}

func checkSourceFile(field, path string) ValidationErrors {
	if strings.TrimSpace(path) == "" {
		return ValidationErrors{{Field: field, Message: "source path is required"}}
	}
	exists, err := paths.FileExists(path)
	if err != nil {
		return ValidationErrors{{Field: field, Message: fmt.Sprintf("stat %s: %v", path, err)}}
	}
	if !exists {
		return ValidationErrors{{Field: field, Message: fmt.Sprintf("%s is not an existing regular file", path)}}
	}
	return nil
}

func supportedIconExtension(ext string) bool {
	for _, allowed := range iconExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
