package launcher

import (
	"os/exec"
	"strings"
)

// ExecCommand is the synthesized Exec= value plus the bookkeeping the
// installer needs for interpreter history.
type ExecCommand struct {
	// Line is the full command written to the descriptor's Exec= key. The
	// script target path is always double-quoted.
	Line string `json:"line"`
	// Interpreter is the effective interpreter or command prefix; empty when
	// the script runs directly.
	Interpreter string `json:"interpreter,omitempty"`
	// Recordable reports whether Interpreter qualifies for the history store:
	// only explicit user-supplied prefixes do, never auto-resolved defaults.
	Recordable bool `json:"recordable"`
}

// Builder synthesizes Exec= command lines. The zero value resolves default
// interpreters through exec.LookPath with the built-in command names.
type Builder struct {
	// LookPath resolves a bare command name against the search path.
	LookPath func(string) (string, error)
	// Defaults overrides the per-method default interpreter command.
	Defaults map[Method]string
}

// Build produces the command line for the given method, optional
// interpreter/command prefix, and planned script target path.
//
// DIRECT ignores the prefix entirely. PYTHON, JAVA, and BASH use the prefix
// verbatim when present, otherwise the method default resolved against PATH
// (bare name as fallback when resolution fails); JAVA inserts -jar. CUSTOM
// degrades to direct invocation when the prefix is empty.
func (b Builder) Build(method Method, prefix, scriptTarget string) ExecCommand {
	quoted := `"` + scriptTarget + `"`
	prefix = strings.TrimSpace(prefix)

	switch method {
	case MethodDirect:
		return ExecCommand{Line: quoted}
	case MethodCustom:
		if prefix == "" {
			return ExecCommand{Line: quoted}
		}
		return ExecCommand{Line: prefix + " " + quoted, Interpreter: prefix, Recordable: true}
	}

	interpreter := prefix
	recordable := prefix != ""
	if interpreter == "" {
		interpreter = b.resolveDefault(method)
	}

	line := interpreter + " " + quoted
	if methodSpecs[method].jarFlag {
		line = interpreter + " -jar " + quoted
	}
	return ExecCommand{Line: line, Interpreter: interpreter, Recordable: recordable}
}

// resolveDefault picks the interpreter used when the user supplied none: the
// configured override or built-in command name, resolved to an absolute path
// when it exists on the search path.
func (b Builder) resolveDefault(method Method) string {
	name := methodSpecs[method].defaultCommand
	if override := strings.TrimSpace(b.Defaults[method]); override != "" {
		name = override
	}

	look := b.LookPath
	if look == nil {
		look = exec.LookPath
	}
	if resolved, err := look(name); err == nil && resolved != "" {
		return resolved
	}
	return name
}
