package launcher

import (
	"fmt"
	"strings"
)

// Method selects how the launcher invokes the installed script.
type Method string

const (
	// MethodDirect runs the script itself; it must carry execute permission.
	MethodDirect Method = "direct"
	// MethodPython runs the script through a Python 3 interpreter.
	MethodPython Method = "python"
	// MethodJava launches the target as an executable JAR.
	MethodJava Method = "java"
	// MethodBash runs the script through bash.
	MethodBash Method = "bash"
	// MethodCustom prepends a user-supplied command verbatim.
	MethodCustom Method = "custom"
)

// methodSpec attaches the per-method command-building rules as data so the
// builder stays free of per-method conditionals.
type methodSpec struct {
	// defaultCommand is resolved against PATH when no prefix is given.
	defaultCommand string
	// jarFlag inserts "-jar" between the interpreter and the script.
	jarFlag bool
	// summary is the one-line description shown in help text and the form.
	summary string
}

var methodSpecs = map[Method]methodSpec{
	MethodDirect: {summary: "run the script directly (requires execute permission)"},
	MethodPython: {defaultCommand: "python3", summary: "run with python3"},
	MethodJava:   {defaultCommand: "java", jarFlag: true, summary: "run with java -jar"},
	MethodBash:   {defaultCommand: "bash", summary: "run with bash"},
	MethodCustom: {summary: "run with a custom command prefix"},
}

// methodOrder fixes the presentation order for help text and the form.
var methodOrder = []Method{MethodDirect, MethodPython, MethodJava, MethodBash, MethodCustom}

// Methods returns every execution method in stable presentation order.
func Methods() []Method {
	return append([]Method(nil), methodOrder...)
}

// ParseMethod maps a case-insensitive user string onto a Method.
func ParseMethod(value string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := methodSpecs[m]; !ok {
		return "", fmt.Errorf("unknown execution method %q (valid: %s)", value, strings.Join(methodNames(), ", "))
	}
	return m, nil
}

func (m Method) String() string {
	return string(m)
}

// Summary describes the method for help text and the interactive form.
func (m Method) Summary() string {
	return methodSpecs[m].summary
}

// DefaultInterpreter returns the command name used when the user supplies no
// prefix; empty for methods that never use an interpreter.
func (m Method) DefaultInterpreter() string {
	return methodSpecs[m].defaultCommand
}

func (m Method) valid() bool {
	_, ok := methodSpecs[m]
	return ok
}

func methodNames() []string {
	names := make([]string, len(methodOrder))
	for i, m := range methodOrder {
		names[i] = string(m)
	}
	return names
}
