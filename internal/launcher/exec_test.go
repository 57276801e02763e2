package launcher

import (
	"errors"
	"strings"
	"testing"
)

func fakeLookPath(found map[string]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if path, ok := found[name]; ok {
			return path, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestBuildDirect(t *testing.T) {
	b := Builder{LookPath: fakeLookPath(nil)}

	cmd := b.Build(MethodDirect, "", "/home/u/.local/bin/app/run.sh")
	if cmd.Line != `"/home/u/.local/bin/app/run.sh"` {
		t.Fatalf("Line = %q, want quoted path only", cmd.Line)
	}
	if cmd.Interpreter != "" {
		t.Errorf("Interpreter = %q, want empty", cmd.Interpreter)
	}
	if cmd.Recordable {
		t.Error("direct invocation must never be recordable")
	}
}

func TestBuildDirectIgnoresPrefix(t *testing.T) {
	b := Builder{LookPath: fakeLookPath(nil)}

	cmd := b.Build(MethodDirect, "/usr/bin/env", "/tmp/x.sh")
	if strings.Contains(cmd.Line, "env") {
		t.Fatalf("Line = %q, prefix must be ignored for direct", cmd.Line)
	}
	if cmd.Recordable {
		t.Error("direct invocation must never be recordable")
	}
}

func TestBuildPythonDefault(t *testing.T) {
	b := Builder{LookPath: fakeLookPath(map[string]string{"python3": "/usr/bin/python3"})}

	cmd := b.Build(MethodPython, "", `/home/u/.local/bin/app/main.py`)
	if cmd.Line != `/usr/bin/python3 "/home/u/.local/bin/app/main.py"` {
		t.Fatalf("Line = %q", cmd.Line)
	}
	if cmd.Interpreter != "/usr/bin/python3" {
		t.Errorf("Interpreter = %q, want /usr/bin/python3", cmd.Interpreter)
	}
	if cmd.Recordable {
		t.Error("auto-resolved default must not be recordable")
	}
}

func TestBuildPythonDefaultUnresolved(t *testing.T) {
	b := Builder{LookPath: fakeLookPath(nil)}

	cmd := b.Build(MethodPython, "", "/tmp/x.py")
	if cmd.Line != `python3 "/tmp/x.py"` {
		t.Fatalf("Line = %q, want bare name fallback", cmd.Line)
	}
}

func TestBuildPythonExplicitPrefix(t *testing.T) {
	b := Builder{LookPath: fakeLookPath(nil)}

	cmd := b.Build(MethodPython, "/opt/py/bin/python3.12", "/tmp/x.py")
	if cmd.Line != `/opt/py/bin/python3.12 "/tmp/x.py"` {
		t.Fatalf("Line = %q", cmd.Line)
	}
	if !cmd.Recordable {
		t.Error("explicit interpreter must be recordable")
	}
}

func TestBuildJavaInsertsJarFlag(t *testing.T) {
	b := Builder{LookPath: fakeLookPath(map[string]string{"java": "/usr/bin/java"})}

	cmd := b.Build(MethodJava, "", "/home/u/.local/bin/tool/tool.jar")
	want := `/usr/bin/java -jar "/home/u/.local/bin/tool/tool.jar"`
	if cmd.Line != want {
		t.Fatalf("Line = %q, want %q", cmd.Line, want)
	}
	if n := strings.Count(cmd.Line, "-jar"); n != 1 {
		t.Errorf("-jar appears %d times, want 1", n)
	}
}

func TestBuildJavaExplicitPrefixKeepsJarFlag(t *testing.T) {
	b := Builder{LookPath: fakeLookPath(nil)}

	cmd := b.Build(MethodJava, "/opt/jdk/bin/java", "/tmp/t.jar")
	if cmd.Line != `/opt/jdk/bin/java -jar "/tmp/t.jar"` {
		t.Fatalf("Line = %q", cmd.Line)
	}
	if !cmd.Recordable {
		t.Error("explicit java must be recordable")
	}
}

func TestBuildBashDefaultOverride(t *testing.T) {
	b := Builder{
		LookPath: fakeLookPath(map[string]string{"/usr/local/bin/bash5": "/usr/local/bin/bash5"}),
		Defaults: map[Method]string{MethodBash: "/usr/local/bin/bash5"},
	}

	cmd := b.Build(MethodBash, "", "/tmp/x.sh")
	if cmd.Line != `/usr/local/bin/bash5 "/tmp/x.sh"` {
		t.Fatalf("Line = %q", cmd.Line)
	}
	if cmd.Recordable {
		t.Error("configured default must not be recordable")
	}
}

func TestBuildCustom(t *testing.T) {
	b := Builder{LookPath: fakeLookPath(nil)}

	cmd := b.Build(MethodCustom, "wine --fullscreen", "/tmp/game.exe")
	if cmd.Line != `wine --fullscreen "/tmp/game.exe"` {
		t.Fatalf("Line = %q", cmd.Line)
	}
	if cmd.Interpreter != "wine --fullscreen" {
		t.Errorf("Interpreter = %q", cmd.Interpreter)
	}
	if !cmd.Recordable {
		t.Error("custom prefix must be recordable")
	}
}

func TestBuildCustomEmptyPrefixDegradesToDirect(t *testing.T) {
	b := Builder{LookPath: fakeLookPath(nil)}

	cmd := b.Build(MethodCustom, "  ", "/tmp/app")
	if cmd.Line != `"/tmp/app"` {
		t.Fatalf("Line = %q, want quoted path only", cmd.Line)
	}
	if cmd.Recordable {
		t.Error("degraded custom must not be recordable")
	}
}

func TestBuildQuotesTargetWithSpaces(t *testing.T) {
	b := Builder{LookPath: fakeLookPath(nil)}

	cmd := b.Build(MethodBash, "bash", "/home/u/.local/bin/my-app/start me.sh")
	if !strings.HasSuffix(cmd.Line, `"/home/u/.local/bin/my-app/start me.sh"`) {
		t.Fatalf("Line = %q, want double-quoted target", cmd.Line)
	}
}
