package launcher

import "testing"

func TestParseMethod(t *testing.T) {
	cases := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"direct", MethodDirect, false},
		{"python", MethodPython, false},
		{"JAVA", MethodJava, false},
		{" bash ", MethodBash, false},
		{"Custom", MethodCustom, false},
		{"perl", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParseMethod(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMethod(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMethod(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMethod(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMethodsOrder(t *testing.T) {
	methods := Methods()
	want := []Method{MethodDirect, MethodPython, MethodJava, MethodBash, MethodCustom}
	if len(methods) != len(want) {
		t.Fatalf("Methods() returned %d entries, want %d", len(methods), len(want))
	}
	for i := range want {
		if methods[i] != want[i] {
			t.Errorf("Methods()[%d] = %q, want %q", i, methods[i], want[i])
		}
	}
}

func TestDefaultInterpreter(t *testing.T) {
	cases := map[Method]string{
		MethodDirect: "",
		MethodPython: "python3",
		MethodJava:   "java",
		MethodBash:   "bash",
		MethodCustom: "",
	}
	for m, want := range cases {
		if got := m.DefaultInterpreter(); got != want {
			t.Errorf("%s.DefaultInterpreter() = %q, want %q", m, got, want)
		}
	}
}
