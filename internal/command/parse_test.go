package command

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveDefaultTable(t *testing.T) {
	p := NewParser(nil, 0)

	tests := []struct {
		input string
		want  Code
	}{
		{"?cd", CodeChangeDir},
		{"?wf", CodeWriteFile},
		{"?rf old.txt", CodeDeleteFile},
		{"?e", CodeExit},
		{"?p solarized", CodePalette},
		{"?l 42", CodeGoToLine},
		{"?xx", CodeUnknown},
		{"?", CodeUnknown},
		{"main.rs", CodeFileHandle},
		{"main.rs -w", CodeFileHandle},
		{"", CodeFileHandle},
		{" ?wf", CodeFileHandle},
	}

	for _, tt := range tests {
		if got := p.Resolve(tt.input); got != tt.want {
			t.Errorf("Resolve(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestResolveIsPrefixMatch(t *testing.T) {
	p := NewParser(nil, 0)

	// "exit" starts with "e", "list" with "l": prefix matching, not equality.
	tests := []struct {
		input string
		want  Code
	}{
		{"?exit", CodeExit},
		{"?list", CodeGoToLine},
		{"?wfoo", CodeWriteFile},
		{"?cdrom", CodeChangeDir},
	}

	for _, tt := range tests {
		if got := p.Resolve(tt.input); got != tt.want {
			t.Errorf("Resolve(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestResolveFirstPrefixWins(t *testing.T) {
	table, err := NewTable("w", "wf", "x")
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	p := NewParser(table, '?')

	if got := p.Resolve("?wf"); got != 0 {
		t.Errorf("Resolve(?wf) = %d, want 0 (earlier verb \"w\" shadows \"wf\")", got)
	}

	reordered, err := NewTable("wf", "w", "x")
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	p = NewParser(reordered, '?')

	if got := p.Resolve("?wf"); got != 0 {
		t.Errorf("Resolve(?wf) = %d, want 0", got)
	}
	if got := p.Resolve("?w"); got != 1 {
		t.Errorf("Resolve(?w) = %d, want 1", got)
	}
}

func TestResolveCustomSentinel(t *testing.T) {
	p := NewParser(nil, ':')

	if got := p.Resolve(":wf"); got != CodeWriteFile {
		t.Errorf("Resolve(:wf) = %v, want write-file", got)
	}
	if got := p.Resolve("?wf"); got != CodeFileHandle {
		t.Errorf("Resolve(?wf) = %v, want file-handle", got)
	}
}

func TestResolveSentinelRun(t *testing.T) {
	p := NewParser(nil, 0)

	if got := p.Resolve("??wf"); got != CodeWriteFile {
		t.Errorf("Resolve(??wf) = %v, want write-file", got)
	}
}

func TestParse(t *testing.T) {
	p := NewParser(nil, 0)

	tests := []struct {
		input string
		want  Directive
	}{
		{"?rf  notes.txt ", Directive{Code: CodeDeleteFile, Verb: "rf", Arg: "notes.txt", Raw: "?rf  notes.txt "}},
		{"?l12", Directive{Code: CodeGoToLine, Verb: "l", Arg: "12", Raw: "?l12"}},
		{"?wf", Directive{Code: CodeWriteFile, Verb: "wf", Raw: "?wf"}},
		{"?zz top", Directive{Code: CodeUnknown, Raw: "?zz top"}},
		{"main.go -w", Directive{Code: CodeFileHandle, Arg: "main.go -w", Raw: "main.go -w"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, p.Parse(tt.input)); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestNewTableErrors(t *testing.T) {
	tests := []struct {
		name  string
		verbs []string
		want  error
	}{
		{"empty", nil, ErrEmptyTable},
		{"blank verb", []string{"cd", ""}, ErrInvalidVerb},
		{"spaced verb", []string{"w f"}, ErrInvalidVerb},
		{"duplicate", []string{"cd", "wf", "cd"}, ErrDuplicateVerb},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.verbs...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewTable(%q) error = %v, want %v", tt.verbs, err, tt.want)
			}
		})
	}
}

func TestTableAccessors(t *testing.T) {
	table := DefaultTable()

	if table.Len() != 6 {
		t.Errorf("Len() = %d, want 6", table.Len())
	}
	if table.Name(CodeDeleteFile) != "rf" {
		t.Errorf("Name(delete-file) = %q, want rf", table.Name(CodeDeleteFile))
	}
	if table.Name(CodeUnknown) != "" || table.Name(Code(17)) != "" {
		t.Error("Name should be empty for codes outside the table")
	}

	verbs := table.Verbs()
	for i, v := range verbs {
		if v.Code != Code(i) || v.Name != DefaultVerbs[i] {
			t.Errorf("Verbs()[%d] = %+v", i, v)
		}
	}
	verbs[0].Name = "mutated"
	if table.Name(0) != "cd" {
		t.Error("Verbs should return a copy")
	}
}

func TestTableCheckBuiltins(t *testing.T) {
	tests := []struct {
		name  string
		verbs []string
		ok    bool
	}{
		{"default", DefaultVerbs, true},
		{"appended", append(slices.Clone(DefaultVerbs), "zz"), true},
		{"reordered", []string{"cd", "wf", "rf", "p", "e", "l"}, false},
		{"renamed", []string{"cd", "wf", "rf", "q", "p", "l"}, false},
		{"short", []string{"cd", "wf"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.verbs...)
			if err != nil {
				t.Fatalf("NewTable: %v", err)
			}
			err = table.CheckBuiltins()
			if tt.ok && err != nil {
				t.Errorf("CheckBuiltins() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrBuiltinMoved) {
				t.Errorf("CheckBuiltins() = %v, want ErrBuiltinMoved", err)
			}
		})
	}
}

func TestTableShadowed(t *testing.T) {
	if got := DefaultTable().Shadowed(); len(got) != 0 {
		t.Errorf("default table should have no shadowed verbs, got %v", got)
	}

	table, err := NewTable("e", "edit", "l", "ls", "wf")
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	want := []Verb{{Name: "edit", Code: 1}, {Name: "ls", Code: 3}}
	if diff := cmp.Diff(want, table.Shadowed()); diff != "" {
		t.Errorf("Shadowed() mismatch (-want +got):\n%s", diff)
	}
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnknown, "unknown"},
		{CodeSwitchAndSave, "switch-and-save"},
		{CodeSwitchFile, "switch-file"},
		{CodeFileHandle, "file-handle"},
		{CodeChangeDir, "change-dir"},
		{CodeWriteFile, "write-file"},
		{CodeDeleteFile, "delete-file"},
		{CodeExit, "exit"},
		{CodePalette, "palette"},
		{CodeGoToLine, "go-to-line"},
		{Code(9), "verb-9"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Code(%d).String() = %q, want %q", int(tt.code), got, tt.want)
		}
	}
}

func TestCodeValues(t *testing.T) {
	// Codes are a dispatch contract; their values must not drift.
	want := map[Code]int{
		CodeUnknown:       -4,
		CodeSwitchAndSave: -3,
		CodeSwitchFile:    -2,
		CodeFileHandle:    -1,
		CodeChangeDir:     0,
		CodeWriteFile:     1,
		CodeDeleteFile:    2,
		CodeExit:          3,
		CodePalette:       4,
		CodeGoToLine:      5,
	}
	for code, v := range want {
		if int(code) != v {
			t.Errorf("%s = %d, want %d", code, int(code), v)
		}
		if code.IsVerb() != (v >= 0) {
			t.Errorf("%s.IsVerb() = %v", code, code.IsVerb())
		}
	}
}
