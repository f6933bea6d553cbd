package loader

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnvLoader_MappedVariables(t *testing.T) {
	l := NewEnvLoaderFrom(EnvPrefix, []string{
		"WHISKEY_TAB_WIDTH=1",
		"WHISKEY_SENTINEL=!",
		"WHISKEY_LOG_LEVEL=debug",
		"WHISKEY_LINE_NUMBERS=off",
		"HOME=/root",
	})

	got, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := map[string]any{
		"editor":  map[string]any{"tabWidth": int64(1), "lineNumbers": false},
		"command": map[string]any{"sentinel": "!"},
		"logging": map[string]any{"level": "debug"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvLoader_UnmappedVariables(t *testing.T) {
	l := NewEnvLoaderFrom(EnvPrefix, []string{
		`WHISKEY_COMMAND_VERBS=["cd","wf"]`,
		"WHISKEY_UI_PALETTES_NAME=x",
	})

	got, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	command := got["command"].(map[string]any)
	if diff := cmp.Diff([]any{"cd", "wf"}, command["verbs"]); diff != "" {
		t.Errorf("verbs mismatch (-want +got):\n%s", diff)
	}
	ui := got["ui"].(map[string]any)
	if ui["palettesName"] != "x" {
		t.Errorf("ui = %v, want palettesName", ui)
	}
}

func TestEnvToPath(t *testing.T) {
	l := NewEnvLoader(EnvPrefix)
	tests := []struct {
		env  string
		want string
	}{
		{"WHISKEY_EDITOR", "editor"},
		{"WHISKEY_EDITOR_TAB_WIDTH", "editor.tabWidth"},
		{"WHISKEY_COMMAND_VERBS", "command.verbs"},
		{"WHISKEY_LOGGING_FILE", "logging.file"},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := l.envToPath(tt.env); got != tt.want {
				t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"1", int64(1)},
		{"0", int64(0)},
		{"-3", int64(-3)},
		{"true", true},
		{"Yes", true},
		{"off", false},
		{"debug", "debug"},
		{`["a"]`, []any{"a"}},
		{"[broken", "[broken"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, parseValue(tt.in)); diff != "" {
				t.Errorf("parseValue(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}
