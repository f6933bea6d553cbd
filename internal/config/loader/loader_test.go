package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// files is an in-memory FileReader keyed by path.
type files map[string]string

func (f files) ReadFile(path string) ([]byte, error) {
	data, ok := f[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return []byte(data), nil
}

func TestTOMLLoader_Load(t *testing.T) {
	fsys := files{"/whiskey.toml": `
[editor]
tabWidth = 2
autoPairs = ["()", "[]"]

[command]
sentinel = "!"
`}

	config, err := NewTOMLLoader(fsys, "/whiskey.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	editor, ok := config["editor"].(map[string]any)
	if !ok {
		t.Fatal("expected editor to be a map")
	}
	if editor["tabWidth"] != int64(2) {
		t.Errorf("tabWidth = %v (%T), want 2", editor["tabWidth"], editor["tabWidth"])
	}
	if diff := cmp.Diff([]any{"()", "[]"}, editor["autoPairs"]); diff != "" {
		t.Errorf("autoPairs mismatch (-want +got):\n%s", diff)
	}

	command := config["command"].(map[string]any)
	if command["sentinel"] != "!" {
		t.Errorf("sentinel = %v, want !", command["sentinel"])
	}
}

func TestTOMLLoader_MissingFile(t *testing.T) {
	config, err := NewTOMLLoader(files{}, "/nope.toml").Load()
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if config != nil {
		t.Errorf("config = %v, want nil", config)
	}
}

func TestTOMLLoader_EmptyPath(t *testing.T) {
	config, err := NewTOMLLoader(nil, "").Load()
	if err != nil || config != nil {
		t.Errorf("Load() = %v, %v; want nil, nil", config, err)
	}
}

func TestTOMLLoader_ParseError(t *testing.T) {
	fsys := files{"/bad.toml": "[editor]\ntabWidth = = 4\n"}

	_, err := NewTOMLLoader(fsys, "/bad.toml").Load()
	if err == nil {
		t.Fatal("expected parse error")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.File != "/bad.toml" {
		t.Errorf("File = %q, want /bad.toml", perr.File)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
	if !strings.HasPrefix(err.Error(), "/bad.toml:2:") {
		t.Errorf("error %q should start with file and line", err)
	}
}

func TestTOMLLoader_ReadError(t *testing.T) {
	denied := FileReaderFunc(func(string) ([]byte, error) { return nil, fs.ErrPermission })
	_, err := NewTOMLLoader(denied, "/c.toml").Load()
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("Load() = %v, want permission error", err)
	}
}

func TestParseTOML(t *testing.T) {
	config, err := ParseTOML("inline", []byte("[ui]\npalette = \"mono\"\n"))
	if err != nil {
		t.Fatalf("ParseTOML failed: %v", err)
	}
	ui := config["ui"].(map[string]any)
	if ui["palette"] != "mono" {
		t.Errorf("palette = %v, want mono", ui["palette"])
	}
}

func TestMerge(t *testing.T) {
	file := map[string]any{
		"editor": map[string]any{"tabWidth": int64(4), "lineNumbers": true},
		"ui":     map[string]any{"palette": "default"},
	}
	env := map[string]any{
		"editor":  map[string]any{"tabWidth": int64(2)},
		"ui":      "flat",
		"logging": map[string]any{"level": "debug"},
	}

	got := Merge(file, env)
	want := map[string]any{
		"editor":  map[string]any{"tabWidth": int64(2), "lineNumbers": true},
		"ui":      "flat",
		"logging": map[string]any{"level": "debug"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
	if file["editor"].(map[string]any)["tabWidth"] != int64(4) {
		t.Error("Merge modified its input")
	}
}

func TestMerge_Empty(t *testing.T) {
	if got := Merge(); got == nil || len(got) != 0 {
		t.Errorf("Merge() = %v, want empty map", got)
	}
	if got := Merge(nil, map[string]any{"a": int64(1)}, nil); got["a"] != int64(1) {
		t.Errorf("Merge(nil, src, nil) = %v", got)
	}
}
