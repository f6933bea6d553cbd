// Package loader reads the raw layers of the editor configuration: the
// TOML file and the WHISKEY_* environment variables.
//
// Each layer is a map[string]any tree keyed by section and setting name.
// Merge folds the layers together before config decodes the result onto
// its defaults.
package loader

import "os"

// FileReader reads the config file. Tests substitute an in-memory one.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// FileReaderFunc adapts a function to FileReader.
type FileReaderFunc func(path string) ([]byte, error)

// ReadFile calls f.
func (f FileReaderFunc) ReadFile(path string) ([]byte, error) {
	return f(path)
}

// OSReader reads from the operating system.
var OSReader FileReader = FileReaderFunc(os.ReadFile)

// Merge folds layers into a new tree, later layers winning. Tables present
// in several layers are merged key by key; any other value is replaced.
// The inputs are not modified.
func Merge(layers ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, layer := range layers {
		mergeInto(out, layer)
	}
	return out
}

func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		table, isTable := v.(map[string]any)
		if !isTable {
			dst[k] = v
			continue
		}
		existing, ok := dst[k].(map[string]any)
		if !ok {
			existing = make(map[string]any, len(table))
			dst[k] = existing
		}
		mergeInto(existing, table)
	}
}
