package loader

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every environment variable the editor reads.
const EnvPrefix = "WHISKEY_"

// EnvLoader reads the settings layer that overrides the config file.
type EnvLoader struct {
	prefix  string
	mapping map[string]string // short variable names, e.g. WHISKEY_PALETTE
	lookup  func(string) (string, bool)
	environ func() []string
}

// NewEnvLoader reads the process environment. The prefix includes the
// trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(),
		lookup:  os.LookupEnv,
		environ: os.Environ,
	}
}

// NewEnvLoaderFrom creates a loader reading from a fixed list of
// "KEY=value" entries instead of the process environment.
func NewEnvLoaderFrom(prefix string, env []string) *EnvLoader {
	vars := make(map[string]string, len(env))
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	l := NewEnvLoader(prefix)
	l.lookup = func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
	l.environ = func() []string { return env }
	return l
}

// defaultEnvMapping lists the short variable names and the settings they set.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"WHISKEY_TAB_WIDTH":    "editor.tabWidth",
		"WHISKEY_LINE_NUMBERS": "editor.lineNumbers",
		"WHISKEY_SENTINEL":     "command.sentinel",
		"WHISKEY_PALETTE":      "ui.palette",
		"WHISKEY_LOG_LEVEL":    "logging.level",
		"WHISKEY_LOG_FILE":     "logging.file",
	}
}

// Load returns the WHISKEY_* variables as a config tree. A variable set to
// the empty string overrides the file; only unset variables are skipped.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	// Short names first.
	for env, path := range l.mapping {
		if val, ok := l.lookup(env); ok {
			setByPath(config, path, parseValue(val))
		}
	}

	// Any other WHISKEY_SECTION_KEY_NAME becomes section.keyName.
	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if _, mapped := l.mapping[name]; mapped {
			continue
		}

		setByPath(config, l.envToPath(name), parseValue(value))
	}

	return config, nil
}

// envToPath converts WHISKEY_EDITOR_TAB_WIDTH to editor.tabWidth.
func (l *EnvLoader) envToPath(env string) string {
	parts := strings.Split(strings.TrimPrefix(env, l.prefix), "_")

	section := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return section
	}

	setting := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if part != "" {
			setting += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return section + "." + setting
}

// parseValue turns a variable into the TOML type it stands for: an int,
// a bool, a JSON list or table, or else the string itself. Integers win
// over booleans, so "1" stays 1.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}

	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	// Navigate/create intermediate maps
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}
