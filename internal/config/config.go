package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/whiskey/internal/command"
	"github.com/dshills/whiskey/internal/config/loader"
	"github.com/dshills/whiskey/internal/engine/linebuf"
	"github.com/dshills/whiskey/internal/input/key"
)

// Config holds every editor setting.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Command CommandConfig `toml:"command"`
	Keys    KeysConfig    `toml:"keys"`
	UI      UIConfig      `toml:"ui"`
	Logging LoggingConfig `toml:"logging"`
}

// EditorConfig contains line buffer settings.
type EditorConfig struct {
	// TabWidth is the number of spaces a soft tab inserts.
	TabWidth int `toml:"tabWidth"`
	// AutoPairs lists two-character opener/closer pairs inserted together.
	AutoPairs []string `toml:"autoPairs"`
	// ExpandPairs lists the pairs that drive NewLine indentation.
	ExpandPairs []string `toml:"expandPairs"`
	// LineNumbers shows the gutter.
	LineNumbers bool `toml:"lineNumbers"`
}

// CommandConfig contains console settings.
type CommandConfig struct {
	// Sentinel is the single character marking a directive.
	Sentinel string `toml:"sentinel"`
	// Verbs is the ordered verb table. Order matters: first prefix wins.
	Verbs []string `toml:"verbs"`
}

// KeysConfig holds key specifications as accepted by key.Parse.
type KeysConfig struct {
	Toggle []string `toml:"toggle"`
	Save   []string `toml:"save"`
	Leave  []string `toml:"leave"`
}

// UIConfig contains rendering settings.
type UIConfig struct {
	// Palette selects an entry of Palettes.
	Palette  string                   `toml:"palette"`
	Palettes map[string]PaletteConfig `toml:"palettes"`
}

// PaletteConfig is a set of hex colors. Empty entries fall back to the
// default palette.
type PaletteConfig struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Gutter     string `toml:"gutter"`
	Accent     string `toml:"accent"`
}

// LoggingConfig contains log output settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// File receives log lines. Logging is disabled when empty.
	File string `toml:"file"`
}

// DefaultPaletteName is the palette selected when none is configured.
const DefaultPaletteName = "default"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth:    linebuf.DefaultTabWidth,
			AutoPairs:   []string{"()", "[]", "{}", `""`, "''"},
			ExpandPairs: []string{"{}"},
			LineNumbers: true,
		},
		Command: CommandConfig{
			Sentinel: string(command.DefaultSentinel),
			Verbs:    slices.Clone(command.DefaultVerbs),
		},
		Keys: KeysConfig{
			Toggle: []string{"Ctrl+Space", "Ctrl+T"},
			Save:   []string{"Ctrl+S"},
			Leave:  []string{"Escape"},
		},
		UI: UIConfig{
			Palette: DefaultPaletteName,
			Palettes: map[string]PaletteConfig{
				DefaultPaletteName: {
					Foreground: "#d0d0d0",
					Background: "#000000",
					Gutter:     "#6c6c6c",
					Accent:     "#ffffff",
				},
				"solarized": {
					Foreground: "#839496",
					Background: "#002b36",
					Gutter:     "#586e75",
					Accent:     "#b58900",
				},
				"paper": {
					Foreground: "#222222",
					Background: "#f5f5f0",
					Gutter:     "#a0a0a0",
					Accent:     "#005f87",
				},
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the user configuration file path, or "" when the
// user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "whiskey", "config.toml")
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	fs  loader.FileReader
	env []string
}

// WithFileSystem reads the config file through fsys.
func WithFileSystem(fsys loader.FileReader) LoadOption {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnviron replaces the process environment with env ("KEY=value").
func WithEnviron(env []string) LoadOption {
	return func(o *loadOptions) {
		o.env = env
	}
}

// Load reads the TOML file at path, overlays WHISKEY_* environment
// variables and validates the result. A missing file is not an error.
func Load(path string, opts ...LoadOption) (*Config, error) {
	o := loadOptions{fs: loader.OSReader}
	for _, opt := range opts {
		opt(&o)
	}

	fileData, err := loader.NewTOMLLoader(o.fs, path).Load()
	if err != nil {
		return nil, err
	}

	var envLoader *loader.EnvLoader
	if o.env != nil {
		envLoader = loader.NewEnvLoaderFrom(loader.EnvPrefix, o.env)
	} else {
		envLoader = loader.NewEnvLoader(loader.EnvPrefix)
	}
	envData, err := envLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg, err := decode(loader.Merge(fileData, envData))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode applies a merged raw map on top of the defaults.
func decode(data map[string]any) (*Config, error) {
	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}
	raw, err := toml.Marshal(data)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting and returns ValidationErrors listing all
// failures.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		add("editor.tabWidth", "must be between 1 and 16", c.Editor.TabWidth)
	}
	if _, err := parsePairs(c.Editor.AutoPairs); err != nil {
		add("editor.autoPairs", err.Error(), nil)
	}
	if _, err := parsePairs(c.Editor.ExpandPairs); err != nil {
		add("editor.expandPairs", err.Error(), nil)
	}

	if utf8.RuneCountInString(c.Command.Sentinel) != 1 {
		add("command.sentinel", "must be a single character", c.Command.Sentinel)
	}
	if table, err := command.NewTable(c.Command.Verbs...); err != nil {
		add("command.verbs", err.Error(), nil)
	} else if err := table.CheckBuiltins(); err != nil {
		add("command.verbs", err.Error(), nil)
	}

	for name, specs := range map[string][]string{
		"keys.toggle": c.Keys.Toggle,
		"keys.save":   c.Keys.Save,
		"keys.leave":  c.Keys.Leave,
	} {
		for _, spec := range specs {
			if _, err := key.Parse(spec); err != nil {
				add(name, err.Error(), spec)
			}
		}
	}

	if _, ok := c.UI.Palettes[c.UI.Palette]; !ok {
		add("ui.palette", ErrUnknownPalette.Error(), c.UI.Palette)
	}
	for name, p := range c.UI.Palettes {
		for field, hex := range p.colors() {
			if hex == "" {
				continue
			}
			if _, err := colorful.Hex(hex); err != nil {
				add("ui.palettes."+name+"."+field, "invalid color", hex)
			}
		}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		add("logging.level", "must be debug, info, warn or error", c.Logging.Level)
	}

	if len(errs) == 0 {
		return nil
	}
	slices.SortFunc(errs, func(a, b *ValidationError) int {
		return strings.Compare(a.Path, b.Path)
	})
	return errs
}

// Warnings reports settings that are valid but probably unintended.
func (c *Config) Warnings() []string {
	var out []string
	table, err := command.NewTable(c.Command.Verbs...)
	if err != nil {
		return nil
	}
	for _, v := range table.Shadowed() {
		out = append(out, fmt.Sprintf("command.verbs: %q is unreachable, an earlier verb is a prefix of it", v.Name))
	}
	return out
}

func (p PaletteConfig) colors() map[string]string {
	return map[string]string{
		"foreground": p.Foreground,
		"background": p.Background,
		"gutter":     p.Gutter,
		"accent":     p.Accent,
	}
}

// AutoPairMap returns the auto-pair table. Invalid entries are skipped.
func (e EditorConfig) AutoPairMap() map[rune]rune {
	m, _ := parsePairs(e.AutoPairs)
	return m
}

// ExpandPairMap returns the brace expansion table. Invalid entries are skipped.
func (e EditorConfig) ExpandPairMap() map[rune]rune {
	m, _ := parsePairs(e.ExpandPairs)
	return m
}

// BufferOptions converts the editor settings into line buffer options.
func (e EditorConfig) BufferOptions() []linebuf.Option {
	return []linebuf.Option{
		linebuf.WithTabWidth(e.TabWidth),
		linebuf.WithAutoPairs(e.AutoPairMap()),
		linebuf.WithExpandPairs(e.ExpandPairMap()),
	}
}

// SentinelRune returns the directive sentinel, or command.DefaultSentinel
// when unset.
func (c CommandConfig) SentinelRune() rune {
	r, size := utf8.DecodeRuneInString(c.Sentinel)
	if size == 0 || r == utf8.RuneError {
		return command.DefaultSentinel
	}
	return r
}

// Parser builds the command parser described by the settings. The table
// must start with the built-in verbs.
func (c CommandConfig) Parser() (*command.Parser, error) {
	table, err := command.NewTable(c.Verbs...)
	if err != nil {
		return nil, err
	}
	if err := table.CheckBuiltins(); err != nil {
		return nil, err
	}
	return command.NewParser(table, c.SentinelRune()), nil
}

// Bindings parses a list of key specifications.
func Bindings(specs []string) ([]key.Event, error) {
	events := make([]key.Event, 0, len(specs))
	for _, spec := range specs {
		ev, err := key.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", spec, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// parsePairs converts two-character strings into an opener to closer map.
// It returns the valid pairs along with an error naming the first bad one.
func parsePairs(pairs []string) (map[rune]rune, error) {
	m := make(map[rune]rune, len(pairs))
	var firstErr error
	for _, p := range pairs {
		runes := []rune(p)
		if len(runes) != 2 {
			if firstErr == nil {
				firstErr = fmt.Errorf("pair %q must have exactly two characters", p)
			}
			continue
		}
		m[runes[0]] = runes[1]
	}
	return m, firstErr
}
