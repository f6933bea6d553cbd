// Package config provides the configuration system for Whiskey.
//
// Settings are read from a TOML file and overlaid with WHISKEY_*
// environment variables:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← Highest priority
//	├─────────────────────────────┤
//	│  2. Config File (TOML)      │  ← -config flag or ~/.config/whiskey/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The raw sources are merged with loader.Merge and decoded onto
// Default(), so a file only needs to name the settings it changes.
//
// # Basic Usage
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//	buf := linebuf.New(cfg.Editor.BufferOptions()...)
//
// # Sub-packages
//
//   - loader: TOML file and environment variable loading, Merge
package config
