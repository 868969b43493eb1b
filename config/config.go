// Package config loads game settings from TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/plus3/fieldtris/field"
)

// DefaultPath is where the commands look for a config file when none is given.
const DefaultPath = "~/.config/fieldtris/config.toml"

var ErrInvalid = errors.New("config: invalid")

// Config holds every setting of a game session.
type Config struct {
	Field  FieldConfig  `toml:"field"`
	Window WindowConfig `toml:"window"`

	// Keys maps an action name to the keys bound to it. Actions not listed keep
	// their default bindings.
	Keys map[string][]string `toml:"keys,omitempty"`

	Debug bool `toml:"debug"`
}

type FieldConfig struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	StepMS  int    `toml:"step_ms"`
	Catalog string `toml:"catalog"`
	// Seed for the figure generator; 0 seeds from the clock.
	Seed                uint64 `toml:"seed"`
	EndOnSpawnCollision bool   `toml:"end_on_spawn_collision"`
	CatchUp             bool   `toml:"catch_up"`
}

type WindowConfig struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Title   string `toml:"title"`
	CellGap int    `toml:"cell_gap"`
}

// Default returns the classic 10x15 field at one row per 500ms.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:   field.DefaultWidth,
			Height:  field.DefaultHeight,
			StepMS:  field.DefaultStepMS,
			Catalog: "classic",
		},
		Window: WindowConfig{
			Width:   800,
			Height:  600,
			Title:   "Tetris",
			CellGap: 5,
		},
	}
}

// Load reads the file at path over the defaults. A missing file at
// DefaultPath yields the defaults; a missing file anywhere else is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("expand %s: %w", path, err)
	}

	data, err := os.ReadFile(expanded)
	if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", expanded, err)
	}
	return cfg, nil
}

// Decode parses TOML into cfg and validates the result. Keys absent from
// data keep the values already in cfg.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Save writes cfg as TOML, creating parent directories as needed.
func Save(path string, cfg Config) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("expand %s: %w", path, err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(expanded, data, 0o644)
}

// Validate reports the first setting the engine or hosts cannot use.
func (c Config) Validate() error {
	f := c.Field
	if f.Width < field.FigureSize || f.Height < field.FigureSize {
		return fmt.Errorf("%w: field %dx%d is smaller than a figure", ErrInvalid, f.Width, f.Height)
	}
	if f.StepMS <= 0 {
		return fmt.Errorf("%w: step_ms must be positive, got %d", ErrInvalid, f.StepMS)
	}
	if _, ok := field.CatalogByName(f.Catalog); !ok {
		return fmt.Errorf("%w: unknown catalog %q", ErrInvalid, f.Catalog)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.CellGap < 0 {
		return fmt.Errorf("%w: negative cell_gap", ErrInvalid)
	}
	if _, err := c.Keymap(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Keymap builds the key bindings: the defaults with every action listed in
// Keys rebound to exactly the keys given.
func (c Config) Keymap() (*field.Keymap, error) {
	km := field.DefaultKeymap()

	// sorted so that a key listed under two actions resolves the same way every run
	actions := make([]string, 0, len(c.Keys))
	for name := range c.Keys {
		actions = append(actions, name)
	}
	sort.Strings(actions)

	for _, name := range actions {
		action, err := field.ParseAction(name)
		if err != nil {
			return nil, err
		}
		for _, k := range km.KeysFor(action) {
			km.Bind(k, field.ActionNone)
		}
		for _, keyName := range c.Keys[name] {
			k, err := field.ParseKey(keyName)
			if err != nil {
				return nil, fmt.Errorf("action %s: %w", name, err)
			}
			km.Bind(k, action)
		}
	}
	return km, nil
}

// EngineOptions converts the field settings into engine options.
func (c Config) EngineOptions() (field.Options, error) {
	catalog, ok := field.CatalogByName(c.Field.Catalog)
	if !ok {
		return field.Options{}, fmt.Errorf("%w: unknown catalog %q", ErrInvalid, c.Field.Catalog)
	}
	km, err := c.Keymap()
	if err != nil {
		return field.Options{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	seed := c.Field.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return field.Options{
		Width:               c.Field.Width,
		Height:              c.Field.Height,
		StepMS:              c.Field.StepMS,
		Catalog:             catalog,
		Source:              field.NewSource(seed),
		Keymap:              km,
		EndOnSpawnCollision: c.Field.EndOnSpawnCollision,
		CatchUp:             c.Field.CatchUp,
	}, nil
}
