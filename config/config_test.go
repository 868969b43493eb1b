package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/fieldtris/config"
	"github.com/plus3/fieldtris/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Field.Width)
	assert.Equal(t, 15, cfg.Field.Height)
	assert.Equal(t, 500, cfg.Field.StepMS)
	assert.False(t, cfg.Field.EndOnSpawnCollision)
	assert.False(t, cfg.Field.CatchUp)
}

func TestDecode(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		cfg := config.Default()
		err := config.Decode([]byte(`
[field]
catalog = "standard"
seed = 7
end_on_spawn_collision = true
`), &cfg)
		require.NoError(t, err)
		assert.Equal(t, "standard", cfg.Field.Catalog)
		assert.Equal(t, uint64(7), cfg.Field.Seed)
		assert.True(t, cfg.Field.EndOnSpawnCollision)
		assert.Equal(t, 10, cfg.Field.Width)
		assert.Equal(t, "Tetris", cfg.Window.Title)
	})

	t.Run("unknown key", func(t *testing.T) {
		cfg := config.Default()
		err := config.Decode([]byte("[field]\ncolour = \"red\"\n"), &cfg)
		assert.Error(t, err)
	})

	t.Run("field too small", func(t *testing.T) {
		cfg := config.Default()
		err := config.Decode([]byte("[field]\nwidth = 3\n"), &cfg)
		assert.ErrorIs(t, err, config.ErrInvalid)
	})

	t.Run("unknown catalog", func(t *testing.T) {
		cfg := config.Default()
		err := config.Decode([]byte("[field]\ncatalog = \"pentomino\"\n"), &cfg)
		assert.ErrorIs(t, err, config.ErrInvalid)
	})

	t.Run("bad key binding", func(t *testing.T) {
		cfg := config.Default()
		err := config.Decode([]byte("[keys]\nleft = [\"ctrl+a\"]\n"), &cfg)
		assert.ErrorIs(t, err, config.ErrInvalid)
	})
}

func TestKeymap(t *testing.T) {
	cfg := config.Default()
	cfg.Keys = map[string][]string{
		"left":      {"j"},
		"hard_drop": {"k", "e"},
	}
	km, err := cfg.Keymap()
	require.NoError(t, err)

	assert.Equal(t, field.ActionMoveLeft, km.Lookup('j'))
	assert.Equal(t, field.ActionNone, km.Lookup('a'))
	assert.Equal(t, field.ActionNone, km.Lookup(field.KeyLeft))
	assert.Equal(t, field.ActionHardDrop, km.Lookup('k'))
	assert.Equal(t, field.ActionHardDrop, km.Lookup('e'))
	assert.Equal(t, field.ActionNone, km.Lookup(field.KeySpace))
	assert.Equal(t, field.ActionMoveRight, km.Lookup('d'), "unlisted actions keep defaults")

	cfg.Keys = map[string][]string{"jump": {"j"}}
	_, err = cfg.Keymap()
	assert.Error(t, err)
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := config.Default()
	cfg.Field.Catalog = "standard"
	cfg.Field.StepMS = 250
	cfg.Window.Title = "Falling"
	cfg.Keys = map[string][]string{"rotate_cw": {"up", "x"}}
	require.NoError(t, config.Save(path, cfg))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	_, err = config.Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("not toml ["), 0o644))
	_, err = config.Load(path)
	assert.Error(t, err)
}

func TestEngineOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Field.Catalog = "standard"
	cfg.Field.Seed = 3
	cfg.Field.CatchUp = true

	opts, err := cfg.EngineOptions()
	require.NoError(t, err)
	assert.Equal(t, field.StandardCatalog, opts.Catalog)
	assert.True(t, opts.CatchUp)

	e, err := field.New(opts)
	require.NoError(t, err)
	assert.Equal(t, cfg.Field.Width, e.Width())
	assert.Equal(t, 2, e.Advance(1000))
}
