// Package config resolves runtime settings and the tile list.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"desktiles/internal/infrastructure/errors"
	"desktiles/internal/types"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "DESKTILES"

// Settings are read from DESKTILES_* environment variables only; the field
// names carry no envconfig key so unprefixed variables such as SHELL are ignored.
type Settings struct {
	Config    string
	LogLevel  string `split_words:"true" default:"info"`
	LogFormat string `split_words:"true" default:"json"`
	Shell     string
}

// Load reads Settings from the environment
func Load() (Settings, error) {
	var s Settings
	if err := envconfig.Process(EnvPrefix, &s); err != nil {
		return Settings{}, errors.NewTileError("load_settings", err, errors.ErrCodeConfig)
	}
	return s, nil
}

// File is the on-disk tile list
type File struct {
	Tiles []types.Tile `toml:"tile" yaml:"tiles"`
}

// DefaultPath returns the tile file consulted when none is named
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "desktiles", "tiles.toml")
}

// DefaultTiles is the built-in tile list
func DefaultTiles() []types.Tile {
	return []types.Tile{
		{
			Label:   "Mote",
			Glyph:   "🖥️",
			Command: "ssvncviewer -quality 9 -compresslevel 0 -fullscreen -scale '800x480' 10.1.1.79 & sleep 1 && \"$HOME/mote/home-button.sh\" &",
			X:       50,
			Y:       50,
		},
		{
			Label:   "Chromium",
			Glyph:   "🌐",
			Command: "chromium &",
			X:       230,
			Y:       50,
		},
	}
}

// LoadTiles returns the tile list. An empty path reads DefaultPath if that
// file exists and falls back to DefaultTiles otherwise. A named file must exist.
func LoadTiles(path string) ([]types.Tile, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return DefaultTiles(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return DefaultTiles(), nil
		}
		return nil, errors.NewTileErrorWithContext("load_tiles", err, errors.ErrCodeConfig,
			map[string]string{"path": path})
	}

	tiles, err := ParseTiles(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.NewTileErrorWithContext("load_tiles", err, errors.ErrCodeConfig,
			map[string]string{"path": path})
	}
	return tiles, nil
}

// ParseTiles decodes a tile list. ext selects the format: ".toml", ".yaml" or ".yml".
func ParseTiles(data []byte, ext string) ([]types.Tile, error) {
	var f File

	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys: %v", undecoded)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported tile file format %q", ext)
	}

	if len(f.Tiles) == 0 {
		return nil, fmt.Errorf("no tiles configured")
	}
	return f.Tiles, nil
}
