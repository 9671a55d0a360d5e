package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the config file path relative to the project root.
var FileName = filepath.Join(".husky", "husky.toml")

// Header holds the provenance header strings.
type Header struct {
	Version  string `toml:"version"`
	Homepage string `toml:"homepage"`
}

// Config holds the husky configuration.
type Config struct {
	Header Header `toml:"header"`
}

// Default returns the configuration used when no file is present.
// The version is the build's version string; the homepage is the
// project repository.
func Default(version string) Config {
	return Config{
		Header: Header{
			Version:  version,
			Homepage: "https://github.com/pplmx/husky-rs",
		},
	}
}

// Load reads the config file under projectRoot, falling back to
// Default(version) when the file does not exist. Fields left empty in
// the file keep their defaults. An invalid file is an error.
func Load(projectRoot, version string) (Config, error) {
	cfg := Default(version)

	path := filepath.Join(projectRoot, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.Header.Version != "" {
		cfg.Header.Version = file.Header.Version
	}
	if file.Header.Homepage != "" {
		cfg.Header.Homepage = file.Header.Homepage
	}
	return cfg, nil
}
