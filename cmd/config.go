package cmd

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the application settings. Precedence, lowest to highest:
// built-in defaults, the YAML config file, ATLAS_* environment variables.
type Config struct {
	DataDir     string `koanf:"data_dir"`     // where friends.json and properties.json live
	GeocoderURL string `koanf:"geocoder_url"` // Nominatim-compatible search endpoint
	Currency    string `koanf:"currency"`     // ISO 4217 code for displaying property costs
}

var configFile = flag.String("config", "", "Path to the YAML config file (defaults to $HOME/.config/atlas.yaml)")

var appConfig = sync.OnceValue(func() Config {
	cfg := Config{
		DataDir:  defaultDataDir(),
		Currency: "EUR",
		// GeocoderURL defaults inside the geo package.
	}

	k := koanf.New(".")
	path := *configFile
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".config", "atlas.yaml")
		}
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			log.Printf("warning, cannot read config file %q (using defaults): %v", path, err)
		} else if err := k.Unmarshal("", &cfg); err != nil {
			log.Printf("warning, cannot parse config file %q (using defaults): %v", path, err)
		}
	}

	if v := os.Getenv("ATLAS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("ATLAS_GEOCODER_URL"); v != "" {
		cfg.GeocoderURL = v
	}
	if v := os.Getenv("ATLAS_CURRENCY"); v != "" {
		cfg.Currency = v
	}
	return cfg
})

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".atlas"
	}
	return filepath.Join(home, ".atlas")
}
