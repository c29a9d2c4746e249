package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds run option defaults loaded from the config file.
type Config struct {
	// OutputDir is the default artifact directory.
	OutputDir string `toml:"output_dir"`

	// TopN is the default ranking cutoff.
	TopN int `toml:"top_n"`

	// MinBigramFreq is the default bigram frequency threshold.
	MinBigramFreq int `toml:"min_bigram_freq"`

	// ExtraStopwords extends the base stopword set for every run.
	ExtraStopwords []string `toml:"extra_stopwords"`

	// FontPath is the TTF font used for word-cloud rendering.
	// Empty disables image output.
	FontPath string `toml:"font_path"`

	// StripReferences enables bibliography stripping by default.
	StripReferences bool `toml:"strip_references"`

	// Bigrams enables bigram counting by default.
	Bigrams bool `toml:"bigrams"`
}

// Default returns the built-in configuration defaults.
func Default() Config {
	return Config{
		OutputDir:     "output",
		TopN:          100,
		MinBigramFreq: 3,
	}
}

// DefaultPath returns the standard config file location,
// ~/.lexfreq/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".lexfreq", "config.toml"), nil
}

// Load reads the config file at path, or the default location when
// path is empty. A missing file returns the built-in defaults without
// error; a malformed file returns an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the config as TOML to path, creating the parent
// directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
