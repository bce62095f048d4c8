// Package config loads the tool's settings: where the source data and stats
// live and how large a daily session may grow. Everything has a default; a
// config file is optional.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the resolved settings.
type Config struct {
	// DataDir holds the source data, stats files and session ledger.
	DataDir string `mapstructure:"data_dir"`
	// VocabularyFile, VerbsFile and GrammarDir are resolved against DataDir
	// unless absolute.
	VocabularyFile string `mapstructure:"vocabulary_file"`
	VerbsFile      string `mapstructure:"verbs_file"`
	GrammarDir     string `mapstructure:"grammar_dir"`
	// MaxItems bounds the session size; MaxNew bounds never-reviewed items
	// per session.
	MaxItems int `mapstructure:"max_items"`
	MaxNew   int `mapstructure:"max_new"`
}

// Load reads the config file (explicit path, or ~/.french-flashcards.yaml if
// present) over the defaults. No file at all is fine.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("vocabulary_file", "master_vocabulary.csv")
	v.SetDefault("verbs_file", "verbs.json")
	v.SetDefault("grammar_dir", "grammar")
	v.SetDefault("max_items", 60)
	v.SetDefault("max_new", 10)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cannot read config file %s: %w", cfgFile, err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName(".french-flashcards")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("cannot read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot decode config: %w", err)
	}
	return &cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".french-flashcards"
	}
	return filepath.Join(home, ".french-flashcards")
}

// VocabularyPath returns the vocabulary CSV location.
func (c *Config) VocabularyPath() string { return c.resolve(c.VocabularyFile) }

// VerbsPath returns the verb table location.
func (c *Config) VerbsPath() string { return c.resolve(c.VerbsFile) }

// GrammarPath returns the grammar topic directory.
func (c *Config) GrammarPath() string { return c.resolve(c.GrammarDir) }

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.DataDir, path)
}
