package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the search tool.
type Config struct {
	Index   IndexConfig   `yaml:"index"`
	Query   QueryConfig   `yaml:"query"`
	Logging LoggingConfig `yaml:"logging"`
}

// IndexConfig holds indexing configuration.
type IndexConfig struct {
	DocsFile       string   `yaml:"docs_file"`
	NoiseWordsFile string   `yaml:"noise_words_file"`
	Includes       []string `yaml:"includes"`
	Excludes       []string `yaml:"excludes"`
}

// QueryConfig holds query configuration.
type QueryConfig struct {
	Limit int `yaml:"limit"` // maximum documents per query result
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Index: IndexConfig{
			DocsFile:       "docs.txt",
			NoiseWordsFile: "noisewords.txt",
			Includes:       []string{"**/*.txt", "**/*.md"},
			Excludes:       []string{"**/.kwsearch/**"},
		},
		Query: QueryConfig{
			Limit: 5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for kwsearch.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "kwsearch.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".kwsearch", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// IndexDBPath returns the path to the index snapshot database.
func IndexDBPath(dir string) string {
	return filepath.Join(dir, ".kwsearch", "index.db")
}

// EnsureDataDir ensures the .kwsearch directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".kwsearch"), 0755)
}
