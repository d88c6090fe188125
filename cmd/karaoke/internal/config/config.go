// Package config provides the configuration system for the karaoke CLI.
//
// Configuration lives in a single YAML file under os.UserConfigDir():
//
//	~/Library/Application Support/karaoke/config.yaml   (macOS)
//	~/.config/karaoke/config.yaml                       (Linux)
//	%AppData%/karaoke/config.yaml                       (Windows)
//
// A missing file yields the defaults: a local store under the user cache
// directory, file-backed caches, and the OPENAI_API_KEY environment
// variable for transcription.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const (
	// appDir is the directory name under os.UserConfigDir().
	appDir = "karaoke"

	// configFile is the YAML file name inside the app directory.
	configFile = "config.yaml"
)

// Config holds the CLI configuration.
type Config struct {
	// WorkDir is the root of the local artifact store: voice clips,
	// combined takes, reference tracks, and file-backed caches.
	WorkDir string `yaml:"work_dir"`

	// Cache selects the feature/transcript cache backend.
	Cache CacheConfig `yaml:"cache"`

	// Speech configures the transcription engine.
	Speech SpeechConfig `yaml:"speech"`

	// S3, when set, replaces the local work directory with an S3 bucket.
	S3 *S3Config `yaml:"s3,omitempty"`

	// Path is the file this configuration was loaded from. Not serialized.
	Path string `yaml:"-"`
}

// CacheConfig selects and locates the cache backend.
type CacheConfig struct {
	// Backend is "files" (JSON and text under the work dir) or "badger"
	// (a single BadgerDB holding both caches).
	Backend string `yaml:"backend"`

	// Dir is the BadgerDB directory. Defaults to <work_dir>/cache.
	Dir string `yaml:"dir,omitempty"`
}

// SpeechConfig configures the Whisper transcription client.
type SpeechConfig struct {
	// APIKey authenticates against the API. Falls back to the
	// OPENAI_API_KEY environment variable when empty.
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL overrides the API endpoint, e.g. for a local server.
	BaseURL string `yaml:"base_url,omitempty"`

	// Model overrides the transcription model.
	Model string `yaml:"model,omitempty"`
}

// S3Config configures an S3-compatible artifact store.
type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix,omitempty"`
	Region   string `yaml:"region,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{
		Cache: CacheConfig{Backend: "files"},
	}
	if cache, err := os.UserCacheDir(); err == nil {
		cfg.WorkDir = filepath.Join(cache, appDir)
	} else {
		cfg.WorkDir = appDir
	}
	return cfg
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, configFile), nil
}

// Load loads the configuration from the default location. A missing file
// is not an error; defaults are returned.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.Path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = Default().WorkDir
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "files"
	}
	return cfg, nil
}

// Save writes the configuration to its path, creating parent directories.
func (c *Config) Save() error {
	if c.Path == "" {
		path, err := DefaultPath()
		if err != nil {
			return err
		}
		c.Path = path
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.Path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(c.Path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", c.Path, err)
	}
	return nil
}

// APIKey resolves the transcription API key from the config or environment.
func (c *Config) APIKey() string {
	if c.Speech.APIKey != "" {
		return c.Speech.APIKey
	}
	return os.Getenv("OPENAI_API_KEY")
}

// CacheDir returns the BadgerDB directory, defaulting under the work dir.
func (c *Config) CacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	return filepath.Join(c.WorkDir, "cache")
}
