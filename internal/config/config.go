package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory when
// no explicit path is given.
const DefaultFileName = "phrasesplit.yaml"

// Config holds the full application configuration.
type Config struct {
	// Where output files go when --output is not given. Empty means next to
	// the input file.
	OutputDir string `yaml:"output_dir"`

	// Suffix appended to the input base name for the phrase output file.
	OutputSuffix string `yaml:"output_suffix"`

	// Write a stats JSON sidecar alongside the phrase output.
	SaveStats bool `yaml:"save_stats"`

	// Copy the result to the system clipboard.
	CopyToClipboard bool `yaml:"copy_to_clipboard"`

	// Write the untouched transcript instead of spaced phrases.
	RawOutput bool `yaml:"raw_output"`
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		OutputDir:       "",
		OutputSuffix:    ".phrases.txt",
		SaveStats:       false,
		CopyToClipboard: false,
		RawOutput:       false,
	}
}

// Load builds the configuration from defaults, then a YAML file, then
// PHRASESPLIT_* environment variables. A missing file is not an error when
// the path was not explicitly requested; fields absent from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// fall through to env overrides on defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	cfg.normalize()
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("PHRASESPLIT_OUTPUT_DIR"); ok {
		cfg.OutputDir = v
	}
	if v, ok := os.LookupEnv("PHRASESPLIT_OUTPUT_SUFFIX"); ok {
		cfg.OutputSuffix = v
	}
	if v, ok := os.LookupEnv("PHRASESPLIT_SAVE_STATS"); ok {
		cfg.SaveStats = parseBool(v, cfg.SaveStats)
	}
	if v, ok := os.LookupEnv("PHRASESPLIT_COPY_TO_CLIPBOARD"); ok {
		cfg.CopyToClipboard = parseBool(v, cfg.CopyToClipboard)
	}
	if v, ok := os.LookupEnv("PHRASESPLIT_RAW_OUTPUT"); ok {
		cfg.RawOutput = parseBool(v, cfg.RawOutput)
	}
}

func parseBool(v string, fallback bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}

func (c *Config) normalize() {
	if c.OutputDir != "" {
		c.OutputDir = filepath.Clean(c.OutputDir)
	}
	c.OutputSuffix = strings.TrimSpace(c.OutputSuffix)
	if c.OutputSuffix == "" {
		c.OutputSuffix = ".phrases.txt"
	}
	if !strings.HasPrefix(c.OutputSuffix, ".") {
		c.OutputSuffix = "." + c.OutputSuffix
	}
}
