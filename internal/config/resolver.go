package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ytget/dataset-viewer/internal/profile"
)

// Environment variables read by ResolveConfig
const (
	EnvProfile      = "DATASET_VIEWER_PROFILE"
	EnvSourceURL    = "DATASET_VIEWER_SOURCE_URL"
	EnvFetchTimeout = "DATASET_VIEWER_FETCH_TIMEOUT"
	EnvLogLevel     = "DATASET_VIEWER_LOG_LEVEL"
)

type ValueSource string

const (
	SourceUnknown ValueSource = "unknown"
	SourceConfig  ValueSource = "config"
	SourceEnv     ValueSource = "env"
	SourceCLI     ValueSource = "cli"
	SourceDefault ValueSource = "default"
)

// ResolvedValue is a configuration value with the place it came from
type ResolvedValue struct {
	Value  string      `json:"value"`
	Source ValueSource `json:"source"`
	From   string      `json:"from,omitempty"`
}

// ResolveOptions carries CLI overrides and fallbacks
type ResolveOptions struct {
	ConfigPath string

	// DefaultProfile is used when nothing else names a profile
	DefaultProfile string

	CLIProfile      string
	CLISourceURL    string
	CLIFetchTimeout string
	CLILogLevel     string
}

// ResolvedConfig is the merged configuration: built-in defaults, then the
// YAML file, then the environment, then CLI flags.
type ResolvedConfig struct {
	ConfigPath string `json:"config_path"`

	Profile      ResolvedValue `json:"profile"`
	SourceURL    ResolvedValue `json:"source_url"`
	FetchTimeout ResolvedValue `json:"fetch_timeout"`
	LogLevel     ResolvedValue `json:"log_level"`
}

type fileConfig struct {
	Profile      string            `yaml:"profile"`
	FetchTimeout string            `yaml:"fetch_timeout"`
	LogLevel     string            `yaml:"log_level"`
	Sources      map[string]string `yaml:"sources"`
}

// DefaultConfigPath returns ~/.dataset-viewer/config.yaml
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".dataset-viewer", "config.yaml")
}

// LoadEnvFile loads variables from a .env file without overriding the
// environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ResolveConfig merges all configuration sources
func ResolveConfig(opts ResolveOptions) (ResolvedConfig, error) {
	path := strings.TrimSpace(opts.ConfigPath)
	if path == "" {
		path = DefaultConfigPath()
	}

	out := ResolvedConfig{ConfigPath: path}

	defaultProfile := firstNonEmpty(opts.DefaultProfile, DefaultProfile)
	out.Profile = ResolvedValue{Value: defaultProfile, Source: SourceDefault, From: "built-in default"}
	out.FetchTimeout = ResolvedValue{
		Value:  strconv.Itoa(DefaultFetchTimeout) + "s",
		Source: SourceDefault,
		From:   "built-in default",
	}
	out.LogLevel = ResolvedValue{Value: "info", Source: SourceDefault, From: "built-in default"}

	cfg, err := loadConfig(path)
	if err != nil {
		return out, err
	}

	if cfg != nil {
		apply(&out.Profile, cfg.Profile, SourceConfig, path)
		apply(&out.FetchTimeout, cfg.FetchTimeout, SourceConfig, path)
		apply(&out.LogLevel, cfg.LogLevel, SourceConfig, path)
	}

	applyEnv(&out.Profile, EnvProfile)
	apply(&out.Profile, opts.CLIProfile, SourceCLI, "--profile")

	p, err := profile.Lookup(out.Profile.Value)
	if err != nil {
		return out, fmt.Errorf("profile from %s: %w", out.Profile.Source, err)
	}
	out.Profile.Value = p.Name

	// The source URL depends on the final profile
	out.SourceURL = ResolvedValue{Value: p.SourceURL, Source: SourceDefault, From: "profile " + p.Name}
	if cfg != nil {
		apply(&out.SourceURL, cfg.Sources[p.Name], SourceConfig, path)
	}
	applyEnv(&out.SourceURL, EnvSourceURL)
	apply(&out.SourceURL, opts.CLISourceURL, SourceCLI, "--source")

	applyEnv(&out.FetchTimeout, EnvFetchTimeout)
	apply(&out.FetchTimeout, opts.CLIFetchTimeout, SourceCLI, "--timeout")
	if _, err := ParseTimeout(out.FetchTimeout.Value); err != nil {
		return out, fmt.Errorf("fetch timeout from %s: %w", out.FetchTimeout.Source, err)
	}

	applyEnv(&out.LogLevel, EnvLogLevel)
	apply(&out.LogLevel, opts.CLILogLevel, SourceCLI, "--log-level")

	return out, nil
}

// Timeout returns the resolved fetch timeout
func (r ResolvedConfig) Timeout() time.Duration {
	d, err := ParseTimeout(r.FetchTimeout.Value)
	if err != nil {
		return time.Duration(DefaultFetchTimeout) * time.Second
	}
	return d
}

// ParseTimeout accepts a Go duration ("45s", "2m") or a number of seconds,
// clamped to [MinFetchTimeout, MaxFetchTimeout] seconds.
func ParseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	var d time.Duration
	if secs, err := strconv.Atoi(raw); err == nil {
		d = time.Duration(secs) * time.Second
	} else {
		d, err = time.ParseDuration(raw)
		if err != nil {
			return 0, fmt.Errorf("invalid timeout %q", raw)
		}
	}

	if d < MinFetchTimeout*time.Second {
		d = MinFetchTimeout * time.Second
	}
	if d > MaxFetchTimeout*time.Second {
		d = MaxFetchTimeout * time.Second
	}
	return d, nil
}

func apply(dst *ResolvedValue, raw string, source ValueSource, from string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return
	}
	*dst = ResolvedValue{Value: v, Source: source, From: from}
}

func applyEnv(dst *ResolvedValue, envKey string) {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		*dst = ResolvedValue{Value: v, Source: SourceEnv, From: envKey}
	}
}

func loadConfig(path string) (*fileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
