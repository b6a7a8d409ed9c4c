package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jimezsa/zupro/internal/assets"
	"github.com/jimezsa/zupro/internal/models"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"gopkg.in/yaml.v3"
)

const (
	DirName            = "zupro"
	ConfigFileName     = "config.json"
	YAMLConfigFileName = "config.yaml"
	ProxiesFileName    = "proxies.txt"
)

const DefaultLocation = "Mumbai, Maharashtra"

// DefaultHeroImages point into the images embedded in the binary (see
// package assets), so they resolve regardless of the working directory.
var DefaultHeroImages = []string{
	assets.Scheme + "hero/construction.svg",
	assets.Scheme + "hero/warehouse.svg",
	assets.Scheme + "hero/painting.svg",
}

// Config holds the home screen settings. Durations are in milliseconds so
// the file stays hand-editable.
type Config struct {
	DefaultLocation    string   `json:"default_location" yaml:"default_location"`
	AutoplayMS         int      `json:"autoplay_ms" yaml:"autoplay_ms"`
	TransitionMS       int      `json:"transition_ms" yaml:"transition_ms"`
	RefreshMS          int      `json:"refresh_ms" yaml:"refresh_ms"`
	SplashMS           int      `json:"splash_ms" yaml:"splash_ms"`
	ItemWidth          float64  `json:"item_width" yaml:"item_width"`
	HeroImages         []string `json:"hero_images" yaml:"hero_images"`
	SeedFile           string   `json:"seed_file" yaml:"seed_file"`
	PreloadConcurrency int      `json:"preload_concurrency" yaml:"preload_concurrency"`
	PreloadRate        float64  `json:"preload_rate" yaml:"preload_rate"`
	PreloadTimeoutMS   int      `json:"preload_timeout_ms" yaml:"preload_timeout_ms"`
}

func DefaultConfig() Config {
	return Config{
		DefaultLocation:    envString("ZUPRO_DEFAULT_LOCATION", DefaultLocation),
		AutoplayMS:         envInt("ZUPRO_AUTOPLAY_MS", 5000),
		TransitionMS:       350,
		RefreshMS:          envInt("ZUPRO_REFRESH_MS", 1000),
		SplashMS:           envInt("ZUPRO_SPLASH_MS", 1200),
		ItemWidth:          390,
		HeroImages:         append([]string(nil), DefaultHeroImages...),
		SeedFile:           envString("ZUPRO_SEED_FILE", ""),
		PreloadConcurrency: 4,
		PreloadRate:        2,
		PreloadTimeoutMS:   15000,
	}
}

func (c Config) Autoplay() time.Duration   { return millis(c.AutoplayMS) }
func (c Config) Transition() time.Duration { return millis(c.TransitionMS) }
func (c Config) Refresh() time.Duration    { return millis(c.RefreshMS) }
func (c Config) Splash() time.Duration     { return millis(c.SplashMS) }

// Heroes turns the configured image references into carousel items.
func (c Config) Heroes() []models.HeroImage {
	out := make([]models.HeroImage, 0, len(c.HeroImages))
	for _, ref := range c.HeroImages {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		out = append(out, models.HeroImage{Ref: ref})
	}
	return out
}

// Preload builds the preloader settings; proxies are resolved separately.
func (c Config) Preload(proxies []string) models.PreloadConfig {
	return models.PreloadConfig{
		Proxies:       proxies,
		Timeout:       millis(c.PreloadTimeoutMS),
		Concurrency:   c.PreloadConcurrency,
		RatePerSecond: c.PreloadRate,
	}
}

func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

func ProxiesPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ProxiesFileName), nil
}

// Load reads config.json, falling back to config.yaml when only that exists.
func Load() (Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return DefaultConfig(), err
	}
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if alt := filepath.Join(dir, YAMLConfigFileName); fileExists(alt) {
			path = alt
		}
	}
	return LoadFile(path)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadFile reads a config over the defaults: YAML for .yaml/.yml, JSON5
// otherwise. A missing or blank file yields the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := decode(path, data, &cfg); err != nil {
		return cfg, err
	}
	return cfg.normalized(), nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return json5.Unmarshal(data, cfg)
	}
}

func (c Config) normalized() Config {
	def := DefaultConfig()
	if strings.TrimSpace(c.DefaultLocation) == "" {
		c.DefaultLocation = def.DefaultLocation
	}
	if c.AutoplayMS <= 0 {
		c.AutoplayMS = def.AutoplayMS
	}
	if c.TransitionMS <= 0 {
		c.TransitionMS = def.TransitionMS
	}
	if c.RefreshMS < 0 {
		c.RefreshMS = def.RefreshMS
	}
	if c.SplashMS < 0 {
		c.SplashMS = def.SplashMS
	}
	if c.ItemWidth <= 0 {
		c.ItemWidth = def.ItemWidth
	}
	return c
}

// Init writes default config.json and proxies.txt if they don't already exist.
func Init() ([]string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return InitDir(dir)
}

func InitDir(dir string) ([]string, error) {
	var created []string
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	proxiesPath := filepath.Join(dir, ProxiesFileName)
	if _, err := os.Stat(proxiesPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(proxiesPath, []byte(""), 0o644); err != nil {
			return created, err
		}
		created = append(created, proxiesPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// LoadProxies prefers the flag, then ZUPRO_PROXIES, then proxies.txt.
func LoadProxies(flagValue string) ([]string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return splitCSV(flagValue), nil
	}

	if env := strings.TrimSpace(os.Getenv("ZUPRO_PROXIES")); env != "" {
		return splitCSV(env), nil
	}

	path, err := ProxiesPath()
	if err != nil {
		return nil, err
	}
	return readProxyFile(path)
}

func readProxyFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var proxies []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		proxies = append(proxies, line)
	}
	return proxies, nil
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
