package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up inside a config directory.
const FileName = "config.yaml"

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load reads, interpolates and validates the configuration at configPath,
// which may be a file or a directory containing config.yaml. When the
// directory holds a .checksums manifest the file must match it.
func Load(configPath string) (*Config, error) {
	absPath, err := ResolvePath(configPath)
	if err != nil {
		return nil, err
	}

	if err := verifyChecksum(absPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", absPath, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", absPath, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()

	dec := yaml.NewDecoder(bytes.NewReader([]byte(interpolateEnv(string(data)))))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ResolvePath turns a file or directory argument into an absolute file path.
func ResolvePath(configPath string) (string, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path %q: %w", configPath, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("config file not found: %s\n"+
			"Hint: Check the path or run with --config flag", absPath)
	}
	if info.IsDir() {
		absPath = filepath.Join(absPath, FileName)
		if _, err := os.Stat(absPath); err != nil {
			return "", fmt.Errorf("directory provided but %s not found: %s", FileName, absPath)
		}
	}
	return absPath, nil
}

// Discover finds a config file by checking standard locations.
// Priority order: $LAUNCHPAD_CONFIG, ~/.config/launchpad, ./config.yaml.
// An empty result with a nil error means no file exists and defaults apply.
func Discover() (string, error) {
	if p := os.Getenv("LAUNCHPAD_CONFIG"); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("LAUNCHPAD_CONFIG points to %s: %w", p, err)
		}
		return p, nil
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		userConfig := filepath.Join(homeDir, ".config", "launchpad", FileName)
		if _, err := os.Stat(userConfig); err == nil {
			return userConfig, nil
		}
	}

	if _, err := os.Stat(FileName); err == nil {
		return FileName, nil
	}
	return "", nil
}

// interpolateEnv replaces ${VAR} with its value. Unset variables are left in
// place so validation can name them.
func interpolateEnv(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		return match
	})
}

func validate(cfg *Config) error {
	if cfg.Service.TickInterval <= 0 {
		return fmt.Errorf("service.tick_interval must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(cfg.Service.LogLevel)] {
		return fmt.Errorf("service.log_level must be one of: debug, info, warn, error (got %q)", cfg.Service.LogLevel)
	}

	if strings.TrimSpace(cfg.HTTP.Listen) == "" {
		return fmt.Errorf("http.listen is required")
	}
	if cfg.HTTP.ReadTimeout < 0 || cfg.HTTP.WriteTimeout < 0 || cfg.HTTP.IdleTimeout < 0 {
		return fmt.Errorf("http timeouts must not be negative")
	}

	if strings.TrimSpace(cfg.Event.Name) == "" {
		return fmt.Errorf("event.name is required")
	}

	for _, f := range []struct{ path, value string }{
		{"http.listen", cfg.HTTP.Listen},
		{"http.video_dir", cfg.HTTP.VideoDir},
		{"event.register_url", cfg.Event.RegisterURL},
		{"event.target", cfg.Event.Target},
	} {
		if matches := envVarPattern.FindStringSubmatch(f.value); len(matches) > 1 {
			return fmt.Errorf("%s: environment variable ${%s} is not set", f.path, matches[1])
		}
	}

	if _, err := cfg.TargetTime(); err != nil {
		return fmt.Errorf("event.target: %w", err)
	}

	if strings.TrimSpace(cfg.Page.Variant) == "" {
		return fmt.Errorf("page.variant is required")
	}
	if cfg.Page.StreamBuffer <= 0 {
		return fmt.Errorf("page.stream_buffer must be positive")
	}

	return nil
}
