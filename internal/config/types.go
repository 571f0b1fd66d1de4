package config

import (
	"time"

	"github.com/mattjoyce/launchpad/internal/countdown"
)

// Config represents the complete launchpad configuration.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	HTTP    HTTPConfig    `yaml:"http"`
	Event   EventConfig   `yaml:"event"`
	Page    PageConfig    `yaml:"page"`
}

// ServiceConfig defines process-wide settings.
type ServiceConfig struct {
	Name         string        `yaml:"name"`
	LogLevel     string        `yaml:"log_level"`
	TickInterval time.Duration `yaml:"tick_interval"`
}

// HTTPConfig defines the landing page server.
type HTTPConfig struct {
	Listen       string        `yaml:"listen"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	// VideoDir holds the hero background videos served under /videos/.
	VideoDir string `yaml:"video_dir"`
}

// EventConfig describes the conference being counted down to.
type EventConfig struct {
	Name      string `yaml:"name"`
	Tagline   string `yaml:"tagline"`
	Organizer string `yaml:"organizer"`
	// Target is "2006-01-02T15:04:05" in Timezone, or RFC 3339.
	Target      string `yaml:"target"`
	Timezone    string `yaml:"timezone,omitempty"`
	RegisterURL string `yaml:"register_url"`
}

// PageConfig defines presentation settings.
type PageConfig struct {
	Variant      string `yaml:"variant"`
	StreamBuffer int    `yaml:"stream_buffer"`
}

// Defaults returns a Config for the SMRSC 2026 launch.
func Defaults() *Config {
	return &Config{
		Service: ServiceConfig{
			Name:         "launchpad",
			LogLevel:     "info",
			TickInterval: time.Second,
		},
		HTTP: HTTPConfig{
			Listen:       "127.0.0.1:8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 0, // event streams are long-lived
			IdleTimeout:  60 * time.Second,
			VideoDir:     "./public/videos",
		},
		Event: EventConfig{
			Name:        "SMRSC 2026",
			Tagline:     "Third global SS Innovations multi specialty robotic surgery conference",
			Organizer:   "SSInnovations",
			Target:      "2026-04-08T00:00:00",
			RegisterURL: "#register",
		},
		Page: PageConfig{
			Variant:      "cinematic",
			StreamBuffer: 8,
		},
	}
}

// TargetTime resolves Event.Target in Event.Timezone.
func (c *Config) TargetTime() (time.Time, error) {
	loc, err := countdown.LoadLocation(c.Event.Timezone)
	if err != nil {
		return time.Time{}, err
	}
	return countdown.ParseTarget(c.Event.Target, loc)
}
