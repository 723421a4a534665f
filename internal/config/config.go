package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/iburimskiy/mouse-away/internal/repulsion"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512

	TrailRingSize   = 24
	ColorShiftSpeed = 0.004

	// Terminal cells are mapped to this many pixels so the same radius and
	// strength work in both hosts.
	CellWidth  = 8
	CellHeight = 16

	EnvPrefix  = "MOUSEAWAY"
	ConfigName = "mouseaway"
)

// Bounds values accepted in the repulsion section.
const (
	BoundsDefault   = ""
	BoundsViewport  = "viewport"
	BoundsContainer = "container"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	Repulsion RepulsionConfig `mapstructure:"repulsion" yaml:"repulsion"`
	Window    WindowConfig    `mapstructure:"window" yaml:"window"`
	Scene     SceneConfig     `mapstructure:"scene" yaml:"scene"`
	Sound     SoundConfig     `mapstructure:"sound" yaml:"sound"`
	Terminal  TerminalConfig  `mapstructure:"terminal" yaml:"terminal"`
}

type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

type RepulsionConfig struct {
	Radius               float64      `mapstructure:"radius" yaml:"radius"`
	Strength             float64      `mapstructure:"strength" yaml:"strength"`
	Bounds               string       `mapstructure:"bounds" yaml:"bounds"`
	Disabled             bool         `mapstructure:"disabled" yaml:"disabled"`
	RespectReducedMotion bool         `mapstructure:"respect_reduced_motion" yaml:"respect_reduced_motion"`
	Spring               SpringConfig `mapstructure:"spring" yaml:"spring"`
}

type SpringConfig struct {
	Stiffness float64 `mapstructure:"stiffness" yaml:"stiffness"`
	Damping   float64 `mapstructure:"damping" yaml:"damping"`
	Mass      float64 `mapstructure:"mass" yaml:"mass"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	Title  string `mapstructure:"title" yaml:"title"`
}

// SceneConfig lays out the demo: a container box with a button centered in it.
type SceneConfig struct {
	Padding         float64 `mapstructure:"padding" yaml:"padding"`
	ContainerHeight float64 `mapstructure:"container_height" yaml:"container_height"`
	ButtonWidth     float64 `mapstructure:"button_width" yaml:"button_width"`
	ButtonHeight    float64 `mapstructure:"button_height" yaml:"button_height"`
	Label           string  `mapstructure:"label" yaml:"label"`
}

type SoundConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	Frequency float64       `mapstructure:"frequency" yaml:"frequency"`
	Duration  time.Duration `mapstructure:"duration" yaml:"duration"`
	Volume    float64       `mapstructure:"volume" yaml:"volume"`
}

type TerminalConfig struct {
	FPS int `mapstructure:"fps" yaml:"fps"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "mouse-away")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	// -- Repulsion --
	v.SetDefault("repulsion.radius", repulsion.DefaultRadius)
	v.SetDefault("repulsion.strength", repulsion.DefaultStrength)
	v.SetDefault("repulsion.bounds", BoundsContainer)
	v.SetDefault("repulsion.disabled", false)
	v.SetDefault("repulsion.respect_reduced_motion", true)
	v.SetDefault("repulsion.spring.stiffness", repulsion.DefaultStiffness)
	v.SetDefault("repulsion.spring.damping", repulsion.DefaultDamping)
	v.SetDefault("repulsion.spring.mass", repulsion.DefaultMass)

	// -- Window --
	v.SetDefault("window.width", WindowWidth)
	v.SetDefault("window.height", WindowHeight)
	v.SetDefault("window.title", "Mouse Away - D: disable, M: reduced motion, O: open profile, Esc/Q: quit")

	// -- Scene --
	v.SetDefault("scene.padding", 24.0)
	v.SetDefault("scene.container_height", 256.0)
	v.SetDefault("scene.button_width", 160.0)
	v.SetDefault("scene.button_height", 48.0)
	v.SetDefault("scene.label", "Checkout")

	// -- Sound --
	v.SetDefault("sound.enabled", true)
	v.SetDefault("sound.frequency", 660.0)
	v.SetDefault("sound.duration", 60*time.Millisecond)
	v.SetDefault("sound.volume", 0.2)

	// -- Terminal --
	v.SetDefault("terminal.fps", 60)
}

// NewViper returns a viper instance with defaults, environment binding and,
// when path is set, the given config file. Without a path it looks for
// mouseaway.yaml in the working directory.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (if any), applies env overrides and validates.
func Load(path string) (*Config, *viper.Viper, error) {
	v := NewViper(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	cfg, err := FromViper(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// FromViper unmarshals and validates the current state of v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewDefaultConfig returns the configuration built from defaults only.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

func (c *Config) Validate() error {
	if err := c.Repulsion.Validate(); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if err := c.Scene.Validate(); err != nil {
		return err
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("%w: sound.volume must be within [0, 1]", ErrInvalid)
	}
	if c.Sound.Enabled && (c.Sound.Frequency <= 0 || c.Sound.Duration <= 0) {
		return fmt.Errorf("%w: sound.frequency and sound.duration must be positive", ErrInvalid)
	}
	if c.Terminal.FPS <= 0 {
		return fmt.Errorf("%w: terminal.fps must be a positive integer", ErrInvalid)
	}
	return nil
}

// Validate rejects values the engine would otherwise silently replace. A
// radius of zero or less is allowed and disables the push.
func (r RepulsionConfig) Validate() error {
	switch r.Bounds {
	case BoundsDefault, BoundsViewport, BoundsContainer:
	default:
		return fmt.Errorf("%w: repulsion.bounds must be %q or %q, got %q", ErrInvalid, BoundsViewport, BoundsContainer, r.Bounds)
	}
	if r.Strength < 0 {
		return fmt.Errorf("%w: repulsion.strength must not be negative", ErrInvalid)
	}
	if r.Spring.Stiffness <= 0 || r.Spring.Mass <= 0 || r.Spring.Damping < 0 {
		return fmt.Errorf("%w: repulsion.spring needs positive stiffness and mass and non-negative damping", ErrInvalid)
	}
	return nil
}

func (s SceneConfig) Validate() error {
	if s.ButtonWidth <= 0 || s.ButtonHeight <= 0 || s.ContainerHeight <= 0 {
		return fmt.Errorf("%w: scene sizes must be positive", ErrInvalid)
	}
	if s.Padding < 0 {
		return fmt.Errorf("%w: scene.padding must not be negative", ErrInvalid)
	}
	return nil
}

// Engine converts the file-level settings into an engine configuration.
// container is used when Bounds is "container".
func (r RepulsionConfig) Engine(container repulsion.Element) repulsion.Config {
	cfg := repulsion.DefaultConfig()
	cfg.Radius = r.Radius
	cfg.Strength = r.Strength
	cfg.Disabled = r.Disabled
	cfg.RespectReducedMotion = r.RespectReducedMotion
	cfg.Spring.Stiffness = r.Spring.Stiffness
	cfg.Spring.Damping = r.Spring.Damping
	cfg.Spring.Mass = r.Spring.Mass

	switch r.Bounds {
	case BoundsContainer:
		cfg.Bounds = repulsion.ContainerBounds(container)
	case BoundsViewport:
		cfg.Bounds = repulsion.ViewportBounds()
	}
	return cfg
}
