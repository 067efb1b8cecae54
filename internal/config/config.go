// Package config loads drawbatch settings from a TOML or YAML file with
// DRAWBATCH_* environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/idursun/drawbatch/internal/console"
	"github.com/idursun/drawbatch/internal/draw"
	"github.com/idursun/drawbatch/internal/frame"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "DRAWBATCH_"

var (
	ErrInvalid    = errors.New("config: invalid value")
	ErrUnknownKey = errors.New("config: unknown key")
)

type Config struct {
	Pool    PoolConfig    `toml:"pool" yaml:"pool" envPrefix:"POOL_"`
	Buffer  BufferConfig  `toml:"buffer" yaml:"buffer" envPrefix:"BUFFER_"`
	Console ConsoleConfig `toml:"console" yaml:"console" envPrefix:"CONSOLE_"`
	Frame   FrameConfig   `toml:"frame" yaml:"frame" envPrefix:"FRAME_"`
	Log     LogConfig     `toml:"log" yaml:"log" envPrefix:"LOG_"`
}

type PoolConfig struct {
	Size          int  `toml:"size" yaml:"size" env:"SIZE"`
	BatchCapacity int  `toml:"batch_capacity" yaml:"batch_capacity" env:"BATCH_CAPACITY"`
	Prewarm       bool `toml:"prewarm" yaml:"prewarm" env:"PREWARM"`
}

type BufferConfig struct {
	Capacity int `toml:"capacity" yaml:"capacity" env:"CAPACITY"`
}

type ConsoleConfig struct {
	Width  int `toml:"width" yaml:"width" env:"WIDTH"`
	Height int `toml:"height" yaml:"height" env:"HEIGHT"`
	Layers int `toml:"layers" yaml:"layers" env:"LAYERS"`
}

type FrameConfig struct {
	FPS     int `toml:"fps" yaml:"fps" env:"FPS"`
	Workers int `toml:"workers" yaml:"workers" env:"WORKERS"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level" env:"LEVEL"`
	File  string `toml:"file" yaml:"file" env:"FILE"`
}

func Default() Config {
	return Config{
		Pool: PoolConfig{
			Size:          draw.DefaultPoolSize,
			BatchCapacity: draw.DefaultBatchCapacity,
			Prewarm:       true,
		},
		Buffer:  BufferConfig{Capacity: draw.DefaultBufferCapacity},
		Console: ConsoleConfig{Width: 80, Height: 25, Layers: 2},
		Frame:   FrameConfig{FPS: 30},
		Log:     LogConfig{Level: "info"},
	}
}

// Parse decodes TOML text on top of the defaults. Keys that do not map to a
// field are reported as ErrUnknownKey.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := undecoded(md); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Load reads the file at path, when path is not empty, then applies
// environment overrides and validates the result. Files ending in .yaml or
// .yml are read as YAML, anything else as TOML.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func loadFile(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("config: load %s: %w", path, err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("config: load %s: %w", path, err)
		}
		return nil
	default:
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return fmt.Errorf("config: load %s: %w", path, err)
		}
		return undecoded(md)
	}
}

// ApplyEnv overrides fields of cfg from DRAWBATCH_* variables.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

func undecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
}

func invalid(field string, value any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalid, field, value)
}

func (c Config) Validate() error {
	var errs []error
	if c.Pool.Size < 0 {
		errs = append(errs, invalid("pool.size", c.Pool.Size))
	}
	if c.Pool.BatchCapacity < 0 {
		errs = append(errs, invalid("pool.batch_capacity", c.Pool.BatchCapacity))
	}
	if c.Buffer.Capacity < 0 {
		errs = append(errs, invalid("buffer.capacity", c.Buffer.Capacity))
	}
	if c.Console.Width <= 0 {
		errs = append(errs, invalid("console.width", c.Console.Width))
	}
	if c.Console.Height <= 0 {
		errs = append(errs, invalid("console.height", c.Console.Height))
	}
	if c.Console.Layers < 1 {
		errs = append(errs, invalid("console.layers", c.Console.Layers))
	}
	if c.Frame.FPS < 1 || c.Frame.FPS > 240 {
		errs = append(errs, invalid("frame.fps", c.Frame.FPS))
	}
	if c.Frame.Workers < 0 {
		errs = append(errs, invalid("frame.workers", c.Frame.Workers))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LogLevel parses Log.Level. An empty level means info.
func (c Config) LogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, invalid("log.level", c.Log.Level)
}

// DrawOptions returns the command buffer options. The logger may be nil.
func (c Config) DrawOptions(logger *slog.Logger) []draw.Option {
	return []draw.Option{
		draw.WithPoolSize(c.Pool.Size),
		draw.WithBatchCapacity(c.Pool.BatchCapacity),
		draw.WithBufferCapacity(c.Buffer.Capacity),
		draw.WithPrewarm(c.Pool.Prewarm),
		draw.WithLogger(logger),
	}
}

func (c Config) ConsoleOptions() []console.Option {
	return []console.Option{console.WithLayers(c.Console.Layers)}
}

// FrameOptions returns the runner options. Zero workers keeps the runner default.
func (c Config) FrameOptions(logger *slog.Logger) []frame.Option {
	opts := []frame.Option{frame.WithLogger(logger)}
	if c.Frame.Workers > 0 {
		opts = append(opts, frame.WithWorkers(c.Frame.Workers))
	}
	return opts
}

// TickInterval is the time between frames at the configured rate.
func (c Config) TickInterval() time.Duration {
	if c.Frame.FPS <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(c.Frame.FPS)
}
