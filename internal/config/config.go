package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/olivier-w/tapecart/internal/tape"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Selector SelectorConfig
	Spring   SpringConfig
	Drag     DragConfig
	Sound    SoundConfig
	Cart     CartConfig
	Product  ProductConfig
	Log      LogConfig
}

// SelectorConfig holds the tape bounds and geometry.
type SelectorConfig struct {
	Min         int
	Max         int
	Value       int
	ItemHeight  float64 `mapstructure:"item_height"`
	RowsPerItem int     `mapstructure:"rows_per_item"`
}

// SpringConfig holds the settle spring in physical terms.
type SpringConfig struct {
	FPS       int
	Stiffness float64
	Damping   float64
	Mass      float64
}

// DragConfig holds pointer drag settings.
type DragConfig struct {
	Elastic float64
}

// SoundConfig holds click feedback settings.
type SoundConfig struct {
	Enabled bool
	Sample  string
	Volume  float64
}

// CartConfig holds sqlite settings.
type CartConfig struct {
	Path string
}

// ProductConfig names what is being added to the cart.
type ProductConfig struct {
	SKU  string
	Name string
}

// LogConfig holds debug log settings. An empty file disables logging.
type LogConfig struct {
	File string
}

var (
	ErrBounds     = errors.New("selector.min must not exceed selector.max")
	ErrSpan       = fmt.Errorf("selector.max - selector.min must not exceed %d", tape.MaxSpan)
	ErrGeometry   = errors.New("selector.item_height and selector.rows_per_item must be positive")
	ErrSpring     = errors.New("spring.fps, spring.stiffness, spring.damping and spring.mass must be positive")
	ErrElastic    = errors.New("drag.elastic must be within [0, 1]")
	ErrVolume     = errors.New("sound.volume must be within [0, 1]")
	ErrProductSKU = errors.New("product.sku must not be empty")
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("selector.min", 1)
	v.SetDefault("selector.max", 10)
	v.SetDefault("selector.value", 1)
	v.SetDefault("selector.item_height", 100.0)
	v.SetDefault("selector.rows_per_item", 2)
	v.SetDefault("spring.fps", 60)
	v.SetDefault("spring.stiffness", 350.0)
	v.SetDefault("spring.damping", 35.0)
	v.SetDefault("spring.mass", 0.8)
	v.SetDefault("drag.elastic", 0.15)
	v.SetDefault("sound.enabled", false)
	v.SetDefault("sound.sample", "")
	v.SetDefault("sound.volume", 0.6)
	v.SetDefault("cart.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "tapecart", "cart.db"))
	v.SetDefault("product.sku", "MECHA-01")
	v.SetDefault("product.name", "Mecha unit")
	v.SetDefault("log.file", "")
}

// Load reads configuration from $TAPECART_CONFIG, or ~/.config/tapecart/config.toml
// when unset, and from env. Env var overrides use prefix TAPECART_.
func Load() (Config, error) {
	return LoadFile(os.Getenv("TAPECART_CONFIG"))
}

// LoadFile reads configuration from path, or from the default search path
// when path is empty. A missing default file is not an error.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tapecart"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TAPECART")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks settings that would otherwise produce a broken tape.
// An initial value outside the bounds is not an error; the tape clamps it.
func (c Config) Validate() error {
	s := c.Selector
	if s.Min > s.Max {
		return fmt.Errorf("%w (min=%d max=%d)", ErrBounds, s.Min, s.Max)
	}
	if !tape.SpanOK(s.Min, s.Max) {
		return fmt.Errorf("%w (min=%d max=%d)", ErrSpan, s.Min, s.Max)
	}
	if s.ItemHeight <= 0 || s.RowsPerItem <= 0 {
		return ErrGeometry
	}
	sp := c.Spring
	if sp.FPS <= 0 || sp.Mass <= 0 || sp.Stiffness <= 0 || sp.Damping <= 0 {
		return ErrSpring
	}
	if c.Drag.Elastic < 0 || c.Drag.Elastic > 1 {
		return ErrElastic
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return ErrVolume
	}
	if c.Product.SKU == "" {
		return ErrProductSKU
	}
	return nil
}
