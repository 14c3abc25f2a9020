// Package config holds the CLI configuration, decoded by viper from flags,
// SPANFOREST_* environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spanforest/mst"
)

const EnvPrefix = "SPANFOREST"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log" json:"log"`
	Input  InputConfig  `mapstructure:"input" yaml:"input" json:"input"`
	Build  BuildConfig  `mapstructure:"build" yaml:"build" json:"build"`
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

type InputConfig struct {
	// Path of the chain file; "" or "-" reads stdin.
	Path      string `mapstructure:"path" yaml:"path" json:"path,omitempty"`
	Delimiter rune   `mapstructure:"delimiter" yaml:"delimiter" json:"delimiter"`
	Comment   rune   `mapstructure:"comment" yaml:"comment" json:"comment"`
	TrimSpace bool   `mapstructure:"trim_space" yaml:"trim_space" json:"trim_space"`
}

type BuildConfig struct {
	Method   string `mapstructure:"method" yaml:"method" json:"method"`
	Ordering string `mapstructure:"ordering" yaml:"ordering" json:"ordering"`
	// Root is the label Prim starts from; empty means the first vertex read.
	Root             string `mapstructure:"root" yaml:"root" json:"root,omitempty"`
	RequireConnected bool   `mapstructure:"require_connected" yaml:"require_connected" json:"require_connected,omitempty"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

func New() *Config {
	return &Config{
		Log: LogConfig{
			Level:  zerolog.LevelInfoValue,
			Format: "text",
		},
		Input: InputConfig{
			Delimiter: ',',
			Comment:   '#',
			TrimSpace: true,
		},
		Build: BuildConfig{
			Method:   mst.MethodKruskal,
			Ordering: mst.OrderingSort.String(),
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load decodes the settings held by v over cfg. Keys absent from v keep the
// values already in cfg.
func Load(v *viper.Viper, cfg *Config) error {
	decoderCfg := func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			StringToRuneHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
	if err := v.Unmarshal(cfg, decoderCfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	return cfg.Validate()
}

// Validate checks the values that the library packages would otherwise reject late.
func (c *Config) Validate() error {
	switch c.Build.Method {
	case mst.MethodKruskal, mst.MethodPrim:
	default:
		return fmt.Errorf("%w: build.method must be %s or %s, got %q",
			ErrInvalidConfig, mst.MethodKruskal, mst.MethodPrim, c.Build.Method)
	}
	if _, err := mst.ParseOrdering(c.Build.Ordering); err != nil {
		return fmt.Errorf("%w: build.ordering: %w", ErrInvalidConfig, err)
	}
	if c.Input.Delimiter == 0 || c.Input.Delimiter == '\n' || c.Input.Delimiter == '\r' ||
		c.Input.Delimiter == '"' || c.Input.Delimiter == utf8.RuneError {
		return fmt.Errorf("%w: input.delimiter %q cannot be used", ErrInvalidConfig, c.Input.Delimiter)
	}
	if c.Input.Delimiter == c.Input.Comment {
		return fmt.Errorf("%w: input.delimiter and input.comment must differ", ErrInvalidConfig)
	}

	return nil
}

// StringToRuneHookFunc decodes a one-character string into a rune field.
// The empty string decodes to 0.
func StringToRuneHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(rune(0)) {
			return data, nil
		}
		s := reflect.ValueOf(data).String()
		if s == "" {
			return rune(0), nil
		}
		r, size := utf8.DecodeRuneInString(s)
		if size != len(s) {
			return nil, fmt.Errorf("%w: expected a single character, got %q", ErrInvalidConfig, s)
		}

		return r, nil
	}
}
