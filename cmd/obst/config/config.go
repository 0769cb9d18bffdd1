// Package config loads and validates settings for the obst CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/obst/viz"
)

// Sentinel validation errors.
var (
	// ErrInvalidFontSize is returned when a configured font size is not positive.
	ErrInvalidFontSize = errors.New("font size must be positive")
	// ErrEmptyNodeShape is returned when the node shape is blank.
	ErrEmptyNodeShape = errors.New("node shape must not be empty")
	// ErrEmptyOutputDir is returned when the output directory is blank.
	ErrEmptyOutputDir = errors.New("output directory must not be empty")
	// ErrEmptyImageFormat is returned when the image format is blank.
	ErrEmptyImageFormat = errors.New("image format must not be empty")
)

// Default output locations for the visualize command.
const (
	defaultOutputDir   = "."
	defaultDOTFile     = "obst.dot"
	defaultImageFile   = "obst.png"
	defaultImageFormat = "png"
)

// Config holds all configuration for the obst CLI.
type Config struct {
	Style   viz.Style    `mapstructure:"style"`
	Output  OutputConfig `mapstructure:"output"`
	NoColor bool         `mapstructure:"no_color"`
}

// OutputConfig names the files written by the visualize command.
type OutputConfig struct {
	Dir         string `mapstructure:"dir"`
	DOTFile     string `mapstructure:"dot_file"`
	ImageFile   string `mapstructure:"image_file"`
	ImageFormat string `mapstructure:"image_format"`
}

// Load reads configuration from a file and OBST_* environment variables.
//
// When configPath is empty, Load looks for obst.yaml in the working
// directory and falls back to defaults if none exists. An explicit
// configPath that cannot be read is an error.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("obst")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
	}

	viperCfg.SetEnvPrefix("OBST")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validate(&cfg)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &cfg, nil
}

// setDefaults registers the stock style and output locations.
func setDefaults(viperCfg *viper.Viper) {
	style := viz.DefaultStyle()

	viperCfg.SetDefault("style.graph_label", style.GraphLabel)
	viperCfg.SetDefault("style.graph_font_size", style.GraphFontSize)
	viperCfg.SetDefault("style.node_shape", style.NodeShape)
	viperCfg.SetDefault("style.node_style", style.NodeStyle)
	viperCfg.SetDefault("style.node_color", style.NodeColor)
	viperCfg.SetDefault("style.node_font_color", style.NodeFontColor)
	viperCfg.SetDefault("style.node_font_size", style.NodeFontSize)
	viperCfg.SetDefault("style.edge_color", style.EdgeColor)

	viperCfg.SetDefault("output.dir", defaultOutputDir)
	viperCfg.SetDefault("output.dot_file", defaultDOTFile)
	viperCfg.SetDefault("output.image_file", defaultImageFile)
	viperCfg.SetDefault("output.image_format", defaultImageFormat)

	viperCfg.SetDefault("no_color", false)
}

// validate rejects configurations the visualize command cannot act on.
func validate(cfg *Config) error {
	if cfg.Style.GraphFontSize <= 0 {
		return fmt.Errorf("%w: graph_font_size=%d", ErrInvalidFontSize, cfg.Style.GraphFontSize)
	}

	if cfg.Style.NodeFontSize <= 0 {
		return fmt.Errorf("%w: node_font_size=%d", ErrInvalidFontSize, cfg.Style.NodeFontSize)
	}

	if strings.TrimSpace(cfg.Style.NodeShape) == "" {
		return ErrEmptyNodeShape
	}

	if strings.TrimSpace(cfg.Output.Dir) == "" {
		return ErrEmptyOutputDir
	}

	if strings.TrimSpace(cfg.Output.ImageFormat) == "" {
		return ErrEmptyImageFormat
	}

	return nil
}
