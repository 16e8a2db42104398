// Package config loads the plot styling configuration. The style tables the
// original tool kept as module-level globals live here as an immutable
// struct handed to the renderer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all rendering preferences.
type Config struct {
	Plot PlotConfig
}

// PlotConfig holds figure styling. Palette entries are "#rrggbb" hex
// colors, cycled across curves in plotting order.
type PlotConfig struct {
	WidthPts  float64 `mapstructure:"width_pts"`
	HeightPts float64 `mapstructure:"height_pts"`
	LineWidth float64 `mapstructure:"line_width"`
	Palette   []string
	LegendTop bool `mapstructure:"legend_top"`
}

// Load reads configuration from defaults, an optional TOML file and env.
// Env var overrides use prefix CLASSPLOT_. An explicit path (from --config)
// must exist; the default location may be absent.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("plot.width_pts", 800.0)
	v.SetDefault("plot.height_pts", 400.0)
	v.SetDefault("plot.line_width", 1.5)
	v.SetDefault("plot.palette", []string{
		"#ff0000", "#00ff00", "#0000ff", "#ffa500", "#800080", "#008080",
	})
	v.SetDefault("plot.legend_top", false)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "classplot"))
		v.SetConfigName("config")
		_ = v.ReadInConfig()
	}

	v.SetEnvPrefix("CLASSPLOT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
