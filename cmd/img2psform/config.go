// seehuhn.de/go/psgen - a library for writing images as PostScript forms
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/psgen"
	"seehuhn.de/go/psgen/graphics/form"
)

// Config holds the settings of the converter.
type Config struct {
	// Name is the name of the form resource.  If this is empty, a random
	// name is used.
	Name string `mapstructure:"name" yaml:"name"`

	// Title is used for the %%Title DSC comments.
	Title string `mapstructure:"title" yaml:"title"`

	// Width and Height give the size of the form in points.  If both are
	// zero, one point per pixel is used.  If only one of them is zero, the
	// aspect ratio of the image is preserved.
	Width  float64 `mapstructure:"width" yaml:"width"`
	Height float64 `mapstructure:"height" yaml:"height"`

	// Level is the PostScript language level of the output.
	Level string `mapstructure:"level" yaml:"level"`

	// Invert inverts the decode array of the image.
	Invert bool `mapstructure:"invert" yaml:"invert"`

	// Document wraps the form into a complete one-page document.
	Document bool `mapstructure:"document" yaml:"document"`

	// Passthrough embeds JPEG files without decoding them.
	Passthrough bool `mapstructure:"passthrough" yaml:"passthrough"`

	// MaxSize (optional) limits the width and height of the image in
	// pixels.  Larger images are scaled down.
	MaxSize int `mapstructure:"max-size" yaml:"max-size"`

	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

const envPrefix = "PSFORM"

func addConfigFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("config", "", "read settings from this YAML file")
	f.String("name", "", "name of the form resource (default: random)")
	f.String("title", "", "title of the form")
	f.Float64("width", 0, "width of the form in points")
	f.Float64("height", 0, "height of the form in points")
	f.String("level", psgen.Level3.String(), "PostScript language level (2 or 3)")
	f.Bool("invert", false, "invert the image samples")
	f.Bool("document", false, "write a complete PostScript document")
	f.Bool("passthrough", true, "embed JPEG files without decoding")
	f.Int("max-size", 0, "scale down images larger than this many pixels")
	f.BoolP("verbose", "v", false, "enable debug output")
}

// loadConfig merges command line flags, environment variables and the
// configuration file, in this order of precedence.
func loadConfig(v *viper.Viper, cmd *cobra.Command) (*Config, error) {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	level, err := psgen.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("language level %q: %w", cfg.Level, err)
	}
	if level < psgen.Level2 {
		return &psgen.LevelError{Operation: "form resource", Needed: psgen.Level2}
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return errors.New("width and height must not be negative")
	}
	if cfg.MaxSize < 0 {
		return errors.New("max-size must not be negative")
	}
	if cfg.Name != "" {
		if err := form.CheckName(cfg.Name); err != nil {
			return err
		}
	}
	return nil
}

func newConfigCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cmd)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

// LanguageLevel returns the PostScript language level of the output.
// The configuration must have been validated.
func (cfg *Config) LanguageLevel() psgen.LanguageLevel {
	level, _ := psgen.ParseLevel(cfg.Level)
	return level
}
