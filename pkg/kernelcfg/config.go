// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package kernelcfg mirrors the teacher's util.Config + toml.DecodeFile
// pattern (cmd/main/main.go's loadConfig), layered with spf13/viper for
// GROUPER_-prefixed environment overrides — the three-way precedence
// (flags > env > file) the teacher's own loadConfig implies but never
// fully wires, since it only ever reads the TOML file.
package kernelcfg

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

// Defaults holds the ad-hoc-run defaults: min-count policy, ddof,
// logging level, and the interpolation mode for quantile runs.
// cmd/kernelbench falls back to MinCount and Ddof when the matching
// flag is not set; no command reads LogLevel or Interpolation (the
// quantile command always uses linear interpolation).
type Defaults struct {
	MinCount      int    `toml:"min_count"`
	Ddof          int    `toml:"ddof"`
	LogLevel      string `toml:"log_level"`
	Interpolation string `toml:"interpolation"`
}

// Config is the top-level decoded document.
type Config struct {
	Defaults Defaults `toml:"defaults"`
}

// Default returns the library's built-in defaults, used when no TOML
// file and no GROUPER_ environment variable overrides any field.
func Default() Config {
	return Config{Defaults: Defaults{
		MinCount:      0,
		Ddof:          1,
		LogLevel:      "info",
		Interpolation: "linear",
	}}
}

// Load decodes path (if non-empty) via toml.DecodeFile into a Config
// seeded with Default(), then layers GROUPER_-prefixed environment
// variables on top via viper.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decoding %s: %w", path, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("GROUPER")
	v.AutomaticEnv()
	if v.IsSet("MIN_COUNT") {
		cfg.Defaults.MinCount = v.GetInt("MIN_COUNT")
	}
	if v.IsSet("DDOF") {
		cfg.Defaults.Ddof = v.GetInt("DDOF")
	}
	if v.IsSet("LOG_LEVEL") {
		cfg.Defaults.LogLevel = v.GetString("LOG_LEVEL")
	}
	if v.IsSet("INTERPOLATION") {
		cfg.Defaults.Interpolation = v.GetString("INTERPOLATION")
	}
	return cfg, nil
}
