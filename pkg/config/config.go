// Copyright © 2026 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the settings of rps. Settings come from, in order of
// increasing precedence, the built-in defaults, a YAML configuration file,
// and RPS_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/rps/pkg/commitment"
)

// File is the path of the configuration file relative to the XDG config
// directories, e.g. ~/.config/rps/config.yaml.
const File = "rps/config.yaml"

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "RPS_"

type Config struct {
	// Moves is the catalog used when no moves are given on the command line.
	Moves []string `yaml:"moves" env:"MOVES"`

	// KeyBytes is the size of the secret key generated for every round.
	KeyBytes int `yaml:"key-bytes" env:"KEY_BYTES"`

	// Encoding is the name of the encoding digests are displayed with.
	Encoding string `yaml:"encoding" env:"ENCODING"`

	// Rounds is the number of rounds played by default.
	Rounds int `yaml:"rounds" env:"ROUNDS"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Moves:    []string{"rock", "paper", "scissors"},
		KeyBytes: commitment.MinKeySize,
		Encoding: "hex",
		Rounds:   1,
	}
}

// Load reads the configuration. If path is empty the XDG config directories
// are searched for File, and it's fine for there to be none.
func Load(path string) (Config, error) {
	config := Default()

	if path == "" {
		if found, err := xdg.SearchConfigFile(File); err == nil {
			path = found
		}
	}

	if path != "" {
		logrus.WithField("path", path).Debug("Loading configuration file")

		file, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}

		if err := yaml.Unmarshal(file, &config); err != nil {
			return Config{}, fmt.Errorf("load config: %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&config, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("load config: parse env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks that the configuration can be played with. The moves
// themselves are checked when a catalog is made out of them.
func (config Config) Validate() error {
	if config.KeyBytes < commitment.MinKeySize {
		return fmt.Errorf("invalid config: key-bytes must be at least %d, got %d", commitment.MinKeySize, config.KeyBytes)
	}

	if config.Rounds < 1 {
		return errors.New("invalid config: rounds must be at least 1")
	}

	if _, err := commitment.NewEncoding(config.Encoding); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Scheme returns the commitment scheme described by the configuration.
func (config Config) Scheme() commitment.Scheme {
	return commitment.Scheme{KeySize: config.KeyBytes}
}

// DigestEncoding returns the digest encoding selected by the configuration.
func (config Config) DigestEncoding() (commitment.Encoding, error) {
	return commitment.NewEncoding(config.Encoding)
}
