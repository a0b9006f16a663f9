/*
Copyright 2025 The JWST Datamodels Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads the nrsflat tool configuration.
//
// Sources, highest priority first:
//
//  1. Command-line flags bound by the caller
//  2. Environment variables prefixed NRSFLAT_ (e.g. NRSFLAT_LOG_LEVEL)
//  3. The config file given with --config (YAML or TOML)
//  4. Defaults
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/jwst-datamodels/nirspec-flat/internal/logging"
	"github.com/jwst-datamodels/nirspec-flat/pkg/datamodel"
)

const envPrefix = "NRSFLAT"

// Config holds the resolved configuration.
type Config struct {
	// LogLevel is one of error, warn, info, debug or trace.
	LogLevel string `mapstructure:"log_level"`

	// LogDevelopment switches to human readable console logs.
	LogDevelopment bool `mapstructure:"log_development"`

	// Format is the document encoding written by the tool (yaml or json).
	Format string `mapstructure:"format"`

	// LockTimeout bounds how long a save waits for the file lock.
	LockTimeout time.Duration `mapstructure:"lock_timeout"`

	// Author and Pedigree are stamped on models the tool creates when the
	// source model does not carry them.
	Author   string `mapstructure:"author"`
	Pedigree string `mapstructure:"pedigree"`

	// FlagAliases holds raw alias entries, see ParseFlagAliases.
	FlagAliases map[string]string `mapstructure:"flag_aliases"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("log_development", false)
	v.SetDefault("format", string(datamodel.FormatYAML))
	v.SetDefault("lock_timeout", datamodel.DefaultLockTimeout)
	v.SetDefault("author", "")
	v.SetDefault("pedigree", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path into v and returns the
// validated configuration.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := datamodel.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if c.LockTimeout < 0 {
		errs = append(errs, fmt.Errorf("lock_timeout must be >= 0, got %s", c.LockTimeout))
	}
	return utilerrors.NewAggregate(errs)
}

// Store returns a file store configured from c.
func (c *Config) Store() *datamodel.FileStore {
	format, _ := datamodel.ParseFormat(c.Format)
	return datamodel.NewFileStore(format, c.LockTimeout)
}
