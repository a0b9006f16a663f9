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

package config

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/jwst-datamodels/nirspec-flat/internal/logging"
	"github.com/jwst-datamodels/nirspec-flat/pkg/dqflags"
)

// FlagAliasConfig maps a file-specific dq_def flag name onto a canonical
// pixel mnemonic.
type FlagAliasConfig struct {
	// Alias is the flag name as written in dq_def tables (e.g. "BAD").
	Alias string `yaml:"alias" json:"alias"`

	// Canonical is the pixel mnemonic the alias stands for (e.g. "DO_NOT_USE").
	Canonical string `yaml:"canonical" json:"canonical"`

	// Description documents why the alias exists.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// FlagAliasData maps alias names to their configuration.
type FlagAliasData map[string]FlagAliasConfig

// Validate checks the alias targets a known mnemonic.
func (c *FlagAliasConfig) Validate() error {
	if strings.TrimSpace(c.Alias) == "" {
		return fmt.Errorf("alias must not be empty")
	}
	if _, ok := dqflags.Pixel().Value(strings.TrimSpace(c.Canonical)); !ok {
		return fmt.Errorf("canonical %q is not a pixel mnemonic", c.Canonical)
	}
	return nil
}

// ParseFlagAliases parses alias entries. Each value is a YAML document
// holding one FlagAliasConfig; keys only label the entries. Entries that do
// not parse or validate are skipped. When two entries declare the same alias
// the first key in sorted order wins.
func ParseFlagAliases(data map[string]string) FlagAliasData {
	out := make(FlagAliasData)
	if data == nil {
		return out
	}

	aliasToKey := make(map[string]string)

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		var entry FlagAliasConfig
		if err := yaml.Unmarshal([]byte(data[key]), &entry); err != nil {
			ctrl.Log.Info("Failed to parse flag alias entry, skipping",
				"key", key,
				"error", err)
			continue
		}

		if err := entry.Validate(); err != nil {
			ctrl.Log.Info("Invalid flag alias entry, skipping",
				"key", key,
				"error", err)
			continue
		}

		alias := strings.TrimSpace(entry.Alias)
		if winner, exists := aliasToKey[alias]; exists {
			ctrl.Log.Info("Duplicate flag alias found - first key wins",
				"alias", alias,
				"winningKey", winner,
				"duplicateKey", key)
			continue
		}
		aliasToKey[alias] = key
		out[alias] = entry
	}

	ctrl.Log.V(logging.DEBUG).Info("Parsed flag aliases",
		"aliasCount", len(out))

	return out
}

// Mnemonics returns the canonical pixel mnemonics extended with the aliases.
func (data FlagAliasData) Mnemonics() (dqflags.Mnemonics, error) {
	aliases := make(map[string]string, len(data))
	for alias, entry := range data {
		aliases[alias] = entry.Canonical
	}
	return dqflags.Pixel().WithAliases(aliases)
}
