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

// Package dynamicdq translates a reference file's raw data-quality mask into
// canonical pixel flag bits.
//
// A reference file declares its own flag layout in a dq_def table: each row
// names a flag and gives the bit it occupies in the file's raw mask. Mask
// builds a new mask in which every raw bit is replaced by the canonical bit
// of the flag with the same name.
package dynamicdq

import (
	"cmp"
	"fmt"
	"math/bits"
	"slices"
	"strings"

	"github.com/go-logr/logr"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/jwst-datamodels/nirspec-flat/api/v1alpha1"
	"github.com/jwst-datamodels/nirspec-flat/internal/logging"
	"github.com/jwst-datamodels/nirspec-flat/pkg/dqflags"
)

// Source is a model exposing a data-quality mask and its flag definitions.
type Source interface {
	DQArray() v1alpha1.Uint32Array
	DQDefinitions() []v1alpha1.DQDefinition
}

// Mapper derives canonical masks.
type Mapper struct {
	mnemonics dqflags.Mnemonics
	inverse   bool
	logger    logr.Logger
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithMnemonics replaces the canonical pixel mnemonics.
func WithMnemonics(m dqflags.Mnemonics) Option {
	return func(mp *Mapper) {
		mp.mnemonics = m
	}
}

// WithInverse makes the mapper translate canonical bits back to the bits
// declared in dq_def, as needed when writing a reference file.
func WithInverse() Option {
	return func(mp *Mapper) {
		mp.inverse = true
	}
}

// WithLogger sets the logger used to report unknown flag names.
func WithLogger(l logr.Logger) Option {
	return func(mp *Mapper) {
		mp.logger = l
	}
}

// NewMapper returns a mapper using the canonical pixel mnemonics unless
// configured otherwise.
func NewMapper(opts ...Option) *Mapper {
	m := &Mapper{
		mnemonics: dqflags.Pixel(),
		logger:    ctrl.Log.WithName("dynamicdq"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var defaultMapper = NewMapper()

// Mask derives the canonical mask of src using the canonical pixel mnemonics.
func Mask(src Source) (v1alpha1.Uint32Array, error) {
	return defaultMapper.Mask(src)
}

// Mnemonics returns the name to bit mapping the mapper translates into.
func (m *Mapper) Mnemonics() dqflags.Mnemonics {
	return m.mnemonics
}

// Mask derives the canonical mask of src. When src has no flag definitions a
// copy of its mask is returned unchanged. Names that are not known mnemonics
// are logged and ignored. src is never modified.
func (m *Mapper) Mask(src Source) (v1alpha1.Uint32Array, error) {
	dq := src.DQArray()
	defs := src.DQDefinitions()
	if len(defs) == 0 {
		return *dq.DeepCopy(), nil
	}

	out := v1alpha1.Uint32Array{
		Shape:  append([]int(nil), dq.Shape...),
		Values: make([]uint32, len(dq.Values)),
	}
	if out.Shape == nil {
		out.Shape = []int{0, 0}
	}

	for i, def := range defs {
		bitValue, err := def.BitValue()
		if err != nil {
			return v1alpha1.Uint32Array{}, fmt.Errorf("dq_def row %d: %w", i, err)
		}

		name := strings.TrimSpace(def.Name)
		standard, ok := m.mnemonics.Value(name)
		if !ok {
			m.logger.Info("DQ flag name does not correspond to an existing mnemonic, ignoring",
				"name", name,
				"bit", def.Bit)
			continue
		}

		from, to := bitValue, standard
		if m.inverse {
			from, to = standard, bitValue
		}
		if from == 0 {
			continue
		}

		flagged := 0
		for p, raw := range dq.Values {
			if raw&from != 0 {
				out.Values[p] |= to
				flagged++
			}
		}
		m.logger.V(logging.TRACE).Info("Mapped DQ flag",
			"name", name,
			"from", from,
			"to", to,
			"pixels", flagged)
	}

	return out, nil
}

// Definitions returns the dq_def table that describes a mask derived by m
// from a source declaring defs. A forward mask holds canonical bits, so every
// known flag is moved to its canonical bit and name and the flags Mask
// ignores are dropped. An inverse mask holds the declared bits and defs is
// returned unchanged.
func (m *Mapper) Definitions(defs []v1alpha1.DQDefinition) ([]v1alpha1.DQDefinition, error) {
	if m.inverse || len(defs) == 0 {
		return slices.Clone(defs), nil
	}

	out := make([]v1alpha1.DQDefinition, 0, len(defs))
	seen := make(map[int]bool)
	for i, def := range defs {
		if _, err := def.BitValue(); err != nil {
			return nil, fmt.Errorf("dq_def row %d: %w", i, err)
		}
		standard, ok := m.mnemonics.Value(strings.TrimSpace(def.Name))
		if !ok {
			continue
		}
		for standard != 0 {
			bit := bits.TrailingZeros32(standard)
			standard &^= 1 << bit
			if seen[bit] {
				continue
			}
			seen[bit] = true
			out = append(out, v1alpha1.DQDefinition{
				Bit:         uint32(bit),
				Value:       1 << bit,
				Name:        m.mnemonics.Names(1 << bit)[0],
				Description: def.Description,
			})
		}
	}
	slices.SortFunc(out, func(a, b v1alpha1.DQDefinition) int { return cmp.Compare(a.Bit, b.Bit) })
	return out, nil
}
