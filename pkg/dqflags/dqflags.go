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

// Package dqflags defines the canonical pixel data-quality mnemonics.
//
// Each mnemonic owns one bit of a 32-bit pixel mask. Reference files carry
// their own flag definition table (dq_def) mapping file-specific bit values
// to these names; the dynamicdq package uses the table below to translate a
// file's raw mask into canonical bit positions.
package dqflags

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// Canonical pixel flags.
const (
	DoNotUse        uint32 = 1 << 0
	Saturated       uint32 = 1 << 1
	JumpDet         uint32 = 1 << 2
	Dropout         uint32 = 1 << 3
	Outlier         uint32 = 1 << 4
	Persistence     uint32 = 1 << 5
	ADFloor         uint32 = 1 << 6
	ChargeLoss      uint32 = 1 << 7
	UnreliableError uint32 = 1 << 8
	NonScience      uint32 = 1 << 9
	Dead            uint32 = 1 << 10
	Hot             uint32 = 1 << 11
	Warm            uint32 = 1 << 12
	LowQE           uint32 = 1 << 13
	RC              uint32 = 1 << 14
	Telegraph       uint32 = 1 << 15
	Nonlinear       uint32 = 1 << 16
	BadRefPixel     uint32 = 1 << 17
	NoFlatField     uint32 = 1 << 18
	NoGainValue     uint32 = 1 << 19
	NoLinCorr       uint32 = 1 << 20
	NoSatCheck      uint32 = 1 << 21
	UnreliableBias  uint32 = 1 << 22
	UnreliableDark  uint32 = 1 << 23
	UnreliableSlope uint32 = 1 << 24
	UnreliableFlat  uint32 = 1 << 25
	Open            uint32 = 1 << 26
	AdjOpen         uint32 = 1 << 27
	FluxEstimated   uint32 = 1 << 28
	MSAFailedOpen   uint32 = 1 << 29
	OtherBadPixel   uint32 = 1 << 30
	ReferencePixel  uint32 = 1 << 31
)

// Mnemonics maps flag names to their canonical bit value.
type Mnemonics map[string]uint32

var pixel = Mnemonics{
	"DO_NOT_USE":       DoNotUse,
	"SATURATED":        Saturated,
	"JUMP_DET":         JumpDet,
	"DROPOUT":          Dropout,
	"OUTLIER":          Outlier,
	"PERSISTENCE":      Persistence,
	"AD_FLOOR":         ADFloor,
	"CHARGELOSS":       ChargeLoss,
	"UNRELIABLE_ERROR": UnreliableError,
	"NON_SCIENCE":      NonScience,
	"DEAD":             Dead,
	"HOT":              Hot,
	"WARM":             Warm,
	"LOW_QE":           LowQE,
	"RC":               RC,
	"TELEGRAPH":        Telegraph,
	"NONLINEAR":        Nonlinear,
	"BAD_REF_PIXEL":    BadRefPixel,
	"NO_FLAT_FIELD":    NoFlatField,
	"NO_GAIN_VALUE":    NoGainValue,
	"NO_LIN_CORR":      NoLinCorr,
	"NO_SAT_CHECK":     NoSatCheck,
	"UNRELIABLE_BIAS":  UnreliableBias,
	"UNRELIABLE_DARK":  UnreliableDark,
	"UNRELIABLE_SLOPE": UnreliableSlope,
	"UNRELIABLE_FLAT":  UnreliableFlat,
	"OPEN":             Open,
	"ADJ_OPEN":         AdjOpen,
	"FLUX_ESTIMATED":   FluxEstimated,
	"MSA_FAILED_OPEN":  MSAFailedOpen,
	"OTHER_BAD_PIXEL":  OtherBadPixel,
	"REFERENCE_PIXEL":  ReferencePixel,
	"GOOD":             0,
}

// ErrUnknownMnemonic is returned when an alias targets a name that is not a
// known mnemonic.
var ErrUnknownMnemonic = errors.New("unknown DQ mnemonic")

// Pixel returns a copy of the canonical pixel mnemonics.
func Pixel() Mnemonics {
	out := make(Mnemonics, len(pixel))
	for k, v := range pixel {
		out[k] = v
	}
	return out
}

// Value returns the canonical bit value for name.
func (m Mnemonics) Value(name string) (uint32, bool) {
	v, ok := m[name]
	return v, ok
}

// WithAliases returns a copy of m where every alias resolves to the value of
// its canonical name. Alias keys are case-sensitive, matching dq_def names.
func (m Mnemonics) WithAliases(aliases map[string]string) (Mnemonics, error) {
	out := make(Mnemonics, len(m)+len(aliases))
	for k, v := range m {
		out[k] = v
	}
	for alias, canonical := range aliases {
		v, ok := m[strings.TrimSpace(canonical)]
		if !ok {
			return nil, fmt.Errorf("alias %q: %w: %s", alias, ErrUnknownMnemonic, canonical)
		}
		out[strings.TrimSpace(alias)] = v
	}
	return out, nil
}

// Names decodes value into the mnemonics whose bits are set, ordered by bit.
// Names sharing a bit are reported once, preferring the canonical mnemonic.
func (m Mnemonics) Names(value uint32) []string {
	byBit := make(map[int]string)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := m[k]
		if v == 0 || bits.OnesCount32(v) != 1 {
			continue
		}
		bit := bits.TrailingZeros32(v)
		prev, taken := byBit[bit]
		if !taken || (!isCanonical(prev) && isCanonical(k)) {
			byBit[bit] = k
		}
	}

	var names []string
	for bit := 0; bit < 32; bit++ {
		if value&(1<<bit) == 0 {
			continue
		}
		if name, ok := byBit[bit]; ok {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("BIT_%d", bit))
		}
	}
	return names
}

func isCanonical(name string) bool {
	_, ok := pixel[name]
	return ok
}
