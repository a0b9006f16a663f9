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

package v1alpha1

import (
	"fmt"
	"math"
	"slices"
)

// Float32Array is a dense float32 array stored in row-major order.
// A nil *Float32Array field is absent; a non-nil array with no elements is
// empty but typed.
type Float32Array struct {
	// Shape lists the array dimensions, slowest varying first.
	Shape []int `json:"shape"`

	// Values holds the elements in row-major order.
	// +optional
	Values []float32 `json:"values,omitempty"`
}

// Uint32Array is a dense uint32 bit-mask array stored in row-major order.
type Uint32Array struct {
	// Shape lists the array dimensions, slowest varying first.
	Shape []int `json:"shape"`

	// Values holds the elements in row-major order.
	// +optional
	Values []uint32 `json:"values,omitempty"`
}

// NewFloat32Array returns an array of the given shape. values may be nil, in
// which case the array is zero filled.
func NewFloat32Array(shape []int, values []float32) (Float32Array, error) {
	n, err := shapeSize(shape)
	if err != nil {
		return Float32Array{}, err
	}
	if values == nil {
		values = make([]float32, n)
	}
	if len(values) != n {
		return Float32Array{}, fmt.Errorf("shape %v holds %d elements, got %d", shape, n, len(values))
	}
	return Float32Array{Shape: slices.Clone(shape), Values: slices.Clone(values)}, nil
}

// NewUint32Array returns an array of the given shape. values may be nil, in
// which case the array is zero filled.
func NewUint32Array(shape []int, values []uint32) (Uint32Array, error) {
	n, err := shapeSize(shape)
	if err != nil {
		return Uint32Array{}, err
	}
	if values == nil {
		values = make([]uint32, n)
	}
	if len(values) != n {
		return Uint32Array{}, fmt.Errorf("shape %v holds %d elements, got %d", shape, n, len(values))
	}
	return Uint32Array{Shape: slices.Clone(shape), Values: slices.Clone(values)}, nil
}

// Float32Array2D builds a two dimensional array from rows of equal length.
func Float32Array2D(rows [][]float32) (Float32Array, error) {
	shape, err := rowShape(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return Float32Array{}, err
	}
	values := make([]float32, 0, shape[0]*shape[1])
	for _, r := range rows {
		values = append(values, r...)
	}
	return Float32Array{Shape: shape, Values: values}, nil
}

// Uint32Array2D builds a two dimensional array from rows of equal length.
func Uint32Array2D(rows [][]uint32) (Uint32Array, error) {
	shape, err := rowShape(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return Uint32Array{}, err
	}
	values := make([]uint32, 0, shape[0]*shape[1])
	for _, r := range rows {
		values = append(values, r...)
	}
	return Uint32Array{Shape: shape, Values: values}, nil
}

// Dims returns the array shape.
func (a *Float32Array) Dims() []int { return a.Shape }

// Len returns the number of stored elements.
func (a *Float32Array) Len() int { return len(a.Values) }

// IsEmpty reports whether the array holds no elements.
func (a *Float32Array) IsEmpty() bool { return a == nil || len(a.Values) == 0 }

// Equal reports whether a and b have the same shape and elements.
func (a *Float32Array) Equal(b *Float32Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	return slices.Equal(a.Shape, b.Shape) && slices.Equal(a.Values, b.Values)
}

// Dims returns the array shape.
func (a *Uint32Array) Dims() []int { return a.Shape }

// Len returns the number of stored elements.
func (a *Uint32Array) Len() int { return len(a.Values) }

// IsEmpty reports whether the array holds no elements.
func (a *Uint32Array) IsEmpty() bool { return a == nil || len(a.Values) == 0 }

// Equal reports whether a and b have the same shape and elements.
func (a *Uint32Array) Equal(b *Uint32Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	return slices.Equal(a.Shape, b.Shape) && slices.Equal(a.Values, b.Values)
}

// emptyShape returns the zero-sized shape with ndim dimensions.
func emptyShape(ndim int) []int {
	if ndim <= 0 {
		ndim = 2
	}
	return make([]int, ndim)
}

func shapeSize(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, nil
	}
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("negative dimension in shape %v", shape)
		}
		if d != 0 && n > math.MaxInt/d {
			return 0, fmt.Errorf("shape %v is too large", shape)
		}
		n *= d
	}
	return n, nil
}

func rowShape(nrows int, rowLen func(int) int) ([]int, error) {
	if nrows == 0 {
		return []int{0, 0}, nil
	}
	ncols := rowLen(0)
	for i := 1; i < nrows; i++ {
		if rowLen(i) != ncols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, rowLen(i), ncols)
		}
	}
	return []int{nrows, ncols}, nil
}
