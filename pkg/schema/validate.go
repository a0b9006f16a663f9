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

package schema

import (
	"fmt"
	"math"
	"slices"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Validate checks obj against the schema registered under id. Every violation
// is reported; the returned error is an aggregate or nil.
func (r *Registry) Validate(id string, obj Accessor) error {
	fields, err := r.Fields(id)
	if err != nil {
		return err
	}
	return validateFields(nil, fields, obj).ToAggregate()
}

func validateFields(parent *field.Path, specs []FieldSpec, obj Accessor) field.ErrorList {
	var errs field.ErrorList
	for _, spec := range specs {
		path := childPath(parent, spec.Name)

		value, ok := obj.Field(spec.Name)
		if !ok {
			if spec.Required {
				errs = append(errs, field.Required(path, ""))
			}
			continue
		}

		switch spec.Kind {
		case KindFloat32Array, KindUint32Array:
			arr, isArray := value.(Array)
			if !isArray {
				errs = append(errs, field.TypeInvalid(path, fmt.Sprintf("%T", value), "expected "+string(spec.Kind)))
				continue
			}
			errs = append(errs, validateArray(path, spec, arr, obj)...)
		case KindSequence:
			seq, isSeq := value.(Sequence)
			if !isSeq {
				errs = append(errs, field.TypeInvalid(path, fmt.Sprintf("%T", value), "expected sequence"))
				continue
			}
			if spec.Items == nil {
				continue
			}
			for i := 0; i < seq.Len(); i++ {
				errs = append(errs, validateFields(path.Index(i), spec.Items.Fields, seq.At(i))...)
			}
		}
	}
	return errs
}

func validateArray(path *field.Path, spec FieldSpec, arr Array, obj Accessor) field.ErrorList {
	var errs field.ErrorList

	dims := arr.Dims()
	if spec.MinDims > 0 && len(dims) < spec.MinDims {
		errs = append(errs, field.Invalid(path, dims, fmt.Sprintf("must have at least %d dimensions", spec.MinDims)))
	}
	if spec.MaxDims > 0 && len(dims) > spec.MaxDims {
		errs = append(errs, field.Invalid(path, dims, fmt.Sprintf("must have at most %d dimensions", spec.MaxDims)))
	}

	size := 1
	for _, d := range dims {
		if d < 0 {
			errs = append(errs, field.Invalid(path, dims, "dimensions must not be negative"))
			return errs
		}
		if d != 0 && size > math.MaxInt/d {
			errs = append(errs, field.Invalid(path, dims, "shape is too large"))
			return errs
		}
		size *= d
	}
	if len(dims) == 0 {
		size = 0
	}
	if size != arr.Len() {
		errs = append(errs, field.Invalid(path, arr.Len(), fmt.Sprintf("shape %v holds %d elements", dims, size)))
	}

	if spec.ShapeOf == "" || arr.Len() == 0 {
		return errs
	}
	other, ok := obj.Field(spec.ShapeOf)
	if !ok {
		return errs
	}
	if ref, isArray := other.(Array); isArray && ref.Len() > 0 && !slices.Equal(ref.Dims(), dims) {
		errs = append(errs, field.Invalid(path, dims, fmt.Sprintf("shape must match %s %v", spec.ShapeOf, ref.Dims())))
	}
	return errs
}

func childPath(parent *field.Path, name string) *field.Path {
	if parent == nil {
		return field.NewPath(name)
	}
	return parent.Child(name)
}
