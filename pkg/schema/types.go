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

// Package schema describes the field layout of reference file models.
//
// Schemas are plain data: a Descriptor names the identifier the external
// schema registry knows the model by and lists the fields the model declares,
// with their kind and dimensionality. Models expose their fields through the
// Accessor interface and are validated against the descriptor bound to their
// schema identifier.
//
// Descriptors can extend one another. A descriptor inherits every field of the
// descriptor named by Extends, so the NIRSpec flat-field family shares the
// reference file metadata declared once in the base schema.
package schema

// Kind is the declared type of a model field.
type Kind string

const (
	// KindFloat32Array is an n-dimensional float32 array.
	KindFloat32Array Kind = "float32_array"
	// KindUint32Array is an n-dimensional uint32 bit-mask array.
	KindUint32Array Kind = "uint32_array"
	// KindTable is a row-oriented table.
	KindTable Kind = "table"
	// KindSequence is an ordered list of items described by FieldSpec.Items.
	KindSequence Kind = "sequence"
	// KindMeta is the reference file metadata block.
	KindMeta Kind = "meta"
)

// FieldSpec declares a single model field.
type FieldSpec struct {
	// Name is the field name as it appears in documents (e.g. "dq_def").
	Name string

	// Kind is the declared type of the field.
	Kind Kind

	// MinDims and MaxDims bound the dimensionality of array fields.
	// Zero means unbounded.
	MinDims int
	MaxDims int

	// Required fields must be set for the model to validate.
	Required bool

	// ShapeOf names another array field whose shape this field must match
	// when both are non-empty.
	ShapeOf string

	// Items describes the elements of a KindSequence field.
	Items *Descriptor
}

// Descriptor is the field layout bound to a schema identifier.
type Descriptor struct {
	// ID is the schema identifier (e.g. "nirspec_flat.schema.yaml").
	ID string

	// Title is a short human readable description.
	Title string

	// Extends names the descriptor this one inherits fields from.
	Extends string

	// Fields lists the fields declared directly by this descriptor.
	Fields []FieldSpec
}

// Field returns the spec of a field declared directly by d.
func (d *Descriptor) Field(name string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Accessor exposes a model's fields by name. The boolean result reports
// whether the field is set.
type Accessor interface {
	Field(name string) (any, bool)
}

// Array is implemented by array-valued fields.
type Array interface {
	// Dims returns the array shape.
	Dims() []int
	// Len returns the number of stored elements.
	Len() int
}

// Sequence is implemented by sequence-valued fields.
type Sequence interface {
	Len() int
	At(i int) Accessor
}
