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

// Package datamodel provides the generic reference file model services:
// schema validation, field-by-name update and document persistence.
//
// Concrete models live in api/v1alpha1. Each one implements Model, binding a
// schema identifier from pkg/schema to typed fields.
package datamodel

import (
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"

	refschema "github.com/jwst-datamodels/nirspec-flat/pkg/schema"
)

// Model is a schema-bound reference file model.
type Model interface {
	runtime.Object

	// SchemaID returns the identifier of the schema the model conforms to.
	SchemaID() string

	// FieldNames returns the model's top-level field names.
	FieldNames() []string

	// Field returns the named field and whether it is set.
	Field(name string) (any, bool)

	// SetField assigns a copy of value to the named field.
	SetField(name string, value any) error
}

// Validate checks m against its schema in the default registry.
func Validate(m Model) error {
	return ValidateWith(refschema.Default, m)
}

// ValidateWith checks m against its schema in r.
func ValidateWith(r *refschema.Registry, m Model) error {
	if err := r.Validate(m.SchemaID(), m); err != nil {
		return fmt.Errorf("%s does not validate against %s: %w", kindOf(m), m.SchemaID(), err)
	}
	return nil
}

// Merger is implemented by models whose fields can be merged rather than
// replaced.
type Merger interface {
	// MergeField merges a copy of value into the named field.
	MergeField(name string, value any) error
}

// Update copies every set top-level field of src that dst's schema also
// declares. Unset fields of src leave dst untouched. When dst is a Merger,
// fields are merged so that values set only on dst survive.
func Update(dst, src Model) error {
	set := dst.SetField
	if m, ok := dst.(Merger); ok {
		set = m.MergeField
	}
	shared, err := refschema.Default.Shared(dst.SchemaID(), src.SchemaID())
	if err != nil {
		return err
	}
	for _, name := range shared {
		value, ok := src.Field(name)
		if !ok {
			continue
		}
		if err := set(name, value); err != nil {
			return fmt.Errorf("updating %s from %s: %w", dst.SchemaID(), src.SchemaID(), err)
		}
	}
	return nil
}

func kindOf(obj runtime.Object) string {
	if gvks, _, err := Scheme.ObjectKinds(obj); err == nil && len(gvks) > 0 {
		return gvks[0].Kind
	}
	return fmt.Sprintf("%T", obj)
}
