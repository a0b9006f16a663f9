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
	"errors"
	"fmt"

	refschema "github.com/jwst-datamodels/nirspec-flat/pkg/schema"
)

var (
	// ErrUnknownField is returned when a field is not declared by the model's schema.
	ErrUnknownField = errors.New("unknown field")
	// ErrFieldType is returned when a value cannot be assigned to a field.
	ErrFieldType = errors.New("value type not accepted by field")
)

// FieldError reports a failed field assignment.
type FieldError struct {
	Schema string
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %q: %v", e.Schema, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func typeError(schemaID, name string, want string, got any) error {
	return &FieldError{
		Schema: schemaID,
		Field:  name,
		Err:    fmt.Errorf("%w: expected %s, got %T", ErrFieldType, want, got),
	}
}

// SchemaID returns the schema identifier of the model family.
func (in *NRSFlat) SchemaID() string { return refschema.NRSFlatID }

// FieldNames returns the top-level field names.
func (in *NRSFlat) FieldNames() []string { return []string{refschema.FieldMeta} }

// Field returns the named field and whether it is set.
func (in *NRSFlat) Field(name string) (any, bool) {
	if name == refschema.FieldMeta {
		return in.Meta, !in.Meta.IsZero()
	}
	return nil, false
}

// SetField assigns the named field.
func (in *NRSFlat) SetField(name string, value any) error {
	return in.setField(in.SchemaID(), name, value)
}

func (in *NRSFlat) setField(schemaID, name string, value any) error {
	if name != refschema.FieldMeta {
		return &FieldError{Schema: schemaID, Field: name, Err: ErrUnknownField}
	}
	meta, err := asMeta(schemaID, name, value)
	if err != nil {
		return err
	}
	// model_type names the model that owns the document, not the source.
	if in.Meta.ModelType != "" {
		meta.ModelType = in.Meta.ModelType
	}
	in.Meta = meta
	return nil
}

// MergeField merges value into the named field. Metadata is merged key by
// key; see ReferenceFileMeta.Merge.
func (in *NRSFlat) MergeField(name string, value any) error {
	return in.mergeField(in.SchemaID(), name, value)
}

func (in *NRSFlat) mergeField(schemaID, name string, value any) error {
	if name != refschema.FieldMeta {
		return &FieldError{Schema: schemaID, Field: name, Err: ErrUnknownField}
	}
	meta, err := asMeta(schemaID, name, value)
	if err != nil {
		return err
	}
	in.Meta.Merge(meta)
	return nil
}

func asMeta(schemaID, name string, value any) (ReferenceFileMeta, error) {
	switch v := value.(type) {
	case nil:
	case ReferenceFileMeta:
		return v, nil
	case *ReferenceFileMeta:
		if v != nil {
			return *v, nil
		}
	default:
		return ReferenceFileMeta{}, typeError(schemaID, name, "ReferenceFileMeta", value)
	}
	return ReferenceFileMeta{}, nil
}

// SchemaID returns the schema identifier of the model.
func (in *NirspecFlat) SchemaID() string { return refschema.NirspecFlatID }

// FieldNames returns the top-level field names.
func (in *NirspecFlat) FieldNames() []string {
	return append([]string{refschema.FieldMeta}, refschema.QuadrantFields...)
}

// Field returns the named field and whether it is set.
func (in *NirspecFlat) Field(name string) (any, bool) {
	if name == refschema.FieldMeta {
		return in.NRSFlat.Field(name)
	}
	v, ok, _ := in.FlatFields.field(name)
	return v, ok
}

// SetField assigns a copy of value to the named field. A nil value unsets it.
func (in *NirspecFlat) SetField(name string, value any) error {
	if name == refschema.FieldMeta {
		return in.NRSFlat.setField(in.SchemaID(), name, value)
	}
	return in.FlatFields.setField(in.SchemaID(), name, value)
}

// MergeField merges metadata key by key and assigns every other field as
// SetField does.
func (in *NirspecFlat) MergeField(name string, value any) error {
	if name == refschema.FieldMeta {
		return in.NRSFlat.mergeField(in.SchemaID(), name, value)
	}
	return in.SetField(name, value)
}

// SchemaID returns the schema identifier of a quadrant entry.
func (in *FlatQuadrant) SchemaID() string { return refschema.NirspecQuadFlatItemID }

// FieldNames returns the quadrant field names.
func (in *FlatQuadrant) FieldNames() []string {
	return append([]string(nil), refschema.QuadrantFields...)
}

// Field returns the named field and whether it is set.
func (in *FlatQuadrant) Field(name string) (any, bool) {
	v, ok, _ := in.FlatFields.field(name)
	return v, ok
}

// SetField assigns a copy of value to the named field. A nil value unsets it.
func (in *FlatQuadrant) SetField(name string, value any) error {
	return in.FlatFields.setField(in.SchemaID(), name, value)
}

// Len returns the number of quadrants.
func (q FlatQuadrants) Len() int { return len(q) }

// At returns the field accessor of quadrant i.
func (q FlatQuadrants) At(i int) refschema.Accessor { return &q[i] }

// SchemaID returns the schema identifier of the model.
func (in *NirspecQuadFlat) SchemaID() string { return refschema.NirspecQuadFlatID }

// FieldNames returns the top-level field names.
func (in *NirspecQuadFlat) FieldNames() []string {
	return []string{refschema.FieldMeta, refschema.FieldQuadrants, refschema.FieldDQDef}
}

// Field returns the named field and whether it is set.
func (in *NirspecQuadFlat) Field(name string) (any, bool) {
	switch name {
	case refschema.FieldMeta:
		return in.NRSFlat.Field(name)
	case refschema.FieldQuadrants:
		return in.Quadrants, len(in.Quadrants) > 0
	case refschema.FieldDQDef:
		return in.DQDef, in.DQDef != nil
	}
	return nil, false
}

// SetField assigns a copy of value to the named field. A nil value unsets it.
func (in *NirspecQuadFlat) SetField(name string, value any) error {
	switch name {
	case refschema.FieldMeta:
		return in.NRSFlat.setField(in.SchemaID(), name, value)
	case refschema.FieldQuadrants:
		switch v := value.(type) {
		case nil:
			in.Quadrants = nil
		case FlatQuadrants:
			in.Quadrants = copyQuadrants(v)
		case []FlatQuadrant:
			in.Quadrants = copyQuadrants(v)
		default:
			return typeError(in.SchemaID(), name, "FlatQuadrants", value)
		}
		return nil
	case refschema.FieldDQDef:
		defs, ok := value.([]DQDefinition)
		if !ok && value != nil {
			return typeError(in.SchemaID(), name, "[]DQDefinition", value)
		}
		in.DQDef = copyDQDef(defs)
		return nil
	}
	return &FieldError{Schema: in.SchemaID(), Field: name, Err: ErrUnknownField}
}

// MergeField merges metadata key by key and assigns every other field as
// SetField does.
func (in *NirspecQuadFlat) MergeField(name string, value any) error {
	if name == refschema.FieldMeta {
		return in.NRSFlat.mergeField(in.SchemaID(), name, value)
	}
	return in.SetField(name, value)
}

// field returns the value of a per-quadrant field. The last result reports
// whether the name is a known field.
func (in *FlatFields) field(name string) (any, bool, bool) {
	switch name {
	case refschema.FieldData:
		return in.Data, in.Data != nil, true
	case refschema.FieldDQ:
		return in.DQ, in.DQ != nil, true
	case refschema.FieldErr:
		return in.Err, in.Err != nil, true
	case refschema.FieldWavelength:
		return in.Wavelength, in.Wavelength != nil, true
	case refschema.FieldFlatTable:
		return in.FlatTable, in.FlatTable != nil, true
	case refschema.FieldDQDef:
		return in.DQDef, in.DQDef != nil, true
	}
	return nil, false, false
}

func (in *FlatFields) setField(schemaID, name string, value any) error {
	switch name {
	case refschema.FieldData, refschema.FieldErr:
		arr, ok := asFloat32Array(value)
		if !ok {
			return typeError(schemaID, name, "Float32Array", value)
		}
		if name == refschema.FieldData {
			in.Data = arr
		} else {
			in.Err = arr
		}
	case refschema.FieldDQ:
		arr, ok := asUint32Array(value)
		if !ok {
			return typeError(schemaID, name, "Uint32Array", value)
		}
		in.DQ = arr
	case refschema.FieldWavelength:
		rows, ok := value.([]WavelengthRow)
		if !ok && value != nil {
			return typeError(schemaID, name, "[]WavelengthRow", value)
		}
		in.Wavelength = copyWavelength(rows)
	case refschema.FieldFlatTable:
		rows, ok := value.([]FlatTableRow)
		if !ok && value != nil {
			return typeError(schemaID, name, "[]FlatTableRow", value)
		}
		in.FlatTable = copyFlatTable(rows)
	case refschema.FieldDQDef:
		defs, ok := value.([]DQDefinition)
		if !ok && value != nil {
			return typeError(schemaID, name, "[]DQDefinition", value)
		}
		in.DQDef = copyDQDef(defs)
	default:
		return &FieldError{Schema: schemaID, Field: name, Err: ErrUnknownField}
	}
	return nil
}

func asFloat32Array(value any) (*Float32Array, bool) {
	switch v := value.(type) {
	case nil:
		return nil, true
	case *Float32Array:
		return v.DeepCopy(), true
	case Float32Array:
		return v.DeepCopy(), true
	}
	return nil, false
}

func asUint32Array(value any) (*Uint32Array, bool) {
	switch v := value.(type) {
	case nil:
		return nil, true
	case *Uint32Array:
		return v.DeepCopy(), true
	case Uint32Array:
		return v.DeepCopy(), true
	}
	return nil, false
}

func copyWavelength(in []WavelengthRow) []WavelengthRow {
	if in == nil {
		return nil
	}
	return append(make([]WavelengthRow, 0, len(in)), in...)
}

func copyFlatTable(in []FlatTableRow) []FlatTableRow {
	if in == nil {
		return nil
	}
	out := make([]FlatTableRow, len(in))
	for i := range in {
		in[i].DeepCopyInto(&out[i])
	}
	return out
}

func copyDQDef(in []DQDefinition) []DQDefinition {
	if in == nil {
		return nil
	}
	return append(make([]DQDefinition, 0, len(in)), in...)
}

func copyQuadrants(in []FlatQuadrant) FlatQuadrants {
	if in == nil {
		return nil
	}
	out := make(FlatQuadrants, len(in))
	for i := range in {
		in[i].DeepCopyInto(&out[i])
	}
	return out
}
