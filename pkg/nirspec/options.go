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

package nirspec

import (
	"github.com/jwst-datamodels/nirspec-flat/api/v1alpha1"
	"github.com/jwst-datamodels/nirspec-flat/pkg/datamodel"
	"github.com/jwst-datamodels/nirspec-flat/pkg/dynamicdq"
	refschema "github.com/jwst-datamodels/nirspec-flat/pkg/schema"
)

type fieldValue struct {
	name  string
	value any
}

type options struct {
	fields []fieldValue
	mapper *dynamicdq.Mapper
	store  *datamodel.FileStore
}

// Option overrides or extends model fields at construction, or configures
// the services construction uses.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.mapper == nil {
		o.mapper = dynamicdq.NewMapper()
	}
	if o.store == nil {
		o.store = datamodel.NewFileStore(datamodel.FormatYAML, 0)
	}
	return o
}

// apply assigns the field overrides to m in the order they were given.
func (o *options) apply(m datamodel.Model) error {
	for _, f := range o.fields {
		if err := m.SetField(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// WithField sets a field by name. The value must be of the field's type.
func WithField(name string, value any) Option {
	return func(o *options) {
		o.fields = append(o.fields, fieldValue{name: name, value: value})
	}
}

// WithMeta sets the reference file metadata.
func WithMeta(meta v1alpha1.ReferenceFileMeta) Option {
	return WithField(refschema.FieldMeta, meta)
}

// WithData sets the flat-field data array.
func WithData(a v1alpha1.Float32Array) Option {
	return WithField(refschema.FieldData, a)
}

// WithDQ sets the raw data-quality mask.
func WithDQ(a v1alpha1.Uint32Array) Option {
	return WithField(refschema.FieldDQ, a)
}

// WithErr sets the error array.
func WithErr(a v1alpha1.Float32Array) Option {
	return WithField(refschema.FieldErr, a)
}

// WithWavelength sets the wavelength table.
func WithWavelength(rows []v1alpha1.WavelengthRow) Option {
	return WithField(refschema.FieldWavelength, rows)
}

// WithFlatTable sets the flat table.
func WithFlatTable(rows []v1alpha1.FlatTableRow) Option {
	return WithField(refschema.FieldFlatTable, rows)
}

// WithDQDef sets the data-quality flag definitions.
func WithDQDef(defs []v1alpha1.DQDefinition) Option {
	return WithField(refschema.FieldDQDef, defs)
}

// WithQuadrants sets the quadrant sequence of a quad model.
func WithQuadrants(q v1alpha1.FlatQuadrants) Option {
	return WithField(refschema.FieldQuadrants, q)
}

// WithMapper sets the mapper used to derive canonical DQ masks.
func WithMapper(m *dynamicdq.Mapper) Option {
	return func(o *options) {
		o.mapper = m
	}
}

// WithStore sets the store used to open FileRef initializers.
func WithStore(s *datamodel.FileStore) Option {
	return func(o *options) {
		o.store = s
	}
}
