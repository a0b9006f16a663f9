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

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ReferenceFileMeta holds the metadata every calibration reference file carries.
type ReferenceFileMeta struct {
	// ModelType is the name of the model the document was written by.
	// +optional
	ModelType string `json:"model_type,omitempty"`

	// RefType is the reference file type (e.g. "DFLAT", "FFLAT", "SFLAT").
	// +optional
	RefType string `json:"reftype,omitempty"`

	// Instrument is the instrument the reference file applies to.
	// +kubebuilder:validation:Enum=NIRSPEC
	// +optional
	Instrument string `json:"instrument,omitempty"`

	// Detector is the detector the reference file applies to (e.g. "NRS1").
	// +optional
	Detector string `json:"detector,omitempty"`

	// ExpType is the exposure type selector (e.g. "NRS_FIXEDSLIT").
	// +optional
	ExpType string `json:"exp_type,omitempty"`

	// Filter is the filter wheel element.
	// +optional
	Filter string `json:"filter,omitempty"`

	// Grating is the grating wheel element.
	// +optional
	Grating string `json:"grating,omitempty"`

	// Author is the person or pipeline that created the file.
	// +optional
	Author string `json:"author,omitempty"`

	// Pedigree describes how the file was derived (e.g. "GROUND", "INFLIGHT 2022-07-01 2022-08-01").
	// +optional
	Pedigree string `json:"pedigree,omitempty"`

	// UseAfter is the date after which the reference file applies.
	// +optional
	UseAfter string `json:"useafter,omitempty"`

	// Description is a free text summary.
	// +optional
	Description string `json:"description,omitempty"`
}

// IsZero reports whether no metadata is set.
func (m ReferenceFileMeta) IsZero() bool {
	return m == ReferenceFileMeta{}
}

// Merge overlays the non-empty values of src onto m. An existing model_type
// is kept.
func (m *ReferenceFileMeta) Merge(src ReferenceFileMeta) {
	if m.ModelType == "" {
		m.ModelType = src.ModelType
	}
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&m.RefType, src.RefType},
		{&m.Instrument, src.Instrument},
		{&m.Detector, src.Detector},
		{&m.ExpType, src.ExpType},
		{&m.Filter, src.Filter},
		{&m.Grating, src.Grating},
		{&m.Author, src.Author},
		{&m.Pedigree, src.Pedigree},
		{&m.UseAfter, src.UseAfter},
		{&m.Description, src.Description},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
}

// WavelengthRow is one row of the wavelength table, giving the wavelength of
// an image plane.
type WavelengthRow struct {
	// Wavelength is in micrometers.
	Wavelength float32 `json:"wavelength"`
}

// FlatTableRow is one row of the table describing the quickly varying
// component of the flat field.
type FlatTableRow struct {
	// SlitName identifies the slit or aperture the row applies to.
	// +optional
	SlitName string `json:"slit_name,omitempty"`

	// NElem is the number of valid elements in the vectors below.
	// +kubebuilder:validation:Minimum=0
	NElem int32 `json:"nelem"`

	// Wavelength lists the sample wavelengths in micrometers.
	Wavelength []float32 `json:"wavelength,omitempty"`

	// Data lists the flat-field values at each wavelength.
	Data []float32 `json:"data,omitempty"`

	// Error lists the uncertainty of each flat-field value.
	Error []float32 `json:"error,omitempty"`
}

// ErrInvalidDQDefinition is returned for a dq_def row whose bit and value
// disagree.
var ErrInvalidDQDefinition = errors.New("invalid DQ definition")

// DQDefinition is one row of the data-quality flag definition table.
type DQDefinition struct {
	// Bit is the bit position of the flag in the file's raw mask.
	// +kubebuilder:validation:Maximum=31
	Bit uint32 `json:"bit"`

	// Value is 1<<Bit. When zero it is derived from Bit.
	// +optional
	Value uint32 `json:"value,omitempty"`

	// Name is the flag mnemonic.
	Name string `json:"name"`

	// Description is a free text description of the flag.
	// +optional
	Description string `json:"description,omitempty"`
}

// BitValue returns the raw mask value of the flag.
func (d DQDefinition) BitValue() (uint32, error) {
	if d.Bit > 31 {
		return 0, fmt.Errorf("%w: %s bit %d out of range", ErrInvalidDQDefinition, d.Name, d.Bit)
	}
	want := uint32(1) << d.Bit
	if d.Value != 0 && d.Value != want {
		return 0, fmt.Errorf("%w: %s value %d does not match bit %d", ErrInvalidDQDefinition, d.Name, d.Value, d.Bit)
	}
	return want, nil
}

// FlatFields are the fields of a single flat-field plane set. NirspecFlat
// carries one set; NirspecQuadFlat carries one per quadrant.
type FlatFields struct {
	// Data is the flat-field reference data.
	// +optional
	Data *Float32Array `json:"data,omitempty"`

	// DQ is the data-quality bit mask.
	// +optional
	DQ *Uint32Array `json:"dq,omitempty"`

	// Err is the error estimate.
	// +optional
	Err *Float32Array `json:"err,omitempty"`

	// Wavelength gives the wavelength of each image plane.
	// +optional
	Wavelength []WavelengthRow `json:"wavelength,omitempty"`

	// FlatTable holds the quickly varying component of the flat field.
	// +optional
	FlatTable []FlatTableRow `json:"flat_table,omitempty"`

	// DQDef maps flag names to bits of DQ.
	// +optional
	DQDef []DQDefinition `json:"dq_def,omitempty"`
}

// DQArray returns DQ, or an empty array with the dimensionality of Data when
// DQ is unset. It never mutates the receiver.
func (in *FlatFields) DQArray() Uint32Array {
	if in.DQ != nil {
		return *in.DQ
	}
	return Uint32Array{Shape: emptyShape(in.dataDims())}
}

// ErrArray returns Err, or an empty array with the dimensionality of Data
// when Err is unset. It never mutates the receiver.
func (in *FlatFields) ErrArray() Float32Array {
	if in.Err != nil {
		return *in.Err
	}
	return Float32Array{Shape: emptyShape(in.dataDims())}
}

// DQDefinitions returns the flag definition table.
func (in *FlatFields) DQDefinitions() []DQDefinition {
	return in.DQDef
}

// MaterializeDefaults allocates DQ and Err when they are unset so that
// neither is absent afterwards.
func (in *FlatFields) MaterializeDefaults() {
	if in.DQ == nil {
		dq := in.DQArray()
		in.DQ = &dq
	}
	if in.Err == nil {
		e := in.ErrArray()
		in.Err = &e
	}
}

func (in *FlatFields) dataDims() int {
	if in.Data == nil {
		return 0
	}
	return len(in.Data.Shape)
}

// NRSFlat is the base of the NIRSpec flat-field reference file family. It
// binds the family schema and adds no fields beyond the reference file
// metadata.
// +kubebuilder:object:root=true
type NRSFlat struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// Meta is the reference file metadata.
	// +optional
	Meta ReferenceFileMeta `json:"meta,omitempty"`
}

// NirspecFlat is a single-quadrant NIRSpec flat-field reference file.
// +kubebuilder:object:root=true
// +kubebuilder:resource:shortName=nrsflat
// +kubebuilder:printcolumn:name="RefType",type=string,JSONPath=".meta.reftype"
// +kubebuilder:printcolumn:name="Detector",type=string,JSONPath=".meta.detector"
type NirspecFlat struct {
	NRSFlat `json:",inline"`

	FlatFields `json:",inline"`
}

// FlatQuadrant is one entry of NirspecQuadFlat.Quadrants.
type FlatQuadrant struct {
	FlatFields `json:",inline"`
}

// FlatQuadrants is the ordered quadrant sequence of a NirspecQuadFlat.
type FlatQuadrants []FlatQuadrant

// NirspecQuadFlat is a NIRSpec flat-field reference file whose planes differ
// by quadrant.
// +kubebuilder:object:root=true
// +kubebuilder:resource:shortName=nrsquadflat
type NirspecQuadFlat struct {
	NRSFlat `json:",inline"`

	// Quadrants holds one flat-field plane set per quadrant.
	// +optional
	Quadrants FlatQuadrants `json:"quadrants,omitempty"`

	// DQDef maps flag names to bits for the model as a whole.
	// +optional
	DQDef []DQDefinition `json:"dq_def,omitempty"`
}

// Item returns a new, empty quadrant entry.
func (FlatQuadrants) Item() FlatQuadrant {
	return FlatQuadrant{}
}

// Append adds item to the sequence and returns its index.
func (q *FlatQuadrants) Append(item FlatQuadrant) int {
	*q = append(*q, item)
	return len(*q) - 1
}

// NRSFlatList contains a list of NRSFlat models.
// +kubebuilder:object:root=true
type NRSFlatList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`

	Items []NRSFlat `json:"items"`
}

// NirspecFlatList contains a list of NirspecFlat models.
// +kubebuilder:object:root=true
type NirspecFlatList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`

	Items []NirspecFlat `json:"items"`
}

// NirspecQuadFlatList contains a list of NirspecQuadFlat models.
// +kubebuilder:object:root=true
type NirspecQuadFlatList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`

	Items []NirspecQuadFlat `json:"items"`
}

func init() {
	SchemeBuilder.Register(
		&NRSFlat{}, &NRSFlatList{},
		&NirspecFlat{}, &NirspecFlatList{},
		&NirspecQuadFlat{}, &NirspecQuadFlatList{},
	)
}

// Model type names written to meta.model_type.
const (
	NRSFlatModelType         = "NRSFlatModel"
	NirspecFlatModelType     = "NirspecFlatModel"
	NirspecQuadFlatModelType = "NirspecQuadFlatModel"
)
