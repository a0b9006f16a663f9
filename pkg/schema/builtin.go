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

// Schema identifiers understood by the external schema registry. These must
// stay bit-exact.
const (
	ReferenceFileID   = "referencefile.schema.yaml"
	NRSFlatID         = "nirspec.flat.schema.yaml"
	NirspecFlatID     = "nirspec_flat.schema.yaml"
	NirspecQuadFlatID = "nirspec_quad_flat.schema.yaml"

	// NirspecQuadFlatItemID identifies the layout of one quadrant entry.
	NirspecQuadFlatItemID = NirspecQuadFlatID + "#/quadrants/items"
)

// Field names shared by the flat-field schemas.
const (
	FieldMeta       = "meta"
	FieldData       = "data"
	FieldDQ         = "dq"
	FieldErr        = "err"
	FieldWavelength = "wavelength"
	FieldFlatTable  = "flat_table"
	FieldDQDef      = "dq_def"
	FieldQuadrants  = "quadrants"
)

// QuadrantFields lists the per-quadrant fields in document order.
var QuadrantFields = []string{
	FieldData,
	FieldDQ,
	FieldErr,
	FieldWavelength,
	FieldFlatTable,
	FieldDQDef,
}

func flatFieldSpecs() []FieldSpec {
	return []FieldSpec{
		{Name: FieldData, Kind: KindFloat32Array, MinDims: 2, MaxDims: 3},
		{Name: FieldDQ, Kind: KindUint32Array, MinDims: 2, MaxDims: 3, ShapeOf: FieldData},
		{Name: FieldErr, Kind: KindFloat32Array, MinDims: 2, MaxDims: 3, ShapeOf: FieldData},
		{Name: FieldWavelength, Kind: KindTable},
		{Name: FieldFlatTable, Kind: KindTable},
		{Name: FieldDQDef, Kind: KindTable},
	}
}

var referenceFile = &Descriptor{
	ID:    ReferenceFileID,
	Title: "Default reference file schema",
	Fields: []FieldSpec{
		{Name: FieldMeta, Kind: KindMeta},
	},
}

var nrsFlat = &Descriptor{
	ID:      NRSFlatID,
	Title:   "NIRSpec flat-field reference file",
	Extends: ReferenceFileID,
}

var nirspecFlat = &Descriptor{
	ID:      NirspecFlatID,
	Title:   "NIRSpec flat-field reference file model",
	Extends: NRSFlatID,
	Fields:  flatFieldSpecs(),
}

var nirspecQuadFlatItem = &Descriptor{
	ID:     NirspecQuadFlatItemID,
	Title:  "NIRSpec flat-field quadrant",
	Fields: flatFieldSpecs(),
}

var nirspecQuadFlat = &Descriptor{
	ID:      NirspecQuadFlatID,
	Title:   "NIRSpec flat-field reference file model, by quadrant",
	Extends: NRSFlatID,
	Fields: []FieldSpec{
		{Name: FieldQuadrants, Kind: KindSequence, Items: nirspecQuadFlatItem},
		{Name: FieldDQDef, Kind: KindTable},
	},
}

// Default is the registry holding the built-in NIRSpec flat-field schemas.
var Default = NewRegistry()

func init() {
	for _, d := range []*Descriptor{referenceFile, nrsFlat, nirspecFlat, nirspecQuadFlatItem, nirspecQuadFlat} {
		Default.MustRegister(d)
	}
}
