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
)

// NRSFlatInit selects how NewNRSFlat builds its model: Empty, FileRef or
// FromNRSFlat.
type NRSFlatInit interface {
	nrsFlatInit()
}

// FlatInit selects how NewNirspecFlat builds its model: Empty, FileRef or
// FromFlat.
type FlatInit interface {
	flatInit()
}

// QuadInit selects how NewNirspecQuadFlat builds its model: Empty, FileRef,
// FromQuad or Promote.
type QuadInit interface {
	quadInit()
}

// Empty builds a model with no fields set beyond schema defaults.
type Empty struct{}

// FileRef builds a model from a reference file document.
type FileRef struct {
	Path string
}

// FromNRSFlat builds a model from a copy of an existing family model.
type FromNRSFlat struct {
	Model *v1alpha1.NRSFlat
}

// FromFlat builds a model from a copy of an existing single-quadrant model.
type FromFlat struct {
	Model *v1alpha1.NirspecFlat
}

// FromQuad builds a model from a copy of an existing quad model.
type FromQuad struct {
	Model *v1alpha1.NirspecQuadFlat
}

// Promote builds a quad model whose only quadrant is a copy of Flat.
type Promote struct {
	Flat *v1alpha1.NirspecFlat
}

func (Empty) nrsFlatInit() {}
func (Empty) flatInit()    {}
func (Empty) quadInit()    {}

func (FileRef) nrsFlatInit() {}
func (FileRef) flatInit()    {}
func (FileRef) quadInit()    {}

func (FromNRSFlat) nrsFlatInit() {}
func (FromFlat) flatInit()       {}
func (FromQuad) quadInit()       {}
func (Promote) quadInit()        {}
