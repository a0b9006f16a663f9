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

// Package nirspec constructs NIRSpec flat-field reference file models.
//
// Construction follows the reference file model contract: a model is built
// from an initializer (nothing, a document on disk or an existing model),
// field overrides given as options are applied, and the result is validated
// against the model's schema. The flat-field models then normalize their
// data-quality masks:
//
//   - NewNirspecFlat derives the canonical DQ mask whenever a mask or flag
//     definition table is present and guarantees dq and err are allocated.
//   - NewNirspecQuadFlat with a Promote initializer (or PromoteNirspecFlat)
//     copies a single-quadrant model into quadrant zero of a new quad model
//     and derives that quadrant's mask against its own flag definitions.
package nirspec

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/jwst-datamodels/nirspec-flat/api/v1alpha1"
	"github.com/jwst-datamodels/nirspec-flat/internal/logging"
	"github.com/jwst-datamodels/nirspec-flat/pkg/datamodel"
)

// Instrument is the instrument name stamped on new models.
const Instrument = "NIRSPEC"

var (
	// ErrNilModel is returned when an initializer wraps a nil model.
	ErrNilModel = errors.New("initializer model is nil")
	// ErrWrongKind is returned when a reference file holds another model kind.
	ErrWrongKind = errors.New("reference file holds a different model kind")
	// ErrUnsupportedInit is returned for an initializer the constructor does not accept.
	ErrUnsupportedInit = errors.New("unsupported initializer")
)

// NewNRSFlat builds a model of the flat-field family base schema.
func NewNRSFlat(ctx context.Context, init NRSFlatInit, opts ...Option) (*v1alpha1.NRSFlat, error) {
	o := newOptions(opts)

	var m *v1alpha1.NRSFlat
	switch in := init.(type) {
	case nil, Empty:
		m = &v1alpha1.NRSFlat{}
	case FileRef:
		obj, err := o.store.Open(in.Path)
		if err != nil {
			return nil, err
		}
		var ok bool
		if m, ok = obj.(*v1alpha1.NRSFlat); !ok {
			return nil, fmt.Errorf("%w: %s holds %T, want NRSFlat", ErrWrongKind, in.Path, obj)
		}
	case FromNRSFlat:
		if in.Model == nil {
			return nil, ErrNilModel
		}
		m = in.Model.DeepCopy()
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedInit, init)
	}

	if err := finish(m, m, o, v1alpha1.NRSFlatModelType); err != nil {
		return nil, err
	}
	ctrl.LoggerFrom(ctx).V(logging.DEBUG).Info("Constructed model",
		"schema", m.SchemaID(),
		"uid", m.UID)
	return m, nil
}

// NewNirspecFlat builds a single-quadrant flat-field model. After base
// construction the DQ mask is rederived against dq_def when either is
// present, and dq and err are allocated if still unset.
func NewNirspecFlat(ctx context.Context, init FlatInit, opts ...Option) (*v1alpha1.NirspecFlat, error) {
	logger := ctrl.LoggerFrom(ctx)
	o := newOptions(opts)

	m, err := newFlatBase(init, o)
	if err != nil {
		return nil, err
	}

	if m.DQ != nil || m.DQDef != nil {
		dq, err := o.mapper.Mask(m)
		if err != nil {
			return nil, fmt.Errorf("deriving dq mask for %s: %w", m.SchemaID(), err)
		}
		m.DQ = &dq
		logger.V(logging.DEBUG).Info("Derived canonical DQ mask",
			"schema", m.SchemaID(),
			"shape", dq.Shape,
			"definitions", len(m.DQDef))
	}

	m.MaterializeDefaults()

	logger.V(logging.DEBUG).Info("Constructed model",
		"schema", m.SchemaID(),
		"uid", m.UID)
	return m, nil
}

func newFlatBase(init FlatInit, o *options) (*v1alpha1.NirspecFlat, error) {
	var m *v1alpha1.NirspecFlat
	switch in := init.(type) {
	case nil, Empty:
		m = &v1alpha1.NirspecFlat{}
	case FileRef:
		obj, err := o.store.Open(in.Path)
		if err != nil {
			return nil, err
		}
		var ok bool
		if m, ok = obj.(*v1alpha1.NirspecFlat); !ok {
			return nil, fmt.Errorf("%w: %s holds %T, want NirspecFlat", ErrWrongKind, in.Path, obj)
		}
	case FromFlat:
		if in.Model == nil {
			return nil, ErrNilModel
		}
		m = in.Model.DeepCopy()
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedInit, init)
	}

	if err := finish(m, &m.NRSFlat, o, v1alpha1.NirspecFlatModelType); err != nil {
		return nil, err
	}
	return m, nil
}

// finish stamps identity and defaults, applies field overrides and validates.
func finish(m datamodel.Model, base *v1alpha1.NRSFlat, o *options, modelType string) error {
	stamp(m, base, modelType)
	if err := o.apply(m); err != nil {
		return err
	}
	stamp(m, base, modelType)
	return datamodel.Validate(m)
}

// stamp fills the kind, UID and metadata defaults that are still unset.
func stamp(obj runtime.Object, base *v1alpha1.NRSFlat, modelType string) {
	if gvks, _, err := datamodel.Scheme.ObjectKinds(obj); err == nil && len(gvks) > 0 {
		obj.GetObjectKind().SetGroupVersionKind(gvks[0])
	}
	if base.UID == "" {
		base.UID = types.UID(uuid.NewString())
	}
	if base.Meta.ModelType == "" {
		base.Meta.ModelType = modelType
	}
	if base.Meta.Instrument == "" {
		base.Meta.Instrument = Instrument
	}
}
