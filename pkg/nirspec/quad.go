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
	"context"
	"errors"
	"fmt"

	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/jwst-datamodels/nirspec-flat/api/v1alpha1"
	"github.com/jwst-datamodels/nirspec-flat/internal/logging"
	"github.com/jwst-datamodels/nirspec-flat/pkg/datamodel"
	refschema "github.com/jwst-datamodels/nirspec-flat/pkg/schema"
)

// ErrQuadrantsPreset is returned when promotion is asked to start from a
// non-empty quadrant sequence.
var ErrQuadrantsPreset = errors.New("promotion requires an empty quadrant sequence")

// NewNirspecQuadFlat builds a multi-quadrant flat-field model. A Promote
// initializer is handled by PromoteNirspecFlat; every other initializer is
// plain base construction and leaves the quadrants as given.
func NewNirspecQuadFlat(ctx context.Context, init QuadInit, opts ...Option) (*v1alpha1.NirspecQuadFlat, error) {
	if p, ok := init.(Promote); ok {
		return PromoteNirspecFlat(ctx, p.Flat, opts...)
	}

	q, err := newQuadBase(init, newOptions(opts))
	if err != nil {
		return nil, err
	}
	ctrl.LoggerFrom(ctx).V(logging.DEBUG).Info("Constructed model",
		"schema", q.SchemaID(),
		"uid", q.UID,
		"quadrants", len(q.Quadrants))
	return q, nil
}

// PromoteNirspecFlat converts a single-quadrant model into a quad model with
// exactly one quadrant. The new model is built empty with opts applied,
// updated from the fields both schemas share, and given one quadrant holding
// copies of flat's per-quadrant fields. The quadrant's DQ mask is then
// rederived against the quadrant's own dq_def. flat is not modified.
func PromoteNirspecFlat(ctx context.Context, flat *v1alpha1.NirspecFlat, opts ...Option) (*v1alpha1.NirspecQuadFlat, error) {
	if flat == nil {
		return nil, fmt.Errorf("promote: %w", ErrNilModel)
	}
	logger := ctrl.LoggerFrom(ctx)
	o := newOptions(opts)

	q, err := newQuadBase(Empty{}, o)
	if err != nil {
		return nil, err
	}
	if len(q.Quadrants) != 0 {
		return nil, fmt.Errorf("promote: %w: %d quadrants given", ErrQuadrantsPreset, len(q.Quadrants))
	}

	if err := datamodel.Update(q, flat); err != nil {
		return nil, err
	}

	idx := q.Quadrants.Append(q.Quadrants.Item())
	quad := &q.Quadrants[idx]
	for _, name := range refschema.QuadrantFields {
		value, ok := flat.Field(name)
		if !ok {
			continue
		}
		if err := quad.SetField(name, value); err != nil {
			return nil, fmt.Errorf("promote: quadrant %d: %w", idx, err)
		}
	}

	dq, err := o.mapper.Mask(quad)
	if err != nil {
		return nil, fmt.Errorf("promote: deriving dq mask for quadrant %d: %w", idx, err)
	}
	quad.DQ = &dq

	logger.V(logging.DEBUG).Info("Promoted single-quadrant model",
		"source", flat.UID,
		"uid", q.UID,
		"quadrant", idx,
		"shape", dq.Shape)
	return q, nil
}

func newQuadBase(init QuadInit, o *options) (*v1alpha1.NirspecQuadFlat, error) {
	var q *v1alpha1.NirspecQuadFlat
	switch in := init.(type) {
	case nil, Empty:
		q = &v1alpha1.NirspecQuadFlat{}
	case FileRef:
		obj, err := o.store.Open(in.Path)
		if err != nil {
			return nil, err
		}
		var ok bool
		if q, ok = obj.(*v1alpha1.NirspecQuadFlat); !ok {
			return nil, fmt.Errorf("%w: %s holds %T, want NirspecQuadFlat", ErrWrongKind, in.Path, obj)
		}
	case FromQuad:
		if in.Model == nil {
			return nil, ErrNilModel
		}
		q = in.Model.DeepCopy()
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedInit, init)
	}

	if err := finish(q, &q.NRSFlat, o, v1alpha1.NirspecQuadFlatModelType); err != nil {
		return nil, err
	}
	return q, nil
}
