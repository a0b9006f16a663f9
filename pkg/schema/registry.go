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
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrUnknownSchema is returned when a schema identifier is not registered.
	ErrUnknownSchema = errors.New("unknown schema")
	// ErrDuplicateSchema is returned when a schema identifier is registered twice.
	ErrDuplicateSchema = errors.New("schema already registered")
)

// Registry maps schema identifiers to descriptors.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]*Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]*Descriptor)}
}

// Register adds a descriptor. The descriptor it extends, if any, must already
// be registered.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil || d.ID == "" {
		return errors.New("descriptor has no schema identifier")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.descriptors[d.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSchema, d.ID)
	}
	if d.Extends != "" {
		if _, ok := r.descriptors[d.Extends]; !ok {
			return fmt.Errorf("%s extends %w: %s", d.ID, ErrUnknownSchema, d.Extends)
		}
	}
	r.descriptors[d.ID] = d
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(d *Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor registered under id.
func (r *Registry) Lookup(id string) (*Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.descriptors[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, id)
	}
	return d, nil
}

// IDs returns the registered schema identifiers in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.descriptors))
	for id := range r.descriptors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Fields returns every field of the schema, inherited fields first. A field
// redeclared by a descendant replaces the inherited declaration in place.
func (r *Registry) Fields(id string) ([]FieldSpec, error) {
	lineage, err := r.lineage(id)
	if err != nil {
		return nil, err
	}

	var fields []FieldSpec
	index := make(map[string]int)
	for _, d := range lineage {
		for _, f := range d.Fields {
			if i, ok := index[f.Name]; ok {
				fields[i] = f
				continue
			}
			index[f.Name] = len(fields)
			fields = append(fields, f)
		}
	}
	return fields, nil
}

// Shared returns the names of the top-level fields declared by both schemas,
// in the order they appear in a.
func (r *Registry) Shared(a, b string) ([]string, error) {
	fa, err := r.Fields(a)
	if err != nil {
		return nil, err
	}
	fb, err := r.Fields(b)
	if err != nil {
		return nil, err
	}

	inB := make(map[string]Kind, len(fb))
	for _, f := range fb {
		inB[f.Name] = f.Kind
	}

	var shared []string
	for _, f := range fa {
		if kind, ok := inB[f.Name]; ok && kind == f.Kind {
			shared = append(shared, f.Name)
		}
	}
	return shared, nil
}

// lineage returns the descriptor chain from the root ancestor down to id.
func (r *Registry) lineage(id string) ([]*Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var chain []*Descriptor
	seen := make(map[string]bool)
	for cur := id; cur != ""; {
		if seen[cur] {
			return nil, fmt.Errorf("schema %s has an inheritance cycle at %s", id, cur)
		}
		seen[cur] = true

		d, ok := r.descriptors[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, cur)
		}
		chain = append([]*Descriptor{d}, chain...)
		cur = d.Extends
	}
	return chain, nil
}
