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

package datamodel

import (
	"encoding/json"
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/serializer"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	"sigs.k8s.io/yaml"

	"github.com/jwst-datamodels/nirspec-flat/api/v1alpha1"
)

// Scheme knows every reference file model kind.
var Scheme = runtime.NewScheme()

func init() {
	utilruntime.Must(v1alpha1.AddToScheme(Scheme))
}

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrNotAModel is returned when a document decodes to a kind that is not a
// reference file model.
var ErrNotAModel = errors.New("document is not a reference file model")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, "":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported format %q", s)
}

// Codec converts models to and from documents. Decoding accepts YAML or JSON
// regardless of the configured format.
type Codec struct {
	format  Format
	decoder runtime.Decoder
}

// NewCodec returns a codec encoding in the given format.
func NewCodec(format Format) *Codec {
	return &Codec{
		format:  format,
		decoder: serializer.NewCodecFactory(Scheme).UniversalDeserializer(),
	}
}

// Format returns the encoding the codec writes.
func (c *Codec) Format() Format { return c.format }

// Decode parses a document whose apiVersion and kind name a registered model.
func (c *Codec) Decode(data []byte) (Model, error) {
	obj, gvk, err := c.decoder.Decode(data, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	m, ok := obj.(Model)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAModel, gvk.Kind)
	}
	return m, nil
}

// Encode renders m, stamping its apiVersion and kind from the scheme.
func (c *Codec) Encode(m Model) ([]byte, error) {
	gvks, _, err := Scheme.ObjectKinds(m)
	if err != nil {
		return nil, fmt.Errorf("resolving kind of %T: %w", m, err)
	}
	m.GetObjectKind().SetGroupVersionKind(gvks[0])

	switch c.format {
	case FormatJSON:
		return json.MarshalIndent(m, "", "  ")
	default:
		return yaml.Marshal(m)
	}
}
