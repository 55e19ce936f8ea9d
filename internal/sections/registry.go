// Package sections defines the section type registry: the mapping from a
// content block's type tag to the JSON shape its payload must have, plus the
// default section lists used to initialize a new page. The registry is the
// single place payload shapes are declared; the store validates against it on
// every write so malformed payloads never reach the renderer.
package sections

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	_ "embed"

	"gopkg.in/yaml.v3"
)

// Shape is the expected top-level JSON shape of a section payload.
type Shape string

const (
	// ShapeObject payloads are a single settings object.
	ShapeObject Shape = "object"
	// ShapeItems payloads are an array of typed items.
	ShapeItems Shape = "items"
)

// Seed is one entry of a default section template; list index is the position.
type Seed struct {
	SectionType string `yaml:"type"`
	Title       string `yaml:"title"`
}

// Registry maps section type tags to payload shapes and holds the default
// page templates.
type Registry struct {
	shapes    map[string]Shape
	templates map[string][]Seed
}

//go:embed defaults.yaml
var defaultsYAML []byte

type registryFile struct {
	SectionTypes map[string]Shape  `yaml:"section_types"`
	Templates    map[string][]Seed `yaml:"templates"`
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry parsed from the embedded defaults.yaml.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := Parse(defaultsYAML)
		if err != nil {
			// The embedded file ships with the binary; failing to parse it
			// is a build defect, not a runtime condition.
			panic(fmt.Sprintf("sections: invalid embedded defaults.yaml: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Parse builds a registry from YAML.
func Parse(data []byte) (*Registry, error) {
	var f registryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse registry yaml: %w", err)
	}

	r := &Registry{
		shapes:    make(map[string]Shape, len(f.SectionTypes)),
		templates: f.Templates,
	}
	for tag, shape := range f.SectionTypes {
		if shape != ShapeObject && shape != ShapeItems {
			return nil, fmt.Errorf("section type %q has unknown shape %q", tag, shape)
		}
		r.shapes[tag] = shape
	}
	for name, seeds := range f.Templates {
		for _, s := range seeds {
			if _, ok := r.shapes[s.SectionType]; !ok {
				return nil, fmt.Errorf("template %q references unknown section type %q", name, s.SectionType)
			}
		}
	}
	return r, nil
}

// Known reports whether the type tag is registered.
func (r *Registry) Known(sectionType string) bool {
	_, ok := r.shapes[sectionType]
	return ok
}

// Shape returns the payload shape for a type tag.
func (r *Registry) Shape(sectionType string) (Shape, bool) {
	s, ok := r.shapes[sectionType]
	return s, ok
}

// Types returns all registered type tags, sorted.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.shapes))
	for tag := range r.shapes {
		types = append(types, tag)
	}
	sort.Strings(types)
	return types
}

// Template returns the default seed list for a page template.
func (r *Registry) Template(name string) ([]Seed, bool) {
	seeds, ok := r.templates[name]
	return seeds, ok
}

// Validate checks a payload against the shape registered for the type tag.
// An empty payload is always accepted; blocks start without one.
func (r *Registry) Validate(sectionType string, payload json.RawMessage) error {
	shape, ok := r.shapes[sectionType]
	if !ok {
		return fmt.Errorf("unknown section type %q", sectionType)
	}

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if !json.Valid(trimmed) {
		return fmt.Errorf("payload for section type %q is not valid JSON", sectionType)
	}

	switch shape {
	case ShapeObject:
		if trimmed[0] != '{' {
			return fmt.Errorf("payload for section type %q must be a JSON object", sectionType)
		}
	case ShapeItems:
		if trimmed[0] != '[' {
			return fmt.Errorf("payload for section type %q must be a JSON array of items", sectionType)
		}
	}
	return nil
}
