package geometry

import (
	"encoding/json"
	"strings"

	"github.com/df07/go-scene-description/pkg/core"
)

// Mesh is a triangle mesh loaded by the engine from Wavefront OBJ data.
// Exactly one of URI or Text is set; Text holds inline OBJ source.
type Mesh struct {
	URI   string
	Text  string
	Scale float64 // uniform scale applied at load time
}

// NewMeshFromURI creates a mesh loaded from a file or assets uri
func NewMeshFromURI(uri string) *Mesh {
	return &Mesh{URI: uri, Scale: 1}
}

// NewMeshFromText creates a mesh from inline OBJ source
func NewMeshFromText(text string) *Mesh {
	return &Mesh{Text: text, Scale: 1}
}

// WithScale returns a copy with a load-time scale
func (m *Mesh) WithScale(scale float64) *Mesh {
	cp := *m
	cp.Scale = scale
	return &cp
}

func (m *Mesh) Kind() string { return KindMesh }
func (m *Mesh) isShape()     {}

// Validate requires exactly one source and a positive scale.
// The OBJ data itself is parsed by the engine.
func (m *Mesh) Validate() error {
	hasURI := m.URI != ""
	hasText := strings.TrimSpace(m.Text) != ""
	switch {
	case hasURI && hasText:
		return core.NewValidationError(KindMesh, "uri/text", "only one mesh source may be given")
	case !hasURI && !hasText:
		return core.NewValidationError(KindMesh, "uri/text", "a mesh source is required")
	case hasURI:
		if err := core.ValidateURI(KindMesh, "uri", m.URI); err != nil {
			return err
		}
	}
	if !(m.Scale > 0) {
		return core.NewValidationError(KindMesh, "scale", "must be positive, got %g", m.Scale)
	}
	return nil
}

// MarshalJSON writes the shape with its kind discriminant
func (m *Mesh) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string  `json:"kind"`
		URI   string  `json:"uri,omitempty"`
		Text  string  `json:"text,omitempty"`
		Scale float64 `json:"scale"`
	}{KindMesh, m.URI, m.Text, m.Scale})
}
