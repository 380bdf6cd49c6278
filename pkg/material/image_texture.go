package material

import (
	"encoding/json"

	"github.com/df07/go-scene-description/pkg/core"
)

// ImageTexture references a raster resource that the engine resolves and samples by UV
type ImageTexture struct {
	URI string // assets:///... uri or a path relative to the project
}

// NewImageTexture creates a new image texture
func NewImageTexture(uri string) *ImageTexture {
	return &ImageTexture{URI: uri}
}

func (t *ImageTexture) Kind() string { return KindImageTexture }
func (t *ImageTexture) isTexture()   {}

// Validate checks the resource reference, not the resource
func (t *ImageTexture) Validate() error {
	return core.ValidateURI(KindImageTexture, "uri", t.URI)
}

// MarshalJSON writes the texture with its kind discriminant
func (t *ImageTexture) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		URI  string `json:"uri"`
	}{KindImageTexture, t.URI})
}
