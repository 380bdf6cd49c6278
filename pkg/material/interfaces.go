package material

import "encoding/json"

// Texture kinds as they appear in documents
const (
	KindConstantTexture = "constant_texture"
	KindCheckerTexture  = "checker_texture"
	KindImageTexture    = "image_texture"
)

// Material kinds as they appear in documents
const (
	KindLambertian   = "lambertian"
	KindMetal        = "metal"
	KindDielectric   = "dielectric"
	KindTransparent  = "transparent"
	KindDiffuseLight = "diffuse_light"
	KindGltfPBR      = "gltf_pbr"
)

// Texture describes how a color is produced at a surface point.
// The set of implementations is closed: ConstantTexture, CheckerTexture and ImageTexture.
type Texture interface {
	json.Marshaler
	// Kind returns the document discriminant
	Kind() string
	// Validate checks the texture and any nested textures
	Validate() error
	isTexture()
}

// Material describes how a surface interacts with light.
// Materials are immutable leaf values and never reference scene nodes.
type Material interface {
	json.Marshaler
	// Kind returns the document discriminant
	Kind() string
	// Validate checks every field against its domain
	Validate() error
	isMaterial()
}

// IsEmissive reports whether m emits light
func IsEmissive(m Material) bool {
	switch mat := m.(type) {
	case *DiffuseLight:
		return true
	case *GltfPBR:
		if mat.Emit == nil {
			return false
		}
		c, ok := mat.Emit.(*ConstantTexture)
		return !ok || !c.Color.IsZero()
	default:
		return false
	}
}
