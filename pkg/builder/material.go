package builder

import (
	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/material"
)

// MakeTexture builds a texture. A raw color is normalized into a constant
// texture; an already built texture is validated and returned as is.
func MakeTexture(v any) (material.Texture, error) {
	if t, ok := v.(material.Texture); ok {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		return t, nil
	}
	if color, ok := toVec3(v); ok {
		t := material.NewConstantTexture(color)
		return t, t.Validate()
	}

	lit, err := asLiteral("texture", v)
	if err != nil {
		return nil, err
	}
	kind, err := lit.discriminant()
	if err != nil {
		return nil, err
	}

	var t material.Texture
	switch kind {
	case material.KindConstantTexture, "constant":
		lit.kind = material.KindConstantTexture
		key, raw, ok := lit.first("color", "value")
		if !ok {
			return nil, core.NewValidationError(lit.kind, key, "is required")
		}
		color, ok := toVec3(raw)
		if !ok {
			return nil, core.NewValidationError(lit.kind, key, "must be a 3-element numeric vector, got %v", raw)
		}
		t = material.NewConstantTexture(color)

	case material.KindCheckerTexture, "checker":
		lit.kind = material.KindCheckerTexture
		even, err := textureField(lit, "even")
		if err != nil {
			return nil, err
		}
		odd, err := textureField(lit, "odd")
		if err != nil {
			return nil, err
		}
		t = material.NewCheckerTexture(even, odd)

	case material.KindImageTexture, "image":
		lit.kind = material.KindImageTexture
		key, raw, ok := lit.first("uri", "file_path")
		if !ok {
			return nil, core.NewValidationError(lit.kind, key, "is required")
		}
		uri, ok := raw.(string)
		if !ok {
			return nil, core.NewValidationError(lit.kind, key, "must be a string, got %T", raw)
		}
		t = material.NewImageTexture(uri)

	default:
		return nil, core.NewValidationError("texture", "kind", "unknown texture kind %q", kind)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// textureField builds a required texture-valued field
func textureField(lit literal, key string) (material.Texture, error) {
	if !lit.has(key) {
		return nil, core.NewValidationError(lit.kind, key, "is required")
	}
	if _, isList := toList(lit.m[key]); isList {
		if _, isColor := toVec3(lit.m[key]); !isColor {
			return nil, core.NewValidationError(lit.kind, key, "must be a 3-element color or a texture, got %v", lit.m[key])
		}
	}
	return MakeTexture(lit.m[key])
}

// MakeMaterial builds a material. Fields that accept a texture (albedo,
// emit, base_color) also accept a raw color.
func MakeMaterial(v any) (material.Material, error) {
	if m, ok := v.(material.Material); ok {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		return m, nil
	}

	lit, err := asLiteral("material", v)
	if err != nil {
		return nil, err
	}
	kind, err := lit.discriminant()
	if err != nil {
		return nil, err
	}
	lit.kind = kind

	var m material.Material
	switch kind {
	case material.KindLambertian:
		albedo, err := textureField(lit, "albedo")
		if err != nil {
			return nil, err
		}
		m = material.NewTexturedLambertian(albedo)

	case material.KindMetal:
		albedo, err := textureField(lit, "albedo")
		if err != nil {
			return nil, err
		}
		fuzz, err := lit.float("fuzz")
		if err != nil {
			return nil, err
		}
		m = material.NewTexturedMetal(albedo, fuzz)

	case material.KindDielectric:
		ir, err := lit.float("ir")
		if err != nil {
			return nil, err
		}
		m = material.NewDielectric(ir)

	case material.KindTransparent:
		albedo, err := textureField(lit, "albedo")
		if err != nil {
			return nil, err
		}
		eta, err := lit.float("eta")
		if err != nil {
			return nil, err
		}
		roughness, err := lit.float("roughness")
		if err != nil {
			return nil, err
		}
		m = &material.Transparent{Albedo: albedo, Eta: eta, Roughness: roughness}

	case material.KindDiffuseLight:
		emit, err := textureField(lit, "emit")
		if err != nil {
			return nil, err
		}
		m = material.NewTexturedDiffuseLight(emit)

	case material.KindGltfPBR:
		baseColor, err := textureField(lit, "base_color")
		if err != nil {
			return nil, err
		}
		metallic, err := lit.float("metallic")
		if err != nil {
			return nil, err
		}
		roughness, err := lit.float("roughness")
		if err != nil {
			return nil, err
		}
		g := &material.GltfPBR{BaseColor: baseColor, Metallic: metallic, Roughness: roughness}
		if lit.has("eta") {
			eta, err := lit.float("eta")
			if err != nil {
				return nil, err
			}
			g = g.WithEta(eta)
		}
		if lit.has("emit") {
			emit, err := MakeTexture(lit.m["emit"])
			if err != nil {
				return nil, err
			}
			g = g.WithEmit(emit)
		}
		m = g

	default:
		return nil, core.NewValidationError("material", "kind", "unknown material kind %q", kind)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
