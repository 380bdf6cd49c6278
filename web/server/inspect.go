package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/df07/go-scene-description/pkg/geometry"
	"github.com/df07/go-scene-description/pkg/material"
	"github.com/df07/go-scene-description/pkg/primitive"
)

// InspectResponse represents the JSON response for leaf inspection
type InspectResponse struct {
	Path         string                 `json:"path"`
	MaterialType string                 `json:"materialType"`
	GeometryType string                 `json:"geometryType"`
	Tags         []string               `json:"tags"`
	IsLight      bool                   `json:"isLight"`
	FlipFace     bool                   `json:"flipFace"`
	Transforms   int                    `json:"transforms"`
	Properties   map[string]interface{} `json:"properties"`
}

// extractTextureInfo describes a texture, with a display color when it has one
func (s *Server) extractTextureInfo(tex material.Texture) map[string]interface{} {
	properties := map[string]interface{}{"kind": tex.Kind()}

	switch t := tex.(type) {
	case *material.ConstantTexture:
		properties["value"] = t.Color.Array()
		properties["color"] = t.Color.Hex()
	case *material.CheckerTexture:
		properties["even"] = s.extractTextureInfo(t.Even)
		properties["odd"] = s.extractTextureInfo(t.Odd)
	case *material.ImageTexture:
		properties["uri"] = t.URI
	}
	return properties
}

// extractMaterialInfo extracts detailed material information with type assertions
func (s *Server) extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})
	if mat == nil {
		return "none", properties
	}

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = s.extractTextureInfo(m.Albedo)

	case *material.Metal:
		properties["albedo"] = s.extractTextureInfo(m.Albedo)
		properties["fuzz"] = m.Fuzz

	case *material.Dielectric:
		properties["refractiveIndex"] = m.IR
		properties["color"] = "#ffffff" // Clear glass

	case *material.Transparent:
		properties["albedo"] = s.extractTextureInfo(m.Albedo)
		properties["eta"] = m.Eta
		properties["roughness"] = m.Roughness

	case *material.DiffuseLight:
		properties["emit"] = s.extractTextureInfo(m.Emit)

	case *material.GltfPBR:
		properties["baseColor"] = s.extractTextureInfo(m.BaseColor)
		properties["metallic"] = m.Metallic
		properties["roughness"] = m.Roughness
		if m.Eta != nil {
			properties["eta"] = *m.Eta
		}
		if m.Emit != nil {
			properties["emit"] = s.extractTextureInfo(m.Emit)
		}
	}
	return mat.Kind(), properties
}

// extractGeometryInfo extracts the shape's document fields plus where its
// reference point lands once the leaf's transforms are applied
func (s *Server) extractGeometryInfo(shape geometry.Shape, transforms geometry.TransformStack) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	data, err := json.Marshal(shape)
	if err == nil {
		_ = json.Unmarshal(data, &properties)
	}
	delete(properties, "kind")

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["worldCenter"] = transforms.Apply(geom.Center).Array()
	case *geometry.Disk:
		properties["worldCenter"] = transforms.Apply(geom.Center).Array()
	case *geometry.Cube:
		properties["worldMin"] = transforms.Apply(geom.PMin).Array()
		properties["worldMax"] = transforms.Apply(geom.PMax).Array()
	case *geometry.RegularPolygon:
		properties["area"] = geom.Area()
	}
	return shape.Kind(), properties
}

// inspectLeaf builds the response for one resolved leaf
func (s *Server) inspectLeaf(leaf primitive.Leaf) InspectResponse {
	materialType, materialProps := s.extractMaterialInfo(leaf.Material)
	geometryType, geometryProps := s.extractGeometryInfo(leaf.Shape, leaf.Transforms)

	allProperties := map[string]interface{}{
		"material": materialProps,
		"geometry": geometryProps,
	}
	if bounds, ok := leaf.Bounds(); ok {
		allProperties["bounds"] = bounds
	}
	if leaf.Medium != nil {
		allProperties["medium"] = map[string]interface{}{
			"density": leaf.Medium.Density,
			"texture": s.extractTextureInfo(leaf.Medium.Texture),
		}
	}

	tags := leaf.Tags
	if tags == nil {
		tags = []string{}
	}
	return InspectResponse{
		Path:         leaf.Path,
		MaterialType: materialType,
		GeometryType: geometryType,
		Tags:         tags,
		IsLight:      leaf.IsLight(),
		FlipFace:     leaf.FlipFace,
		Transforms:   len(leaf.Transforms),
		Properties:   allProperties,
	}
}

// handleInspect describes one resolved leaf of a scene, selected by the
// sceneIndex and leaf query parameters
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	resolved, ok := s.resolveRequested(w, r)
	if !ok {
		return
	}

	sceneIndex, err := parseIntParam(r.URL.Query(), "sceneIndex", 0, 0, len(resolved.Scenes)-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	world := resolved.Scenes[sceneIndex].World
	if world == nil || len(world.Leaves) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("scene %d has no world", sceneIndex))
		return
	}

	leafIndex, err := parseIntParam(r.URL.Query(), "leaf", 0, 0, len(world.Leaves)-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, s.inspectLeaf(world.Leaves[leafIndex]))
}
