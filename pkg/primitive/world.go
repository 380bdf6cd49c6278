package primitive

import (
	"encoding/json"
	"fmt"

	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/log"
)

// World aggregation kinds
const (
	WorldBVH  = "bvh"
	WorldList = "list"
)

var logger = log.New("primitive")

// World is the top-level collection of primitives, indexed by the engine as
// a bvh or a flat list over the motion interval [Time0, Time1]
type World struct {
	Kind     string
	Time0    float64
	Time1    float64
	Children []Node
}

// NewWorld creates a world and checks its aggregation parameters
func NewWorld(kind string, time0, time1 float64, children ...Node) (*World, error) {
	w := &World{Kind: kind, Time0: time0, Time1: time1, Children: children}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// NewBVH creates a bvh world over a static [0,1] interval
func NewBVH(children ...Node) *World {
	return &World{Kind: WorldBVH, Time0: 0, Time1: 1, Children: children}
}

// Validate checks the aggregation kind and time interval. The children are
// checked by Resolve.
func (w *World) Validate() error {
	switch w.Kind {
	case WorldBVH, WorldList:
	default:
		return core.NewConfigurationError("world.kind", "must be %q or %q, got %q", WorldBVH, WorldList, w.Kind)
	}
	if !core.NewVec3(w.Time0, w.Time1, 0).IsFinite() {
		return core.NewConfigurationError("world.time0", "time interval must be finite")
	}
	if w.Time0 > w.Time1 {
		return core.NewConfigurationError("world.time0", "must not exceed time1 (%g > %g)", w.Time0, w.Time1)
	}
	return nil
}

// Resolve validates the world and flattens every child into canonical leaves
func (w *World) Resolve() (*ResolvedWorld, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if len(w.Children) == 0 {
		return nil, core.NewStructuralError("world", "has no children")
	}

	resolved := &ResolvedWorld{Kind: w.Kind, Time0: w.Time0, Time1: w.Time1}
	for i, child := range w.Children {
		leaves, err := Resolve(child, fmt.Sprintf("world[%d]", i))
		if err != nil {
			return nil, err
		}
		resolved.Leaves = append(resolved.Leaves, leaves...)
	}

	logger.Debugf("resolved %d top-level nodes into %d leaves (%d lights)",
		len(w.Children), len(resolved.Leaves), len(resolved.Lights()))
	return resolved, nil
}

// ResolvedWorld is a world whose children are canonical leaves
type ResolvedWorld struct {
	Kind   string
	Time0  float64
	Time1  float64
	Leaves []Leaf
}

// Lights returns the leaves the engine should sample as lights, in order
func (w *ResolvedWorld) Lights() []Leaf {
	var lights []Leaf
	for _, leaf := range w.Leaves {
		if leaf.IsLight() {
			lights = append(lights, leaf)
		}
	}
	return lights
}

// Bounds returns the union of the leaf bounds. Leaves of unknown extent are
// skipped; the result is false when no leaf has a known extent.
func (w *ResolvedWorld) Bounds() (core.AABB, bool) {
	var bounds core.AABB
	found := false
	for _, leaf := range w.Leaves {
		b, ok := leaf.Bounds()
		if !ok {
			continue
		}
		if found {
			bounds = bounds.Union(b)
		} else {
			bounds, found = b, true
		}
	}
	return bounds, found
}

// MarshalJSON writes the aggregation node with its resolved children
func (w *ResolvedWorld) MarshalJSON() ([]byte, error) {
	children := w.Leaves
	if children == nil {
		children = []Leaf{}
	}
	return json.Marshal(struct {
		Kind     string  `json:"kind"`
		Time0    float64 `json:"time0"`
		Time1    float64 `json:"time1"`
		Children []Leaf  `json:"children"`
	}{w.Kind, w.Time0, w.Time1, children})
}
