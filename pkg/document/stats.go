package document

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/scene"
)

// Stats contains counts describing a resolved project
type Stats struct {
	Project    string
	Scenes     int
	Imports    int            // Scenes referencing an external document
	Leaves     int            // Resolved geometry leaves across all scenes
	Lights     int            // Leaves sampled as lights
	Media      int            // Leaves bounding a participating medium
	Transforms int            // Transform operations across all leaves
	Shapes     map[string]int // Leaf count per shape kind
	Materials  map[string]int // Leaf count per material kind
	Bounds     *core.AABB     // World-space extent of the leaves with known bounds
}

// Collect computes statistics for a resolved project
func Collect(p *scene.ResolvedProject) Stats {
	stats := Stats{
		Project:   p.Name,
		Scenes:    len(p.Scenes),
		Shapes:    map[string]int{},
		Materials: map[string]int{},
	}
	for _, s := range p.Scenes {
		if s.URI != "" {
			stats.Imports++
		}
		if s.World == nil {
			continue
		}
		if b, ok := s.World.Bounds(); ok {
			if stats.Bounds != nil {
				b = stats.Bounds.Union(b)
			}
			stats.Bounds = &b
		}
		for _, leaf := range s.World.Leaves {
			stats.Leaves++
			stats.Transforms += len(leaf.Transforms)
			stats.Shapes[leaf.Shape.Kind()]++
			if leaf.Material != nil {
				stats.Materials[leaf.Material.Kind()]++
			}
			if leaf.IsLight() {
				stats.Lights++
			}
			if leaf.Medium != nil {
				stats.Media++
			}
		}
	}
	return stats
}

// Table renders the statistics as a text table
func (s Stats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Category", "Item", "Count"})
	table.Append([]string{"Project", s.Project, " "})
	table.Append([]string{"", "Scenes", fmt.Sprintf("%d", s.Scenes)})
	table.Append([]string{"", "Imports", fmt.Sprintf("%d", s.Imports)})
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Geometry", "---", fmt.Sprintf("%d", s.Leaves)})
	for _, kind := range sortedKeys(s.Shapes) {
		table.Append([]string{"", kind, fmt.Sprintf("%d", s.Shapes[kind])})
	}
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Materials", "---", fmt.Sprintf("%d", sum(s.Materials))})
	for _, kind := range sortedKeys(s.Materials) {
		table.Append([]string{"", kind, fmt.Sprintf("%d", s.Materials[kind])})
	}
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Markers", "---", " "})
	table.Append([]string{"", "Lights", fmt.Sprintf("%d", s.Lights)})
	table.Append([]string{"", "Media", fmt.Sprintf("%d", s.Media)})
	table.Append([]string{"", "Transform ops", fmt.Sprintf("%d", s.Transforms)})
	if s.Bounds != nil {
		table.Append([]string{" ", " ", " "})
		table.Append([]string{"Extent", "Min", s.Bounds.Min.String()})
		table.Append([]string{"", "Max", s.Bounds.Max.String()})
		table.Append([]string{"", "Center", s.Bounds.Center().String()})
		table.Append([]string{"", "Longest axis", axisNames[s.Bounds.LongestAxis()]})
	}
	table.SetFooter([]string{"Total", "leaves", fmt.Sprintf("%d", s.Leaves)})

	table.Render()
	return buf.String()
}

var axisNames = [3]string{"X", "Y", "Z"}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sum(m map[string]int) int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}
