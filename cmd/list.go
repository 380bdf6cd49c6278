package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-scene-description/pkg/scene"
)

// ListScenes prints the built-in scenes and the documents found in the
// scenes directory.
func ListScenes(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	groups, err := scene.ListAllScenes(cfg.ScenesDir)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Fprint(ctx.App.Writer, scenesTable(groups))
	return nil
}

func scenesTable(groups []scene.SceneGroup) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Group", "ID", "Name", "Description"})

	total := 0
	for _, g := range groups {
		for i, s := range g.Scenes {
			group := ""
			if i == 0 {
				group = g.Name
			}
			table.Append([]string{group, s.ID, s.DisplayName, s.Description})
			total++
		}
	}
	table.SetFooter([]string{"", "", "Total", fmt.Sprintf("%d", total)})
	table.Render()
	return buf.String()
}
