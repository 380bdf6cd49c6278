package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-scene-description/pkg/engine"
	"github.com/df07/go-scene-description/pkg/scene"
)

// SubmitProjects hands every scene argument to the configured engine in
// parallel and prints a table of the returned tokens.
func SubmitProjects(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if ctx.NArg() == 0 {
		return cli.NewExitError("submit requires at least one scene", 1)
	}

	eng, err := cfg.NewEngine()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	projects := make([]*scene.Project, 0, ctx.NArg())
	for _, target := range ctx.Args() {
		p, err := openTarget(target, cfg)
		if err != nil {
			logger.Error(err)
			return cli.NewExitError(err.Error(), 1)
		}
		projects = append(projects, p)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := engine.SubmitAll(runCtx, eng, projects, cfg.Jobs)
	fmt.Fprint(ctx.App.Writer, resultsTable(ctx.Args(), results))

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			logger.Error(r.Err)
			failed++
		}
	}
	if failed > 0 {
		return cli.NewExitError(fmt.Sprintf("%d of %d submissions failed", failed, len(results)), 1)
	}
	return nil
}

func resultsTable(targets []string, results []engine.Result) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Project", "Token"})

	ok := 0
	for i, r := range results {
		token := r.Token
		if r.Err != nil {
			token = "FAILED"
		} else {
			ok++
		}
		table.Append([]string{targets[i], r.Project.Name, token})
	}
	table.SetFooter([]string{"", "Submitted", fmt.Sprintf("%d/%d", ok, len(results))})
	table.Render()
	return buf.String()
}
