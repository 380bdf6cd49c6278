package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/df07/go-scene-description/pkg/document"
)

// ShowStats prints leaf, light and kind counts for each scene argument.
func ShowStats(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if ctx.NArg() == 0 {
		return cli.NewExitError("stats requires at least one scene", 1)
	}

	for _, target := range ctx.Args() {
		resolved, err := resolveTarget(target, cfg)
		if err != nil {
			logger.Error(err)
			return cli.NewExitError(err.Error(), 1)
		}
		fmt.Fprint(ctx.App.Writer, document.Collect(resolved).Table())
	}
	return nil
}
