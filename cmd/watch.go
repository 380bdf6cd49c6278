package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli"

	"github.com/df07/go-scene-description/pkg/document"
	"github.com/df07/go-scene-description/pkg/loaders"
	"github.com/df07/go-scene-description/pkg/scene"
)

// WatchDocument reloads a project document whenever it changes, printing its
// statistics and, with --submit, handing each valid revision to the engine.
func WatchDocument(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if ctx.NArg() != 1 {
		return cli.NewExitError("watch requires exactly one document", 1)
	}

	var eng scene.Submitter
	if ctx.Bool("submit") {
		if eng, err = cfg.NewEngine(); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	filename := ctx.Args().First()
	logger.Noticef("watching %s, press Ctrl+C to stop", filename)
	err = loaders.Watch(runCtx, filename, func(p *scene.Project, err error) {
		if err != nil {
			logger.Errorf("%s: %v", filename, err)
			return
		}
		resolved, err := p.Resolve()
		if err != nil {
			logger.Errorf("%s: %v", filename, err)
			return
		}
		fmt.Fprint(ctx.App.Writer, document.Collect(resolved).Table())

		if eng == nil {
			return
		}
		if _, err := p.Submit(runCtx, eng); err != nil {
			logger.Error(err)
		}
	})
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}
