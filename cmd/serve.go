package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/urfave/cli"

	"github.com/df07/go-scene-description/web/server"
)

// Serve runs the preview web server until interrupted.
func Serve(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	eng, err := cfg.NewEngine()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	port := ctx.Int("port")
	logger.Noticef("Scene preview server, visit http://localhost:%d/api/scenes", port)
	if err := server.NewServer(port, cfg.ScenesDir, eng).Start(runCtx); err != nil {
		logger.Error(err)
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}
