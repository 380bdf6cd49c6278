package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-scene-description/pkg/log"
)

var logger = log.New("scenedesc")

// setupLogging applies the configured level, then the -v/-vv overrides
func setupLogging(ctx *cli.Context, cfg *Config) {
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		logger.Warning(err)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
