package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-scene-description/pkg/document"
	"github.com/df07/go-scene-description/pkg/loaders"
	"github.com/df07/go-scene-description/pkg/scene"
)

// BuildDocument resolves each scene argument and writes its document to
// stdout, or to the --out file when a single scene is given.
func BuildDocument(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if ctx.NArg() == 0 {
		return cli.NewExitError("build requires at least one scene", 1)
	}
	if ctx.IsSet("out") && ctx.NArg() > 1 {
		return cli.NewExitError("--out accepts a single scene", 1)
	}

	var out io.Writer = os.Stdout
	if ctx.IsSet("out") {
		f, err := os.Create(ctx.String("out"))
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		defer f.Close()
		out = f
	}

	for _, target := range ctx.Args() {
		if err := buildOne(out, target, cfg); err != nil {
			logger.Error(err)
			return cli.NewExitError(err.Error(), 1)
		}
	}
	return nil
}

func buildOne(out io.Writer, target string, cfg *Config) error {
	resolved, err := resolveTarget(target, cfg)
	if err != nil {
		return err
	}
	logger.Infof("resolved %s into %d scene(s)", target, len(resolved.Scenes))
	return document.EncodeResolved(out, resolved)
}

func openTarget(target string, cfg *Config) (*scene.Project, error) {
	p, err := loaders.OpenProject(target, cfg.ScenesDir, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target, err)
	}
	return p, nil
}

func resolveTarget(target string, cfg *Config) (*scene.ResolvedProject, error) {
	p, err := openTarget(target, cfg)
	if err != nil {
		return nil, err
	}
	resolved, err := p.Resolve()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target, err)
	}
	return resolved, nil
}
