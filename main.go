package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-scene-description/cmd"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "scenedesc"
	app.Usage = "build, inspect and submit scene description documents"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "config file (default " + cmd.DefaultConfigPath + ")",
		},
		cli.StringFlag{
			Name:  "scenes-dir",
			Usage: "directory scanned for project documents",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "seed of the procedural built-in scenes",
		},
	}

	engineFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "engine, e",
			Usage: "submission engine: file or command",
		},
		cli.StringFlag{
			Name:  "command",
			Usage: "renderer command line; {} is replaced by the document path",
		},
		cli.StringFlag{
			Name:  "output-dir, o",
			Usage: "write documents here instead of each project's output_dir",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "build",
			Usage: "resolve scenes and print their documents",
			Description: `
Load each scene, flatten its world into canonical leaves and print the
resulting JSON document. A scene is a project document path, a
document:<name> id from the scenes directory or a built-in scene id.`,
			ArgsUsage: "scene1 scene2 ...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out",
					Usage: "write the document to this file instead of stdout",
				},
			},
			Action: cmd.BuildDocument,
		},
		{
			Name:      "submit",
			Usage:     "hand scenes to the rendering engine",
			ArgsUsage: "scene1 scene2 ...",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "jobs, j",
					Usage: "parallel submissions, one per CPU when 0",
				},
			}, engineFlags...),
			Action: cmd.SubmitProjects,
		},
		{
			Name:      "watch",
			Usage:     "reload a project document on every change",
			ArgsUsage: "document",
			Flags: append([]cli.Flag{
				cli.BoolFlag{
					Name:  "submit",
					Usage: "submit every valid revision",
				},
			}, engineFlags...),
			Action: cmd.WatchDocument,
		},
		{
			Name:   "list",
			Usage:  "list built-in scenes and project documents",
			Action: cmd.ListScenes,
		},
		{
			Name:      "stats",
			Usage:     "print statistics of resolved scenes",
			ArgsUsage: "scene1 scene2 ...",
			Action:    cmd.ShowStats,
		},
		{
			Name:  "serve",
			Usage: "run the scene preview web server",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to serve on",
				},
			}, engineFlags...),
			Action: cmd.Serve,
		},
	}
	return app
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
