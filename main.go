package main

import (
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/dmarsh/go-pathtrace/cmd"
	"github.com/dmarsh/go-pathtrace/log"
)

var logger = log.New("go-pathtrace")

func newApp() *cli.App {
	// The default version flag aliases -v, which we use for verbosity
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtrace"
	app.Usage = "render scenes using monte carlo path tracing"
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
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a still frame",
			Description: `
Build one of the preset scenes and render it with the path tracer,
accumulating samples across all CPUs and periodically saving the frame
so progress can be inspected mid-render.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width, w",
					Value: 1920,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 1080,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 40,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: 5,
					Usage: "maximum diffuse bounce depth",
				},
				cli.IntFlag{
					Name:  "first-bounce-samples",
					Value: 4,
					Usage: "stratification factor for the primary bounce",
				},
				cli.IntFlag{
					Name:  "num-cpus",
					Value: 0,
					Usage: "number of CPUs to use (0 for all)",
				},
				cli.IntFlag{
					Name:  "seed",
					Value: 0,
					Usage: "base random seed",
				},
				cli.BoolFlag{
					Name:  "preview",
					Usage: "super quick preview without light transport",
				},
				cli.StringFlag{
					Name:  "scene",
					Value: "cornell",
					Usage: "scene to render (cornell, spheres or mesh)",
				},
				cli.StringFlag{
					Name:  "obj",
					Usage: "wavefront obj file for the mesh scene",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "image.png",
					Usage: "image filename for the rendered frame",
				},
				cli.DurationFlag{
					Name:  "save-every",
					Value: 10 * time.Second,
					Usage: "interval between intermediate frame saves (0 to disable)",
				},
			},
			Action: cmd.RenderFrame,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
