package cmd

import (
	"github.com/lambda-feedback/dockerapp/app"
	"github.com/lambda-feedback/dockerapp/app/standalone"
	"github.com/lambda-feedback/dockerapp/config"
	"github.com/lambda-feedback/dockerapp/util/conf"
	"github.com/lambda-feedback/dockerapp/util/logging"
	"github.com/urfave/cli/v2"
)

var (
	serveCmdDescription = `The serve command starts the http server and blocks until the
process is terminated. GET / answers with a fixed message,
every other route falls through to the default not found
and method not allowed responses.

The server binds during start-up. If the port is taken, the
command exits immediately with a non-zero exit code.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start the http server and listen for requests.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host to listen on. Empty listens on all interfaces.",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    3000,
				Category: "http",
				EnvVars:  []string{"HTTP_PORT", "PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	rootCfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[standalone.Config](conf.ParseOptions{
		Cli:       ctx,
		Defaults:  standalone.DefaultConfig,
		EnvPrefix: "HTTP_",
		FileName:  rootCfg.ConfigFile,
		Log:       log,
	})
	if err != nil {
		return err
	}

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
