package cmd

import (
	"github.com/lambda-feedback/dockerapp/app"
	"github.com/lambda-feedback/dockerapp/app/lambda"
	"github.com/lambda-feedback/dockerapp/config"
	"github.com/lambda-feedback/dockerapp/util/conf"
	"github.com/lambda-feedback/dockerapp/util/logging"
	"github.com/urfave/cli/v2"
)

var (
	lambdaCmdDescription = `The lambda command starts the app as an AWS Lambda runtime
interface client. Incoming proxy events are translated into
http requests and served by the same routes as the http
server, so the container image can run on AWS Lambda
without changes.

The command will start the AWS runtime interface client and
blocks indefinitely, processing incoming AWS Lambda events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lambda-proxy-source",
				Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
				Value:    "API_GW_V2",
				EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
				Category: "lambda",
			},
		},
	}
)

func lambdaAction(ctx *cli.Context) error {
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

	cfg, err := conf.Parse[lambda.Config](conf.ParseOptions{
		Cli:       ctx,
		CliMap:    map[string]string{"lambda-proxy-source": "proxy_source"},
		Defaults:  lambda.DefaultConfig,
		EnvPrefix: "LAMBDA_",
		FileName:  rootCfg.ConfigFile,
		Log:       log,
	})
	if err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler")

	return app.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
