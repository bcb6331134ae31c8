package cmd

import (
	"os"

	"github.com/lambda-feedback/dockerapp/util/logging"
	"github.com/urfave/cli/v2"
)

var (
	runCmdDescription = `The run command inspects the environment and picks the
matching transport, so one container image can be deployed
to a plain container runtime as well as to AWS Lambda.

When AWS_LAMBDA_RUNTIME_API is set, it behaves like the
lambda command. In every other case it behaves like serve.`
	runCmd = &cli.Command{
		Name:        "run",
		Usage:       "Detect execution environment and start the app.",
		Description: runCmdDescription,
		Action:      runAction,
		Flags:       []cli.Flag{},
	}
)

func runAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	if isAWSLambda() {
		log.Info("detected AWS Lambda runtime api, using lambda transport")
		return lambdaAction(ctx)
	}

	log.Debug("no AWS Lambda runtime api detected, using http server")
	return serveAction(ctx)
}

func isAWSLambda() bool {
	env, ok := os.LookupEnv("AWS_LAMBDA_RUNTIME_API")
	return ok && env != ""
}

func init() {
	runCmd.Flags = append(runCmd.Flags, serveCmd.Flags...)
	runCmd.Flags = append(runCmd.Flags, lambdaCmd.Flags...)

	rootApp.Commands = append(rootApp.Commands, runCmd)
}
