package app

import (
	"github.com/lambda-feedback/dockerapp/internal/shell"
	"github.com/lambda-feedback/dockerapp/util/logging"
	"github.com/urfave/cli/v2"
)

// New creates the shell for a command, using the logger the root
// command stored in the cli context.
func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	return shell.New(log), nil
}
