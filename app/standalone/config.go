package standalone

import (
	"github.com/lambda-feedback/dockerapp/internal/server"
	"github.com/lambda-feedback/dockerapp/util/conf"
)

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:",squash"`
}

var DefaultConfig = conf.DefaultConfig{
	"host": "",
	"port": server.DefaultPort,
	"h2c":  false,
}
