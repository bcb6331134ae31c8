package lambda_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lambda-feedback/dockerapp/app/lambda"
	"github.com/lambda-feedback/dockerapp/handler"
	"github.com/lambda-feedback/dockerapp/internal/server"
)

func newLambdaHandler(source lambda.ProxySource) *lambda.LambdaHandler {
	root := handler.NewRootHandler(handler.RootHandlerParams{Log: zap.NewNop()})

	return lambda.NewLambdaHandler(lambda.LambdaHandlerParams{
		Config:   lambda.Config{ProxySource: source},
		Handlers: []*server.HttpHandler{handler.NewRootRoute(root).Handler},
		Context:  context.Background(),
		Logger:   zap.NewNop(),
	})
}

func v2Request(method, path string) events.APIGatewayV2HTTPRequest {
	return events.APIGatewayV2HTTPRequest{
		Version: "2.0",
		RawPath: path,
		Headers: map[string]string{},
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			DomainName: "abc123.execute-api.eu-west-1.amazonaws.com",
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method: method,
				Path:   path,
			},
		},
	}
}

func TestLambdaHandler_ApiGatewayV2_Root(t *testing.T) {
	h := newLambdaHandler(lambda.ProxySourceApiGatewayV2)

	fn, err := h.ProxyFunction()
	require.NoError(t, err)

	proxy, ok := fn.(func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error))
	require.True(t, ok)

	res, err := proxy(context.Background(), v2Request(http.MethodGet, "/"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, handler.Message, res.Body)
}

func TestLambdaHandler_ApiGatewayV2_Missing(t *testing.T) {
	h := newLambdaHandler(lambda.ProxySourceApiGatewayV2)

	fn, err := h.ProxyFunction()
	require.NoError(t, err)

	proxy := fn.(func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error))

	res, err := proxy(context.Background(), v2Request(http.MethodGet, "/health"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.NotEqual(t, handler.Message, res.Body)
}

func TestLambdaHandler_ProxySources(t *testing.T) {
	sources := []lambda.ProxySource{
		lambda.ProxySourceApiGatewayV1,
		lambda.ProxySourceApiGatewayV2,
		lambda.ProxySourceAlb,
	}

	for _, source := range sources {
		t.Run(source.String(), func(t *testing.T) {
			fn, err := newLambdaHandler(source).ProxyFunction()
			assert.NoError(t, err)
			assert.NotNil(t, fn)
		})
	}
}

func TestLambdaHandler_InvalidProxySource(t *testing.T) {
	h := newLambdaHandler(lambda.ProxySource("SQS"))

	_, err := h.ProxyFunction()
	assert.ErrorContains(t, err, "invalid proxy source: SQS")

	assert.Error(t, h.Start())
}
