package server_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lambda-feedback/dockerapp/internal/server"
)

func helloHandler() *server.HttpHandler {
	return server.AsHttpHandler("GET /{$}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "hello")
	})).Handler
}

func newParams(log *zap.Logger, port int) server.HttpServerParams {
	return server.HttpServerParams{
		Context:  context.Background(),
		Config:   server.HttpConfig{Host: "127.0.0.1", Port: port},
		Handlers: []*server.HttpHandler{helloHandler()},
		Logger:   log,
	}
}

func get(t *testing.T, method, url string) (int, string) {
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res.StatusCode, string(body)
}

func TestHttpServer_ServesRegisteredRoutes(t *testing.T) {
	s := server.NewHttpServer(newParams(zaptest.NewLogger(t), 0))

	require.NoError(t, s.Start(context.Background()))
	defer s.Shutdown(context.Background())

	base := fmt.Sprintf("http://%s", s.Addr())

	status, body := get(t, http.MethodGet, base+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "hello", body)

	status, body = get(t, http.MethodPost, base+"/")
	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.NotEqual(t, "hello", body)

	status, _ = get(t, http.MethodGet, base+"/health")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = get(t, http.MethodGet, base+"/missing")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHttpServer_LogsStartupLineOnce(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	s := server.NewHttpServer(newParams(zap.New(core), 0))

	require.NoError(t, s.Start(context.Background()))
	defer s.Shutdown(context.Background())

	require.NotZero(t, s.Port())

	running := logs.FilterMessageSnippet("Server running on").All()
	require.Len(t, running, 1)

	assert.Equal(t, fmt.Sprintf("Server running on http://localhost:%d", s.Port()), running[0].Message)
	assert.Equal(t, 1, logs.Len())
}

func TestHttpServer_ListenFailsIfPortInUse(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	port := taken.Addr().(*net.TCPAddr).Port

	core, logs := observer.New(zapcore.InfoLevel)

	s := server.NewHttpServer(newParams(zap.New(core), port))

	err = s.Listen(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("%d", port))

	assert.Zero(t, logs.FilterMessageSnippet("Server running on").Len())
	assert.Equal(t, 1, logs.FilterMessage("failed to listen").Len())
}

func TestHttpServer_ServeFailsIfNotListening(t *testing.T) {
	s := server.NewHttpServer(newParams(zap.NewNop(), 0))

	assert.ErrorIs(t, s.Serve(), server.ErrNotListening)
}

func TestHttpServer_AddrBeforeListen(t *testing.T) {
	params := newParams(zap.NewNop(), server.DefaultPort)
	params.Config.Host = ""

	s := server.NewHttpServer(params)

	assert.Equal(t, ":3000", s.Addr())
	assert.Zero(t, s.Port())
}

func TestLifecycleServer_StartStop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	s := server.NewLifecycleServer(newParams(zaptest.NewLogger(t), 0), lc)

	lc.RequireStart()

	status, body := get(t, http.MethodGet, fmt.Sprintf("http://%s/", s.Addr()))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "hello", body)

	lc.RequireStop()
}

func TestLifecycleServer_SecondInstanceFailsToStart(t *testing.T) {
	first := fxtest.NewLifecycle(t)
	s := server.NewLifecycleServer(newParams(zaptest.NewLogger(t), 0), first)
	first.RequireStart()
	defer first.RequireStop()

	second := fxtest.NewLifecycle(t)
	server.NewLifecycleServer(newParams(zap.NewNop(), s.Port()), second)

	err := second.Start(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "listen"))
}

func TestHttpServer_H2c(t *testing.T) {
	params := newParams(zaptest.NewLogger(t), 0)
	params.Config.H2c = true

	s := server.NewHttpServer(params)

	require.NoError(t, s.Start(context.Background()))
	defer s.Shutdown(context.Background())

	status, body := get(t, http.MethodGet, fmt.Sprintf("http://%s/", s.Addr()))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "hello", body)
}
