package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

var ErrNotListening = errors.New("server is not listening")

type HttpServerParams struct {
	fx.In

	Context context.Context

	Config HttpConfig

	Handlers []*HttpHandler `group:"handlers"`
	Logger   *zap.Logger
}

type HttpServer struct {
	server   *http.Server
	listener net.Listener
	log      *zap.Logger
}

func NewHttpServer(params HttpServerParams) *HttpServer {
	baseCtx := params.Context
	if baseCtx == nil {
		baseCtx = context.Background()
	}

	mux := NewServeMux(params.Handlers)

	var handler http.Handler = mux
	if params.Config.H2c {
		handler = h2c.NewHandler(mux, &http2.Server{})
	}

	server := &http.Server{
		Addr:    net.JoinHostPort(params.Config.Host, strconv.Itoa(params.Config.Port)),
		Handler: handler,
		// requests inherit the app context
		BaseContext: func(net.Listener) context.Context {
			return baseCtx
		},
	}

	return &HttpServer{
		server: server,
		log:    params.Logger,
	}
}

// NewLifecycleServer binds the listener while the app starts, so a
// port that is already taken aborts start-up instead of surfacing
// later from a background goroutine.
func NewLifecycleServer(params HttpServerParams, lc fx.Lifecycle) *HttpServer {
	server := NewHttpServer(params)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return server.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
	return server
}

// Start binds the listener and serves it in a new goroutine.
func (s *HttpServer) Start(ctx context.Context) error {
	if err := s.Listen(ctx); err != nil {
		return err
	}

	go s.Serve()

	return nil
}

// Listen binds the configured address and logs the bound port.
func (s *HttpServer) Listen(ctx context.Context) error {
	cfg := net.ListenConfig{}

	listener, err := cfg.Listen(ctx, "tcp", s.server.Addr)
	if err != nil {
		s.log.With(zap.Error(err), zap.String("address", s.server.Addr)).Error("failed to listen")
		return fmt.Errorf("listen on %s: %w", s.server.Addr, err)
	}

	s.listener = listener

	s.log.With(zap.String("address", listener.Addr().String())).
		Info(fmt.Sprintf("Server running on http://localhost:%d", s.Port()))

	return nil
}

// Serve blocks until the server is shut down.
func (s *HttpServer) Serve() error {
	if s.listener == nil {
		return ErrNotListening
	}

	if err := s.server.Serve(s.listener); err != nil && err != http.ErrServerClosed {
		s.log.With(zap.Error(err)).Error("failed to serve")
		return err
	}

	return nil
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		s.log.With(zap.Error(err)).Error("failed to shutdown")
		return err
	}

	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (s *HttpServer) Addr() string {
	if s.listener == nil {
		return s.server.Addr
	}

	return s.listener.Addr().String()
}

// Port returns the bound port, or 0 before Listen.
func (s *HttpServer) Port() int {
	if s.listener == nil {
		return 0
	}

	if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}

	return 0
}
