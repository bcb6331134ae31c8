package shell

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Shell runs an fx application until the process is signalled.
type Shell struct {
	log     *zap.Logger
	options []fx.Option
}

func New(log *zap.Logger, options ...fx.Option) *Shell {
	return &Shell{
		log:     log,
		options: options,
	}
}

// Run starts the app built from the shell options and the given
// options, blocks until a shutdown signal arrives and stops the app.
// The returned error is always an *ExitError.
func (s *Shell) Run(ctx context.Context, options ...fx.Option) error {
	// 0. after run ends, flush the logger
	defer s.log.Sync()

	// 1. create app context, cancelled once run returns
	appCtx, cancelApp := context.WithCancel(ctx)
	defer cancelApp()

	// 2. create fx application with app context
	fxApp := s.createFxApp(appCtx, options...)

	// 3. start the application, exit on error
	startCtx, cancelStart := context.WithTimeout(ctx, fxApp.StartTimeout())
	defer cancelStart()

	if err := fxApp.Start(startCtx); err != nil {
		s.log.Error("failed to start", zap.Error(err))
		return NewExitError(1)
	}

	// 4. wait for done signal by OS
	sig := <-fxApp.Wait()
	exitCode := sig.ExitCode

	// 5. gracefully shutdown the app, exit on error
	stopCtx, cancelStop := context.WithTimeout(ctx, fxApp.StopTimeout())
	defer cancelStop()

	if err := fxApp.Stop(stopCtx); err != nil {
		s.log.Error("failed to stop", zap.Error(err))
		return NewExitError(1)
	}

	return NewExitError(exitCode)
}

func (s *Shell) createFxApp(ctx context.Context, options ...fx.Option) *fx.App {
	return fx.New(
		// inject global execution context
		fx.Supply(fx.Annotate(ctx, fx.As(new(context.Context)))),

		// inject the logger
		fx.Supply(s.log),

		// use the logger also for fx' logs, below the default level
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{Logger: s.log.Named("fx")}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),

		// provide shell options
		fx.Options(s.options...),

		// provide run options
		fx.Options(options...),
	)
}
