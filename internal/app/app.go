package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/numlab/internal/config"
	"github.com/agbru/numlab/internal/fibonacci"
	"github.com/agbru/numlab/internal/logging"
	"github.com/agbru/numlab/internal/orchestration"
	"github.com/agbru/numlab/internal/pi"
	"github.com/agbru/numlab/internal/tui"
	"github.com/agbru/numlab/internal/ui"
)

// Application represents the numlab application instance.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.CalculatorFactory
	Registry  *pi.Registry
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithRegistry sets a custom π estimator registry for the application.
func WithRegistry(r *pi.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithLogger sets a custom Logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = fibonacci.NewDefaultFactory()
	}
	if app.Registry == nil {
		app.Registry = pi.NewRegistry()
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "numlab")
	}

	programName := "numlab"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List(), app.Registry.List())
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	// The default factory supports re-capping the recursive variant; custom
	// factories injected by tests may not.
	if limiter, ok := a.Factory.(interface{ SetRecursionLimit(int) }); ok {
		limiter.SetRecursionLimit(a.Config.RecursionLimit)
	}
	a.Registry.SetMonteCarloSeed(a.Config.Seed)

	switch {
	case a.Config.Demo:
		a.Logger.Debug("starting run", logging.String("mode", "demo"))
		return a.runDemo(ctx, out)
	case a.Config.TUI:
		a.Logger.Debug("starting run", logging.String("mode", "tui"), logging.Int("n", a.Config.N))
		return a.runTUI(ctx, out)
	case a.Config.PiMode:
		a.Logger.Debug("starting run",
			logging.String("mode", "pi"),
			logging.String("method", a.Config.PiMethod),
			logging.Int("samples", a.Config.Samples))
		return a.runPi(ctx, out)
	default:
		a.Logger.Debug("starting run",
			logging.String("mode", "calculate"),
			logging.String("algo", a.Config.Algo),
			logging.Int("n", a.Config.N))
		return a.runCalculate(ctx, out)
	}
}

// runTUI launches the interactive TUI dashboard.
func (a *Application) runTUI(ctx context.Context, _ io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	calculatorsToRun := orchestration.GetCalculatorsToRun(a.Config.Algo, a.Factory)
	return tui.Run(ctx, calculatorsToRun, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
