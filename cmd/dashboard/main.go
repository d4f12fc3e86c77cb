package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"spacexdash/internal/app"
	"spacexdash/internal/appconf"
	"spacexdash/internal/logging"
	"spacexdash/internal/restapi"
)

// flagKeys maps command-line flag names to configuration keys. Only flags
// given on the command line override the config file and environment.
var flagKeys = map[string]string{
	"port":      "port",
	"env":       "env",
	"data":      "data_path",
	"log-level": "log_level",
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.SetOutput(stdout)

	configFile := fs.String("config", "", "Optional config file (yaml, json or toml)")
	port := fs.Int("port", appconf.DefaultPort, "HTTP server port")
	env := fs.String("env", "development", "Environment (development|test|production)")
	dataPath := fs.String("data", appconf.DefaultDataPath, "Path to the launch records CSV")
	logLevel := fs.String("log-level", appconf.DefaultLogLevel, "Log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	values := map[string]any{
		"port":      *port,
		"env":       *env,
		"data":      *dataPath,
		"log-level": *logLevel,
	}
	overrides := make(map[string]any)
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = values[f.Name]
		}
	})

	cfg, err := appconf.Load(*configFile, overrides)
	if err != nil {
		bootLogger := logging.NewTextLogger(stdout, slog.LevelInfo)
		logging.LogError(bootLogger, "invalid configuration", err)
		return 1
	}

	logger := newLogger(cfg, stdout)

	application, err := app.New(cfg, logger)
	if err != nil {
		logging.LogError(logger, "failed to load launch records", err,
			slog.String("data_path", cfg.DataPath))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		logging.LogError(logger, "failed to listen", err, slog.Int("port", cfg.Port))
		return 1
	}

	logger.Info("starting server", "addr", ln.Addr().String(), "env", cfg.Env.String())

	api := restapi.NewRestAPI(application)
	if err := api.Serve(ctx, ln); err != nil {
		logging.LogError(logger, "server stopped", err)
		return 1
	}

	logger.Info("server stopped")
	return 0
}

// newLogger writes human-readable text in development and JSON elsewhere.
func newLogger(cfg appconf.Config, w io.Writer) *slog.Logger {
	level := logging.ParseLevel(cfg.LogLevel)
	if cfg.Env == appconf.Development {
		return logging.NewTextLogger(w, level)
	}
	return logging.NewStructuredLogger(w, level)
}
