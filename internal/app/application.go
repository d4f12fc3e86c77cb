package app

import (
	"fmt"
	"log/slog"
	"time"

	"spacexdash/internal/appconf"
	"spacexdash/internal/charts"
	"spacexdash/internal/dashboard"
	"spacexdash/internal/launches"
	"spacexdash/internal/logging"
	"spacexdash/internal/webui"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware. Everything in it is built once at startup and only read
// while serving.
type Application struct {
	Config    appconf.Config
	Logger    *slog.Logger
	Dataset   *launches.Dataset
	Dashboard *dashboard.Dashboard
	WebUI     *webui.WebUI
}

// New loads the launch records named by cfg and builds the dashboard over them.
func New(cfg appconf.Config, logger *slog.Logger) (*Application, error) {
	start := time.Now()
	ds, err := launches.Load(cfg.DataPath)
	if err != nil {
		return nil, err
	}

	logging.LogOperation(logger, "dataset_loaded",
		slog.String("source", ds.Source()),
		slog.Int("records", ds.Len()),
		slog.Int("sites", len(ds.Sites())),
		slog.Float64("min_payload_kg", ds.MinPayload()),
		slog.Float64("max_payload_kg", ds.MaxPayload()),
		slog.Duration("duration", time.Since(start)),
		slog.String("component", "launches"))

	return NewWithDataset(cfg, logger, ds)
}

// NewWithDataset builds the Application over an already loaded dataset.
func NewWithDataset(cfg appconf.Config, logger *slog.Logger, ds *launches.Dataset) (*Application, error) {
	dash, err := dashboard.New(ds, charts.DefaultSize)
	if err != nil {
		return nil, fmt.Errorf("building dashboard: %w", err)
	}

	ui, err := webui.New(ds, cfg.Env == appconf.Development, cfg.Env != appconf.Production)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Logger:    logger,
		Dataset:   ds,
		Dashboard: dash,
		WebUI:     ui,
	}, nil
}
