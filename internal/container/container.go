package container

import (
	"context"
	"fmt"
	"io"

	"bizstats/adapters/excel"
	"bizstats/adapters/report"
	"bizstats/adapters/rng"
	"bizstats/adapters/stats/sampler"
	"bizstats/app"
	"bizstats/domain/run"
	"bizstats/domain/scenario"
	"bizstats/internal"
	"bizstats/internal/config"
	"bizstats/internal/errors"
	"bizstats/ports"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Sampling
	RNG     ports.RNGPort
	Sampler ports.SamplerPort

	// Pipeline
	Pipeline *app.PipelineService

	// Output
	Renderer ports.ReportRenderer
	Exporter ports.ReportExporter
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	renderer, err := report.NewRenderer(cfg.Report.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	logger := internal.NewLogger(cfg.Logging.Level)
	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Renderer: renderer,
		Exporter: excel.NewWorkbookExporter(logger),
	}
	if err := c.initSampling(); err != nil {
		return nil, err
	}
	c.Pipeline = app.NewPipelineService(c.Sampler, c.Logger)

	c.Logger.Debug("container initialized: engine=%s format=%s xlsx=%q preview=%d",
		cfg.Sampling.Engine, cfg.Report.Format, cfg.Report.XLSXPath, cfg.Report.Preview)
	return c, nil
}

// initSampling pairs the RNG stream with the sampling algorithms of the
// configured engine
func (c *Container) initSampling() error {
	switch c.Config.Sampling.Engine {
	case config.EngineLegacy, "":
		c.RNG = rng.NewMT19937Adapter()
		c.Sampler = sampler.NewLegacySampler(c.RNG, c.Logger)
	case config.EngineDistuv:
		c.RNG = rng.NewPCGAdapter()
		c.Sampler = sampler.NewDistuvSampler(c.RNG, c.Logger)
	default:
		return errors.ConfigInvalid(fmt.Sprintf("unknown sampling engine %q", c.Config.Sampling.Engine))
	}
	return nil
}

// Execute runs the scenarios in order, writes the rendered reports to w and,
// when configured, exports them to a workbook
func (c *Container) Execute(ctx context.Context, w io.Writer, scenarios []scenario.Scenario) ([]*run.Report, error) {
	prepared := make([]scenario.Scenario, len(scenarios))
	for i, sc := range scenarios {
		prepared[i] = sc.WithPreview(c.Config.Report.Preview)
	}

	reports, err := c.Pipeline.RunAll(ctx, prepared)
	if err != nil {
		return nil, err
	}

	if err := report.RenderAll(ctx, c.Renderer, w, reports); err != nil {
		return nil, fmt.Errorf("failed to render reports: %w", err)
	}

	if path := c.Config.Report.XLSXPath; path != "" {
		if err := c.Exporter.Export(ctx, path, reports); err != nil {
			return nil, err
		}
	}

	return reports, nil
}
