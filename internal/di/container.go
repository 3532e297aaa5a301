package di

import (
	"context"
	"fmt"

	"formup/internal/adapter/handler"
	"formup/internal/application/port/output"
	"formup/internal/application/service"
	"formup/internal/domain/sampledata"
	"formup/internal/infrastructure/browser/rod"
	"formup/internal/infrastructure/config"
	"formup/internal/infrastructure/logger"
	"formup/internal/infrastructure/scheduler"
	"formup/internal/usecase/autofill"
	"formup/internal/usecase/filler"
	"formup/internal/usecase/generator"
)

type Container struct {
	Config    config.Config
	Logger    output.LoggerPort
	Scheduler *scheduler.TimerScheduler
	Filler    *filler.Filler

	browser *rod.BrowserAdapter
}

// NewContainer wires the process-wide services. task names the per-run log
// file when a log directory is configured.
func NewContainer(cfg config.Config, task string) (*Container, error) {
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.JSON = cfg.LogJSON
	logCfg.Dir = cfg.LogDir
	if task != "" {
		logCfg.Task = task
	}

	log, err := logger.NewLoggerAdapter(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	data := sampledata.Default()
	if cfg.SampleData != "" {
		data, err = sampledata.LoadFile(cfg.SampleData)
		if err != nil {
			log.Close()
			return nil, fmt.Errorf("failed to load sample data: %w", err)
		}
		log.Debug("Loaded sample data", "path", cfg.SampleData)
	}

	gen := generator.New(generator.WithSampleData(data))

	return &Container{
		Config:    cfg,
		Logger:    log,
		Scheduler: scheduler.New(),
		Filler:    filler.New(gen, log),
	}, nil
}

// FormFiller returns the fill use case bound to page.
func (c *Container) FormFiller(page output.PagePort) *autofill.UseCase {
	uc := autofill.New(page, c.Filler, c.Scheduler, c.Logger)
	if c.Config.FocusDelay > 0 {
		uc.WithFocusDelay(c.Config.FocusDelay)
	}
	return uc
}

// Dispatcher returns a message dispatcher answering fill requests on page.
func (c *Container) Dispatcher(page output.PagePort) *service.Dispatcher {
	d := service.NewDispatcher(c.Logger)
	d.Register(handler.NewFillFormHandler(c.FormFiller(page), c.Logger))
	return d
}

// Browser launches the browser on first use.
func (c *Container) Browser(ctx context.Context) (*rod.BrowserAdapter, error) {
	if c.browser != nil {
		return c.browser, nil
	}

	browserCfg := rod.DefaultConfig()
	browserCfg.Headless = c.Config.Headless
	browserCfg.Timeout = c.Config.Timeout
	browserCfg.NoSandbox = c.Config.NoSandbox
	browserCfg.Bin = c.Config.BrowserBin

	browser, err := rod.NewBrowserAdapter(ctx, browserCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create browser: %w", err)
	}
	c.Logger.Debug("Browser launched", "headless", browserCfg.Headless)

	c.browser = browser
	return browser, nil
}

func (c *Container) Close() {
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.browser != nil {
		c.browser.Close()
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}
