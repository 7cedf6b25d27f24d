// Package container provides dependency injection for the e-invoice
// pipeline. It centralizes the creation and wiring of all application
// dependencies, replacing module-level singletons with explicit instances.
package container

import (
	"fmt"
	"time"

	"hylin/einvoice-csv/internal/categorizer"
	"hylin/einvoice-csv/internal/chartcache"
	"hylin/einvoice-csv/internal/collection"
	"hylin/einvoice-csv/internal/config"
	"hylin/einvoice-csv/internal/einvoice"
	"hylin/einvoice-csv/internal/logging"
	"hylin/einvoice-csv/internal/report"
	"hylin/einvoice-csv/internal/store"
)

// Container holds all application dependencies. It is immutable after
// creation; components are reachable only through getters.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	store       *store.CategoryStore
	categorizer *categorizer.Categorizer
	cache       *chartcache.Cache
	invoices    *collection.Collection
	reports     *report.Generator
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	categoryStore := store.NewCategoryStore(cfg.Categories.File, logger)
	cat := categorizer.New(categoryStore, logger)
	cache := chartcache.New(time.Duration(cfg.Cache.TTLMinutes) * time.Minute)

	logger.Info("Container initialized",
		logging.Field{Key: "cache_ttl_minutes", Value: cfg.Cache.TTLMinutes})

	return &Container{
		logger:      logger,
		config:      cfg,
		store:       categoryStore,
		categorizer: cat,
		cache:       cache,
		invoices:    collection.New(),
		reports:     report.NewGenerator(logger),
	}, nil
}

// NewParser builds a parser wired to the container's categorizer, with the
// configured tuning and the given progress callback.
func (c *Container) NewParser(onProgress einvoice.ProgressFunc) *einvoice.Parser {
	return einvoice.NewWithOptions(c.logger, c.categorizer, einvoice.Options{
		ChunkSize:  c.config.Parser.ChunkSize,
		BatchSize:  c.config.Parser.BatchSize,
		SkipErrors: c.config.Parser.SkipErrors,
		MaxErrors:  c.config.Parser.MaxErrors,
		OnProgress: onProgress,
	})
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetCategorizer returns the container's categorizer instance.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetStore returns the container's category store instance.
func (c *Container) GetStore() *store.CategoryStore {
	return c.store
}

// GetCache returns the container's chart data cache.
func (c *Container) GetCache() *chartcache.Cache {
	return c.cache
}

// GetCollection returns the in-memory invoice collection.
func (c *Container) GetCollection() *collection.Collection {
	return c.invoices
}

// GetReportGenerator returns the statistics report generator.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.reports
}

// Delimiter returns the configured CSV output delimiter.
func (c *Container) Delimiter() rune {
	if c.config.CSV.Delimiter == "" {
		return ','
	}
	return []rune(c.config.CSV.Delimiter)[0]
}
