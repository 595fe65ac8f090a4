// Package container provides dependency injection for the sms-ledger
// application. It centralizes the creation and wiring of all pipeline
// dependencies, making them explicit and testable.
package container

import (
	"fmt"
	"path/filepath"

	"fjacquet/sms-ledger/internal/categorizer"
	"fjacquet/sms-ledger/internal/config"
	"fjacquet/sms-ledger/internal/extractor"
	"fjacquet/sms-ledger/internal/fingerprint"
	"fjacquet/sms-ledger/internal/ledger"
	"fjacquet/sms-ledger/internal/logging"
	"fjacquet/sms-ledger/internal/messagesource"
	"fjacquet/sms-ledger/internal/store"
	"fjacquet/sms-ledger/internal/sync"
)

// Container holds all application dependencies. It is immutable after
// creation; components are reached through getters so nothing can be
// swapped out from under a running sync.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	fileStore   *store.FileStore
	settings    *store.Settings
	ledgerStore ledger.Store
	source      messagesource.Source
	syncer      *sync.Syncer
}

// NewContainer creates and wires all application dependencies from the
// configuration.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Logger first: everything else wants one.
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	fileStore := store.NewFileStore(
		dataPath(cfg, cfg.Data.SettingsFile),
		dataPath(cfg, cfg.Data.CategoryFile),
		logger,
	)
	settings, err := fileStore.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	ledgerStore := ledger.NewCSVStore(
		dataPath(cfg, cfg.Data.ExpensesFile),
		dataPath(cfg, cfg.Data.IncomesFile),
		logger,
	)

	source := messagesource.NewFixtureSource(dataPath(cfg, cfg.Data.MessagesFile), logger)

	syncer := sync.NewSyncer(
		source,
		ledgerStore,
		settings,
		extractor.New(logger),
		categorizer.NewCategorizer(fileStore, logger),
		fingerprint.NewGenerator(cfg.Dedup.WindowSeconds*1000),
		logger,
		sync.Options{
			MaxMessages:      cfg.Sync.MaxMessages,
			ProgressInterval: cfg.Sync.ProgressInterval,
		},
	)

	return &Container{
		logger:      logger,
		config:      cfg,
		fileStore:   fileStore,
		settings:    settings,
		ledgerStore: ledgerStore,
		source:      source,
		syncer:      syncer,
	}, nil
}

// dataPath anchors a relative file name under the configured data
// directory. Absolute paths and empty names pass through unchanged.
func dataPath(cfg *config.Config, name string) string {
	if name == "" || cfg.Data.Directory == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cfg.Data.Directory, name)
}

// GetLogger returns the configured logger.
func (c *Container) GetLogger() logging.Logger { return c.logger }

// GetConfig returns the application configuration.
func (c *Container) GetConfig() *config.Config { return c.config }

// GetFileStore returns the settings and category file store.
func (c *Container) GetFileStore() *store.FileStore { return c.fileStore }

// GetSettings returns the loaded user settings.
func (c *Container) GetSettings() *store.Settings { return c.settings }

// GetLedger returns the ledger store.
func (c *Container) GetLedger() ledger.Store { return c.ledgerStore }

// GetSource returns the message source.
func (c *Container) GetSource() messagesource.Source { return c.source }

// GetSyncer returns the wired sync orchestrator.
func (c *Container) GetSyncer() *sync.Syncer { return c.syncer }
