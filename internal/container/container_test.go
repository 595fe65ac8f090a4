package container

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/sms-ledger/internal/config"
)

func TestNewContainerRejectsNilConfig(t *testing.T) {
	_, err := NewContainer(nil)
	assert.Error(t, err)
}

func TestNewContainerWiresSyncer(t *testing.T) {
	cfg, err := config.InitializeConfig()
	require.NoError(t, err)
	cfg.Data.Directory = t.TempDir()

	c, err := NewContainer(cfg)
	require.NoError(t, err)

	require.NotNil(t, c.GetSyncer())
	require.NotNil(t, c.GetLedger())
	require.NotNil(t, c.GetSource())
	assert.Same(t, cfg, c.GetConfig())
}

func TestContainerSyncRunsOnFixtures(t *testing.T) {
	cfg, err := config.InitializeConfig()
	require.NoError(t, err)
	cfg.Data.Directory = t.TempDir()

	c, err := NewContainer(cfg)
	require.NoError(t, err)

	// The built-in fixture batch has four parseable messages.
	progress, err := c.GetSyncer().SyncAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 5, progress.Total)
	assert.Equal(t, 4, progress.Added)

	// And the ledger partitions land under the data directory.
	assert.FileExists(t, filepath.Join(cfg.Data.Directory, "expenses.csv"))
	assert.FileExists(t, filepath.Join(cfg.Data.Directory, "incomes.csv"))
}
