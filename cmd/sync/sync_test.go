package sync_test

import (
	"testing"

	"fjacquet/sms-ledger/cmd/sync"

	"github.com/stretchr/testify/assert"
)

func TestSyncCommand_CommandMetadata(t *testing.T) {
	assert.Equal(t, "sync", sync.Cmd.Use)
	assert.Contains(t, sync.Cmd.Short, "Scan the message inbox")
	assert.NotNil(t, sync.Cmd.RunE)
}

func TestSyncCommand_QuietFlag(t *testing.T) {
	flag := sync.Cmd.Flags().Lookup("quiet")
	assert.NotNil(t, flag)
	assert.Equal(t, "q", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}
