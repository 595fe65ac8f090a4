package messagesource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/sms-ledger/internal/logging"
)

func TestBuiltInSampleBatch(t *testing.T) {
	source := NewFixtureSource("", &logging.MockLogger{})

	assert.True(t, source.HasReadAccess())

	messages, err := source.ListMessages(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, messages, 5)
	assert.Equal(t, "HDFCBK", messages[0].Sender)
}

func TestListMessagesHonorsMax(t *testing.T) {
	source := NewFixtureSource("", &logging.MockLogger{})

	messages, err := source.ListMessages(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestListMessagesFromCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.csv")
	content := "sender,body,timestamp\n" +
		"HDFCBK,Rs. 100.00 debited from a/c 1234 to CAFE.,1739347200000\n" +
		"MOM,call me back,1739347260000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	source := NewFixtureSource(path, &logging.MockLogger{})
	messages, err := source.ListMessages(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "HDFCBK", messages[0].Sender)
	assert.Equal(t, "1739347260000", messages[1].Timestamp)
}

func TestListMessagesMissingFileFails(t *testing.T) {
	source := NewFixtureSource(filepath.Join(t.TempDir(), "nope.csv"), &logging.MockLogger{})

	_, err := source.ListMessages(context.Background(), 0)
	assert.Error(t, err)
}

func TestListMessagesRespectsCancelledContext(t *testing.T) {
	source := NewFixtureSource("", &logging.MockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.ListMessages(ctx, 0)
	assert.Error(t, err)
}
