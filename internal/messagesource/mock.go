package messagesource

import (
	"context"

	"fjacquet/sms-ledger/internal/models"
)

// MockSource is a Source implementation for testing. DenyAccess simulates
// a refused permission prompt; ListErr injects a fetch failure.
type MockSource struct {
	Messages   []models.RawMessage
	DenyAccess bool
	ListErr    error
}

// HasReadAccess reports the configured access decision.
func (m *MockSource) HasReadAccess() bool {
	return !m.DenyAccess
}

// ListMessages returns the configured batch, bounded by max.
func (m *MockSource) ListMessages(ctx context.Context, max int) ([]models.RawMessage, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	messages := m.Messages
	if max > 0 && len(messages) > max {
		messages = messages[:max]
	}
	return messages, nil
}
