// Package messagesource supplies the raw message batches consumed by the
// sync pipeline. On platforms without native inbox access a fixture source
// stands in.
package messagesource

import (
	"context"

	"fjacquet/sms-ledger/internal/models"
)

// Source yields a device's message inbox. HasReadAccess may involve a
// user-facing permission prompt on platforms that require one; ListMessages
// returns at most max messages in inbox order.
type Source interface {
	HasReadAccess() bool
	ListMessages(ctx context.Context, max int) ([]models.RawMessage, error)
}
