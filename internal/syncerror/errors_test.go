package syncerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizationError(t *testing.T) {
	err := &AuthorizationError{Source: "message source"}
	assert.Contains(t, err.Error(), "read access denied")
	assert.Contains(t, err.Error(), "message source")
}

func TestExtractionError(t *testing.T) {
	err := &ExtractionError{Sender: "MOM", Reason: "no amount pattern matched"}
	assert.Contains(t, err.Error(), "MOM")
	assert.Contains(t, err.Error(), "no amount pattern matched")
}

func TestWriteErrorUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := &WriteError{Partition: "expense", Fingerprint: "[TXN:abc]", Err: cause}

	assert.Contains(t, err.Error(), "expense")
	assert.ErrorIs(t, err, cause)
}
