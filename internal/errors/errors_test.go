package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")

	tests := []struct {
		name       string
		err        *AppError
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", NewValidationError("missing redfin_url", nil), http.StatusBadRequest, ErrCodeValidation, MsgRedfinURLRequired},
		{"not found", NewNotFoundError("GET /nope"), http.StatusNotFound, ErrCodeNotFound, MsgResourceNotFound},
		{"upstream", NewUpstreamError("initialInfo failed", cause), http.StatusInternalServerError, ErrCodeUpstream, MsgInternalError},
		{"internal", NewInternalError("panic", nil), http.StatusInternalServerError, ErrCodeInternal, MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantMsg, tt.err.UserMessage)
		})
	}
}

func TestAppError_UserMessageHidesCause(t *testing.T) {
	cause := stderrors.New("secret upstream detail")
	err := NewUpstreamError("belowTheFold failed", cause)

	assert.Contains(t, err.Error(), "secret upstream detail")
	assert.NotContains(t, err.UserMessage, "secret")
	assert.True(t, stderrors.Is(err, cause))
}

func TestMapError(t *testing.T) {
	assert.Nil(t, MapError(nil))

	upstream := NewUpstreamError("initialInfo failed", stderrors.New("timeout"))
	assert.Same(t, upstream, MapError(upstream))

	wrapped := fmt.Errorf("lookup: %w", upstream)
	assert.Same(t, upstream, MapError(wrapped))
	assert.True(t, IsUpstream(wrapped))

	plain := stderrors.New("boom")
	mapped := MapError(plain)
	require.NotNil(t, mapped)
	assert.Equal(t, ErrCodeInternal, mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.Equal(t, "boom", mapped.TechnicalMessage)
	assert.False(t, IsUpstream(plain))
}
