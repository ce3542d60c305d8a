package shared_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejolly/lingolog/internal/api/shared"
)

type taggedRequest struct {
	Name    string `json:"name" validate:"required"`
	Minutes int    `json:"minutes" validate:"gt=0"`
}

// selfValidating exercises the Validate-method preference over struct tags.
type selfValidating struct {
	err error
}

func (s selfValidating) Validate() error {
	return s.err
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes a well-formed body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"hablar","minutes":20}`))

		var decoded taggedRequest
		require.NoError(t, shared.DecodeJSON(req, &decoded))
		assert.Equal(t, "hablar", decoded.Name)
		assert.Equal(t, 20, decoded.Minutes)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

		var decoded taggedRequest
		assert.Error(t, shared.DecodeJSON(req, &decoded))
	})
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	t.Run("passes a valid tagged struct", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, shared.ValidateRequest(taggedRequest{Name: "hablar", Minutes: 20}))
	})

	t.Run("fails on violated tags", func(t *testing.T) {
		t.Parallel()

		err := shared.ValidateRequest(taggedRequest{Minutes: 0})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Name")
	})

	t.Run("prefers the type's own Validate method", func(t *testing.T) {
		t.Parallel()

		sentinel := assert.AnError
		assert.ErrorIs(t, shared.ValidateRequest(selfValidating{err: sentinel}), sentinel)
		assert.NoError(t, shared.ValidateRequest(selfValidating{}))
	})
}
