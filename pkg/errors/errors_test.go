package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneMatchesSentinel(t *testing.T) {
	err := Clone(ErrInvalidState, "tenancy has ended")
	require.Equal(t, "tenancy has ended", err.Error())
	assert.True(t, IsInvalidState(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, http.StatusConflict, err.Status)
}

func TestWithDetailsCopiesSlice(t *testing.T) {
	details := []string{"a", "b"}
	err := WithDetails(ErrValidation, "invalid", details...)
	details[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, err.Details)
	assert.Nil(t, ErrValidation.Details)
	assert.True(t, IsValidation(fmt.Errorf("wrapped: %w", err)))
}

func TestFromErrorWrapsUnknown(t *testing.T) {
	err := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, err.Code)
	assert.Nil(t, FromError(nil))
}
