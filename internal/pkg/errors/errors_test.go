package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDetailsDoesNotMutateSentinel(t *testing.T) {
	detailed := ErrStationNotFound.WithDetails(map[string]interface{}{"station_id": "n42"})

	assert.Equal(t, "n42", detailed.Details["station_id"])
	assert.Empty(t, ErrStationNotFound.Details)
	assert.Equal(t, http.StatusNotFound, detailed.StatusCode)
}

func TestAppErrorMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("lookup origin: %w", ErrStationNotFound.WithDetails(nil))

	assert.ErrorIs(t, wrapped, ErrStationNotFound)
	assert.NotErrorIs(t, wrapped, ErrNoPathFound)

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "STATION_NOT_FOUND", appErr.Code)
}

func TestAsPlainError(t *testing.T) {
	_, ok := As(fmt.Errorf("boom"))
	assert.False(t, ok)
}
