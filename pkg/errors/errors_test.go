package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesWrappedAppError(t *testing.T) {
	cause := stderrors.New("lookup miss")
	err := fmt.Errorf("loading store: %w", NotFound("Store", cause))

	assert.True(t, Is(err, "NOT_FOUND"))
	assert.False(t, Is(err, "CONFLICT"))
	assert.ErrorIs(t, err, cause)
}

func TestConstructorsCarryStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, Validation("rating must be between 1 and 5").Status)
	assert.Equal(t, http.StatusConflict, Conflict("already reviewed").Status)
	assert.Equal(t, http.StatusBadGateway, ServiceUnavailable("analysis failed", nil).Status)
	assert.Equal(t, "NOT_FOUND: Item not found", NotFound("Item", nil).Error())
}
