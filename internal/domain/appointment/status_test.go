package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabeebak/clinic-scheduler/internal/httperr"
)

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusConfirmed))
	assert.True(t, ValidStatus(StatusCancelled))
	assert.True(t, ValidStatus(StatusCompleted))

	assert.False(t, ValidStatus("pending"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("Confirmed"))
}

func TestTransitionsRequireConfirmed(t *testing.T) {
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.NoError(t, CanComplete(StatusConfirmed))
	assert.NoError(t, CanReassert(StatusConfirmed))

	for _, current := range []Status{StatusCancelled, StatusCompleted} {
		assert.True(t, httperr.IsBusiness(CanCancel(current), "invalid_state"),
			"cancel from %s", current)
		assert.True(t, httperr.IsBusiness(CanComplete(current), "invalid_state"),
			"complete from %s", current)
		assert.True(t, httperr.IsBusiness(CanReassert(current), "invalid_state"),
			"reassert from %s", current)
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusConfirmed, InitialStatus())
}
