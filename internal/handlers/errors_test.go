package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tabeebak/clinic-scheduler/internal/httperr"
)

func TestWriteBusiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		code   string
		status int
	}{
		{"missing_fields", http.StatusBadRequest},
		{"slot_unavailable", http.StatusBadRequest},
		{"invalid_state", http.StatusBadRequest},
		{"doctor_not_found", http.StatusNotFound},
		{"appointment_not_found", http.StatusNotFound},
		{"not_owner", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			handled := writeBusiness(c, httperr.ErrBusiness(tt.code))
			assert.True(t, handled)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestWriteBusinessIgnoresPlainErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	assert.False(t, writeBusiness(c, errors.New("connection refused")))
}

func TestWriteBusinessUnknownCodeDefaultsTo400(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	assert.True(t, writeBusiness(c, httperr.ErrBusiness("some_new_code")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
