package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tabeebak/clinic-scheduler/internal/httperr"
)

type businessMapping struct {
	status  int
	message string
}

// Business codes stay internal; the wire carries only status and message.
var businessMappings = map[string]businessMapping{
	"missing_fields":        {http.StatusBadRequest, "required fields are missing"},
	"invalid_price":         {http.StatusBadRequest, "price must not be negative"},
	"invalid_reason":        {http.StatusBadRequest, "reason must be between 10 and 500 characters"},
	"invalid_type":          {http.StatusBadRequest, "invalid visit type"},
	"invalid_day":           {http.StatusBadRequest, "invalid day of week"},
	"invalid_time":          {http.StatusBadRequest, "time must be in HH:MM format"},
	"invalid_time_range":    {http.StatusBadRequest, "start time must be before end time"},
	"invalid_status":        {http.StatusBadRequest, "invalid appointment status"},
	"invalid_state":         {http.StatusBadRequest, "appointment is not in a state that allows this change"},
	"slot_unavailable":      {http.StatusBadRequest, "slot is not available"},
	"slot_not_found":        {http.StatusNotFound, "slot not found"},
	"doctor_not_found":      {http.StatusNotFound, "doctor not found"},
	"patient_not_found":     {http.StatusNotFound, "patient not found"},
	"appointment_not_found": {http.StatusNotFound, "appointment not found"},
	"not_owner":             {http.StatusForbidden, "you do not have access to this appointment"},
}

// writeBusiness translates a business error into its HTTP shape and
// reports whether it handled the error. Unknown errors fall through to
// the caller's 500.
func writeBusiness(c *gin.Context, err error) bool {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		return false
	}

	m, ok := businessMappings[be.Code]
	if !ok {
		m = businessMapping{http.StatusBadRequest, be.Code}
	}
	httperr.Write(c, m.status, m.message)
	return true
}
