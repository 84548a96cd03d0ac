package schedule

import (
	"strconv"
	"strings"

	"github.com/tabeebak/clinic-scheduler/internal/httperr"
)

const DefaultSlotDuration = 30

var weekDays = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

var visitTypes = map[string]bool{
	"consultation": true,
	"procedure":    true,
	"test":         true,
	"medication":   true,
}

func ValidDay(day string) bool {
	return weekDays[strings.ToLower(day)]
}

func ValidVisitType(t string) bool {
	return visitTypes[t]
}

// ClockMinutes parses an H:MM or HH:MM wall-clock string into minutes
// since midnight.
func ClockMinutes(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || len(parts[1]) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// ValidateWindow checks a slot's day, clock times and visit type. Times are
// compared as same-day wall clock: start must be strictly before end.
func ValidateWindow(day, startTime, endTime, visitType string) error {
	if day == "" || startTime == "" || endTime == "" || visitType == "" {
		return httperr.ErrBusiness("missing_fields")
	}
	if !ValidDay(day) {
		return httperr.ErrBusiness("invalid_day")
	}
	if !ValidVisitType(visitType) {
		return httperr.ErrBusiness("invalid_type")
	}

	start, ok := ClockMinutes(startTime)
	if !ok {
		return httperr.ErrBusiness("invalid_time")
	}
	end, ok := ClockMinutes(endTime)
	if !ok {
		return httperr.ErrBusiness("invalid_time")
	}
	if start >= end {
		return httperr.ErrBusiness("invalid_time_range")
	}
	return nil
}
