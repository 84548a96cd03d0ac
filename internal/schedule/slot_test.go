package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabeebak/clinic-scheduler/internal/httperr"
)

func TestClockMinutes(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"9:30", 570, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"12:5", 0, false},
		{"noon", 0, false},
		{"", 0, false},
		{"-1:00", 0, false},
	}

	for _, tt := range tests {
		got, ok := ClockMinutes(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.minutes, got, "input %q", tt.in)
		}
	}
}

func TestValidDay(t *testing.T) {
	assert.True(t, ValidDay("monday"))
	assert.True(t, ValidDay("Monday"))
	assert.True(t, ValidDay("SUNDAY"))
	assert.False(t, ValidDay("someday"))
	assert.False(t, ValidDay(""))
}

func TestValidateWindow(t *testing.T) {
	tests := []struct {
		name string
		day, start, end, typ string
		code string
	}{
		{"valid", "monday", "09:00", "10:00", "consultation", ""},
		{"valid uppercase day", "Friday", "14:00", "15:30", "procedure", ""},
		{"missing day", "", "09:00", "10:00", "consultation", "missing_fields"},
		{"missing type", "monday", "09:00", "10:00", "", "missing_fields"},
		{"bad day", "funday", "09:00", "10:00", "consultation", "invalid_day"},
		{"bad type", "monday", "09:00", "10:00", "surgery", "invalid_type"},
		{"bad start", "monday", "9am", "10:00", "consultation", "invalid_time"},
		{"bad end", "monday", "09:00", "25:00", "consultation", "invalid_time"},
		{"inverted", "monday", "10:00", "09:00", "consultation", "invalid_time_range"},
		{"zero length", "monday", "09:00", "09:00", "consultation", "invalid_time_range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWindow(tt.day, tt.start, tt.end, tt.typ)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tt.code),
				"want code %s, got %v", tt.code, err)
		})
	}
}
