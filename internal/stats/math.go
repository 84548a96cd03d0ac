package stats

import (
	"math"
	"time"
)

// GrowthPercent is the month-over-month change convention used for
// appointment, patient and revenue counts: a zero prior period reports
// 100% growth rather than dividing by zero.
func GrowthPercent(current, previous float64) int {
	if previous > 0 {
		return int(math.Round((current - previous) / previous * 100))
	}
	return 100
}

// RatingPercent is the rating change convention: a zero prior rating
// reports 0%, not 100%. Asymmetric with GrowthPercent on purpose.
func RatingPercent(current, previous float64) int {
	if previous > 0 {
		return int(math.Round((current - previous) / previous * 100))
	}
	return 0
}

// RoundRating rounds an average rating to one decimal.
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

func monthLabel(m time.Month) string {
	return monthNames[int(m)-1]
}
