package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGrowthPercent(t *testing.T) {
	assert.Equal(t, 50, GrowthPercent(15, 10))
	assert.Equal(t, -50, GrowthPercent(5, 10))
	assert.Equal(t, 0, GrowthPercent(10, 10))

	// A zero prior period always reads as 100% growth.
	assert.Equal(t, 100, GrowthPercent(5, 0))
	assert.Equal(t, 100, GrowthPercent(0, 0))
	assert.Equal(t, 100, GrowthPercent(0, -1))
}

func TestRatingPercent(t *testing.T) {
	assert.Equal(t, 25, RatingPercent(5, 4))
	assert.Equal(t, -20, RatingPercent(4, 5))

	// Unlike counts, a zero prior rating reads as 0%.
	assert.Equal(t, 0, RatingPercent(4.5, 0))
	assert.Equal(t, 0, RatingPercent(0, 0))
}

func TestRoundRating(t *testing.T) {
	assert.Equal(t, 4.3, RoundRating(4.25))
	assert.Equal(t, 4.2, RoundRating(4.24))
	assert.Equal(t, 0.0, RoundRating(0))
	assert.Equal(t, 5.0, RoundRating(4.96))
}

func TestStartOfMonth(t *testing.T) {
	in := time.Date(2025, time.March, 17, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), startOfMonth(in))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Jan", monthLabel(time.January))
	assert.Equal(t, "Dec", monthLabel(time.December))
}
