package stats

import (
	"testing"

	"fashiontally-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeFeedbackStatsEmpty(t *testing.T) {
	got := ComputeFeedbackStats(nil)

	assert.Equal(t, 0, got.TotalReviews)
	assert.Equal(t, 0.0, got.AverageRating)
	assert.Equal(t, 0, got.ResponseRate)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, got.RatingDistribution)
}

func TestComputeFeedbackStats(t *testing.T) {
	feedback := []models.Feedback{
		{Rating: 5, Reply: "thanks!"},
		{Rating: 5},
		{Rating: 4, Reply: "appreciated"},
		{Rating: 3},
	}

	got := ComputeFeedbackStats(feedback)

	assert.Equal(t, 4, got.TotalReviews)
	assert.Equal(t, 4.3, got.AverageRating) // 4.25 rounds to one decimal
	assert.Equal(t, 50, got.ResponseRate)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 1, 4: 1, 5: 2}, got.RatingDistribution)
}

func TestComputeFeedbackStatsIgnoresOutOfRangeRatings(t *testing.T) {
	feedback := []models.Feedback{
		{Rating: 5},
		{Rating: 0},
		{Rating: 9},
	}

	got := ComputeFeedbackStats(feedback)

	assert.Equal(t, 3, got.TotalReviews)
	assert.Equal(t, 1, got.RatingDistribution[5])
	assert.Equal(t, 0, got.RatingDistribution[1])
	// 0 and 9 appear nowhere in the histogram
	total := 0
	for _, n := range got.RatingDistribution {
		total += n
	}
	assert.Equal(t, 1, total)
}

func TestComputeFeedbackStatsWhitespaceReplyNotCounted(t *testing.T) {
	feedback := []models.Feedback{
		{Rating: 4, Reply: "   "},
		{Rating: 4, Reply: "real reply"},
	}

	got := ComputeFeedbackStats(feedback)
	assert.Equal(t, 50, got.ResponseRate)
}

func TestComputeFeedbackStatsIdempotent(t *testing.T) {
	feedback := []models.Feedback{
		{Rating: 5, Reply: "a"},
		{Rating: 2},
	}

	first := ComputeFeedbackStats(feedback)
	second := ComputeFeedbackStats(feedback)
	assert.Equal(t, first, second)
}
