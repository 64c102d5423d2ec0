// Package stats is the aggregation engine: pure transforms from
// tenant-scoped records to the derived figures shown on the dashboard,
// inventory, finance and CRM screens. Nothing here performs I/O or
// keeps state; every function can be re-run on each fresh snapshot.
// Malformed fields degrade to zero per record instead of failing the
// whole aggregation, since historical data comes from manual entry.
package stats

import (
	"math"
	"strings"

	"fashiontally-backend/models"
)

type FeedbackStats struct {
	TotalReviews       int         `json:"totalReviews"`
	AverageRating      float64     `json:"averageRating"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
	ResponseRate       int         `json:"responseRate"`
}

// ComputeFeedbackStats summarizes a tenant's feedback records. Ratings
// outside 1..5 are ignored in the distribution but still count toward
// the total and the average.
func ComputeFeedbackStats(feedback []models.Feedback) FeedbackStats {
	stats := FeedbackStats{
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	stats.TotalReviews = len(feedback)
	if stats.TotalReviews == 0 {
		return stats
	}

	var ratingSum float64
	replied := 0
	for _, f := range feedback {
		ratingSum += float64(f.Rating)
		if f.Rating >= 1 && f.Rating <= 5 {
			stats.RatingDistribution[f.Rating]++
		}
		if strings.TrimSpace(f.Reply) != "" {
			replied++
		}
	}

	stats.AverageRating = math.Round(ratingSum/float64(stats.TotalReviews)*10) / 10
	stats.ResponseRate = int(math.Round(100 * float64(replied) / float64(stats.TotalReviews)))

	return stats
}
