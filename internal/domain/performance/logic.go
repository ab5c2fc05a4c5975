package performance

import "fmt"

// ValidateRating bounds-checks a review rating.
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}

// Summarize folds finalized reviews into per-cycle aggregates. Reviews
// with out-of-range ratings are skipped rather than corrupting the
// histogram.
func Summarize(cycleID string, reviews []Review) Summary {
	summary := Summary{CycleID: cycleID}
	total := 0
	for _, review := range reviews {
		if !review.Finalized {
			continue
		}
		if review.Rating < MinRating || review.Rating > MaxRating {
			continue
		}
		summary.ReviewCount++
		summary.RatingCounts[review.Rating-1]++
		total += review.Rating
	}
	if summary.ReviewCount > 0 {
		summary.AverageRating = float64(total) / float64(summary.ReviewCount)
	}
	return summary
}
