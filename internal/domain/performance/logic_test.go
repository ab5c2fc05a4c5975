package performance

import "testing"

func TestValidateRating(t *testing.T) {
	if err := ValidateRating(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateRating(0); err == nil {
		t.Fatal("expected error below range")
	}
	if err := ValidateRating(6); err == nil {
		t.Fatal("expected error above range")
	}
}

func TestSummarize(t *testing.T) {
	reviews := []Review{
		{Rating: 5, Finalized: true},
		{Rating: 3, Finalized: true},
		{Rating: 4, Finalized: false}, // draft, excluded
		{Rating: 9, Finalized: true},  // corrupt, excluded
	}

	summary := Summarize("c1", reviews)
	if summary.ReviewCount != 2 {
		t.Fatalf("expected 2 finalized reviews, got %d", summary.ReviewCount)
	}
	if summary.AverageRating != 4 {
		t.Fatalf("expected average 4, got %v", summary.AverageRating)
	}
	if summary.RatingCounts[4] != 1 || summary.RatingCounts[2] != 1 {
		t.Fatalf("histogram wrong: %+v", summary.RatingCounts)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize("c1", nil)
	if summary.ReviewCount != 0 || summary.AverageRating != 0 {
		t.Fatalf("empty summary expected, got %+v", summary)
	}
}
