package reports

import (
	"testing"
	"time"
)

func TestTenureDistribution(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),  // 1 year
		time.Date(2018, 6, 1, 0, 0, 0, 0, time.UTC),  // 7 years
		time.Date(2013, 6, 1, 0, 0, 0, 0, time.UTC),  // 12 years
		time.Date(2007, 6, 1, 0, 0, 0, 0, time.UTC),  // 18 years
		time.Date(2000, 6, 1, 0, 0, 0, 0, time.UTC),  // 25 years
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),  // future hire, skipped
	}

	dist := tenureDistribution(dates, now)

	want := map[string]int{"0-5": 1, "5-10": 1, "10-15": 1, "15-20": 1, "20+": 1}
	for bucket, n := range want {
		if dist[bucket] != n {
			t.Fatalf("bucket %s: got %d, want %d", bucket, dist[bucket], n)
		}
	}
}

func TestTenureDistributionEmpty(t *testing.T) {
	dist := tenureDistribution(nil, time.Now())
	if len(dist) != 5 {
		t.Fatalf("expected all 5 buckets present, got %d", len(dist))
	}
	for bucket, n := range dist {
		if n != 0 {
			t.Fatalf("bucket %s should be zero, got %d", bucket, n)
		}
	}
}
