package performance

import "time"

const (
	CycleDraft  = "Draft"
	CycleActive = "Active"
	CycleClosed = "Closed"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Cycle struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Review struct {
	ID         string    `json:"id"`
	CycleID    string    `json:"cycleId"`
	EmployeeID string    `json:"employeeId"`
	ReviewerID string    `json:"reviewerId"`
	Rating     int       `json:"rating"`
	Strengths  string    `json:"strengths,omitempty"`
	Areas      string    `json:"areasForGrowth,omitempty"`
	Finalized  bool      `json:"finalized"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Summary aggregates one cycle's finalized reviews.
type Summary struct {
	CycleID       string  `json:"cycleId"`
	ReviewCount   int     `json:"reviewCount"`
	AverageRating float64 `json:"averageRating"`
	RatingCounts  [5]int  `json:"ratingCounts"`
}
