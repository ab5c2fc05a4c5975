package recruitment

import "time"

const (
	StageApplied   = "Applied"
	StageScreening = "Screening"
	StageInterview = "Interview"
	StageOffered   = "Offered"
	StageHired     = "Hired"
	StageRejected  = "Rejected"
)

type JobPosting struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Department  string     `json:"department"`
	Description string     `json:"description"`
	Open        bool       `json:"open"`
	PostedAt    time.Time  `json:"postedAt"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
}

type Applicant struct {
	ID        string    `json:"id"`
	PostingID string    `json:"postingId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Stage     string    `json:"stage"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
