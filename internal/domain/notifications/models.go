package notifications

import "time"

const (
	TypeLeaveSubmitted    = "leave_submitted"
	TypeLeaveApproved     = "leave_approved"
	TypeLeaveRejected     = "leave_rejected"
	TypeLeaveCancelled    = "leave_cancelled"
	TypeApplicantMoved    = "applicant_moved"
	TypeReviewAssigned    = "review_assigned"
	TypeReviewFinalized   = "review_finalized"
	TypeDocumentPublished = "document_published"
	TypeAccountChanged    = "account_changed"
)

type Notification struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
