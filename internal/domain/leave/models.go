package leave

import "time"

const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"
)

type LeaveType struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	AnnualCredit    float64   `json:"annualCredit"`
	AccrualPerMonth float64   `json:"accrualPerMonth"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Balance struct {
	EmployeeID  string  `json:"employeeId"`
	LeaveTypeID string  `json:"leaveTypeId"`
	Balance     float64 `json:"balance"`
}

type Request struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	LeaveTypeID string    `json:"leaveTypeId"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	StartHalf   bool      `json:"startHalf"`
	EndHalf     bool      `json:"endHalf"`
	Days        float64   `json:"days"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	DecidedBy   string    `json:"decidedBy,omitempty"`
	DecidedAt   *time.Time `json:"decidedAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
