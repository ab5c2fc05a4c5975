package reports

// AdminDashboard aggregates figures for the admin and HR landing page.
type AdminDashboard struct {
	TotalEmployees    int                `json:"totalEmployees"`
	ActiveEmployees   int                `json:"activeEmployees"`
	StatusCounts      map[string]int     `json:"statusCounts"`
	DepartmentCounts  []DepartmentCount  `json:"departmentCounts"`
	PendingLeave      int                `json:"pendingLeave"`
	OpenPostings      int                `json:"openPostings"`
	ActiveCycles      int                `json:"activeCycles"`
	TenureDistribution map[string]int    `json:"tenureDistribution"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// FacultyDashboard aggregates figures for a single employee's landing page.
type FacultyDashboard struct {
	LeaveBalance   float64 `json:"leaveBalance"`
	PendingLeave   int     `json:"pendingLeave"`
	FamilyMembers  int     `json:"familyMembers"`
	UnreadNotices  int     `json:"unreadNotices"`
	DocumentCount  int     `json:"documentCount"`
}
