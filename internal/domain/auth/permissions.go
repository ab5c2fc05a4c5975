package auth

const (
	RoleAdmin   = "Admin"
	RoleHR      = "HR"
	RoleFaculty = "Faculty"
)

const (
	PermDirectoryRead    = "directory.read"
	PermDirectoryWrite   = "directory.write"
	PermDirectoryExport  = "directory.export"
	PermFamilyRead       = "family.read"
	PermFamilyWrite      = "family.write"
	PermLeaveRead        = "leave.read"
	PermLeaveWrite       = "leave.write"
	PermLeaveApprove     = "leave.approve"
	PermRecruitmentRead  = "recruitment.read"
	PermRecruitmentWrite = "recruitment.write"
	PermPerformanceRead  = "performance.read"
	PermPerformanceWrite = "performance.write"
	PermScheduleRead     = "schedule.read"
	PermScheduleWrite    = "schedule.write"
	PermDocumentsRead    = "documents.read"
	PermDocumentsWrite   = "documents.write"
	PermChatbotRead      = "chatbot.read"
	PermChatbotWrite     = "chatbot.write"
	PermReportsRead      = "reports.read"
	PermAuditRead        = "audit.read"
	PermSystemAdmin      = "admin.system"
)

var DefaultPermissions = []string{
	PermDirectoryRead,
	PermDirectoryWrite,
	PermDirectoryExport,
	PermFamilyRead,
	PermFamilyWrite,
	PermLeaveRead,
	PermLeaveWrite,
	PermLeaveApprove,
	PermRecruitmentRead,
	PermRecruitmentWrite,
	PermPerformanceRead,
	PermPerformanceWrite,
	PermScheduleRead,
	PermScheduleWrite,
	PermDocumentsRead,
	PermDocumentsWrite,
	PermChatbotRead,
	PermChatbotWrite,
	PermReportsRead,
	PermAuditRead,
	PermSystemAdmin,
}

var RolePermissions = map[string][]string{
	RoleFaculty: {
		PermDirectoryRead,
		PermFamilyRead,
		PermFamilyWrite,
		PermLeaveRead,
		PermLeaveWrite,
		PermPerformanceRead,
		PermScheduleRead,
		PermDocumentsRead,
		PermChatbotRead,
		PermReportsRead,
	},
	RoleHR: {
		PermDirectoryRead,
		PermDirectoryWrite,
		PermDirectoryExport,
		PermFamilyRead,
		PermFamilyWrite,
		PermLeaveRead,
		PermLeaveWrite,
		PermLeaveApprove,
		PermRecruitmentRead,
		PermRecruitmentWrite,
		PermPerformanceRead,
		PermPerformanceWrite,
		PermScheduleRead,
		PermScheduleWrite,
		PermDocumentsRead,
		PermDocumentsWrite,
		PermChatbotRead,
		PermChatbotWrite,
		PermReportsRead,
	},
	RoleAdmin: DefaultPermissions,
}

// RoleHasPermission answers from the static matrix above. Store.HasPermission
// wraps this so the RequirePermission middleware depends on one small
// interface rather than on this package directly.
func RoleHasPermission(role, permission string) bool {
	for _, candidate := range RolePermissions[role] {
		if candidate == permission {
			return true
		}
	}
	return false
}
