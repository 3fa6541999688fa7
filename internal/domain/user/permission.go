package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Leave Management
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveDecide  Permission = "leave.decide"

	// Attendance Management
	PermissionAttendanceToggle  Permission = "attendance.toggle"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Holiday Calendar
	PermissionHolidayView   Permission = "holiday.view"
	PermissionHolidayManage Permission = "holiday.manage"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Reports
	PermissionAnalyticsView Permission = "analytics.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveDecide,
		PermissionAttendanceToggle,
		PermissionAttendanceViewAll,
		PermissionHolidayView,
		PermissionHolidayManage,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionAnalyticsView,
	},
	RoleHR: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveDecide,
		PermissionAttendanceToggle,
		PermissionAttendanceViewAll,
		PermissionHolidayView,
		PermissionHolidayManage,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionAnalyticsView,
	},
	RoleManager: {
		// Manager decides leave of direct reports only; the ledger checks who
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveCreate,
		PermissionLeaveDecide,
		PermissionAttendanceToggle,
		PermissionHolidayView,
		PermissionEmployeeViewAll,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveCreate,
		PermissionAttendanceToggle,
		PermissionHolidayView,
		PermissionEmployeeViewAll,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
