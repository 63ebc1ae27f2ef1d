package model

// AttendanceStatus attendance state for one employee on one date
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// AttendanceStatuses lists the values offered by the attendance form.
var AttendanceStatuses = []AttendanceStatus{StatusPresent, StatusAbsent}

// AttendanceRecord one employee/date entry. EmployeeName is only filled on
// list responses.
type AttendanceRecord struct {
	EmployeeID   string           `json:"employee_id"`
	EmployeeName string           `json:"employee_name,omitempty"`
	Date         string           `json:"date"` // yyyy-MM-dd
	Status       AttendanceStatus `json:"status"`
}

// EmployeeAttendance per-employee history with server-computed totals.
type EmployeeAttendance struct {
	EmployeeID   string             `json:"employee_id"`
	EmployeeName string             `json:"employee_name"`
	TotalPresent int                `json:"total_present"`
	TotalAbsent  int                `json:"total_absent"`
	Total        int                `json:"total"`
	Records      []AttendanceRecord `json:"records"`
}
