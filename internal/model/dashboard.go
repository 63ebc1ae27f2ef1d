package model

// DashboardSummary read-only aggregate, recomputed by the backend on every fetch.
type DashboardSummary struct {
	TotalEmployees         int `json:"total_employees"`
	TotalAttendanceRecords int `json:"total_attendance_records"`
	TotalPresent           int `json:"total_present"`
	TotalAbsent            int `json:"total_absent"`
}
