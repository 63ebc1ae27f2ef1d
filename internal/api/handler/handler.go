package handler

import "github.com/varunkasnia/LLM-Internship-Frontend/internal/service"

// Handler aggregate entry point for all handlers
type Handler struct {
	Dashboard  *DashboardHandler
	Employee   *EmployeeHandler
	Attendance *AttendanceHandler
	Export     *ExportHandler
	Screen     *ScreenHandler
}

// NewHandler creates the Handler aggregate
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Dashboard:  NewDashboardHandler(),
		Employee:   NewEmployeeHandler(),
		Attendance: NewAttendanceHandler(),
		Export:     NewExportHandler(svc.Export),
		Screen:     NewScreenHandler(),
	}
}
