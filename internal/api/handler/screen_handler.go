package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/varunkasnia/LLM-Internship-Frontend/pkg/response"
)

// ScreenHandler exposes the session's screen state as JSON. Nothing is
// fetched; the snapshot is whatever the last screen action left behind.
type ScreenHandler struct{}

// NewScreenHandler creates a ScreenHandler
func NewScreenHandler() *ScreenHandler {
	return &ScreenHandler{}
}

// Dashboard GET /api/screens/dashboard
func (h *ScreenHandler) Dashboard(c *gin.Context) {
	ws, ok := MustGetWorkspace(c)
	if !ok {
		return
	}
	response.OK(c, ws.Screens.Dashboard.Snapshot())
}

// Employees GET /api/screens/employees
func (h *ScreenHandler) Employees(c *gin.Context) {
	ws, ok := MustGetWorkspace(c)
	if !ok {
		return
	}
	response.OK(c, ws.Screens.Employees.Snapshot())
}

// Attendance GET /api/screens/attendance
func (h *ScreenHandler) Attendance(c *gin.Context) {
	ws, ok := MustGetWorkspace(c)
	if !ok {
		return
	}
	response.OK(c, ws.Screens.Attendance.Snapshot())
}
