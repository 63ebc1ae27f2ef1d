package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/api/view"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/dto"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/service"
	"github.com/varunkasnia/LLM-Internship-Frontend/pkg/response"
)

// AttendanceHandler attendance screen HTTP handler
type AttendanceHandler struct{}

// NewAttendanceHandler creates an AttendanceHandler
func NewAttendanceHandler() *AttendanceHandler {
	return &AttendanceHandler{}
}

func (h *AttendanceHandler) render(c *gin.Context, status int, v service.AttendanceView) {
	renderPage(c, status, "attendance.html", "Attendance", "attendance", view.NewAttendancePage(v))
}

// Show activates the attendance screen and renders it
// GET /attendance
func (h *AttendanceHandler) Show(c *gin.Context) {
	ws, ok := MustGetWorkspace(c)
	if !ok {
		return
	}

	screen := ws.Screens.Attendance
	if isRetry(c) {
		h.render(c, http.StatusOK, screen.Retry(c.Request.Context()))
		return
	}
	h.render(c, http.StatusOK, screen.Activate(c.Request.Context()))
}

// Mark validates the mark-attendance form and submits it
// POST /attendance
func (h *AttendanceHandler) Mark(c *gin.Context) {
	ws, ok := MustGetWorkspace(c)
	if !ok {
		return
	}

	var form dto.AttendanceForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, 10001, "invalid form")
		return
	}

	screen := ws.Screens.Attendance
	err := screen.Submit(c.Request.Context(), form)
	h.render(c, writeStatus(c, err), screen.Snapshot())
}

// Filter sets or clears the date filter. An empty on_date clears it.
// POST /attendance/filter
func (h *AttendanceHandler) Filter(c *gin.Context) {
	ws, ok := MustGetWorkspace(c)
	if !ok {
		return
	}

	var filter dto.AttendanceFilter
	if err := c.ShouldBind(&filter); err != nil {
		response.BadRequest(c, 10001, "invalid form")
		return
	}

	screen := ws.Screens.Attendance
	err := screen.SetFilter(c.Request.Context(), filter.OnDate)
	h.render(c, writeStatus(c, err), screen.Snapshot())
}

// Select loads the history of one employee. An empty employee_id clears the
// selection.
// POST /attendance/select
func (h *AttendanceHandler) Select(c *gin.Context) {
	ws, ok := MustGetWorkspace(c)
	if !ok {
		return
	}

	screen := ws.Screens.Attendance
	err := screen.SelectEmployee(c.Request.Context(), c.PostForm("employee_id"))
	h.render(c, writeStatus(c, err), screen.Snapshot())
}

// RetryRecords refetches the attendance list with the current filter
// POST /attendance/records/retry
func (h *AttendanceHandler) RetryRecords(c *gin.Context) {
	ws, ok := MustGetWorkspace(c)
	if !ok {
		return
	}

	screen := ws.Screens.Attendance
	err := screen.ReloadRecords(c.Request.Context())
	h.render(c, writeStatus(c, err), screen.Snapshot())
}
