package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/api/view"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/dto"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/service"
	"github.com/varunkasnia/LLM-Internship-Frontend/pkg/response"
)

// EmployeeHandler employees screen HTTP handler
type EmployeeHandler struct{}

// NewEmployeeHandler creates an EmployeeHandler
func NewEmployeeHandler() *EmployeeHandler {
	return &EmployeeHandler{}
}

func (h *EmployeeHandler) render(c *gin.Context, status int, v service.EmployeesView) {
	renderPage(c, status, "employees.html", "Employees", "employees", view.EmployeesPage{View: v})
}

// List activates the employees screen and renders it. ?retry=1 refetches the
// list without resetting the form.
// GET /employees
func (h *EmployeeHandler) List(c *gin.Context) {
	ws, ok := MustGetWorkspace(c)
	if !ok {
		return
	}

	screen := ws.Screens.Employees
	if isRetry(c) {
		h.render(c, http.StatusOK, screen.Retry(c.Request.Context()))
		return
	}
	h.render(c, http.StatusOK, screen.Activate(c.Request.Context()))
}

// Create validates the add-employee form and creates the employee
// POST /employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	ws, ok := MustGetWorkspace(c)
	if !ok {
		return
	}

	var form dto.EmployeeForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, 10001, "invalid form")
		return
	}

	screen := ws.Screens.Employees
	err := screen.Submit(c.Request.Context(), form)
	h.render(c, writeStatus(c, err), screen.Snapshot())
}

// RequestDelete opens the confirmation prompt for one row
// POST /employees/:employee_id/delete
func (h *EmployeeHandler) RequestDelete(c *gin.Context) {
	ws, ok := MustGetWorkspace(c)
	if !ok {
		return
	}

	screen := ws.Screens.Employees
	err := screen.RequestDelete(c.Param("employee_id"))
	h.render(c, writeStatus(c, err), screen.Snapshot())
}

// ConfirmDelete sends the delete for the row awaiting confirmation
// POST /employees/:employee_id/delete/confirm
func (h *EmployeeHandler) ConfirmDelete(c *gin.Context) {
	ws, ok := MustGetWorkspace(c)
	if !ok {
		return
	}

	screen := ws.Screens.Employees
	err := screen.ConfirmDelete(c.Request.Context(), c.Param("employee_id"))
	h.render(c, writeStatus(c, err), screen.Snapshot())
}

// CancelDelete closes the prompt
// POST /employees/:employee_id/delete/cancel
func (h *EmployeeHandler) CancelDelete(c *gin.Context) {
	ws, ok := MustGetWorkspace(c)
	if !ok {
		return
	}

	screen := ws.Screens.Employees
	screen.CancelDelete()
	h.render(c, http.StatusOK, screen.Snapshot())
}
