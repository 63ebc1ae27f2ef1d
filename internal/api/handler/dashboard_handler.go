package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/api/view"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/service"
)

// DashboardHandler dashboard screen HTTP handler
type DashboardHandler struct{}

// NewDashboardHandler creates a DashboardHandler
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Show activates the dashboard and renders it. ?retry=1 re-runs the fetch.
// GET /
func (h *DashboardHandler) Show(c *gin.Context) {
	ws, ok := MustGetWorkspace(c)
	if !ok {
		return
	}

	screen := ws.Screens.Dashboard
	var v service.DashboardView
	if isRetry(c) {
		v = screen.Retry(c.Request.Context())
	} else {
		v = screen.Activate(c.Request.Context())
	}
	renderPage(c, http.StatusOK, "dashboard.html", "Dashboard", "dashboard", view.NewDashboardPage(v))
}
