package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/api/middleware"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/api/view"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/service"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/session"
	apperrors "github.com/varunkasnia/LLM-Internship-Frontend/pkg/errors"
	"github.com/varunkasnia/LLM-Internship-Frontend/pkg/response"
)

// MustGetWorkspace safely extracts the session workspace from the Gin context.
// If the Session middleware did not run it writes a 500 and returns false.
// Callers should return immediately when ok=false.
func MustGetWorkspace(c *gin.Context) (*session.Workspace, bool) {
	ws := middleware.CurrentWorkspace(c)
	if ws == nil || ws.Screens == nil {
		response.InternalError(c)
		return nil, false
	}
	return ws, true
}

func isRetry(c *gin.Context) bool {
	return c.Query("retry") != ""
}

func renderPage(c *gin.Context, status int, name, title, nav string, data any) {
	c.HTML(status, name, view.Page{
		Title:     title,
		Nav:       nav,
		RequestID: middleware.GetRequestID(c),
		Data:      data,
	})
}

// writeStatus maps the result of an in-screen action to the status of the
// re-rendered page. Backend failures are already shown inline, so they stay 200.
func writeStatus(c *gin.Context, err error) int {
	if err == nil {
		return http.StatusOK
	}
	_ = c.Error(err)

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrWriteInProgress),
		errors.Is(err, service.ErrNoPendingDelete),
		errors.Is(err, service.ErrNotReady):
		return http.StatusConflict
	default:
		return http.StatusOK
	}
}
