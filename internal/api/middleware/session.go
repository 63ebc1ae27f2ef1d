package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/session"
	"github.com/varunkasnia/LLM-Internship-Frontend/pkg/response"
)

const workspaceCtxKey = "workspace"

// Session attaches the caller's workspace to the context.
func Session(m *session.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := m.Workspace(c.Writer, c.Request)
		if err != nil {
			logger.Error("session save failed", zap.Error(err))
			response.InternalError(c)
			c.Abort()
			return
		}

		c.Set(workspaceCtxKey, ws)
		c.Next()
	}
}

// CurrentWorkspace returns the workspace set by Session, or nil.
func CurrentWorkspace(c *gin.Context) *session.Workspace {
	v, ok := c.Get(workspaceCtxKey)
	if !ok {
		return nil
	}
	ws, _ := v.(*session.Workspace)
	return ws
}
