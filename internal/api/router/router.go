package router

import (
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/varunkasnia/LLM-Internship-Frontend/config"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/api/handler"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/api/middleware"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/session"
)

// Setup initializes and returns the Gin engine. limiter may be nil, in which
// case write routes are not rate limited.
func Setup(cfg *config.Config, h *handler.Handler, sessions *session.Manager, limiter middleware.RateLimiter, tmpl *template.Template, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	// employee IDs may contain "/", which templates send as %2F
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.SetHTMLTemplate(tmpl)

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	app := r.Group("")
	app.Use(middleware.Session(sessions, logger))
	{
		writes := middleware.RateLimit(limiter, cfg.RateLimit.WritesPerMinute, time.Minute)

		// dashboard
		app.GET("/", h.Dashboard.Show)

		// employees
		employees := app.Group("/employees")
		{
			employees.GET("", h.Employee.List)
			employees.POST("", writes, h.Employee.Create)
			employees.POST("/:employee_id/delete", h.Employee.RequestDelete)
			employees.POST("/:employee_id/delete/confirm", writes, h.Employee.ConfirmDelete)
			employees.POST("/:employee_id/delete/cancel", h.Employee.CancelDelete)
		}

		// attendance
		attendance := app.Group("/attendance")
		{
			attendance.GET("", h.Attendance.Show)
			attendance.POST("", writes, h.Attendance.Mark)
			attendance.POST("/filter", h.Attendance.Filter)
			attendance.POST("/select", h.Attendance.Select)
			attendance.POST("/records/retry", h.Attendance.RetryRecords)
		}

		// exports
		export := app.Group("/export")
		{
			export.GET("/attendance.xlsx", h.Export.ExportAttendance)
			export.GET("/attendance/:employee_id/calendar.ics", h.Export.ExportEmployeeCalendar)
		}

		// screen snapshots
		screens := app.Group("/api/screens")
		{
			screens.GET("/dashboard", h.Screen.Dashboard)
			screens.GET("/employees", h.Screen.Employees)
			screens.GET("/attendance", h.Screen.Attendance)
		}
	}

	return r
}
