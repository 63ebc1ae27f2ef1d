package service

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/client"
)

// ── screen errors ──

var (
	ErrWriteInProgress = errors.New("a submission is already in progress")
	ErrNoPendingDelete = errors.New("no delete is awaiting confirmation for this employee")
	ErrNotReady        = errors.New("screen has not finished loading")
)

// Screens is one browser session's set of screen controllers.
type Screens struct {
	Dashboard  *DashboardScreen
	Employees  *EmployeesScreen
	Attendance *AttendanceScreen
}

// Service aggregate entry point for the business layer
type Service struct {
	Export ExportService

	api    *client.Client
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates the Service aggregate. now may be nil.
func NewService(api *client.Client, logger *zap.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		Export: NewExportService(api.Attendance, logger, now),
		api:    api,
		logger: logger,
		now:    now,
	}
}

// NewScreens creates fresh screens for a new session. Nothing is fetched
// until a screen is activated.
func (s *Service) NewScreens() *Screens {
	return &Screens{
		Dashboard:  NewDashboardScreen(s.api.Dashboard, s.logger),
		Employees:  NewEmployeesScreen(s.api.Employees, s.logger),
		Attendance: NewAttendanceScreen(s.api.Attendance, s.api.Employees, s.logger, s.now),
	}
}
