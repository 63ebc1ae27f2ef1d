package client

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/dto"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/model"
)

// EmployeeAPI employee operations of the backend
type EmployeeAPI interface {
	List(ctx context.Context) ([]model.Employee, error)
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (*model.Employee, error)
	Delete(ctx context.Context, employeeID string) error
}

// AttendanceAPI attendance operations of the backend
type AttendanceAPI interface {
	Mark(ctx context.Context, req dto.MarkAttendanceRequest) (*model.AttendanceRecord, error)
	List(ctx context.Context, filter dto.AttendanceFilter) ([]model.AttendanceRecord, error)
	ForEmployee(ctx context.Context, employeeID string, dateRange dto.DateRange) (*model.EmployeeAttendance, error)
}

// DashboardAPI dashboard aggregate of the backend
type DashboardAPI interface {
	Summary(ctx context.Context) (*model.DashboardSummary, error)
}

// Client aggregates the backend endpoints. Tests replace individual fields
// with fakes.
type Client struct {
	Transport  *Transport
	Employees  EmployeeAPI
	Attendance AttendanceAPI
	Dashboard  DashboardAPI
}

// New creates a client for the backend at baseURL.
func New(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	t := NewTransport(baseURL, httpClient, logger)
	return &Client{
		Transport:  t,
		Employees:  &EmployeeEndpoint{transport: t},
		Attendance: &AttendanceEndpoint{transport: t},
		Dashboard:  &DashboardEndpoint{transport: t},
	}
}
