package client

import (
	"context"
	"net/url"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/dto"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/model"
)

// AttendanceEndpoint /attendance
type AttendanceEndpoint struct {
	transport *Transport
}

// Mark POST /attendance. Create-or-update semantics belong to the backend.
func (a *AttendanceEndpoint) Mark(ctx context.Context, req dto.MarkAttendanceRequest) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	if err := a.transport.Post(ctx, "/attendance", req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List GET /attendance[?on_date=]
func (a *AttendanceEndpoint) List(ctx context.Context, filter dto.AttendanceFilter) ([]model.AttendanceRecord, error) {
	var res dto.AttendanceListResponse
	if err := a.transport.Get(ctx, "/attendance", filter.Query(), &res); err != nil {
		return nil, err
	}
	if res.Records == nil {
		return []model.AttendanceRecord{}, nil
	}
	return res.Records, nil
}

// ForEmployee GET /attendance/{employee_id}[?from_date=&to_date=]
func (a *AttendanceEndpoint) ForEmployee(ctx context.Context, employeeID string, dateRange dto.DateRange) (*model.EmployeeAttendance, error) {
	var res model.EmployeeAttendance
	if err := a.transport.Get(ctx, "/attendance/"+url.PathEscape(employeeID), dateRange.Query(), &res); err != nil {
		return nil, err
	}
	if res.Records == nil {
		res.Records = []model.AttendanceRecord{}
	}
	return &res, nil
}
