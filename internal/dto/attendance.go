package dto

import (
	"strings"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/model"
)

// ── attendance DTOs ──

// AttendanceForm mark-attendance form. Date and Status are never validated
// beyond what the browser inputs allow.
type AttendanceForm struct {
	EmployeeID string                 `form:"employee_id" json:"employee_id" validate:"required"`
	Date       string                 `form:"date"        json:"date"`
	Status     model.AttendanceStatus `form:"status"      json:"status"`
}

// Normalize trims the employee ID and defaults an empty status to Present.
func (f AttendanceForm) Normalize() AttendanceForm {
	out := AttendanceForm{
		EmployeeID: strings.TrimSpace(f.EmployeeID),
		Date:       strings.TrimSpace(f.Date),
		Status:     model.AttendanceStatus(strings.TrimSpace(string(f.Status))),
	}
	if out.Status == "" {
		out.Status = model.StatusPresent
	}
	return out
}

// Request converts a normalized form into the backend payload.
func (f AttendanceForm) Request() MarkAttendanceRequest {
	return MarkAttendanceRequest(f)
}

// MarkAttendanceRequest POST /attendance
type MarkAttendanceRequest struct {
	EmployeeID string                 `json:"employee_id"`
	Date       string                 `json:"date"`
	Status     model.AttendanceStatus `json:"status"`
}

// AttendanceFilter GET /attendance query
type AttendanceFilter struct {
	OnDate string `form:"on_date"`
}

// Query returns the non-empty query parameters.
func (f AttendanceFilter) Query() map[string]string {
	q := map[string]string{}
	if v := strings.TrimSpace(f.OnDate); v != "" {
		q["on_date"] = v
	}
	return q
}

// DateRange GET /attendance/{employee_id} query
type DateRange struct {
	FromDate string `form:"from_date"`
	ToDate   string `form:"to_date"`
}

// Query returns the non-empty query parameters.
func (r DateRange) Query() map[string]string {
	q := map[string]string{}
	if v := strings.TrimSpace(r.FromDate); v != "" {
		q["from_date"] = v
	}
	if v := strings.TrimSpace(r.ToDate); v != "" {
		q["to_date"] = v
	}
	return q
}

// SingleDay is the range covering one calendar date; empty for no date.
func SingleDay(date string) DateRange {
	return DateRange{FromDate: date, ToDate: date}
}

// AttendanceListResponse GET /attendance
type AttendanceListResponse struct {
	Records []model.AttendanceRecord `json:"records"`
}
