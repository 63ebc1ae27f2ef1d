package dto

import (
	"strings"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/model"
)

// ── employee DTOs ──

// EmployeeForm add-employee form as posted by the browser
type EmployeeForm struct {
	EmployeeID string `form:"employee_id" json:"employee_id" validate:"required"`
	FullName   string `form:"full_name"   json:"full_name"   validate:"required"`
	Email      string `form:"email"       json:"email"       validate:"required"`
	Department string `form:"department"  json:"department"  validate:"required"`
}

// Normalize trims every field and lower-cases the email.
func (f EmployeeForm) Normalize() EmployeeForm {
	return EmployeeForm{
		EmployeeID: strings.TrimSpace(f.EmployeeID),
		FullName:   strings.TrimSpace(f.FullName),
		Email:      strings.ToLower(strings.TrimSpace(f.Email)),
		Department: strings.TrimSpace(f.Department),
	}
}

// Request converts a normalized form into the backend payload.
func (f EmployeeForm) Request() CreateEmployeeRequest {
	return CreateEmployeeRequest(f)
}

// CreateEmployeeRequest POST /employees
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// EmployeeListResponse GET /employees
type EmployeeListResponse struct {
	Employees []model.Employee `json:"employees"`
}
