package client

import (
	"context"
	"net/url"

	"github.com/varunkasnia/LLM-Internship-Frontend/internal/dto"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/model"
)

// EmployeeEndpoint /employees
type EmployeeEndpoint struct {
	transport *Transport
}

// List GET /employees
func (e *EmployeeEndpoint) List(ctx context.Context) ([]model.Employee, error) {
	var res dto.EmployeeListResponse
	if err := e.transport.Get(ctx, "/employees", nil, &res); err != nil {
		return nil, err
	}
	if res.Employees == nil {
		return []model.Employee{}, nil
	}
	return res.Employees, nil
}

// Create POST /employees
func (e *EmployeeEndpoint) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*model.Employee, error) {
	var created model.Employee
	if err := e.transport.Post(ctx, "/employees", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete DELETE /employees/{employee_id}
func (e *EmployeeEndpoint) Delete(ctx context.Context, employeeID string) error {
	return e.transport.Delete(ctx, "/employees/"+url.PathEscape(employeeID))
}
