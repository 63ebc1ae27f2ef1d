package model

// Employee as exchanged with the backend. EmployeeID is the external key and
// never changes after creation.
type Employee struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}
