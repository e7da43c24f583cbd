package employee

type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Department     string `json:"department" binding:"required"`
	Position       string `json:"position" binding:"required"`
	ManagerID      string `json:"manager_id" binding:"omitempty,uuid"`
	HireDate       string `json:"hire_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required"`
	Position   string `json:"position" binding:"required"`
	ManagerID  string `json:"manager_id" binding:"omitempty,uuid"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Department     string `json:"department"`
	Position       string `json:"position"`
	ManagerID      string `json:"manager_id,omitempty"`
	ManagerName    string `json:"manager_name,omitempty"`
	IsActive       bool   `json:"is_active"`
	HireDate       string `json:"hire_date"`
}
