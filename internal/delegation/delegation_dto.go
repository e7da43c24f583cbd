package delegation

type CreateDelegationRequest struct {
	ManagerID  string `json:"manager_id" binding:"required,uuid"`
	DelegateID string `json:"delegate_id" binding:"required,uuid"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Reason     string `json:"reason"`
}

type UpdateDelegationRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
	IsActive  *bool  `json:"is_active"`
}

type DelegationResponse struct {
	ID           string `json:"id"`
	ManagerID    string `json:"manager_id"`
	ManagerName  string `json:"manager_name,omitempty"`
	DelegateID   string `json:"delegate_id"`
	DelegateName string `json:"delegate_name,omitempty"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason,omitempty"`
	IsActive     bool   `json:"is_active"`
}
