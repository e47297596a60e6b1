package dto

type EmployeeQueryRequest struct {
	EmployeeID string `json:"employee_id"`
	Query      string `json:"query"`
}

type ManagerQueryRequest struct {
	UserRole string `json:"user_role"`
	Query    string `json:"query"`
}

type AssistantQueryRequest struct {
	UserRole   string `json:"user_role"`
	Query      string `json:"query"`
	EmployeeID string `json:"employee_id,omitempty"`
}
