package task

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"required,oneof='To Do' 'In Progress' 'Done'"`
	DueDate     string `json:"dueDate" validate:"required,datetime=2006-01-02"`
	AssigneeID  string `json:"assigneeId"`
	Department  string `json:"department" validate:"required,oneof=HR Marketing Engineering Admin Sales General"`
	CompanyID   string `json:"companyId" validate:"required"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof='To Do' 'In Progress' 'Done'"`
	DueDate     *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	AssigneeID  *string `json:"assigneeId"`
}
