package domain

type Role string

const (
	RoleOwner    Role = "Owner"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

type Department string

const (
	DepartmentHR          Department = "HR"
	DepartmentMarketing   Department = "Marketing"
	DepartmentEngineering Department = "Engineering"
	DepartmentAdmin       Department = "Admin"
	DepartmentSales       Department = "Sales"
	DepartmentGeneral     Department = "General"
)

type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "To Do"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusDone       TaskStatus = "Done"
)

type SaleStatus string

const (
	SaleStatusPending    SaleStatus = "Pending"
	SaleStatusProcessing SaleStatus = "Processing"
	SaleStatusFinished   SaleStatus = "Finished"
	SaleStatusCanceled   SaleStatus = "Canceled"
)

var Departments = []Department{
	DepartmentHR,
	DepartmentMarketing,
	DepartmentEngineering,
	DepartmentAdmin,
	DepartmentSales,
	DepartmentGeneral,
}

func ValidDepartment(d Department) bool {
	for _, v := range Departments {
		if v == d {
			return true
		}
	}
	return false
}
