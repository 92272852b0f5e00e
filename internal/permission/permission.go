package permission

import "clarityflow/internal/domain"

type Operation string

const (
	OperationRead  Operation = "read"
	OperationWrite Operation = "write"
)

type ResourceType string

const (
	ResourceEmployees    ResourceType = "employees"
	ResourceTasks        ResourceType = "tasks"
	ResourceAppointments ResourceType = "appointments"
	ResourceSales        ResourceType = "sales"
	ResourceCompany      ResourceType = "company"
)

type Resource struct {
	CompanyID    string
	ResourceType ResourceType
	Department   domain.Department
}

// departmentResources memetakan department ke resource type yang boleh
// ditulis olehnya. Department yang tidak terdaftar (atau kosong) tidak
// punya akses tulis sama sekali.
var departmentResources = map[domain.Department][]ResourceType{
	domain.DepartmentHR:          {ResourceEmployees, ResourceTasks, ResourceAppointments},
	domain.DepartmentSales:       {ResourceSales, ResourceTasks, ResourceAppointments},
	domain.DepartmentAdmin:       {ResourceEmployees, ResourceTasks, ResourceAppointments, ResourceSales, ResourceCompany},
	domain.DepartmentMarketing:   {ResourceTasks, ResourceAppointments},
	domain.DepartmentEngineering: {ResourceTasks, ResourceAppointments},
	domain.DepartmentGeneral:     {ResourceTasks, ResourceAppointments},
}

// Allowed adalah satu-satunya otoritas akses: dipanggil oleh setiap mutator
// sebelum read-modify-write dan oleh chat command authorizer. Fungsi murni,
// tanpa side effect.
//
// Urutan aturan:
//  1. Tenant isolation: beda company (atau company kosong) selalu ditolak.
//  2. Owner bebas.
//  3. Read bebas di dalam tenant.
//  4. Write dicek terhadap tabel department.
//  5. Manager boleh menulis apa yang diizinkan departmentnya, kecuali company.
//  6. Employee tidak pernah boleh menulis.
func Allowed(actor domain.User, resource Resource, operation Operation) bool {
	if actor.CompanyID == "" || actor.CompanyID != resource.CompanyID {
		return false
	}

	if actor.Role == domain.RoleOwner {
		return true
	}

	if operation == OperationRead {
		return true
	}

	allowed := false
	for _, rt := range departmentResources[actor.Department] {
		if rt == resource.ResourceType {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}

	if actor.Role == domain.RoleManager {
		return resource.ResourceType != ResourceCompany
	}

	return false
}
