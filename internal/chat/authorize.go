package chat

import (
	"clarityflow/internal/domain"
	"clarityflow/internal/permission"
)

// commandResources menerjemahkan token type pada command ke vocabulary
// resource type milik permission policy.
var commandResources = map[string]permission.ResourceType{
	"task":        permission.ResourceTasks,
	"appointment": permission.ResourceAppointments,
	"employee":    permission.ResourceEmployees,
	"sale":        permission.ResourceSales,
}

// Authorize memetakan command terklasifikasi ke satu pemeriksaan policy:
// read tetap read, create/update/delete semuanya write, department hasil
// ekstraksi ikut dibawa. Actor tanpa afiliasi company selalu ditolak.
// Keputusan akhirnya tetap di permission.Allowed.
func Authorize(actor domain.User, cmd Command) bool {
	operation := permission.OperationWrite
	if cmd.Action == "read" {
		operation = permission.OperationRead
	}

	resourceType, ok := commandResources[cmd.Type]
	if !ok {
		return false
	}

	if actor.CompanyID == "" {
		return false
	}

	var department domain.Department
	if d, ok := cmd.Fields["department"].(string); ok {
		department = domain.Department(d)
	}

	return permission.Allowed(actor, permission.Resource{
		CompanyID:    actor.CompanyID,
		ResourceType: resourceType,
		Department:   department,
	}, operation)
}
