package chat

import (
	"testing"

	"clarityflow/internal/domain"

	"github.com/stretchr/testify/assert"
)

func chatActor(role domain.Role, dept domain.Department) domain.User {
	return domain.User{
		ID:         "u-1",
		CompanyID:  "c-1",
		Role:       role,
		Department: dept,
	}
}

func TestAuthorizeReadAllowedForAnyRole(t *testing.T) {
	cmd := Command{Action: "read", Type: "sale", Fields: map[string]any{}}

	assert.True(t, Authorize(chatActor(domain.RoleEmployee, domain.DepartmentGeneral), cmd))
	assert.True(t, Authorize(chatActor(domain.RoleManager, domain.DepartmentHR), cmd))
	assert.True(t, Authorize(chatActor(domain.RoleOwner, ""), cmd))
}

func TestAuthorizeOwnerWritesEverything(t *testing.T) {
	owner := chatActor(domain.RoleOwner, "")
	for _, typ := range []string{"task", "appointment", "employee", "sale"} {
		cmd := Command{Action: "create", Type: typ, Fields: map[string]any{}}
		assert.True(t, Authorize(owner, cmd), "type: %s", typ)
	}
}

func TestAuthorizeEmployeeNeverWrites(t *testing.T) {
	employee := chatActor(domain.RoleEmployee, domain.DepartmentEngineering)
	for _, action := range []string{"create", "update", "delete"} {
		cmd := Command{Action: action, Type: "task", Fields: map[string]any{"department": "Engineering"}}
		assert.False(t, Authorize(employee, cmd), "action: %s", action)
	}
}

func TestAuthorizeManagerDepartmentScope(t *testing.T) {
	hr := chatActor(domain.RoleManager, domain.DepartmentHR)

	assert.True(t, Authorize(hr, Command{Action: "create", Type: "employee", Fields: map[string]any{"department": "HR"}}))
	assert.True(t, Authorize(hr, Command{Action: "create", Type: "task", Fields: map[string]any{"department": "HR"}}))
	assert.False(t, Authorize(hr, Command{Action: "create", Type: "sale", Fields: map[string]any{}}))

	sales := chatActor(domain.RoleManager, domain.DepartmentSales)
	assert.True(t, Authorize(sales, Command{Action: "create", Type: "sale", Fields: map[string]any{}}))
	assert.False(t, Authorize(sales, Command{Action: "create", Type: "employee", Fields: map[string]any{}}))
}

func TestAuthorizeNoCompanyDenied(t *testing.T) {
	actor := domain.User{ID: "u-1", Role: domain.RoleOwner}
	cmd := Command{Action: "read", Type: "task", Fields: map[string]any{}}

	assert.False(t, Authorize(actor, cmd))
}

func TestAuthorizeUnknownTypeDenied(t *testing.T) {
	actor := chatActor(domain.RoleOwner, "")
	cmd := Command{Action: "create", Type: "invoice", Fields: map[string]any{}}

	assert.False(t, Authorize(actor, cmd))
}
