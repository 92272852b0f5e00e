package chat_test

import (
	"context"
	"testing"

	"clarityflow/internal/appointment"
	"clarityflow/internal/chat"
	"clarityflow/internal/domain"
	"clarityflow/internal/sale"
	"clarityflow/internal/shared/storage"
	"clarityflow/internal/task"
	"clarityflow/internal/user"

	"github.com/stretchr/testify/assert"
)

func newDispatcherFixture() (*chat.Dispatcher, task.Service, sale.Service, user.Service) {
	store := storage.NewMemoryStore()
	taskService := task.NewService(task.NewRepository(store), nil)
	appointmentService := appointment.NewService(appointment.NewRepository(store), nil)
	saleService := sale.NewService(sale.NewRepository(store), nil)
	userService := user.NewService(user.NewRepository(store), nil)

	dispatcher := chat.NewDispatcher(taskService, appointmentService, saleService, userService)
	return dispatcher, taskService, saleService, userService
}

func TestDispatchCreateTask(t *testing.T) {
	dispatcher, taskService, _, _ := newDispatcherFixture()
	owner := domain.User{ID: "u-1", CompanyID: "c-1", Role: domain.RoleOwner}

	dispatcher.PerformAction(context.Background(), "task", "create", map[string]any{
		"title":      "Prepare report",
		"department": "Engineering",
		"status":     "To Do",
		"dueDate":    "2025-03-17",
	}, owner)

	tasks, err := taskService.GetAll(context.Background(), "c-1")
	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, "Prepare report", tasks[0].Title)
	// Company scope selalu dari actor, bukan payload.
	assert.Equal(t, "c-1", tasks[0].CompanyID)
}

func TestDispatchOverridesPayloadCompany(t *testing.T) {
	dispatcher, taskService, _, _ := newDispatcherFixture()
	owner := domain.User{ID: "u-1", CompanyID: "c-1", Role: domain.RoleOwner}

	dispatcher.PerformAction(context.Background(), "task", "create", map[string]any{
		"title":      "Cross-tenant attempt",
		"department": "Engineering",
		"status":     "To Do",
		"dueDate":    "2025-03-17",
		"companyId":  "c-other",
	}, owner)

	tasks, err := taskService.GetAll(context.Background(), "c-1")
	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, "c-1", tasks[0].CompanyID)

	other, err := taskService.GetAll(context.Background(), "c-other")
	assert.NoError(t, err)
	assert.Empty(t, other)
}

func TestDispatchCreateSale(t *testing.T) {
	dispatcher, _, saleService, _ := newDispatcherFixture()
	owner := domain.User{ID: "u-1", CompanyID: "c-1", Role: domain.RoleOwner}

	dispatcher.PerformAction(context.Background(), "sale", "create", map[string]any{
		"title":  "Annual license",
		"value":  1499.99,
		"status": "Pending",
	}, owner)

	sales, err := saleService.GetAll(context.Background(), "c-1")
	assert.NoError(t, err)
	assert.Len(t, sales, 1)
	assert.Equal(t, 1499.99, sales[0].Value)
}

func TestDispatchCreateEmployee(t *testing.T) {
	dispatcher, _, _, userService := newDispatcherFixture()
	owner := domain.User{ID: "u-1", CompanyID: "c-1", Role: domain.RoleOwner}

	dispatcher.PerformAction(context.Background(), "employee", "create", map[string]any{
		"name":       "Dina Putri",
		"email":      "dina@corp.io",
		"department": "HR",
		"role":       "Employee",
	}, owner)

	employees, err := userService.GetAllByCompany(context.Background(), "c-1")
	assert.NoError(t, err)
	assert.Len(t, employees, 1)
	assert.Equal(t, "Dina Putri", employees[0].Name)
}

func TestDispatchUnknownComboIgnored(t *testing.T) {
	dispatcher, taskService, _, _ := newDispatcherFixture()
	owner := domain.User{ID: "u-1", CompanyID: "c-1", Role: domain.RoleOwner}

	dispatcher.PerformAction(context.Background(), "task", "delete", map[string]any{"id": "t-1"}, owner)
	dispatcher.PerformAction(context.Background(), "invoice", "create", map[string]any{}, owner)

	tasks, err := taskService.GetAll(context.Background(), "c-1")
	assert.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestDispatchMutatorFailureSwallowed(t *testing.T) {
	dispatcher, taskService, _, _ := newDispatcherFixture()
	employee := domain.User{ID: "u-2", CompanyID: "c-1", Role: domain.RoleEmployee, Department: domain.DepartmentEngineering}

	// Employee ditolak policy; dispatch tidak panic dan tidak menulis apa pun.
	dispatcher.PerformAction(context.Background(), "task", "create", map[string]any{
		"title":      "Should not exist",
		"department": "Engineering",
		"status":     "To Do",
		"dueDate":    "2025-03-17",
	}, employee)

	tasks, err := taskService.GetAll(context.Background(), "c-1")
	assert.NoError(t, err)
	assert.Empty(t, tasks)
}
