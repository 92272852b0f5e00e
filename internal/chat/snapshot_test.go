package chat_test

import (
	"context"
	"testing"

	"clarityflow/internal/chat"
	"clarityflow/internal/company"
	"clarityflow/internal/domain"
	"clarityflow/internal/sale"
	"clarityflow/internal/shared/storage"
	"clarityflow/internal/task"
	"clarityflow/internal/user"

	"github.com/stretchr/testify/assert"
)

func newSnapshotFixture() *chat.SnapshotBuilder {
	store := storage.NewMemoryStore()
	return chat.NewSnapshotBuilder(
		company.NewService(company.NewRepository(store), nil),
		user.NewService(user.NewRepository(store), nil),
		task.NewService(task.NewRepository(store), nil),
		sale.NewService(sale.NewRepository(store), nil),
	)
}

func TestSnapshotBuildStampsActor(t *testing.T) {
	store := storage.NewMemoryStore()
	companyService := company.NewService(company.NewRepository(store), nil)
	userService := user.NewService(user.NewRepository(store), nil)
	taskService := task.NewService(task.NewRepository(store), nil)
	saleService := sale.NewService(sale.NewRepository(store), nil)

	created, err := companyService.Create(context.Background(), company.CreateCompanyRequest{Name: "Acme Corp"})
	assert.NoError(t, err)

	owner := domain.User{ID: "u-1", CompanyID: created.ID, Role: domain.RoleOwner}
	_, err = userService.Create(context.Background(), owner, user.CreateEmployeeRequest{
		Name:      "Dina Putri",
		CompanyID: created.ID,
	})
	assert.NoError(t, err)

	_, err = taskService.Create(context.Background(), owner, task.CreateTaskRequest{
		Title:      "Prepare report",
		Status:     "To Do",
		DueDate:    "2025-03-17",
		Department: "Engineering",
		CompanyID:  created.ID,
	})
	assert.NoError(t, err)

	builder := chat.NewSnapshotBuilder(companyService, userService, taskService, saleService)
	snapshot := builder.Build(context.Background(), owner)

	assert.Equal(t, owner, snapshot.User)
	assert.Len(t, snapshot.Companies, 1)
	assert.Equal(t, "Acme Corp", snapshot.Companies[0].Name)
	assert.Len(t, snapshot.Employees, 1)
	assert.Len(t, snapshot.Tasks, 1)
	assert.Empty(t, snapshot.Sales)
}

func TestSnapshotBuildPartialOnMissingCompany(t *testing.T) {
	builder := newSnapshotFixture()
	actor := domain.User{ID: "u-1", CompanyID: "c-missing", Role: domain.RoleOwner}

	snapshot := builder.Build(context.Background(), actor)

	// Konteks parsial tetap valid: slice kosong, bukan nil atau error.
	assert.Equal(t, actor, snapshot.User)
	assert.NotNil(t, snapshot.Companies)
	assert.Empty(t, snapshot.Companies)
	assert.NotNil(t, snapshot.Employees)
	assert.NotNil(t, snapshot.Tasks)
	assert.NotNil(t, snapshot.Sales)
}
