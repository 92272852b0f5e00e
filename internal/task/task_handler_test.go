package task_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clarityflow/internal/domain"
	"clarityflow/internal/shared/apperror"
	"clarityflow/internal/task"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeTaskService struct {
	getAllFn  func(ctx context.Context, companyID string) ([]task.Task, error)
	getByIDFn func(ctx context.Context, id string) (*task.Task, error)
	createFn  func(ctx context.Context, actor domain.User, req task.CreateTaskRequest) (task.Task, error)
	updateFn  func(ctx context.Context, actor domain.User, id string, req task.UpdateTaskRequest) (task.Task, error)
	deleteFn  func(ctx context.Context, actor domain.User, id string) error
}

func (f *fakeTaskService) GetAll(ctx context.Context, companyID string) ([]task.Task, error) {
	return f.getAllFn(ctx, companyID)
}
func (f *fakeTaskService) GetByID(ctx context.Context, id string) (*task.Task, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeTaskService) Create(ctx context.Context, actor domain.User, req task.CreateTaskRequest) (task.Task, error) {
	return f.createFn(ctx, actor, req)
}
func (f *fakeTaskService) Update(ctx context.Context, actor domain.User, id string, req task.UpdateTaskRequest) (task.Task, error) {
	return f.updateFn(ctx, actor, id, req)
}
func (f *fakeTaskService) Delete(ctx context.Context, actor domain.User, id string) error {
	return f.deleteFn(ctx, actor, id)
}

func TestHandler_CreateDefaultsCompanyFromActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	actor := domain.User{ID: "u-1", CompanyID: "c-1", Role: domain.RoleOwner}

	svc := &fakeTaskService{
		createFn: func(ctx context.Context, a domain.User, req task.CreateTaskRequest) (task.Task, error) {
			assert.Equal(t, actor.ID, a.ID)
			// Company kosong di payload diisi dari actor sebelum service.
			assert.Equal(t, "c-1", req.CompanyID)
			return task.Task{ID: "t-1", Title: req.Title, CompanyID: req.CompanyID}, nil
		},
	}
	h := task.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("current_user", actor)
	c.Request = httptest.NewRequest(http.MethodPost, "/tasks",
		strings.NewReader(`{"title":"Prepare report","status":"To Do","dueDate":"2025-03-17","department":"Engineering"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
	assert.Contains(t, w.Body.String(), "t-1")
}

func TestHandler_CreateForbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	actor := domain.User{ID: "u-2", CompanyID: "c-1", Role: domain.RoleEmployee}

	svc := &fakeTaskService{
		createFn: func(ctx context.Context, a domain.User, req task.CreateTaskRequest) (task.Task, error) {
			return task.Task{}, apperror.ErrForbidden
		},
	}
	h := task.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("current_user", actor)
	c.Request = httptest.NewRequest(http.MethodPost, "/tasks",
		strings.NewReader(`{"title":"X","status":"To Do","dueDate":"2025-03-17","department":"Engineering","companyId":"c-1"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeForbidden)
}

func TestHandler_CreateMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := task.NewHandler(&fakeTaskService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("current_user", domain.User{ID: "u-1", CompanyID: "c-1", Role: domain.RoleOwner})
	c.Request = httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{not json`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAllUsesActorCompany(t *testing.T) {
	gin.SetMode(gin.TestMode)
	actor := domain.User{ID: "u-1", CompanyID: "c-1", Role: domain.RoleEmployee}

	svc := &fakeTaskService{
		getAllFn: func(ctx context.Context, companyID string) ([]task.Task, error) {
			assert.Equal(t, "c-1", companyID)
			return []task.Task{{ID: "t-1"}, {ID: "t-2"}}, nil
		},
	}
	h := task.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("current_user", actor)
	c.Request = httptest.NewRequest(http.MethodGet, "/tasks", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "t-2")
}

func TestHandler_GetByIDNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeTaskService{
		getByIDFn: func(ctx context.Context, id string) (*task.Task, error) {
			return nil, nil
		},
	}
	h := task.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/tasks/missing", nil)

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
