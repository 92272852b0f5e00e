package user_test

import (
	"context"
	"testing"

	"clarityflow/internal/domain"
	"clarityflow/internal/events"
	"clarityflow/internal/shared/apperror"
	"clarityflow/internal/user"
	usererrors "clarityflow/internal/user/errors"

	"github.com/stretchr/testify/assert"
)

type fakeUserRepository struct {
	findAllByCompanyFn func(ctx context.Context, companyID string) ([]domain.User, error)
	findByIDFn         func(ctx context.Context, id string) (*domain.User, error)
	insertFn           func(ctx context.Context, u domain.User) error
	updateFn           func(ctx context.Context, u domain.User) error
}

func (f *fakeUserRepository) FindAllByCompany(ctx context.Context, companyID string) ([]domain.User, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserRepository) Insert(ctx context.Context, u domain.User) error {
	if f.insertFn != nil {
		return f.insertFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u domain.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

type capturingPublisher struct {
	events []events.ResourceEvent
}

func (p *capturingPublisher) PublishResourceEvent(ctx context.Context, event events.ResourceEvent) error {
	p.events = append(p.events, event)
	return nil
}

func strPtr(v string) *string { return &v }

func TestCreateEmployee(t *testing.T) {
	var inserted *domain.User
	repo := &fakeUserRepository{
		insertFn: func(ctx context.Context, u domain.User) error {
			inserted = &u
			return nil
		},
	}
	publisher := &capturingPublisher{}
	svc := user.NewService(repo, publisher)
	owner := domain.User{ID: "u-1", CompanyID: "c-1", Role: domain.RoleOwner}

	created, err := svc.Create(context.Background(), owner, user.CreateEmployeeRequest{
		Name:       "Dina Putri",
		Email:      "dina@corp.io",
		Role:       "Employee",
		Department: "HR",
		CompanyID:  "c-1",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.RoleEmployee, created.Role)
	assert.Equal(t, domain.DepartmentHR, created.Department)
	assert.NotNil(t, inserted)

	assert.Len(t, publisher.events, 1)
	assert.Equal(t, events.EventCreated, publisher.events[0].EventType)
	assert.Equal(t, "employee", publisher.events[0].ResourceType)
}

func TestCreateEmployeeHRManagerAllowed(t *testing.T) {
	svc := user.NewService(&fakeUserRepository{}, nil)
	hrManager := domain.User{ID: "u-2", CompanyID: "c-1", Role: domain.RoleManager, Department: domain.DepartmentHR}

	_, err := svc.Create(context.Background(), hrManager, user.CreateEmployeeRequest{
		Name:      "Dina Putri",
		CompanyID: "c-1",
	})

	assert.NoError(t, err)
}

func TestCreateEmployeeEngineeringManagerDenied(t *testing.T) {
	inserts := 0
	repo := &fakeUserRepository{
		insertFn: func(ctx context.Context, u domain.User) error {
			inserts++
			return nil
		},
	}
	svc := user.NewService(repo, nil)
	engManager := domain.User{ID: "u-3", CompanyID: "c-1", Role: domain.RoleManager, Department: domain.DepartmentEngineering}

	_, err := svc.Create(context.Background(), engManager, user.CreateEmployeeRequest{
		Name:      "Dina Putri",
		CompanyID: "c-1",
	})

	assert.ErrorIs(t, err, apperror.ErrForbidden)
	assert.Zero(t, inserts)
}

func TestCreateEmployeeInvalidEmail(t *testing.T) {
	svc := user.NewService(&fakeUserRepository{}, nil)
	owner := domain.User{ID: "u-1", CompanyID: "c-1", Role: domain.RoleOwner}

	_, err := svc.Create(context.Background(), owner, user.CreateEmployeeRequest{
		Name:      "Dina Putri",
		Email:     "not-an-email",
		CompanyID: "c-1",
	})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
}

func TestUpdateEmployeeScopeFromExistingRecord(t *testing.T) {
	// Company scope diambil dari record tersimpan, bukan dari payload:
	// actor tenant lain ditolak meski tahu id-nya.
	existing := domain.User{ID: "e-1", Name: "Dina Putri", CompanyID: "c-1", Role: domain.RoleEmployee, Department: domain.DepartmentHR}
	updates := 0
	repo := &fakeUserRepository{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			cp := existing
			return &cp, nil
		},
		updateFn: func(ctx context.Context, u domain.User) error {
			updates++
			return nil
		},
	}
	svc := user.NewService(repo, nil)
	outsider := domain.User{ID: "u-9", CompanyID: "c-other", Role: domain.RoleOwner}

	_, err := svc.Update(context.Background(), outsider, "e-1", user.UpdateEmployeeRequest{Name: strPtr("Hijacked")})

	assert.ErrorIs(t, err, apperror.ErrForbidden)
	assert.Zero(t, updates)
}

func TestUpdateEmployeePartial(t *testing.T) {
	existing := domain.User{ID: "e-1", Name: "Dina Putri", Email: "dina@corp.io", CompanyID: "c-1", Role: domain.RoleEmployee, Department: domain.DepartmentHR}
	var saved *domain.User
	repo := &fakeUserRepository{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			cp := existing
			return &cp, nil
		},
		updateFn: func(ctx context.Context, u domain.User) error {
			saved = &u
			return nil
		},
	}
	publisher := &capturingPublisher{}
	svc := user.NewService(repo, publisher)
	owner := domain.User{ID: "u-1", CompanyID: "c-1", Role: domain.RoleOwner}

	updated, err := svc.Update(context.Background(), owner, "e-1", user.UpdateEmployeeRequest{Role: strPtr("Manager")})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleManager, updated.Role)
	assert.Equal(t, "Dina Putri", updated.Name)
	assert.Equal(t, "dina@corp.io", updated.Email)
	assert.NotNil(t, saved)
	assert.Len(t, publisher.events, 1)
	assert.Equal(t, events.EventUpdated, publisher.events[0].EventType)
	assert.Equal(t, "employee", publisher.events[0].ResourceType)
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	svc := user.NewService(&fakeUserRepository{}, nil)
	owner := domain.User{ID: "u-1", CompanyID: "c-1", Role: domain.RoleOwner}

	_, err := svc.Update(context.Background(), owner, "missing", user.UpdateEmployeeRequest{})

	assert.ErrorIs(t, err, usererrors.ErrEmployeeNotFound)
}

func TestUpdateProfileCreatesRecordOnFirstCall(t *testing.T) {
	inserted := false
	repo := &fakeUserRepository{
		insertFn: func(ctx context.Context, u domain.User) error {
			inserted = true
			return nil
		},
	}
	svc := user.NewService(repo, nil)

	updated, err := svc.UpdateProfile(context.Background(), "u-new", user.UpdateProfileRequest{
		Name:      strPtr("Sam Lee"),
		CompanyID: strPtr("c-1"),
		Role:      strPtr("Owner"),
	})

	assert.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, "u-new", updated.ID)
	assert.Equal(t, "c-1", updated.CompanyID)
	assert.Equal(t, domain.RoleOwner, updated.Role)
}

func TestUpdateProfileUpdatesExisting(t *testing.T) {
	existing := domain.User{ID: "u-1", Name: "Sam Lee", CompanyID: "c-1", Role: domain.RoleOwner}
	var saved *domain.User
	repo := &fakeUserRepository{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			cp := existing
			return &cp, nil
		},
		updateFn: func(ctx context.Context, u domain.User) error {
			saved = &u
			return nil
		},
	}
	svc := user.NewService(repo, nil)

	updated, err := svc.UpdateProfile(context.Background(), "u-1", user.UpdateProfileRequest{
		AvatarURL: strPtr("https://cdn.example.com/avatar.png"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatar.png", updated.AvatarURL)
	assert.Equal(t, "Sam Lee", updated.Name)
	assert.NotNil(t, saved)
}

func TestUpdateProfileRequiresActor(t *testing.T) {
	svc := user.NewService(&fakeUserRepository{}, nil)

	_, err := svc.UpdateProfile(context.Background(), "", user.UpdateProfileRequest{})

	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}
