package user

import (
	"context"

	"clarityflow/internal/domain"
	"clarityflow/internal/events"
	"clarityflow/internal/permission"
	"clarityflow/internal/shared/apperror"
	"clarityflow/internal/shared/contextutil"
	"clarityflow/internal/shared/validation"
	usererrors "clarityflow/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service mengelola roster karyawan. Tidak ada delete: profil tidak pernah
// dihapus oleh core, sesuai scope produk.
type Service interface {
	GetAllByCompany(ctx context.Context, companyID string) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, actor domain.User, req CreateEmployeeRequest) (domain.User, error)
	Update(ctx context.Context, actor domain.User, id string, req UpdateEmployeeRequest) (domain.User, error)
	UpdateProfile(ctx context.Context, actorID string, req UpdateProfileRequest) (domain.User, error)
}

type service struct {
	repo      Repository
	publisher events.Publisher
	logger    *zap.Logger
}

func NewService(repo Repository, publisher events.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &service{repo: repo, publisher: publisher, logger: l}
}

func (s *service) GetAllByCompany(ctx context.Context, companyID string) ([]domain.User, error) {
	return s.repo.FindAllByCompany(ctx, companyID)
}

func (s *service) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, actor domain.User, req CreateEmployeeRequest) (domain.User, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("company_id", req.CompanyID),
		zap.String("actor_id", actor.ID),
	)

	if !permission.Allowed(actor, permission.Resource{
		CompanyID:    req.CompanyID,
		ResourceType: permission.ResourceEmployees,
		Department:   domain.Department(req.Department),
	}, permission.OperationWrite) {
		return domain.User{}, apperror.ErrForbidden
	}

	if err := validation.Struct(req); err != nil {
		return domain.User{}, err
	}

	newEmployee := domain.User{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Email:      req.Email,
		AvatarURL:  req.AvatarURL,
		CompanyID:  req.CompanyID,
		Role:       domain.Role(req.Role),
		Department: domain.Department(req.Department),
	}

	if err := s.repo.Insert(ctx, newEmployee); err != nil {
		return domain.User{}, err
	}

	if err := s.publisher.PublishResourceEvent(ctx, events.NewResourceEvent(events.EventCreated, "employee", newEmployee.ID, newEmployee.CompanyID)); err != nil {
		s.logger.Warn("publish employee created event failed", zap.Error(err))
	}

	return newEmployee, nil
}

func (s *service) Update(ctx context.Context, actor domain.User, id string, req UpdateEmployeeRequest) (domain.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	if existing == nil {
		return domain.User{}, usererrors.ErrEmployeeNotFound
	}

	if !permission.Allowed(actor, permission.Resource{
		CompanyID:    existing.CompanyID,
		ResourceType: permission.ResourceEmployees,
		Department:   existing.Department,
	}, permission.OperationWrite) {
		return domain.User{}, apperror.ErrForbidden
	}

	if err := validation.Struct(req); err != nil {
		return domain.User{}, err
	}

	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Email != nil {
		updated.Email = *req.Email
	}
	if req.AvatarURL != nil {
		updated.AvatarURL = *req.AvatarURL
	}
	if req.Role != nil {
		updated.Role = domain.Role(*req.Role)
	}
	if req.Department != nil {
		updated.Department = domain.Department(*req.Department)
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return domain.User{}, err
	}

	if err := s.publisher.PublishResourceEvent(ctx, events.NewResourceEvent(events.EventUpdated, "employee", updated.ID, updated.CompanyID)); err != nil {
		s.logger.Warn("publish employee updated event failed", zap.Error(err))
	}

	return updated, nil
}

// UpdateProfile adalah jalur onboarding: actor memutakhirkan profilnya
// sendiri, termasuk afiliasi company pertama kali. Kalau profil belum ada
// (otentikasi pertama), record dibuat.
func (s *service) UpdateProfile(ctx context.Context, actorID string, req UpdateProfileRequest) (domain.User, error) {
	if actorID == "" {
		return domain.User{}, apperror.ErrUnauthorized
	}

	if err := validation.Struct(req); err != nil {
		return domain.User{}, err
	}

	existing, err := s.repo.FindByID(ctx, actorID)
	if err != nil {
		return domain.User{}, err
	}

	insert := false
	if existing == nil {
		insert = true
		existing = &domain.User{ID: actorID}
	}

	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.AvatarURL != nil {
		updated.AvatarURL = *req.AvatarURL
	}
	if req.CompanyID != nil {
		updated.CompanyID = *req.CompanyID
	}
	if req.Role != nil {
		updated.Role = domain.Role(*req.Role)
	}
	if req.Department != nil {
		updated.Department = domain.Department(*req.Department)
	}

	if insert {
		err = s.repo.Insert(ctx, updated)
	} else {
		err = s.repo.Update(ctx, updated)
	}
	if err != nil {
		return domain.User{}, err
	}

	return updated, nil
}
