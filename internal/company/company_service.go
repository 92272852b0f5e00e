package company

import (
	"context"

	companyerrors "clarityflow/internal/company/errors"
	"clarityflow/internal/domain"
	"clarityflow/internal/events"
	"clarityflow/internal/permission"
	"clarityflow/internal/shared/apperror"
	"clarityflow/internal/shared/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Get(ctx context.Context, id string) (*Company, error)
	GetAll(ctx context.Context) ([]Company, error)
	Create(ctx context.Context, req CreateCompanyRequest) (Company, error)
	Update(ctx context.Context, actor domain.User, id string, req UpdateCompanyRequest) (Company, error)
}

type service struct {
	repo      Repository
	publisher events.Publisher
	logger    *zap.Logger
}

func NewService(repo Repository, publisher events.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &service{repo: repo, publisher: publisher, logger: l}
}

func (s *service) Get(ctx context.Context, id string) (*Company, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]Company, error) {
	return s.repo.FindAll(ctx)
}

// Create tidak melewati policy check: dipanggil saat onboarding, sebelum
// actor punya afiliasi company.
func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (Company, error) {
	if err := validation.Struct(req); err != nil {
		return Company{}, err
	}

	newCompany := Company{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Insert(ctx, newCompany); err != nil {
		return Company{}, err
	}

	if err := s.publisher.PublishResourceEvent(ctx, events.NewResourceEvent(events.EventCreated, "company", newCompany.ID, newCompany.ID)); err != nil {
		s.logger.Warn("publish company created event failed", zap.Error(err))
	}

	return newCompany, nil
}

func (s *service) Update(ctx context.Context, actor domain.User, id string, req UpdateCompanyRequest) (Company, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Company{}, err
	}
	if existing == nil {
		return Company{}, companyerrors.ErrCompanyNotFound
	}

	// Company settings hanya bisa ditulis Owner (Manager selalu ditolak
	// oleh policy untuk resource type company).
	if !permission.Allowed(actor, permission.Resource{
		CompanyID:    existing.ID,
		ResourceType: permission.ResourceCompany,
	}, permission.OperationWrite) {
		return Company{}, apperror.ErrForbidden
	}

	if err := validation.Struct(req); err != nil {
		return Company{}, err
	}

	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return Company{}, err
	}

	if err := s.publisher.PublishResourceEvent(ctx, events.NewResourceEvent(events.EventUpdated, "company", updated.ID, updated.ID)); err != nil {
		s.logger.Warn("publish company updated event failed", zap.Error(err))
	}

	return updated, nil
}
