package sale

import (
	"context"

	"clarityflow/internal/domain"
	"clarityflow/internal/events"
	"clarityflow/internal/permission"
	saleerrors "clarityflow/internal/sale/errors"
	"clarityflow/internal/shared/apperror"
	"clarityflow/internal/shared/contextutil"
	"clarityflow/internal/shared/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context, companyID string) ([]Sale, error)
	GetByID(ctx context.Context, id string) (*Sale, error)
	Create(ctx context.Context, actor domain.User, req CreateSaleRequest) (Sale, error)
	Update(ctx context.Context, actor domain.User, id string, req UpdateSaleRequest) (Sale, error)
	Delete(ctx context.Context, actor domain.User, id string) error
}

type service struct {
	repo      Repository
	publisher events.Publisher
	logger    *zap.Logger
}

func NewService(repo Repository, publisher events.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("sale.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sale.service")
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &service{repo: repo, publisher: publisher, logger: l}
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]Sale, error) {
	return s.repo.FindAllByCompany(ctx, companyID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Sale, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, actor domain.User, req CreateSaleRequest) (Sale, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create sale requested",
		zap.String("request_id", rid),
		zap.String("company_id", req.CompanyID),
		zap.String("actor_id", actor.ID),
	)

	if !permission.Allowed(actor, permission.Resource{
		CompanyID:    req.CompanyID,
		ResourceType: permission.ResourceSales,
	}, permission.OperationWrite) {
		return Sale{}, apperror.ErrForbidden
	}

	if err := validation.Struct(req); err != nil {
		return Sale{}, err
	}

	newSale := Sale{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Value:       *req.Value,
		Status:      domain.SaleStatus(req.Status),
		ClientName:  req.ClientName,
		CompanyID:   req.CompanyID,
	}

	if err := s.repo.Insert(ctx, newSale); err != nil {
		return Sale{}, err
	}

	if err := s.publisher.PublishResourceEvent(ctx, events.NewResourceEvent(events.EventCreated, "sale", newSale.ID, newSale.CompanyID)); err != nil {
		s.logger.Warn("publish sale created event failed", zap.Error(err))
	}

	return newSale, nil
}

func (s *service) Update(ctx context.Context, actor domain.User, id string, req UpdateSaleRequest) (Sale, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Sale{}, err
	}
	if existing == nil {
		return Sale{}, saleerrors.ErrSaleNotFound
	}

	if !permission.Allowed(actor, permission.Resource{
		CompanyID:    existing.CompanyID,
		ResourceType: permission.ResourceSales,
	}, permission.OperationWrite) {
		return Sale{}, apperror.ErrForbidden
	}

	if err := validation.Struct(req); err != nil {
		return Sale{}, err
	}

	updated := *existing
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Value != nil {
		updated.Value = *req.Value
	}
	if req.Status != nil {
		updated.Status = domain.SaleStatus(*req.Status)
	}
	if req.ClientName != nil {
		updated.ClientName = *req.ClientName
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return Sale{}, err
	}

	if err := s.publisher.PublishResourceEvent(ctx, events.NewResourceEvent(events.EventUpdated, "sale", updated.ID, updated.CompanyID)); err != nil {
		s.logger.Warn("publish sale updated event failed", zap.Error(err))
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, actor domain.User, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return saleerrors.ErrSaleNotFound
	}

	if !permission.Allowed(actor, permission.Resource{
		CompanyID:    existing.CompanyID,
		ResourceType: permission.ResourceSales,
	}, permission.OperationWrite) {
		return apperror.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.publisher.PublishResourceEvent(ctx, events.NewResourceEvent(events.EventDeleted, "sale", id, existing.CompanyID)); err != nil {
		s.logger.Warn("publish sale deleted event failed", zap.Error(err))
	}

	return nil
}
