package task

import (
	"context"

	"clarityflow/internal/domain"
	"clarityflow/internal/events"
	"clarityflow/internal/permission"
	"clarityflow/internal/shared/apperror"
	"clarityflow/internal/shared/contextutil"
	"clarityflow/internal/shared/validation"
	taskerrors "clarityflow/internal/task/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context, companyID string) ([]Task, error)
	GetByID(ctx context.Context, id string) (*Task, error)
	Create(ctx context.Context, actor domain.User, req CreateTaskRequest) (Task, error)
	Update(ctx context.Context, actor domain.User, id string, req UpdateTaskRequest) (Task, error)
	Delete(ctx context.Context, actor domain.User, id string) error
}

type service struct {
	repo      Repository
	publisher events.Publisher
	logger    *zap.Logger
}

func NewService(repo Repository, publisher events.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &service{repo: repo, publisher: publisher, logger: l}
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]Task, error) {
	return s.repo.FindAllByCompany(ctx, companyID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, actor domain.User, req CreateTaskRequest) (Task, error) {
	// Logger dari context sudah membawa request_id dari middleware.
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create task requested",
		zap.String("company_id", req.CompanyID),
		zap.String("actor_id", actor.ID),
	)

	// Cek permission selalu sebelum read-modify-write dimulai.
	if !permission.Allowed(actor, permission.Resource{
		CompanyID:    req.CompanyID,
		ResourceType: permission.ResourceTasks,
		Department:   domain.Department(req.Department),
	}, permission.OperationWrite) {
		log.Warn("create task denied", zap.String("actor_id", actor.ID))
		return Task{}, apperror.ErrForbidden
	}

	if err := validation.Struct(req); err != nil {
		return Task{}, err
	}

	newTask := Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		DueDate:     req.DueDate,
		AssigneeID:  req.AssigneeID,
		Department:  domain.Department(req.Department),
		CompanyID:   req.CompanyID,
	}

	if err := s.repo.Insert(ctx, newTask); err != nil {
		return Task{}, err
	}

	if err := s.publisher.PublishResourceEvent(ctx, events.NewResourceEvent(events.EventCreated, "task", newTask.ID, newTask.CompanyID)); err != nil {
		s.logger.Warn("publish task created event failed", zap.Error(err))
	}

	return newTask, nil
}

func (s *service) Update(ctx context.Context, actor domain.User, id string, req UpdateTaskRequest) (Task, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Task{}, err
	}
	if existing == nil {
		return Task{}, taskerrors.ErrTaskNotFound
	}

	if !permission.Allowed(actor, permission.Resource{
		CompanyID:    existing.CompanyID,
		ResourceType: permission.ResourceTasks,
		Department:   existing.Department,
	}, permission.OperationWrite) {
		return Task{}, apperror.ErrForbidden
	}

	if err := validation.Struct(req); err != nil {
		return Task{}, err
	}

	updated := *existing
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Status != nil {
		updated.Status = domain.TaskStatus(*req.Status)
	}
	if req.DueDate != nil {
		updated.DueDate = *req.DueDate
	}
	if req.AssigneeID != nil {
		updated.AssigneeID = *req.AssigneeID
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return Task{}, err
	}

	if err := s.publisher.PublishResourceEvent(ctx, events.NewResourceEvent(events.EventUpdated, "task", updated.ID, updated.CompanyID)); err != nil {
		s.logger.Warn("publish task updated event failed", zap.Error(err))
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, actor domain.User, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return taskerrors.ErrTaskNotFound
	}

	if !permission.Allowed(actor, permission.Resource{
		CompanyID:    existing.CompanyID,
		ResourceType: permission.ResourceTasks,
		Department:   existing.Department,
	}, permission.OperationWrite) {
		return apperror.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.publisher.PublishResourceEvent(ctx, events.NewResourceEvent(events.EventDeleted, "task", id, existing.CompanyID)); err != nil {
		s.logger.Warn("publish task deleted event failed", zap.Error(err))
	}

	return nil
}
