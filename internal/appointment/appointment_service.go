package appointment

import (
	"context"

	appointmenterrors "clarityflow/internal/appointment/errors"
	"clarityflow/internal/domain"
	"clarityflow/internal/events"
	"clarityflow/internal/permission"
	"clarityflow/internal/shared/apperror"
	"clarityflow/internal/shared/contextutil"
	"clarityflow/internal/shared/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context, companyID string) ([]Appointment, error)
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Create(ctx context.Context, actor domain.User, req CreateAppointmentRequest) (Appointment, error)
	Update(ctx context.Context, actor domain.User, id string, req UpdateAppointmentRequest) (Appointment, error)
	Delete(ctx context.Context, actor domain.User, id string) error
}

type service struct {
	repo      Repository
	publisher events.Publisher
	logger    *zap.Logger
}

func NewService(repo Repository, publisher events.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("appointment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("appointment.service")
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &service{repo: repo, publisher: publisher, logger: l}
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]Appointment, error) {
	return s.repo.FindAllByCompany(ctx, companyID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, actor domain.User, req CreateAppointmentRequest) (Appointment, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create appointment requested",
		zap.String("request_id", rid),
		zap.String("company_id", req.CompanyID),
		zap.String("actor_id", actor.ID),
	)

	if !permission.Allowed(actor, permission.Resource{
		CompanyID:    req.CompanyID,
		ResourceType: permission.ResourceAppointments,
	}, permission.OperationWrite) {
		return Appointment{}, apperror.ErrForbidden
	}

	if err := validation.Struct(req); err != nil {
		return Appointment{}, err
	}

	clientIDs := req.ClientIDs
	if clientIDs == nil {
		clientIDs = []string{}
	}
	userIDs := req.UserIDs
	if userIDs == nil {
		userIDs = []string{}
	}

	start := *req.StartTime
	newAppointment := Appointment{
		ID:        uuid.New().String(),
		Title:     req.Title,
		ClientIDs: clientIDs,
		UserIDs:   userIDs,
		StartTime: start,
		// EndTime dari client diabaikan: durasi selalu satu jam.
		EndTime:   start.Add(Duration),
		CompanyID: req.CompanyID,
	}

	if err := s.repo.Insert(ctx, newAppointment); err != nil {
		return Appointment{}, err
	}

	if err := s.publisher.PublishResourceEvent(ctx, events.NewResourceEvent(events.EventCreated, "appointment", newAppointment.ID, newAppointment.CompanyID)); err != nil {
		s.logger.Warn("publish appointment created event failed", zap.Error(err))
	}

	return newAppointment, nil
}

func (s *service) Update(ctx context.Context, actor domain.User, id string, req UpdateAppointmentRequest) (Appointment, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	if existing == nil {
		return Appointment{}, appointmenterrors.ErrAppointmentNotFound
	}

	if !permission.Allowed(actor, permission.Resource{
		CompanyID:    existing.CompanyID,
		ResourceType: permission.ResourceAppointments,
	}, permission.OperationWrite) {
		return Appointment{}, apperror.ErrForbidden
	}

	if err := validation.Struct(req); err != nil {
		return Appointment{}, err
	}

	updated := *existing
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.ClientIDs != nil {
		updated.ClientIDs = *req.ClientIDs
	}
	if req.UserIDs != nil {
		updated.UserIDs = *req.UserIDs
	}
	if req.StartTime != nil {
		updated.StartTime = *req.StartTime
		updated.EndTime = req.StartTime.Add(Duration)
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return Appointment{}, err
	}

	if err := s.publisher.PublishResourceEvent(ctx, events.NewResourceEvent(events.EventUpdated, "appointment", updated.ID, updated.CompanyID)); err != nil {
		s.logger.Warn("publish appointment updated event failed", zap.Error(err))
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, actor domain.User, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return appointmenterrors.ErrAppointmentNotFound
	}

	if !permission.Allowed(actor, permission.Resource{
		CompanyID:    existing.CompanyID,
		ResourceType: permission.ResourceAppointments,
	}, permission.OperationWrite) {
		return apperror.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.publisher.PublishResourceEvent(ctx, events.NewResourceEvent(events.EventDeleted, "appointment", id, existing.CompanyID)); err != nil {
		s.logger.Warn("publish appointment deleted event failed", zap.Error(err))
	}

	return nil
}
