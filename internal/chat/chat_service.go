package chat

import (
	"context"
	"fmt"
	"time"

	"clarityflow/internal/domain"
	"clarityflow/internal/shared/apperror"
	"clarityflow/internal/shared/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service adalah conversation orchestrator: memegang transcript per user,
// memutuskan command vs pertanyaan bebas, memanggil remote reasoner secara
// asinkron, dan merekonsiliasi balasannya ke placeholder.
//
// Catatan concurrency: persistence transcript adalah read-modify-write satu
// blob per user. Dua AddMessage/reconciliation yang tumpang tindih untuk
// user yang sama bisa saling menimpa (last write wins). Itu batasan yang
// diterima untuk deployment single-process single-writer; tidak ada locking
// tambahan.
type Service interface {
	GetMessages(ctx context.Context, userID string) ([]Message, error)
	AddMessage(ctx context.Context, actor domain.User, req CreateMessageRequest, chatCtx ChatContext, onUpdate func()) (Message, error)
	ClearMessages(ctx context.Context, actor domain.User) error
}

type service struct {
	repo       Repository
	reasoner   Reasoner
	dispatcher *Dispatcher
	logger     *zap.Logger
}

func NewService(repo Repository, reasoner Reasoner, dispatcher *Dispatcher, logger ...*zap.Logger) Service {
	l := zap.L().Named("chat.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("chat.service")
	}
	return &service{
		repo:       repo,
		reasoner:   reasoner,
		dispatcher: dispatcher,
		logger:     l,
	}
}

func (s *service) GetMessages(ctx context.Context, userID string) ([]Message, error) {
	return s.repo.Messages(ctx, userID)
}

func (s *service) ClearMessages(ctx context.Context, actor domain.User) error {
	if actor.ID == "" {
		return apperror.ErrUnauthorized
	}
	return s.repo.Clear(ctx, actor.ID)
}

func newMessage(role MessageRole, text string) Message {
	return Message{
		ID:        uuid.New().String(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// AddMessage menyimpan pesan user lalu mengembalikannya segera; balasan
// model direkonsiliasi belakangan lewat goroutine. Urutan durable untuk
// satu actor: pesan user dulu, lalu placeholder, baru network call.
func (s *service) AddMessage(
	ctx context.Context,
	actor domain.User,
	req CreateMessageRequest,
	chatCtx ChatContext,
	onUpdate func(),
) (Message, error) {
	if actor.ID == "" {
		return Message{}, apperror.ErrUnauthorized
	}

	if err := validation.Struct(req); err != nil {
		return Message{}, err
	}

	messages, err := s.repo.Messages(ctx, actor.ID)
	if err != nil {
		return Message{}, err
	}

	userMessage := newMessage(RoleUser, req.Text)
	messages = append(messages, userMessage)
	if err := s.repo.Save(ctx, actor.ID, messages); err != nil {
		return Message{}, err
	}

	command := Classify(req.Text)

	if command != nil {
		if !Authorize(actor, *command) {
			denial := newMessage(RoleModel, fmt.Sprintf(
				"Sorry, you don't have permission to %s %ss.", command.Action, command.Type))
			messages = append(messages, denial)
			if err := s.repo.Save(ctx, actor.ID, messages); err != nil {
				return Message{}, err
			}
			// Tidak ada network call untuk command yang ditolak.
			return userMessage, nil
		}

		placeholder := newMessage(RoleModel, placeholderProcessing)
		messages = append(messages, placeholder)
		if err := s.repo.Save(ctx, actor.ID, messages); err != nil {
			return Message{}, err
		}

		reasonReq := ReasonRequest{
			Question: req.Text,
			Context:  chatCtx,
			Action:   command.Action,
			Type:     command.Type,
		}

		// Request HTTP sudah selesai saat balasan datang; pakai context
		// tanpa cancellation supaya reconciliation tidak ikut putus.
		bg := context.WithoutCancel(ctx)
		go s.resolve(bg, actor, placeholder.ID, reasonReq, false, onUpdate)

		return userMessage, nil
	}

	placeholder := newMessage(RoleModel, placeholderThinking)
	messages = append(messages, placeholder)
	if err := s.repo.Save(ctx, actor.ID, messages); err != nil {
		return Message{}, err
	}

	reasonReq := ReasonRequest{
		Question: req.Text,
		Context:  chatCtx,
	}

	bg := context.WithoutCancel(ctx)
	go s.resolve(bg, actor, placeholder.ID, reasonReq, true, onUpdate)

	return userMessage, nil
}

// resolve merekonsiliasi balasan remote ke transcript: placeholder diganti
// in-place berdasar id; kalau placeholder sudah hilang (transcript dibersihkan
// di tengah jalan) dan appendIfMissing true, pesan baru ditambahkan.
func (s *service) resolve(
	ctx context.Context,
	actor domain.User,
	placeholderID string,
	req ReasonRequest,
	appendIfMissing bool,
	onUpdate func(),
) {
	reply, askErr := s.reasoner.Ask(ctx, req)

	text := ""
	if askErr != nil {
		if req.Action != "" {
			text = fmt.Sprintf("Sorry, I encountered an error processing your command: %v", askErr)
		} else {
			text = fmt.Sprintf("Sorry, I encountered an error: %v", askErr)
		}
		s.logger.Warn("reasoner reply failed",
			zap.String("user_id", actor.ID),
			zap.Error(askErr),
		)
	} else {
		text = reply.Answer
	}

	messages, err := s.repo.Messages(ctx, actor.ID)
	if err != nil {
		s.logger.Error("load transcript for reconciliation failed",
			zap.String("user_id", actor.ID),
			zap.Error(err),
		)
		return
	}

	found := false
	for i := range messages {
		if messages[i].ID == placeholderID {
			messages[i].Text = text
			messages[i].Timestamp = time.Now()
			found = true
			break
		}
	}
	if !found && appendIfMissing {
		messages = append(messages, newMessage(RoleModel, text))
	}

	if err := s.repo.Save(ctx, actor.ID, messages); err != nil {
		s.logger.Error("persist reconciled transcript failed",
			zap.String("user_id", actor.ID),
			zap.Error(err),
		)
		return
	}

	// Kegagalan dispatch tidak pernah muncul di transcript; Dispatcher
	// menelannya sendiri.
	if askErr == nil && reply.Action != "" && reply.Type != "" && reply.Data != nil {
		s.dispatcher.PerformAction(ctx, reply.Type, reply.Action, reply.Data, actor)
	}

	if onUpdate != nil {
		onUpdate()
	}
}
