package chat

import (
	"net/http"

	"clarityflow/internal/middleware"
	"clarityflow/internal/shared/apperror"
	"clarityflow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service  Service
	snapshot *SnapshotBuilder
	logger   *zap.Logger
}

func NewHandler(service Service, snapshot *SnapshotBuilder, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("chat.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("chat.handler")
	}
	return &Handler{service: service, snapshot: snapshot, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("chat request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetMessages(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	messages, err := h.service.GetMessages(c.Request.Context(), actor.ID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, messages)
}

// AddMessage membalas 202: pesan user sudah durable, balasan model menyusul
// lewat reconciliation. Client polling GET untuk melihat placeholder berubah.
func (h *Handler) AddMessage(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	chatCtx := h.snapshot.Build(c.Request.Context(), actor)

	msg, err := h.service.AddMessage(c.Request.Context(), actor, req, chatCtx, nil)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, msg)
}

func (h *Handler) ClearMessages(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	if err := h.service.ClearMessages(c.Request.Context(), actor); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusNoContent, nil)
}
