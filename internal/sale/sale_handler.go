package sale

import (
	"net/http"

	"clarityflow/internal/middleware"
	"clarityflow/internal/shared/apperror"
	"clarityflow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("sale.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sale.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("sale request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	sales, err := h.service.GetAll(c.Request.Context(), actor.CompanyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, sales)
}

func (h *Handler) GetByID(c *gin.Context) {
	s, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if s == nil {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, "Sale not found", nil)
		return
	}

	response.Success(c, http.StatusOK, s)
}

func (h *Handler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}
	if req.CompanyID == "" {
		req.CompanyID = actor.CompanyID
	}

	created, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

func (h *Handler) Update(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	if err := h.service.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusNoContent, nil)
}
