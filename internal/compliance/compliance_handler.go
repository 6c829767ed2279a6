package compliance

import (
	"net/http"

	"go-attendance/internal/domain"
	"go-attendance/internal/middleware"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rbac    middleware.RBACService
	logger  *zap.Logger
}

func NewHandler(service Service, rbac middleware.RBACService, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("compliance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("compliance.handler")
	}
	return &Handler{service: service, rbac: rbac, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("compliance request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) canReadAll(c *gin.Context) bool {
	if h.rbac == nil {
		return false
	}
	allowed, err := h.rbac.Enforce(domain.EnforceRequest{
		Role:      c.GetString("role"),
		CompanyID: c.GetString("company_id"),
		Resource:  domain.ResourceCompliance,
		Action:    domain.ActionReadAll,
	})
	if err != nil {
		h.logger.Warn("read_all check failed", zap.Error(err))
		return false
	}
	return allowed
}

func (h *Handler) MissingReports(c *gin.Context) {
	var q MissingReportsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid query", err.Error())
		return
	}

	resp, err := h.service.MissingReports(
		c.Request.Context(),
		c.GetString("company_id"),
		middleware.CurrentActor(c),
		c.Param("employee_id"),
		q,
		h.canReadAll(c),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TeamMissingReports(c *gin.Context) {
	var q MissingReportsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid query", err.Error())
		return
	}

	resp, err := h.service.TeamMissingReports(c.Request.Context(), c.GetString("company_id"), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	items, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, items, &meta)
}
