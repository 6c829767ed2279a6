package eodreport

import (
	"net/http"

	"go-attendance/internal/domain"
	"go-attendance/internal/middleware"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rbac    middleware.RBACService
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rbac middleware.RBACService, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("eodreport.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("eodreport.handler")
	}
	return &Handler{service: service, rbac: rbac, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("eod report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	mapped := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", mapped.Message, err.Error())
}

// canReadAll is true when the role may read reports of the whole company.
func (h *Handler) canReadAll(c *gin.Context) bool {
	if h.rbac == nil {
		return false
	}
	allowed, err := h.rbac.Enforce(domain.EnforceRequest{
		Role:      c.GetString("role"),
		CompanyID: c.GetString("company_id"),
		Resource:  domain.ResourceEodReport,
		Action:    domain.ActionReadAll,
	})
	if err != nil {
		h.logger.Warn("read_all check failed", zap.Error(err))
		return false
	}
	return allowed
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitEodReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.CompleteIdempotency(c, h.rdb, 0, nil)
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), c.GetString("company_id"), middleware.CurrentActor(c), req)
	if err != nil {
		middleware.CompleteIdempotency(c, h.rdb, 0, nil)
		h.writeServiceError(c, err)
		return
	}

	middleware.CompleteIdempotency(c, h.rdb, http.StatusCreated, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEodReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.GetString("company_id"), middleware.CurrentActor(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("company_id"), middleware.CurrentActor(c), c.Param("id"), h.canReadAll(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	var q ListEodReportsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.List(c.Request.Context(), c.GetString("company_id"), middleware.CurrentActor(c), q, h.canReadAll(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	items, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, items, &meta)
}
