package eodreport

import (
	"go-attendance/internal/domain"
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	reports := r.Group("/eod-reports")
	{
		reports.POST("",
			middleware.RBACAuthorize(rbacService, domain.ResourceEodReport, domain.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Submit,
		)
		reports.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceEodReport, domain.ActionRead), handler.List)
		reports.GET("/:id", middleware.RBACAuthorize(rbacService, domain.ResourceEodReport, domain.ActionRead), handler.GetByID)
		reports.PUT("/:id", middleware.RBACAuthorize(rbacService, domain.ResourceEodReport, domain.ActionUpdate), handler.Update)
	}
}
