package compliance

import (
	"go-attendance/internal/domain"
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	missing := r.Group("/compliance/missing-reports")
	{
		missing.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceCompliance, domain.ActionReadAll), handler.TeamMissingReports)
		missing.GET("/me", middleware.RBACAuthorize(rbacService, domain.ResourceCompliance, domain.ActionRead), handler.MissingReports)
		missing.GET("/:employee_id", middleware.RBACAuthorize(rbacService, domain.ResourceCompliance, domain.ActionRead), handler.MissingReports)
	}
}
