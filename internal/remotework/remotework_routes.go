package remotework

import (
	"go-attendance/internal/domain"
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	limit rate.Limit,
	burst int,
) {
	rw := r.Group("/remote-work")
	rw.Use(middleware.RateLimitByUser(limit, burst))
	{
		rw.GET("/window", middleware.RBACAuthorize(rbacService, domain.ResourceRemoteWindow, domain.ActionRead), handler.GetWindow)
		rw.POST("/window/open", middleware.RBACAuthorize(rbacService, domain.ResourceRemoteWindow, domain.ActionManage), handler.OpenWindow)
		rw.POST("/window/close", middleware.RBACAuthorize(rbacService, domain.ResourceRemoteWindow, domain.ActionManage), handler.CloseWindow)

		rw.GET("/logs", middleware.RBACAuthorize(rbacService, domain.ResourceRemoteWork, domain.ActionRead), handler.ListLogs)
		rw.POST("/logs", middleware.RBACAuthorize(rbacService, domain.ResourceRemoteWork, domain.ActionCreate), handler.LogDay)
		rw.PUT("/preferences", middleware.RBACAuthorize(rbacService, domain.ResourceRemoteWork, domain.ActionCreate), handler.SetPreferences)
	}
}
