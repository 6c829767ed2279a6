package settings

import (
	"go-attendance/internal/domain"
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	st := r.Group("/settings/attendance")
	{
		st.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceSettings, domain.ActionRead), handler.Get)
		st.PUT("/submission-policy", middleware.RBACAuthorize(rbacService, domain.ResourceSettings, domain.ActionManage), handler.UpdateSubmissionPolicy)
		st.PUT("/remote-quota", middleware.RBACAuthorize(rbacService, domain.ResourceSettings, domain.ActionManage), handler.UpdateRemoteQuota)
	}
}
