package calendar

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
	cal := r.Group("/calendar")
	{
		cal.GET("/working-day", middleware.RBACAuthorize(rbacService, domain.ResourceCalendar, domain.ActionRead), handler.CheckWorkingDay)
		cal.GET("/working-days", middleware.RBACAuthorize(rbacService, domain.ResourceCalendar, domain.ActionRead), handler.ListWorkingDays)
	}

	holidays := r.Group("/holidays")
	{
		holidays.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceHoliday, domain.ActionRead), handler.ListHolidays)
		holidays.POST("", middleware.RBACAuthorize(rbacService, domain.ResourceHoliday, domain.ActionManage), handler.CreateHoliday)
		holidays.DELETE("/:id", middleware.RBACAuthorize(rbacService, domain.ResourceHoliday, domain.ActionManage), handler.DeleteHoliday)
	}
}
