package middleware

import (
	"net/http"

	"go-attendance/internal/domain"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// PrivilegeChecker tells whether a role may override attendance rules.
type PrivilegeChecker interface {
	IsPrivileged(role string) bool
}

// ResolveActor builds the domain.Actor for the authenticated caller. It must
// run after AuthMiddleware.
func ResolveActor(checker PrivilegeChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetString("employee_id")
		if employeeID == "" {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "User is not authenticated")
			return
		}

		role := c.GetString("role")
		c.Set(actorKey, domain.Actor{
			UserID:     c.GetString("user_id"),
			EmployeeID: employeeID,
			CompanyID:  c.GetString("company_id"),
			Role:       role,
			Privileged: checker != nil && checker.IsPrivileged(role),
		})
		c.Next()
	}
}

// CurrentActor returns the actor stored by ResolveActor. Without it, the
// caller is treated as an unprivileged owner of its own employee id.
func CurrentActor(c *gin.Context) domain.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(domain.Actor); ok {
			return actor
		}
	}
	return domain.Actor{
		UserID:     c.GetString("user_id"),
		EmployeeID: c.GetString("employee_id"),
		CompanyID:  c.GetString("company_id"),
		Role:       c.GetString("role"),
	}
}

// SetActor is used by tests and internal callers that bypass the HTTP stack.
func SetActor(c *gin.Context, actor domain.Actor) {
	c.Set(actorKey, actor)
}
