package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-attendance/internal/domain"
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubRBAC struct {
	allowed    bool
	err        error
	privileged map[string]bool
	got        domain.EnforceRequest
}

func (s *stubRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	s.got = req
	return s.allowed, s.err
}

func (s *stubRBAC) IsPrivileged(role string) bool {
	return s.privileged[role]
}

func identity(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "u-1")
		c.Set("employee_id", "e-1")
		c.Set("company_id", "c-1")
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	}
}

func TestRBACAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(rbac *stubRBAC, role string) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/x", identity(role), middleware.RBACAuthorize(rbac, domain.ResourceRemoteWindow, domain.ActionManage), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		return w
	}

	t.Run("allowed", func(t *testing.T) {
		rbac := &stubRBAC{allowed: true}
		w := run(rbac, domain.RoleHR)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, domain.EnforceRequest{Role: domain.RoleHR, CompanyID: "c-1", Resource: domain.ResourceRemoteWindow, Action: domain.ActionManage}, rbac.got)
	})

	t.Run("denied", func(t *testing.T) {
		w := run(&stubRBAC{}, domain.RoleEmployee)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "remote_window:manage")
	})

	t.Run("no role", func(t *testing.T) {
		w := run(&stubRBAC{allowed: true}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		w := run(&stubRBAC{err: errors.New("policy broken")}, domain.RoleHR)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestResolveActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rbac := &stubRBAC{privileged: map[string]bool{domain.RoleHR: true}}

	for _, tc := range []struct {
		role       string
		privileged bool
	}{{domain.RoleHR, true}, {domain.RoleEmployee, false}} {
		var got domain.Actor
		r := gin.New()
		r.GET("/x", identity(tc.role), middleware.ResolveActor(rbac), func(c *gin.Context) {
			got = middleware.CurrentActor(c)
		})
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, domain.Actor{UserID: "u-1", EmployeeID: "e-1", CompanyID: "c-1", Role: tc.role, Privileged: tc.privileged}, got)
	}

	t.Run("unauthenticated", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", middleware.ResolveActor(rbac), func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
