package compliance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	calendarerrors "go-attendance/internal/calendar/errors"
	"go-attendance/internal/compliance"
	"go-attendance/internal/domain"
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	missingFn func(ctx context.Context, companyID string, actor domain.Actor, employeeID string, q compliance.MissingReportsQuery, canReadAll bool) (compliance.MissingReportsResponse, error)
	teamFn    func(ctx context.Context, companyID string, q compliance.MissingReportsQuery) ([]compliance.MissingReportsResponse, error)
}

func (f *fakeService) MissingReports(ctx context.Context, companyID string, actor domain.Actor, employeeID string, q compliance.MissingReportsQuery, canReadAll bool) (compliance.MissingReportsResponse, error) {
	return f.missingFn(ctx, companyID, actor, employeeID, q, canReadAll)
}

func (f *fakeService) TeamMissingReports(ctx context.Context, companyID string, q compliance.MissingReportsQuery) ([]compliance.MissingReportsResponse, error) {
	return f.teamFn(ctx, companyID, q)
}

type roleRBAC map[string]bool

func (r roleRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	return r[req.Role+":"+req.Resource+":"+req.Action], nil
}

func TestHandler_MissingReports(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.NewString()
	employeeID := uuid.NewString()

	newContext := func(role, target, query string) (*httptest.ResponseRecorder, *gin.Context) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("company_id", companyID)
		c.Set("role", role)
		middleware.SetActor(c, domain.Actor{EmployeeID: employeeID, CompanyID: companyID, Role: role})
		c.Params = gin.Params{{Key: "employee_id", Value: target}}
		c.Request = httptest.NewRequest(http.MethodGet, "/compliance/missing-reports/"+target+query, nil)
		return w, c
	}

	t.Run("hr reads a colleague", func(t *testing.T) {
		target := uuid.NewString()
		svc := &fakeService{
			missingFn: func(_ context.Context, cid string, _ domain.Actor, id string, q compliance.MissingReportsQuery, canReadAll bool) (compliance.MissingReportsResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, target, id)
				assert.Equal(t, "2024-01-01", q.Start)
				assert.True(t, canReadAll)
				return compliance.MissingReportsResponse{EmployeeID: id, Missing: 5}, nil
			},
		}
		rbac := roleRBAC{domain.RoleHR + ":" + domain.ResourceCompliance + ":" + domain.ActionReadAll: true}
		h := compliance.NewHandler(svc, rbac)

		w, c := newContext(domain.RoleHR, target, "?start=2024-01-01&end=2024-01-07")
		h.MissingReports(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"missing":5`)
	})

	t.Run("service error is mapped", func(t *testing.T) {
		svc := &fakeService{
			missingFn: func(context.Context, string, domain.Actor, string, compliance.MissingReportsQuery, bool) (compliance.MissingReportsResponse, error) {
				return compliance.MissingReportsResponse{}, calendarerrors.ErrInvalidDateRange
			},
		}
		h := compliance.NewHandler(svc, roleRBAC{})

		w, c := newContext(domain.RoleEmployee, employeeID, "?start=2024-01-07&end=2024-01-01")
		h.MissingReports(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})
}

func TestHandler_TeamMissingReports(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		teamFn: func(context.Context, string, compliance.MissingReportsQuery) ([]compliance.MissingReportsResponse, error) {
			return []compliance.MissingReportsResponse{
				{EmployeeID: uuid.NewString(), Missing: 1},
				{EmployeeID: uuid.NewString(), Missing: 0},
			}, nil
		},
	}
	h := compliance.NewHandler(svc, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uuid.NewString())
	c.Request = httptest.NewRequest(http.MethodGet, "/compliance/missing-reports?page=1&page_size=1", nil)

	h.TeamMissingReports(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"missing":1`)
	assert.NotContains(t, w.Body.String(), `"missing":0`)
}
