package rbac

import (
	"testing"

	"go-attendance/internal/domain"
	"go-attendance/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =========================================
// Helper: Test Service
// =========================================

func newTestService(t *testing.T, rules []Rule, inheritance []RoleInheritance) Service {
	t.Helper()

	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)

	svc, err := NewService(enforcer, rules, inheritance)
	require.NoError(t, err)
	return svc
}

// =========================================
// TEST: Default policy
// =========================================

func TestRBACService_DefaultPolicy(t *testing.T) {
	svc := newTestService(t, DefaultRules(), DefaultInheritance())

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"employee submits report", domain.RoleEmployee, domain.ResourceEodReport, domain.ActionCreate, true},
		{"employee logs remote day", domain.RoleEmployee, domain.ResourceRemoteWork, domain.ActionCreate, true},
		{"employee cannot open window", domain.RoleEmployee, domain.ResourceRemoteWindow, domain.ActionManage, false},
		{"employee cannot read team compliance", domain.RoleEmployee, domain.ResourceCompliance, domain.ActionReadAll, false},
		{"manager reads team compliance", domain.RoleManager, domain.ResourceCompliance, domain.ActionReadAll, true},
		{"manager inherits employee", domain.RoleManager, domain.ResourceEodReport, domain.ActionCreate, true},
		{"manager cannot manage holidays", domain.RoleManager, domain.ResourceHoliday, domain.ActionManage, false},
		{"hr opens window", domain.RoleHR, domain.ResourceRemoteWindow, domain.ActionManage, true},
		{"super admin inherits hr", domain.RoleSuperAdmin, domain.ResourceSettings, domain.ActionManage, true},
		{"role is case insensitive", "hr", domain.ResourceHoliday, domain.ActionManage, true},
		{"unknown role", "GUEST", domain.ResourceCalendar, domain.ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				Role:      tt.role,
				CompanyID: "company-1",
				Resource:  tt.resource,
				Action:    tt.action,
			})
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

// =========================================
// TEST: Company scoped rules
// =========================================

func TestRBACService_CompanyRule(t *testing.T) {
	svc := newTestService(t, []Rule{
		{Role: domain.RoleEmployee, Company: "company-1", Resource: domain.ResourceHoliday, Action: domain.ActionManage},
	}, nil)

	allowed, err := svc.Enforce(domain.EnforceRequest{Role: domain.RoleEmployee, CompanyID: "company-1", Resource: domain.ResourceHoliday, Action: domain.ActionManage})
	assert.NoError(t, err)
	assert.True(t, allowed)

	denied, err := svc.Enforce(domain.EnforceRequest{Role: domain.RoleEmployee, CompanyID: "company-2", Resource: domain.ResourceHoliday, Action: domain.ActionManage})
	assert.NoError(t, err)
	assert.False(t, denied)
}

// =========================================
// TEST: IsPrivileged
// =========================================

func TestRBACService_IsPrivileged(t *testing.T) {
	svc := newTestService(t, DefaultRules(), DefaultInheritance())

	assert.False(t, svc.IsPrivileged(""))
	assert.False(t, svc.IsPrivileged(domain.RoleEmployee))
	assert.False(t, svc.IsPrivileged(domain.RoleManager))
	assert.True(t, svc.IsPrivileged(domain.RoleHR))
	assert.True(t, svc.IsPrivileged(domain.RoleAdmin))
	assert.True(t, svc.IsPrivileged("super_admin"))
}
