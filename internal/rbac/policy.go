package rbac

import "go-attendance/internal/domain"

// DefaultInheritance chains the built-in roles from least to most powerful.
func DefaultInheritance() []RoleInheritance {
	return []RoleInheritance{
		{Role: domain.RoleManager, Parent: domain.RoleEmployee},
		{Role: domain.RoleHR, Parent: domain.RoleManager},
		{Role: domain.RoleAdmin, Parent: domain.RoleHR},
		{Role: domain.RoleSuperAdmin, Parent: domain.RoleAdmin},
	}
}

// DefaultRules is the built-in attendance permission set.
func DefaultRules() []Rule {
	employee := []struct{ resource, action string }{
		{domain.ResourceEodReport, domain.ActionCreate},
		{domain.ResourceEodReport, domain.ActionRead},
		{domain.ResourceEodReport, domain.ActionUpdate},
		{domain.ResourceRemoteWindow, domain.ActionRead},
		{domain.ResourceRemoteWork, domain.ActionCreate},
		{domain.ResourceRemoteWork, domain.ActionRead},
		{domain.ResourceCalendar, domain.ActionRead},
		{domain.ResourceHoliday, domain.ActionRead},
		{domain.ResourceSettings, domain.ActionRead},
		{domain.ResourceCompliance, domain.ActionRead},
	}
	manager := []struct{ resource, action string }{
		{domain.ResourceCompliance, domain.ActionReadAll},
		{domain.ResourceEodReport, domain.ActionReadAll},
	}
	hr := []struct{ resource, action string }{
		{domain.ResourceAttendance, domain.ActionOverride},
		{domain.ResourceRemoteWindow, domain.ActionManage},
		{domain.ResourceHoliday, domain.ActionManage},
		{domain.ResourceSettings, domain.ActionManage},
	}

	rules := make([]Rule, 0, len(employee)+len(manager)+len(hr))
	for _, p := range employee {
		rules = append(rules, Rule{Role: domain.RoleEmployee, Resource: p.resource, Action: p.action})
	}
	for _, p := range manager {
		rules = append(rules, Rule{Role: domain.RoleManager, Resource: p.resource, Action: p.action})
	}
	for _, p := range hr {
		rules = append(rules, Rule{Role: domain.RoleHR, Resource: p.resource, Action: p.action})
	}
	return rules
}
