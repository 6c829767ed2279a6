package rbac

import (
	"strings"

	"go-attendance/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const AllCompanies = "*"

// Rule grants a role one action on one resource.
type Rule struct {
	Role     string
	Company  string
	Resource string
	Action   string
}

// RoleInheritance makes Role inherit every permission of Parent.
type RoleInheritance struct {
	Role   string
	Parent string
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	IsPrivileged(role string) bool
}

type service struct {
	enforcer *casbin.SyncedEnforcer
	logger   *zap.Logger
}

// NewService loads the given rules into the enforcer.
func NewService(enforcer *casbin.SyncedEnforcer, rules []Rule, inheritance []RoleInheritance, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	for _, in := range inheritance {
		if _, err := enforcer.AddGroupingPolicy(strings.ToUpper(in.Role), strings.ToUpper(in.Parent)); err != nil {
			return nil, err
		}
	}
	for _, r := range rules {
		company := r.Company
		if company == "" {
			company = AllCompanies
		}
		if _, err := enforcer.AddPolicy(strings.ToUpper(r.Role), company, r.Resource, r.Action); err != nil {
			return nil, err
		}
	}

	l.Info("rbac policy loaded", zap.Int("rules", len(rules)), zap.Int("inheritance", len(inheritance)))
	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	allowed, err := s.enforcer.Enforce(strings.ToUpper(req.Role), req.CompanyID, req.Resource, req.Action)
	if err != nil {
		return false, err
	}
	if !allowed {
		s.logger.Debug("rbac denied",
			zap.String("role", req.Role),
			zap.String("company_id", req.CompanyID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
		)
	}
	return allowed, nil
}

// IsPrivileged reports whether the role may override attendance rules for
// other people.
func (s *service) IsPrivileged(role string) bool {
	if role == "" {
		return false
	}
	ok, err := s.enforcer.Enforce(strings.ToUpper(role), AllCompanies, domain.ResourceAttendance, domain.ActionOverride)
	if err != nil {
		s.logger.Error("privilege check failed", zap.String("role", role), zap.Error(err))
		return false
	}
	return ok
}
