package rbac

import (
	"fmt"
	"strings"
	"sync"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/logger"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

func subject(roleId string) string {
	return "role:" + roleId
}

// Enforcer checks role permissions with casbin. Policies are rebuilt from the
// roles table on every Load.
type Enforcer struct {
	mu       sync.RWMutex
	enforcer *casbin.Enforcer
	logger   logger.ILogger
}

func NewEnforcer(log logger.ILogger) (*Enforcer, error) {
	e, err := newCasbin(nil)
	if err != nil {
		return nil, err
	}
	return &Enforcer{enforcer: e, logger: log}, nil
}

func newCasbin(rules [][]string) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("rbac model: %w", err)
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("rbac enforcer: %w", err)
	}
	if len(rules) > 0 {
		if _, err := e.AddPolicies(rules); err != nil {
			return nil, fmt.Errorf("rbac policies: %w", err)
		}
	}
	return e, nil
}

// PolicyRules expands role permissions into casbin rules. Write also grants
// read on the same resource.
func PolicyRules(roles []*entity.Role) [][]string {
	seen := map[string]bool{}
	var rules [][]string
	add := func(sub, obj, act string) {
		key := sub + "|" + obj + "|" + act
		if seen[key] {
			return
		}
		seen[key] = true
		rules = append(rules, []string{sub, obj, act})
	}

	for _, role := range roles {
		sub := subject(role.Id.String())
		for _, perm := range role.Permissions {
			if perm == Wildcard {
				add(sub, Wildcard, Wildcard)
				continue
			}
			resource, action, ok := strings.Cut(perm, ":")
			if !ok {
				continue
			}
			add(sub, resource, action)
			if action == ActionWrite {
				add(sub, resource, ActionRead)
			}
		}
	}
	return rules
}

// Load replaces the policy set with the permissions of roles.
func (e *Enforcer) Load(roles []*entity.Role) error {
	rules := PolicyRules(roles)
	next, err := newCasbin(rules)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.enforcer = next
	e.mu.Unlock()

	e.logger.Info("RBAC", "Policies loaded", map[string]interface{}{"roles": len(roles), "rules": len(rules)})
	return nil
}

func (e *Enforcer) Allowed(roleId, resource, action string) bool {
	e.mu.RLock()
	enforcer := e.enforcer
	e.mu.RUnlock()

	ok, err := enforcer.Enforce(subject(roleId), resource, action)
	if err != nil {
		e.logger.Error("RBAC", "Enforce failed", map[string]interface{}{"role_id": roleId, "error": err.Error()})
		return false
	}
	return ok
}
