package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// policies is the static role grid. Roles come from the users table, so there
// is no storage adapter behind the enforcer.
var policies = [][]string{
	{"USER", "request", "create"},
	{"USER", "request", "read"},
	{"USER", "request", "cancel"},
	{"USER", "balance", "read"},
	{"USER", "team", "read"},
	{"USER", "absence_type", "read"},
	{"MANAGER", "request", "read_all"},
	{"MANAGER", "request", "approve"},
	{"MANAGER", "team", "manage"},
	{"ADMIN", "user", "manage"},
	{"ADMIN", "absence_type", "manage"},
	{"ADMIN", "balance", "adjust"},
}

var groupings = [][]string{
	{"MANAGER", "USER"},
	{"ADMIN", "MANAGER"},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, g := range groupings {
		if _, err := e.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
