package authz

import (
	"fmt"
	"strings"

	"github.com/restyle-next/internal/constants"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
)

// 可见性模型：请求 (角色, 资源)，默认全部隐藏，命中策略才展示
const visibilityModel = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (r.obj == p.obj || p.obj == "*")
`

// Service 界面可见性判定服务
// 只决定界面上露出哪些操作入口；真正的权限校验全部在后端，
// 这里不是安全边界
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService 创建可见性服务并装载内置角色策略
func NewService() (*Service, error) {
	m, err := model.NewModelFromString(visibilityModel)
	if err != nil {
		return nil, fmt.Errorf("load visibility model failed: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("init visibility enforcer failed: %w", err)
	}

	policies := [][]string{
		{constants.RoleSeller, constants.AffordanceProductAdd},
		{constants.RoleSeller, constants.AffordanceProductDelete},
		{constants.RoleSeller, constants.AffordanceSellerProducts},
		{constants.RoleAdmin, constants.AffordanceProductDelete},
		{constants.RoleAdmin, constants.AffordanceAdminPanel},
		{constants.RoleAdmin, constants.AffordanceUserRoleChange},
		{constants.RoleAdmin, constants.AffordanceUserDelete},
	}
	if _, err := enforcer.AddPolicies(policies); err != nil {
		return nil, fmt.Errorf("load visibility policies failed: %w", err)
	}

	return &Service{enforcer: enforcer}, nil
}

// CanSee 判断角色是否展示某个操作入口
// 未登录（空角色）与未知角色一律隐藏
func (s *Service) CanSee(role, affordance string) bool {
	if s == nil || s.enforcer == nil {
		return false
	}
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return false
	}
	allowed, err := s.enforcer.Enforce(role, affordance)
	if err != nil {
		return false
	}
	return allowed
}
