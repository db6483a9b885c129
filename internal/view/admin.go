package view

import (
	"strings"

	"github.com/restyle-next/internal/authz"
	"github.com/restyle-next/internal/constants"
	"github.com/restyle-next/internal/models"
)

// AdminUserRow 管理端用户表行
type AdminUserRow struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	CanChangeRole bool   `json:"can_change_role"`
	CanDelete     bool   `json:"can_delete"`
}

// AdminDashboard 管理端仪表盘视图模型
type AdminDashboard struct {
	Stats    models.AdminStats `json:"stats"`
	Users    []AdminUserRow    `json:"users"`
	Products []ProductCard     `json:"products"`
}

// AdminContext 管理端渲染上下文
type AdminContext struct {
	Viewer      *models.Identity
	Visibility  *authz.Service
	SearchQuery string
}

// BuildAdminDashboard 构建管理端仪表盘视图
// 用户搜索按用户名/邮箱子串过滤，大小写不敏感
func BuildAdminDashboard(stats models.AdminStats, users []models.Identity, products []ProductCard, ctx AdminContext) AdminDashboard {
	role := ""
	if ctx.Viewer != nil {
		role = strings.ToLower(ctx.Viewer.Role)
	}
	canChangeRole := ctx.Visibility != nil && ctx.Visibility.CanSee(role, constants.AffordanceUserRoleChange)
	canDelete := ctx.Visibility != nil && ctx.Visibility.CanSee(role, constants.AffordanceUserDelete)

	query := strings.ToLower(strings.TrimSpace(ctx.SearchQuery))
	rows := make([]AdminUserRow, 0, len(users))
	for _, u := range users {
		if query != "" &&
			!strings.Contains(strings.ToLower(u.Username), query) &&
			!strings.Contains(strings.ToLower(u.Email), query) {
			continue
		}
		rows = append(rows, AdminUserRow{
			ID:            u.ID,
			Username:      u.Username,
			Email:         u.Email,
			Role:          strings.ToLower(u.Role),
			CanChangeRole: canChangeRole,
			CanDelete:     canDelete,
		})
	}

	return AdminDashboard{
		Stats:    stats,
		Users:    rows,
		Products: products,
	}
}
