package view

import (
	"strings"

	"github.com/restyle-next/internal/authz"
	"github.com/restyle-next/internal/constants"
	"github.com/restyle-next/internal/models"
)

// Navbar 导航栏视图模型
type Navbar struct {
	HomePath         string `json:"home_path"`
	Theme            string `json:"theme"`
	SignedIn         bool   `json:"signed_in"`
	Username         string `json:"username,omitempty"`
	ProfilePic       string `json:"profile_pic,omitempty"`
	CartCount        int    `json:"cart_count"`
	FavoritesCount   int    `json:"favorites_count"`
	ShowAddProduct   bool   `json:"show_add_product"`
	ShowControlPanel bool   `json:"show_control_panel"`
}

// NavbarContext 导航栏渲染上下文
type NavbarContext struct {
	Identity       *models.Identity
	Theme          string
	CartCount      int
	FavoritesCount int
	Visibility     *authz.Service
}

// BuildNavbar 构建导航栏视图
func BuildNavbar(ctx NavbarContext) Navbar {
	role := ""
	if ctx.Identity != nil {
		role = strings.ToLower(ctx.Identity.Role)
	}

	nav := Navbar{
		HomePath:       HomePathForRole(role),
		Theme:          ctx.Theme,
		SignedIn:       ctx.Identity != nil,
		CartCount:      ctx.CartCount,
		FavoritesCount: ctx.FavoritesCount,
	}
	if ctx.Identity != nil {
		nav.Username = ctx.Identity.Username
		nav.ProfilePic = ctx.Identity.ProfilePic
	}
	if ctx.Visibility != nil {
		nav.ShowAddProduct = ctx.Visibility.CanSee(role, constants.AffordanceProductAdd)
		nav.ShowControlPanel = ctx.Visibility.CanSee(role, constants.AffordanceAdminPanel)
	}
	return nav
}

// HomePathForRole 角色对应的首页路径
func HomePathForRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case constants.RoleAdmin:
		return constants.HomePathAdmin
	case constants.RoleSeller:
		return constants.HomePathSeller
	default:
		return constants.HomePathDefault
	}
}
