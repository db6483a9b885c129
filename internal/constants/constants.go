package constants

// 用户角色常量（服务端分配，客户端只读）
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// 界面可见性资源常量（仅控制展示，不做权限校验）
const (
	AffordanceProductAdd     = "product:add"
	AffordanceProductDelete  = "product:delete"
	AffordanceAdminPanel     = "admin:panel"
	AffordanceSellerProducts = "seller:products"
	AffordanceUserRoleChange = "user:role_change"
	AffordanceUserDelete     = "user:delete"
)

// 主题常量
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// 角色首页路径常量
const (
	HomePathDefault = "/"
	HomePathSeller  = "/your-products"
	HomePathAdmin   = "/admin"
)

// 角色资料页标题常量
const (
	ProfileTitleBuyer  = "User Profile"
	ProfileTitleSeller = "Seller Dashboard"
	ProfileTitleAdmin  = "Admin Profile"
)
