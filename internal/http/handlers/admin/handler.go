package admin

import "github.com/restyle-next/internal/provider"

// Handler 管理端接口处理器入口
// 说明：仪表盘与用户/商品管理入口，权限裁决全部在后端。
type Handler struct {
	*provider.Container
}

// New 创建管理端处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
