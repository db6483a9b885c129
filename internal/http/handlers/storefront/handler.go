package storefront

import "github.com/restyle-next/internal/provider"

// Handler 店面接口处理器入口
// 说明：目录、详情、购物车、互动、结算等面向买家的界面接口。
type Handler struct {
	*provider.Container
}

// New 创建店面处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
