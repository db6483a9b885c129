package account

import "github.com/restyle-next/internal/provider"

// Handler 账号接口处理器入口
// 说明：登录、登出、资料页与主题偏好。
type Handler struct {
	*provider.Container
}

// New 创建账号处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
