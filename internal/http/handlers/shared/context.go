package shared

import (
	"github.com/restyle-next/internal/http/response"
	"github.com/restyle-next/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionContextKey 会话在请求上下文中的键
const SessionContextKey = "storefront_session"

// CurrentSession 从上下文取出当前会话，缺失时统一返回错误响应。
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	value, exists := c.Get(SessionContextKey)
	if !exists {
		RespondError(c, response.CodeInternal, "session not attached", nil)
		return nil, false
	}
	sess, ok := value.(*session.Session)
	if !ok || sess == nil {
		RespondError(c, response.CodeInternal, "session type invalid", nil)
		return nil, false
	}
	return sess, true
}
