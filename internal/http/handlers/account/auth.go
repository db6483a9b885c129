package account

import (
	"github.com/restyle-next/internal/http/handlers/shared"
	"github.com/restyle-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 账号登录
func (h *Handler) Login(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "email and password are required", err)
		return
	}

	identity, err := h.AccountService.LogIn(c.Request.Context(), sess, req.Email, req.Password)
	if err != nil {
		shared.RespondBackendError(c, err)
		return
	}
	shared.RequestLog(c).Infow("user_logged_in", "session_id", sess.ID, "role", identity.Role)
	response.Success(c, gin.H{"user": identity})
}

// SignOut 登出并销毁会话
func (h *Handler) SignOut(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	h.AccountService.SignOut(c.Request.Context(), sess)
	c.SetCookie(h.Config.Session.CookieName, "", -1, "/", "", false, true)
	response.SuccessWithMsg(c, "signed out", nil)
}

// Me 当前身份（页面加载时以后端为准刷新）
func (h *Handler) Me(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	identity, err := h.AccountService.RefreshIdentity(c.Request.Context(), sess)
	if err != nil {
		shared.RespondBackendError(c, err)
		return
	}
	response.Success(c, gin.H{"user": identity})
}

// ToggleTheme 切换明暗主题
func (h *Handler) ToggleTheme(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}
	response.Success(c, gin.H{"theme": sess.ToggleTheme()})
}
