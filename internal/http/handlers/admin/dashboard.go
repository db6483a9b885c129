package admin

import (
	"github.com/restyle-next/internal/http/handlers/shared"
	"github.com/restyle-next/internal/http/response"
	"github.com/restyle-next/internal/view"

	"github.com/gin-gonic/gin"
)

// GetDashboard 管理端仪表盘
// 统计、用户表与商品表一次拉齐；search 参数过滤用户
func (h *Handler) GetDashboard(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}
	cred := sess.Credential()

	stats, err := h.AdminService.Stats(c.Request.Context(), cred)
	if err != nil {
		shared.RespondBackendError(c, err)
		return
	}
	users, err := h.AdminService.ListUsers(c.Request.Context(), cred)
	if err != nil {
		shared.RespondBackendError(c, err)
		return
	}
	products, err := h.CatalogService.List(c.Request.Context(), cred)
	if err != nil {
		shared.RespondBackendError(c, err)
		return
	}

	cards := view.BuildProductCards(products, view.CardContext{
		Role:        sess.Role(),
		Visibility:  h.Visibility,
		Favorited:   sess.Interactions.Favorite,
		InCart:      sess.Cart.Contains,
		Placeholder: h.Config.Backend.PlaceholderImage,
	})

	dashboard := view.BuildAdminDashboard(*stats, users, cards, view.AdminContext{
		Viewer:      sess.Identity(),
		Visibility:  h.Visibility,
		SearchQuery: c.Query("search"),
	})
	response.Success(c, dashboard)
}

// RoleChangeRequest 角色调整请求
type RoleChangeRequest struct {
	Role string `json:"role" binding:"required"`
}

// ChangeUserRole 调整用户角色
func (h *Handler) ChangeUserRole(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	var req RoleChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "role is required", err)
		return
	}

	user, err := h.AdminService.ChangeUserRole(c.Request.Context(), sess.Credential(), c.Param("id"), req.Role)
	if err != nil {
		shared.RespondBackendError(c, err)
		return
	}
	response.Success(c, user)
}

// DeleteUser 删除用户
func (h *Handler) DeleteUser(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	if err := h.AdminService.DeleteUser(c.Request.Context(), sess.Credential(), c.Param("id")); err != nil {
		shared.RespondBackendError(c, err)
		return
	}
	response.SuccessWithMsg(c, "user deleted", nil)
}
