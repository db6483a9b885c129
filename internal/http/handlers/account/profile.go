package account

import (
	"github.com/restyle-next/internal/constants"
	"github.com/restyle-next/internal/http/handlers/shared"
	"github.com/restyle-next/internal/http/response"
	"github.com/restyle-next/internal/models"
	"github.com/restyle-next/internal/view"

	"github.com/gin-gonic/gin"
)

// GetProfile 资料页
// 标题按角色切换；卖家附带自己的商品列表
func (h *Handler) GetProfile(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	identity := sess.Identity()
	if identity == nil {
		shared.RespondError(c, response.CodeUnauthorized, "Please log in", nil)
		return
	}

	var products []view.ProductCard
	if h.Visibility.CanSee(sess.Role(), constants.AffordanceSellerProducts) {
		list, err := h.CatalogService.List(c.Request.Context(), sess.Credential())
		if err != nil {
			shared.RespondBackendError(c, err)
			return
		}
		owned := make([]models.Product, 0, len(list))
		for _, p := range list {
			if p.Seller.ID == identity.ID {
				owned = append(owned, p)
			}
		}
		products = view.BuildProductCards(owned, view.CardContext{
			Role:        sess.Role(),
			Visibility:  h.Visibility,
			Favorited:   sess.Interactions.Favorite,
			InCart:      sess.Cart.Contains,
			Placeholder: h.Config.Backend.PlaceholderImage,
		})
	}

	response.Success(c, view.BuildProfile(*identity, products, h.Visibility))
}

// UpdateProfile 更新资料
// 校验失败内联提示，表单内容保留；成功后提示文案透传后端
func (h *Handler) UpdateProfile(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	var form view.ProfileUpdateForm
	if err := c.ShouldBindJSON(&form); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid profile payload", err)
		return
	}

	identity, message, err := h.AccountService.UpdateProfile(c.Request.Context(), sess, form)
	if err != nil {
		shared.RespondBackendError(c, err)
		return
	}
	response.SuccessWithMsg(c, message, gin.H{"user": identity})
}

// DeleteAccount 注销账号
func (h *Handler) DeleteAccount(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	if err := h.AccountService.DeleteAccount(c.Request.Context(), sess); err != nil {
		shared.RespondBackendError(c, err)
		return
	}
	c.SetCookie(h.Config.Session.CookieName, "", -1, "/", "", false, true)
	response.SuccessWithMsg(c, "account deleted", nil)
}
