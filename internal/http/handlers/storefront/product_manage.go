package storefront

import (
	"github.com/restyle-next/internal/backend"
	"github.com/restyle-next/internal/constants"
	"github.com/restyle-next/internal/http/handlers/shared"
	"github.com/restyle-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CreateProduct 卖家创建商品
// 界面入口按角色控制可见性，真正的权限裁决在后端
func (h *Handler) CreateProduct(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	var input backend.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid product payload", err)
		return
	}

	product, err := h.CatalogService.Create(c.Request.Context(), sess.Credential(), input)
	if err != nil {
		shared.RespondBackendError(c, err)
		return
	}
	response.Success(c, product)
}

// UpdateProduct 卖家更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	var input backend.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid product payload", err)
		return
	}

	product, err := h.CatalogService.Update(c.Request.Context(), sess.Credential(), c.Param("id"), input)
	if err != nil {
		shared.RespondBackendError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct 商品卡上的删除入口
// 管理员走管理端删除接口，卖家删除自己的商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	asAdmin := sess.Role() == constants.RoleAdmin
	if err := h.CatalogService.Delete(c.Request.Context(), sess.Credential(), c.Param("id"), asAdmin); err != nil {
		shared.RespondBackendError(c, err)
		return
	}
	response.SuccessWithMsg(c, "product deleted", nil)
}
