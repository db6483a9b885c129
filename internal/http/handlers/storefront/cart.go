package storefront

import (
	"errors"

	"github.com/restyle-next/internal/cart"
	"github.com/restyle-next/internal/http/handlers/shared"
	"github.com/restyle-next/internal/http/response"
	"github.com/restyle-next/internal/view"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 购物车条目请求
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// GetCart 购物车页
func (h *Handler) GetCart(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	catalog, err := h.CatalogService.Catalog(c.Request.Context(), sess.Credential())
	if err != nil {
		shared.RespondBackendError(c, err)
		return
	}

	page := view.BuildCartPage(sess.Cart, catalog, h.Config.Backend.PlaceholderImage)
	response.Success(c, gin.H{
		"navbar": h.buildNavbar(sess),
		"cart":   page,
	})
}

// AddCartItem 加入购物车（已有条目累加数量）
func (h *Handler) AddCartItem(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid cart request", err)
		return
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if err := sess.Cart.Add(req.ProductID, quantity); err != nil {
		if errors.Is(err, cart.ErrQuantityInvalid) {
			shared.RespondError(c, response.CodeBadRequest, "quantity must be positive", nil)
			return
		}
		shared.RespondError(c, response.CodeInternal, "add to cart failed", err)
		return
	}

	h.Sessions.SaveCartSnapshot(c.Request.Context(), sess)
	response.Success(c, gin.H{"count": sess.Cart.Len()})
}

// UpdateCartItem 修改条目数量（低于 1 收敛到 1）
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid cart request", err)
		return
	}
	sess.Cart.Update(req.ProductID, req.Quantity)

	h.Sessions.SaveCartSnapshot(c.Request.Context(), sess)
	response.Success(c, gin.H{"quantity": sess.Cart.Quantity(req.ProductID)})
}

// ToggleCartItem 商品卡上的加购/移除切换
func (h *Handler) ToggleCartItem(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid cart request", err)
		return
	}

	inCart := false
	if sess.Cart.Contains(req.ProductID) {
		sess.Cart.Remove(req.ProductID)
	} else {
		if err := sess.Cart.Add(req.ProductID, 1); err != nil {
			shared.RespondError(c, response.CodeBadRequest, "quantity must be positive", err)
			return
		}
		inCart = true
	}

	h.Sessions.SaveCartSnapshot(c.Request.Context(), sess)
	response.Success(c, gin.H{"in_cart": inCart, "count": sess.Cart.Len()})
}

// RemoveCartItem 删除条目
func (h *Handler) RemoveCartItem(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	sess.Cart.Remove(c.Param("product_id"))
	h.Sessions.SaveCartSnapshot(c.Request.Context(), sess)
	response.Success(c, gin.H{"count": sess.Cart.Len()})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	sess.Cart.Clear()
	h.Sessions.SaveCartSnapshot(c.Request.Context(), sess)
	response.Success(c, gin.H{"count": 0})
}
