package storefront

import (
	"github.com/restyle-next/internal/http/handlers/shared"
	"github.com/restyle-next/internal/http/response"
	"github.com/restyle-next/internal/session"
	"github.com/restyle-next/internal/view"

	"github.com/gin-gonic/gin"
)

// GetCatalog 商品目录页
func (h *Handler) GetCatalog(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	products, err := h.CatalogService.List(c.Request.Context(), sess.Credential())
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

	response.Success(c, gin.H{
		"navbar":   h.buildNavbar(sess),
		"products": cards,
	})
}

// GetProductDetail 商品详情页
// 商品不存在时作为页面级终态提示返回
func (h *Handler) GetProductDetail(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	productID := c.Param("id")
	product, err := h.CatalogService.Get(c.Request.Context(), sess.Credential(), productID)
	if err != nil {
		shared.RespondBackendError(c, err)
		return
	}

	detail := view.BuildProductDetail(*product, view.DetailContext{
		Identity:    sess.Identity(),
		Favorited:   sess.Interactions.Favorite(product.ID),
		Like:        sess.Interactions.Like(product.ID),
		Placeholder: h.Config.Backend.PlaceholderImage,
	})

	response.Success(c, gin.H{
		"navbar": h.buildNavbar(sess),
		"detail": detail,
	})
}

func (h *Handler) buildNavbar(sess *session.Session) view.Navbar {
	return view.BuildNavbar(view.NavbarContext{
		Identity:       sess.Identity(),
		Theme:          sess.Theme(),
		CartCount:      sess.Cart.Len(),
		FavoritesCount: sess.Interactions.FavoriteCount(),
		Visibility:     h.Visibility,
	})
}
