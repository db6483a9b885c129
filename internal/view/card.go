package view

import (
	"strconv"
	"strings"

	"github.com/restyle-next/internal/authz"
	"github.com/restyle-next/internal/constants"
	"github.com/restyle-next/internal/models"
)

const cardThumbnailTransform = "/upload/w_400,h_192,c_fill/"

// ProductCard 商品卡视图模型
type ProductCard struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Category      string       `json:"category"`
	Sizes         []string     `json:"sizes,omitempty"`
	Colors        []string     `json:"colors,omitempty"`
	Price         models.Money `json:"price"`
	ImageURL      string       `json:"image_url"`
	DiscountBadge string       `json:"discount_badge,omitempty"`
	Secondhand    bool         `json:"secondhand"`
	Favorited     bool         `json:"favorited"`
	LikeCount     int          `json:"like_count"`
	InCart        bool         `json:"in_cart"`
	ShowDelete    bool         `json:"show_delete"`
}

// CardContext 商品卡渲染上下文
type CardContext struct {
	Role        string
	Visibility  *authz.Service
	Favorited   func(productID string) bool
	InCart      func(productID string) bool
	Placeholder string
}

// BuildProductCard 构建商品卡视图
func BuildProductCard(p models.Product, ctx CardContext) ProductCard {
	card := ProductCard{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		Sizes:      p.Sizes,
		Colors:     p.Colors,
		Price:      p.Price,
		ImageURL:   ThumbnailURL(p.ImageURL, ctx.Placeholder),
		Secondhand: p.Secondhand,
		LikeCount:  p.LikeCount,
	}
	if p.Discount > 0 {
		card.DiscountBadge = discountBadge(p.Discount)
	}
	if ctx.Favorited != nil {
		card.Favorited = ctx.Favorited(p.ID)
	}
	if ctx.InCart != nil {
		card.InCart = ctx.InCart(p.ID)
	}
	if ctx.Visibility != nil {
		card.ShowDelete = ctx.Visibility.CanSee(ctx.Role, constants.AffordanceProductDelete)
	}
	return card
}

// BuildProductCards 构建商品卡列表
func BuildProductCards(products []models.Product, ctx CardContext) []ProductCard {
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, BuildProductCard(p, ctx))
	}
	return cards
}

// ThumbnailURL 商品卡缩略图地址
// 图床地址做裁剪变换，无图时回退占位图
func ThumbnailURL(imageURL, placeholder string) string {
	if strings.TrimSpace(imageURL) == "" {
		return placeholder
	}
	return strings.Replace(imageURL, "/upload/", cardThumbnailTransform, 1)
}

func discountBadge(discount int) string {
	return strconv.Itoa(discount) + "% OFF"
}
