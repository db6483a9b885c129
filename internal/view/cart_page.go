package view

import (
	"github.com/restyle-next/internal/cart"
	"github.com/restyle-next/internal/models"

	"github.com/shopspring/decimal"
)

// CartLineView 购物车行视图
type CartLineView struct {
	ProductID string       `json:"product_id"`
	Name      string       `json:"name"`
	ImageURL  string       `json:"image_url"`
	UnitPrice models.Money `json:"unit_price"`
	Quantity  int          `json:"quantity"`
	Subtotal  models.Money `json:"subtotal"`
}

// CartPage 购物车页视图模型
type CartPage struct {
	Items []CartLineView `json:"items"`
	Total models.Money   `json:"total"`
	Empty bool           `json:"empty"`
}

// BuildCartPage 构建购物车页视图
// 目录中解析不到的条目不渲染也不计入合计（商品可能已下架）
func BuildCartPage(store *cart.Store, catalog cart.Catalog, placeholder string) CartPage {
	lines := store.Lines()
	items := make([]CartLineView, 0, len(lines))
	for _, line := range lines {
		product, ok := catalog[line.ProductID]
		if !ok {
			continue
		}
		subtotal := product.Price.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity)))
		imageURL := product.ImageURL
		if imageURL == "" {
			imageURL = placeholder
		}
		items = append(items, CartLineView{
			ProductID: line.ProductID,
			Name:      product.Name,
			ImageURL:  imageURL,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
			Subtotal:  models.NewMoneyFromDecimal(subtotal),
		})
	}
	return CartPage{
		Items: items,
		Total: store.Total(catalog),
		Empty: len(lines) == 0,
	}
}
