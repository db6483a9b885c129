package service

import (
	"context"
	"strings"

	"github.com/restyle-next/internal/backend"
	"github.com/restyle-next/internal/cart"
	"github.com/restyle-next/internal/models"
)

// CatalogService 商品目录服务
// 商品数据以每次拉取的快照为准，客户端不做本地缓存
type CatalogService struct {
	client *backend.Client
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(client *backend.Client) *CatalogService {
	return &CatalogService{client: client}
}

// List 拉取商品列表
func (s *CatalogService) List(ctx context.Context, cred backend.Credential) ([]models.Product, error) {
	return s.client.ListProducts(ctx, cred)
}

// Catalog 拉取商品列表并构建目录索引
func (s *CatalogService) Catalog(ctx context.Context, cred backend.Credential) (cart.Catalog, error) {
	products, err := s.client.ListProducts(ctx, cred)
	if err != nil {
		return nil, err
	}
	return cart.NewCatalog(products), nil
}

// Get 拉取商品详情
func (s *CatalogService) Get(ctx context.Context, cred backend.Credential, productID string) (*models.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, ErrProductMissing
	}
	return s.client.GetProduct(ctx, cred, productID)
}

// Create 创建商品（卖家入口，角色校验在后端）
func (s *CatalogService) Create(ctx context.Context, cred backend.Credential, input backend.ProductInput) (*models.Product, error) {
	if cred == "" {
		return nil, ErrNotSignedIn
	}
	return s.client.CreateProduct(ctx, cred, input)
}

// Update 更新商品
func (s *CatalogService) Update(ctx context.Context, cred backend.Credential, productID string, input backend.ProductInput) (*models.Product, error) {
	if cred == "" {
		return nil, ErrNotSignedIn
	}
	if strings.TrimSpace(productID) == "" {
		return nil, ErrProductMissing
	}
	return s.client.UpdateProduct(ctx, cred, productID, input)
}

// Delete 删除商品（卖家删除自己的，管理员走管理端接口）
func (s *CatalogService) Delete(ctx context.Context, cred backend.Credential, productID string, asAdmin bool) error {
	if cred == "" {
		return ErrNotSignedIn
	}
	if strings.TrimSpace(productID) == "" {
		return ErrProductMissing
	}
	if asAdmin {
		return s.client.AdminDeleteProduct(ctx, cred, productID)
	}
	return s.client.DeleteProduct(ctx, cred, productID)
}

// AddComment 发表评论，返回服务端权威评论列表
func (s *CatalogService) AddComment(ctx context.Context, cred backend.Credential, productID, text string) ([]models.Comment, error) {
	if cred == "" {
		return nil, ErrNotSignedIn
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrCommentEmpty
	}
	return s.client.AddComment(ctx, cred, productID, text)
}

// DeleteComment 删除评论，返回服务端权威评论列表
func (s *CatalogService) DeleteComment(ctx context.Context, cred backend.Credential, productID, commentID string) ([]models.Comment, error) {
	if cred == "" {
		return nil, ErrNotSignedIn
	}
	return s.client.DeleteComment(ctx, cred, productID, commentID)
}
