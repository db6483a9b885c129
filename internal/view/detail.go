package view

import (
	"strings"
	"time"

	"github.com/restyle-next/internal/constants"
	"github.com/restyle-next/internal/models"
)

// CommentView 评论视图
type CommentView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	CanDelete bool      `json:"can_delete"`
}

// ProductDetail 商品详情视图模型
type ProductDetail struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Price          models.Money  `json:"price"`
	Sizes          []string      `json:"sizes,omitempty"`
	Colors         []string      `json:"colors,omitempty"`
	ImageURL       string        `json:"image_url"`
	SellerUsername string        `json:"seller_username"`
	Favorited      bool          `json:"favorited"`
	LikeCount      int           `json:"like_count"`
	Liked          bool          `json:"liked"`
	Comments       []CommentView `json:"comments"`
	CanComment     bool          `json:"can_comment"`
}

// DetailContext 详情页渲染上下文
type DetailContext struct {
	Identity    *models.Identity
	Favorited   bool
	Like        models.LikeState
	Placeholder string
}

// BuildProductDetail 构建商品详情视图
// 评论删除入口只对评论作者与管理员展示；后端才是权限裁决方
func BuildProductDetail(p models.Product, ctx DetailContext) ProductDetail {
	sellerUsername := strings.TrimSpace(p.Seller.Username)
	if sellerUsername == "" {
		sellerUsername = "Unknown"
	}

	imageURL := p.ImageURL
	if strings.TrimSpace(imageURL) == "" {
		imageURL = ctx.Placeholder
	}

	likeCount := p.LikeCount
	liked := false
	if ctx.Like.Count > 0 || ctx.Like.Liked {
		likeCount = ctx.Like.Count
		liked = ctx.Like.Liked
	}

	detail := ProductDetail{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Sizes:          p.Sizes,
		Colors:         p.Colors,
		ImageURL:       imageURL,
		SellerUsername: sellerUsername,
		Favorited:      ctx.Favorited,
		LikeCount:      likeCount,
		Liked:          liked,
		CanComment:     ctx.Identity != nil,
	}

	detail.Comments = make([]CommentView, 0, len(p.Comments))
	for _, c := range p.Comments {
		detail.Comments = append(detail.Comments, CommentView{
			ID:        c.ID,
			Username:  c.Username,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
			CanDelete: canDeleteComment(ctx.Identity, c),
		})
	}
	return detail
}

func canDeleteComment(identity *models.Identity, c models.Comment) bool {
	if identity == nil {
		return false
	}
	return identity.ID == c.UserID || identity.Role == constants.RoleAdmin
}
