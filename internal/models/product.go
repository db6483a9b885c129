package models

import "time"

// SellerRef 商品归属卖家引用
type SellerRef struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// Comment 商品评论
type Comment struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Product 商品快照（后端返回后视为不可变）
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       Money     `json:"price"`
	Category    string    `json:"category"`
	Sizes       []string  `json:"sizes"`
	Colors      []string  `json:"colors"`
	Discount    int       `json:"discount"`
	Secondhand  bool      `json:"secondhand"`
	ImageURL    string    `json:"imageUrl"`
	Seller      SellerRef `json:"sellerId"`
	Comments    []Comment `json:"comments"`
	LikeCount   int       `json:"likes"`
}

// LikeState 商品点赞状态（服务端权威值的本地镜像）
type LikeState struct {
	Count int  `json:"count"`
	Liked bool `json:"liked"`
}
