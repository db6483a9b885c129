package service

import "errors"

// 服务层错误（后端错误直接透传 backend.Error，不在这里重包）
var (
	ErrCartEmpty      = errors.New("cart is empty")
	ErrNotSignedIn    = errors.New("sign in required")
	ErrCommentEmpty   = errors.New("comment text is empty")
	ErrProductMissing = errors.New("product id is required")
)
