package service

import (
	"context"

	"github.com/restyle-next/internal/backend"
	"github.com/restyle-next/internal/logger"
	"github.com/restyle-next/internal/session"
)

// CheckoutService 结算交接服务
// 只负责把当前购物车内容交给支付会话协作方并拿回跳转地址；
// 失败不重试，购物车原样保留，由用户重新发起
type CheckoutService struct {
	client *backend.Client
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(client *backend.Client) *CheckoutService {
	return &CheckoutService{client: client}
}

// Initiate 创建支付会话，返回跳转地址
func (s *CheckoutService) Initiate(ctx context.Context, sess *session.Session) (string, error) {
	lines := sess.Cart.Lines()
	if len(lines) == 0 {
		return "", ErrCartEmpty
	}

	items := make([]backend.CheckoutItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, backend.CheckoutItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	url, err := s.client.CreateCheckoutSession(ctx, sess.Credential(), items)
	if err != nil {
		logger.Warnw("checkout_session_failed", "session_id", sess.ID, "error", err)
		return "", err
	}
	logger.Infow("checkout_session_created", "session_id", sess.ID, "items", len(items))
	return url, nil
}
