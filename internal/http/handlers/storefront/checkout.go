package storefront

import (
	"errors"

	"github.com/restyle-next/internal/http/handlers/shared"
	"github.com/restyle-next/internal/http/response"
	"github.com/restyle-next/internal/service"

	"github.com/gin-gonic/gin"
)

// InitiateCheckout 发起结算交接
// 成功返回支付会话跳转地址，由前端完成跳转；
// 失败提示后购物车原样保留，用户重新发起，不自动重试
func (h *Handler) InitiateCheckout(c *gin.Context) {
	sess, ok := shared.CurrentSession(c)
	if !ok {
		return
	}

	url, err := h.CheckoutService.Initiate(c.Request.Context(), sess)
	if err != nil {
		if errors.Is(err, service.ErrCartEmpty) {
			shared.RespondError(c, response.CodeBadRequest, "cart is empty", nil)
			return
		}
		shared.RespondBackendError(c, err)
		return
	}
	response.Success(c, gin.H{"url": url})
}
