package shared

import (
	"errors"

	"github.com/restyle-next/internal/backend"
	"github.com/restyle-next/internal/http/response"
	"github.com/restyle-next/internal/logger"
	"github.com/restyle-next/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, msg string, err error) {
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", code,
			"message", msg,
			"error", err,
		)
	}
	response.Error(c, code, msg)
}

// RespondBackendError 把后端错误按类别映射为响应，文案原样透传。
// 每次失败对该请求都是终态，不做任何自动重试。
func RespondBackendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotSignedIn):
		RespondError(c, response.CodeUnauthorized, "Please log in", nil)
		return
	case errors.Is(err, service.ErrCommentEmpty):
		RespondError(c, response.CodeBadRequest, "comment text is required", nil)
		return
	case errors.Is(err, service.ErrProductMissing):
		RespondError(c, response.CodeBadRequest, "product id is required", nil)
		return
	}

	msg := backend.MessageOf(err)
	switch backend.KindOf(err) {
	case backend.KindUnauthenticated:
		RespondError(c, response.CodeUnauthorized, msg, nil)
	case backend.KindNotFound:
		RespondError(c, response.CodeNotFound, msg, nil)
	case backend.KindValidationFailed:
		RespondError(c, response.CodeBadRequest, msg, nil)
	default:
		RespondError(c, response.CodeInternal, msg, err)
	}
}
