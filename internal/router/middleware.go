package router

import (
	"strconv"
	"strings"
	"time"

	"github.com/restyle-next/internal/config"
	"github.com/restyle-next/internal/http/handlers/shared"
	"github.com/restyle-next/internal/logger"
	"github.com/restyle-next/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = "request_id"
const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.L()
	}
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if requestID, ok := c.Get(requestIDKey); ok {
			if id, ok := requestID.(string); ok && id != "" {
				fields = append(fields, zap.String("request_id", id))
			}
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			log.Error("http_request", fields...)
			return
		}
		log.Info("http_request", fields...)
	}
}

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	methodsHeader := strings.Join(cfg.AllowedMethods, ", ")
	headersHeader := strings.Join(cfg.AllowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// SessionMiddleware 会话中间件
// 按令牌复用会话，缺失或失效时新建并重新下发令牌
func SessionMiddleware(c *provider.Container) gin.HandlerFunc {
	cookieName := c.Config.Session.CookieName
	return func(ctx *gin.Context) {
		sessionID := ""
		if raw, err := ctx.Cookie(cookieName); err == nil && raw != "" {
			parsed, err := c.Sessions.Tokens().Parse(raw)
			if err != nil {
				logger.Debugw("session_token_invalid", "error", err)
			} else {
				sessionID = parsed
			}
		}

		sess := c.Sessions.Attach(ctx.Request.Context(), sessionID)
		if sess.ID != sessionID {
			token, err := c.Sessions.Tokens().Issue(sess.ID)
			if err != nil {
				logger.Errorw("session_token_issue_failed", "error", err)
			} else {
				maxAge := c.Config.Session.ExpireHours * 3600
				ctx.SetCookie(cookieName, token, maxAge, "/", "", false, true)
			}
		}

		ctx.Set(shared.SessionContextKey, sess)
		ctx.Next()
	}
}
