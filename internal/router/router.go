package router

import (
	"github.com/restyle-next/internal/config"
	accounthandlers "github.com/restyle-next/internal/http/handlers/account"
	adminhandlers "github.com/restyle-next/internal/http/handlers/admin"
	storefronthandlers "github.com/restyle-next/internal/http/handlers/storefront"
	"github.com/restyle-next/internal/http/response"
	"github.com/restyle-next/internal/logger"
	"github.com/restyle-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.Z()
	r := gin.New()

	// 初始化 Handler（商城/账号/管理端分组）
	storefrontHandler := storefronthandlers.New(c)
	accountHandler := accounthandlers.New(c)
	adminHandler := adminhandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(SessionMiddleware(c))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 商品目录与详情
		apiV1.GET("/catalog", storefrontHandler.GetCatalog)
		apiV1.GET("/products/:id", storefrontHandler.GetProductDetail)

		// 商品管理（权限裁决在后端，前端只做可见性）
		apiV1.POST("/products", storefrontHandler.CreateProduct)
		apiV1.PATCH("/products/:id", storefrontHandler.UpdateProduct)
		apiV1.DELETE("/products/:id", storefrontHandler.DeleteProduct)

		// 互动
		apiV1.POST("/products/:id/favorite", storefrontHandler.ToggleFavorite)
		apiV1.POST("/products/:id/like", storefrontHandler.ToggleLike)
		apiV1.POST("/products/:id/comments", storefrontHandler.AddComment)
		apiV1.DELETE("/products/:id/comments/:comment_id", storefrontHandler.DeleteComment)

		// 购物车（会话内状态）
		cart := apiV1.Group("/cart")
		{
			cart.GET("", storefrontHandler.GetCart)
			cart.POST("/items", storefrontHandler.AddCartItem)
			cart.PATCH("/items", storefrontHandler.UpdateCartItem)
			cart.POST("/items/toggle", storefrontHandler.ToggleCartItem)
			cart.DELETE("/items/:product_id", storefrontHandler.RemoveCartItem)
			cart.DELETE("", storefrontHandler.ClearCart)
		}

		// 结算跳转
		apiV1.POST("/checkout", storefrontHandler.InitiateCheckout)

		// 账号
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", accountHandler.Login)
			auth.POST("/logout", accountHandler.SignOut)
		}
		apiV1.GET("/me", accountHandler.Me)
		apiV1.POST("/theme/toggle", accountHandler.ToggleTheme)
		apiV1.GET("/profile", accountHandler.GetProfile)
		apiV1.PATCH("/profile", accountHandler.UpdateProfile)
		apiV1.DELETE("/account", accountHandler.DeleteAccount)

		// 管理端
		admin := apiV1.Group("/admin")
		{
			admin.GET("/dashboard", adminHandler.GetDashboard)
			admin.PATCH("/users/:id/role", adminHandler.ChangeUserRole)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
		}
	}

	// 健康检查
	r.GET("/healthz", func(ctx *gin.Context) {
		response.Success(ctx, gin.H{"status": "ok"})
	})

	r.NoRoute(func(ctx *gin.Context) {
		response.Error(ctx, response.CodeNotFound, "route not found")
	})

	return r
}
