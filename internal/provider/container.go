package provider

import (
	"time"

	"github.com/restyle-next/internal/authz"
	"github.com/restyle-next/internal/backend"
	"github.com/restyle-next/internal/cache"
	"github.com/restyle-next/internal/config"
	"github.com/restyle-next/internal/logger"
	"github.com/restyle-next/internal/service"
	"github.com/restyle-next/internal/session"
)

// Container 依赖注入容器
type Container struct {
	Config   *config.Config
	Backend  *backend.Client
	Sessions *session.Manager

	Visibility *authz.Service

	CatalogService  *service.CatalogService
	AccountService  *service.AccountService
	CheckoutService *service.CheckoutService
	AdminService    *service.AdminService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化购物车快照存储（可选协作方）
	if err := cache.InitRedis(&cfg.Snapshot); err != nil {
		logger.Warnw("provider_init_snapshot_failed", "error", err)
	}

	client := backend.NewClient(backend.Options{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: time.Duration(cfg.Backend.TimeoutMS) * time.Millisecond,
	})

	tokens := session.NewTokenIssuer(cfg.Session.SecretKey, cfg.Session.ExpireHours)
	sessions := session.NewManager(client, tokens)

	visibility, err := authz.NewService()
	if err != nil {
		logger.Errorw("provider_init_visibility_failed", "error", err)
		panic(err)
	}

	c := &Container{
		Config:     cfg,
		Backend:    client,
		Sessions:   sessions,
		Visibility: visibility,
	}

	c.CatalogService = service.NewCatalogService(client)
	c.AccountService = service.NewAccountService(client, sessions)
	c.CheckoutService = service.NewCheckoutService(client)
	c.AdminService = service.NewAdminService(client)

	return c
}
