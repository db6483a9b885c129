package service

import (
	"context"

	"github.com/restyle-next/internal/backend"
	"github.com/restyle-next/internal/models"
)

// AdminService 管理端服务
// 全部是对后端管理接口的薄转发，角色裁决在后端
type AdminService struct {
	client *backend.Client
}

// NewAdminService 创建管理端服务
func NewAdminService(client *backend.Client) *AdminService {
	return &AdminService{client: client}
}

// Stats 获取聚合统计
func (s *AdminService) Stats(ctx context.Context, cred backend.Credential) (*models.AdminStats, error) {
	if cred == "" {
		return nil, ErrNotSignedIn
	}
	return s.client.AdminStats(ctx, cred)
}

// ListUsers 获取用户列表
func (s *AdminService) ListUsers(ctx context.Context, cred backend.Credential) ([]models.Identity, error) {
	if cred == "" {
		return nil, ErrNotSignedIn
	}
	return s.client.AdminListUsers(ctx, cred)
}

// DeleteUser 删除用户
func (s *AdminService) DeleteUser(ctx context.Context, cred backend.Credential, userID string) error {
	if cred == "" {
		return ErrNotSignedIn
	}
	return s.client.AdminDeleteUser(ctx, cred, userID)
}

// ChangeUserRole 调整用户角色
func (s *AdminService) ChangeUserRole(ctx context.Context, cred backend.Credential, userID, role string) (*models.Identity, error) {
	if cred == "" {
		return nil, ErrNotSignedIn
	}
	return s.client.AdminChangeUserRole(ctx, cred, userID, role)
}
