package service

import (
	"context"

	"github.com/restyle-next/internal/backend"
	"github.com/restyle-next/internal/logger"
	"github.com/restyle-next/internal/models"
	"github.com/restyle-next/internal/session"
	"github.com/restyle-next/internal/view"
)

// AccountService 账号服务
// 把后端认证接口与本地会话生命周期串起来
type AccountService struct {
	client  *backend.Client
	manager *session.Manager
}

// NewAccountService 创建账号服务
func NewAccountService(client *backend.Client, manager *session.Manager) *AccountService {
	return &AccountService{client: client, manager: manager}
}

// LogIn 登录：换取后端凭证、写入会话、播种收藏集合
func (s *AccountService) LogIn(ctx context.Context, sess *session.Session, email, password string) (*models.Identity, error) {
	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	sess.LogIn(result.Identity, result.Token)

	// 收藏播种失败不阻断登录，卡片挂载时仍可单独拉取
	if err := sess.Interactions.SeedFavorites(ctx, result.Token); err != nil {
		logger.Warnw("favorite_seed_failed", "session_id", sess.ID, "error", err)
	}
	return result.Identity, nil
}

// SignOut 登出：后端登出尽力而为，本地会话必定销毁
func (s *AccountService) SignOut(ctx context.Context, sess *session.Session) {
	if cred := sess.Credential(); cred != "" {
		if err := s.client.Logout(ctx, cred); err != nil {
			logger.Warnw("backend_logout_failed", "session_id", sess.ID, "error", err)
		}
	}
	sess.SignOut()
	s.manager.Destroy(ctx, sess.ID)
}

// RefreshIdentity 以后端为准刷新身份
// 凭证失效时清掉本地身份，视为未登录
func (s *AccountService) RefreshIdentity(ctx context.Context, sess *session.Session) (*models.Identity, error) {
	cred := sess.Credential()
	if cred == "" {
		return nil, nil
	}
	identity, err := s.client.Me(ctx, cred)
	if err != nil {
		if backend.IsUnauthenticated(err) {
			sess.SignOut()
			return nil, nil
		}
		return nil, err
	}
	sess.LogIn(identity, cred)
	return identity, nil
}

// UpdateProfile 校验并提交资料更新
// 校验失败作为 ValidationFailed 返回，表单内容由调用方保留
func (s *AccountService) UpdateProfile(ctx context.Context, sess *session.Session, form view.ProfileUpdateForm) (*models.Identity, string, error) {
	identity := sess.Identity()
	cred := sess.Credential()
	if identity == nil || cred == "" {
		return nil, "", ErrNotSignedIn
	}

	input, err := view.ValidateProfileUpdate(*identity, form)
	if err != nil {
		return nil, "", backend.WrapError(backend.KindValidationFailed, 0, err.Error(), nil)
	}

	result, err := s.client.UpdateProfile(ctx, cred, input)
	if err != nil {
		return nil, "", err
	}

	// 后端可能轮换凭证，新 token 立即生效
	nextCred := cred
	if result.Token != "" {
		nextCred = result.Token
	}
	if result.Identity != nil {
		sess.LogIn(result.Identity, nextCred)
	}
	message := result.Message
	if message == "" {
		message = "Profile updated successfully."
	}
	return result.Identity, message, nil
}

// DeleteAccount 注销账号并销毁本地会话
func (s *AccountService) DeleteAccount(ctx context.Context, sess *session.Session) error {
	cred := sess.Credential()
	if cred == "" {
		return ErrNotSignedIn
	}
	if err := s.client.DeleteAccount(ctx, cred); err != nil {
		return err
	}
	sess.SignOut()
	s.manager.Destroy(ctx, sess.ID)
	return nil
}
