package session

import (
	"context"
	"sync"
	"time"

	"github.com/restyle-next/internal/backend"
	"github.com/restyle-next/internal/cache"
	"github.com/restyle-next/internal/cart"
	"github.com/restyle-next/internal/constants"
	"github.com/restyle-next/internal/interaction"
	"github.com/restyle-next/internal/logger"
	"github.com/restyle-next/internal/models"

	"github.com/google/uuid"
)

// Session 单个浏览会话的全部展示层状态
// 会话开始时创建，登出时销毁；身份、购物车、互动镜像都挂在这里，
// 进程内不存在跨会话的全局可变状态
type Session struct {
	ID string

	mu         sync.Mutex
	identity   *models.Identity
	credential backend.Credential
	theme      string

	Cart         *cart.Store
	Interactions *interaction.Store

	CreatedAt time.Time
}

// Identity 返回当前身份（未登录为 nil）
func (s *Session) Identity() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Credential 返回后端凭证（未登录为空）
func (s *Session) Credential() backend.Credential {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential
}

// Role 返回当前角色（未登录为空串）
func (s *Session) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return ""
	}
	return s.identity.Role
}

// Theme 返回主题偏好
func (s *Session) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ToggleTheme 切换明暗主题并返回新值
func (s *Session) ToggleTheme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theme == constants.ThemeDark {
		s.theme = constants.ThemeLight
	} else {
		s.theme = constants.ThemeDark
	}
	return s.theme
}

// LogIn 写入登录身份与后端凭证
func (s *Session) LogIn(identity *models.Identity, cred backend.Credential) {
	s.mu.Lock()
	s.identity = identity
	s.credential = cred
	s.mu.Unlock()
}

// SignOut 清除身份作用域状态：身份、凭证、购物车、互动镜像
func (s *Session) SignOut() {
	s.mu.Lock()
	s.identity = nil
	s.credential = ""
	s.mu.Unlock()
	s.Cart.Clear()
	s.Interactions.Reset()
}

// Manager 会话管理器
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	remote   interaction.Remote
	tokens   *TokenIssuer
}

// NewManager 创建会话管理器
func NewManager(remote interaction.Remote, tokens *TokenIssuer) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		remote:   remote,
		tokens:   tokens,
	}
}

// Tokens 返回令牌签发器
func (m *Manager) Tokens() *TokenIssuer {
	return m.tokens
}

// Create 创建新会话（购物车为空、主题为亮色）
func (m *Manager) Create() *Session {
	session := &Session{
		ID:           uuid.NewString(),
		theme:        constants.ThemeLight,
		Cart:         cart.NewStore(),
		Interactions: interaction.NewStore(m.remote),
		CreatedAt:    time.Now(),
	}
	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()
	logger.Debugw("session_created", "session_id", session.ID)
	return session
}

// Get 按 id 查找会话
func (m *Manager) Get(sessionID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[sessionID]
	return session, ok
}

// Attach 按 id 复用会话；不存在时新建并尝试恢复购物车快照
// （页面刷新后进程内会话还在则直接命中，进程重启靠快照协作方兜底）
func (m *Manager) Attach(ctx context.Context, sessionID string) *Session {
	if sessionID != "" {
		if session, ok := m.Get(sessionID); ok {
			return session
		}
	}
	session := m.Create()
	if sessionID != "" && cache.Enabled() {
		var lines []cart.Line
		found, err := cache.GetJSON(ctx, snapshotKey(sessionID), &lines)
		if err != nil {
			logger.Warnw("cart_snapshot_restore_failed", "session_id", sessionID, "error", err)
		} else if found {
			session.Cart.Restore(lines)
			logger.Infow("cart_snapshot_restored", "session_id", sessionID, "lines", len(lines))
		}
	}
	return session
}

// Destroy 销毁会话并删除其快照
func (m *Manager) Destroy(ctx context.Context, sessionID string) {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
	if err := cache.Del(ctx, snapshotKey(sessionID)); err != nil {
		logger.Warnw("cart_snapshot_delete_failed", "session_id", sessionID, "error", err)
	}
	logger.Debugw("session_destroyed", "session_id", sessionID)
}

// SaveCartSnapshot 购物车变更后落一份快照（协作方未启用时为空操作）
func (m *Manager) SaveCartSnapshot(ctx context.Context, session *Session) {
	if session == nil || !cache.Enabled() {
		return
	}
	if err := cache.SetJSON(ctx, snapshotKey(session.ID), session.Cart.Lines()); err != nil {
		logger.Warnw("cart_snapshot_save_failed", "session_id", session.ID, "error", err)
	}
}

func snapshotKey(sessionID string) string {
	return "cart:" + sessionID
}
