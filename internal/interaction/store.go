package interaction

import (
	"context"
	"sync"

	"github.com/restyle-next/internal/backend"
	"github.com/restyle-next/internal/logger"
	"github.com/restyle-next/internal/models"
)

// 收藏状态机：Unknown → Optimistic → Confirmed / RolledBack
// 后续的再次切换从 Confirmed 重新开始循环
const (
	StatusUnknown    = "unknown"
	StatusOptimistic = "optimistic"
	StatusConfirmed  = "confirmed"
	StatusRolledBack = "rolled_back"
)

// ErrUnauthenticated 未登录时的互动操作一律拒绝，本地状态不动
var ErrUnauthenticated = backend.WrapError(backend.KindUnauthenticated, 0, "Please log in", nil)

// Remote 互动远端协作方（由 backend.Client 实现）
type Remote interface {
	ToggleFavorite(ctx context.Context, cred backend.Credential, productID string) (bool, error)
	ListFavorites(ctx context.Context, cred backend.Credential) ([]string, error)
	ToggleLike(ctx context.Context, cred backend.Credential, productID string) (models.LikeState, error)
}

// Subscriber 收藏值变更订阅（乐观值与回滚值都会通知，例如列表页联动）
type Subscriber func(productID string, favorited bool)

// favoriteEntry 单个商品的收藏镜像
type favoriteEntry struct {
	status string
	value  bool
}

// Store 收藏/点赞互动层
// 本地只保存服务端真相的乐观镜像；每次响应都以服务端值收敛，
// 两次快速切换交错时采用后到响应生效（见设计说明）
type Store struct {
	mu          sync.Mutex
	remote      Remote
	favorites   map[string]*favoriteEntry
	likes       map[string]models.LikeState
	subscribers []Subscriber
}

// NewStore 创建互动层
func NewStore(remote Remote) *Store {
	return &Store{
		remote:    remote,
		favorites: make(map[string]*favoriteEntry),
		likes:     make(map[string]models.LikeState),
	}
}

// Subscribe 注册收藏值变更订阅
func (s *Store) Subscribe(fn Subscriber) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify(productID string, favorited bool) {
	s.mu.Lock()
	subscribers := make([]Subscriber, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()
	for _, fn := range subscribers {
		fn(productID, favorited)
	}
}

// ToggleFavorite 切换收藏
// 先乐观翻转本地值并通知订阅者，再请求远端：
// 成功则收敛到服务端确认值（并发场景下可能与乐观值不同），
// 失败则回滚到切换前的值并再次通知，界面不会停留在未确认状态
func (s *Store) ToggleFavorite(ctx context.Context, cred backend.Credential, productID string) (bool, error) {
	if cred == "" {
		return false, ErrUnauthenticated
	}

	s.mu.Lock()
	previous := false
	if entry, ok := s.favorites[productID]; ok {
		previous = entry.value
	}
	optimistic := !previous
	s.favorites[productID] = &favoriteEntry{status: StatusOptimistic, value: optimistic}
	s.mu.Unlock()

	s.notify(productID, optimistic)

	confirmed, err := s.remote.ToggleFavorite(ctx, cred, productID)
	if err != nil {
		s.mu.Lock()
		s.favorites[productID] = &favoriteEntry{status: StatusRolledBack, value: previous}
		s.mu.Unlock()
		s.notify(productID, previous)
		logger.Warnw("favorite_rolled_back", "product_id", productID, "error", err)
		return previous, err
	}

	s.mu.Lock()
	s.favorites[productID] = &favoriteEntry{status: StatusConfirmed, value: confirmed}
	s.mu.Unlock()
	if confirmed != optimistic {
		s.notify(productID, confirmed)
	}
	return confirmed, nil
}

// ToggleLike 切换点赞
// 不做乐观猜测：并发点赞下计数增量在本地不可知，
// 成功后直接写入服务端返回的权威 (count, liked)
func (s *Store) ToggleLike(ctx context.Context, cred backend.Credential, productID string) (models.LikeState, error) {
	if cred == "" {
		return models.LikeState{}, ErrUnauthenticated
	}
	state, err := s.remote.ToggleLike(ctx, cred, productID)
	if err != nil {
		return models.LikeState{}, err
	}
	s.mu.Lock()
	s.likes[productID] = state
	s.mu.Unlock()
	return state, nil
}

// SeedFavorites 登录态就绪后拉取收藏集合，为商品卡挂载时的收藏标记种子
func (s *Store) SeedFavorites(ctx context.Context, cred backend.Credential) error {
	if cred == "" {
		return ErrUnauthenticated
	}
	ids, err := s.remote.ListFavorites(ctx, cred)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if id == "" {
			continue
		}
		s.favorites[id] = &favoriteEntry{status: StatusConfirmed, value: true}
	}
	return nil
}

// Favorite 返回商品当前收藏标记（未知商品为 false）
func (s *Store) Favorite(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.favorites[productID]; ok {
		return entry.value
	}
	return false
}

// FavoriteStatus 返回商品当前状态机位置
func (s *Store) FavoriteStatus(productID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.favorites[productID]; ok {
		return entry.status
	}
	return StatusUnknown
}

// FavoriteCount 返回当前标记为收藏的商品数（导航栏计数）
func (s *Store) FavoriteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, entry := range s.favorites {
		if entry.value {
			count++
		}
	}
	return count
}

// Like 返回商品点赞镜像（未知商品为零值）
func (s *Store) Like(productID string) models.LikeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.likes[productID]
}

// Reset 清空互动镜像（身份作用域状态，登出时调用）
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = make(map[string]*favoriteEntry)
	s.likes = make(map[string]models.LikeState)
}
