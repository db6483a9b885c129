package interaction

import (
	"context"
	"errors"
	"testing"

	"github.com/restyle-next/internal/backend"
	"github.com/restyle-next/internal/models"
)

// fakeRemote 可编排的远端替身
type fakeRemote struct {
	toggleFavoriteFn func(productID string) (bool, error)
	listFavoritesFn  func() ([]string, error)
	toggleLikeFn     func(productID string) (models.LikeState, error)
	toggleCalls      int
}

func (f *fakeRemote) ToggleFavorite(ctx context.Context, cred backend.Credential, productID string) (bool, error) {
	f.toggleCalls++
	if f.toggleFavoriteFn == nil {
		return false, errors.New("not configured")
	}
	return f.toggleFavoriteFn(productID)
}

func (f *fakeRemote) ListFavorites(ctx context.Context, cred backend.Credential) ([]string, error) {
	if f.listFavoritesFn == nil {
		return nil, errors.New("not configured")
	}
	return f.listFavoritesFn()
}

func (f *fakeRemote) ToggleLike(ctx context.Context, cred backend.Credential, productID string) (models.LikeState, error) {
	if f.toggleLikeFn == nil {
		return models.LikeState{}, errors.New("not configured")
	}
	return f.toggleLikeFn(productID)
}

func TestToggleFavoriteConfirmed(t *testing.T) {
	remote := &fakeRemote{
		toggleFavoriteFn: func(string) (bool, error) { return true, nil },
	}
	store := NewStore(remote)

	favorited, err := store.ToggleFavorite(context.Background(), "cred", "p1")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !favorited {
		t.Fatalf("toggle want favorited=true")
	}
	if got := store.FavoriteStatus("p1"); got != StatusConfirmed {
		t.Fatalf("status want %s got %s", StatusConfirmed, got)
	}
	if !store.Favorite("p1") {
		t.Fatalf("favorite mirror want true")
	}
	if got := store.FavoriteCount(); got != 1 {
		t.Fatalf("favorite count want 1 got %d", got)
	}
}

func TestToggleFavoriteRollsBackOnError(t *testing.T) {
	remote := &fakeRemote{
		toggleFavoriteFn: func(string) (bool, error) {
			return false, backend.WrapError(backend.KindNetworkOrServer, 500, "boom", nil)
		},
	}
	store := NewStore(remote)

	favorited, err := store.ToggleFavorite(context.Background(), "cred", "p1")
	if err == nil {
		t.Fatalf("toggle should propagate remote error")
	}
	if favorited {
		t.Fatalf("rollback must return pre-toggle value false")
	}
	if got := store.FavoriteStatus("p1"); got != StatusRolledBack {
		t.Fatalf("status want %s got %s", StatusRolledBack, got)
	}
	if store.Favorite("p1") {
		t.Fatalf("rolled back mirror must equal pre-toggle value")
	}
}

func TestToggleFavoriteNotifiesOptimisticThenRollback(t *testing.T) {
	remote := &fakeRemote{
		toggleFavoriteFn: func(string) (bool, error) {
			return false, errors.New("network down")
		},
	}
	store := NewStore(remote)

	var seen []bool
	store.Subscribe(func(productID string, favorited bool) {
		if productID == "p1" {
			seen = append(seen, favorited)
		}
	})

	if _, err := store.ToggleFavorite(context.Background(), "cred", "p1"); err == nil {
		t.Fatalf("toggle should fail")
	}
	if len(seen) != 2 {
		t.Fatalf("want optimistic + rollback notifications, got %d", len(seen))
	}
	if !seen[0] || seen[1] {
		t.Fatalf("notification order want [true false] got %v", seen)
	}
}

func TestToggleFavoriteConvergesToServerValue(t *testing.T) {
	// 并发切换交错时服务端确认值可能与本地乐观值不同，以服务端为准
	remote := &fakeRemote{
		toggleFavoriteFn: func(string) (bool, error) { return false, nil },
	}
	store := NewStore(remote)

	favorited, err := store.ToggleFavorite(context.Background(), "cred", "p1")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if favorited {
		t.Fatalf("server said false, mirror must converge to false")
	}
	if store.Favorite("p1") {
		t.Fatalf("mirror want false after server response")
	}
	if got := store.FavoriteStatus("p1"); got != StatusConfirmed {
		t.Fatalf("status want %s got %s", StatusConfirmed, got)
	}
}

func TestToggleFavoriteRequiresCredential(t *testing.T) {
	remote := &fakeRemote{
		toggleFavoriteFn: func(string) (bool, error) { return true, nil },
	}
	store := NewStore(remote)

	_, err := store.ToggleFavorite(context.Background(), "", "p1")
	if !backend.IsUnauthenticated(err) {
		t.Fatalf("anonymous toggle want unauthenticated error, got %v", err)
	}
	if remote.toggleCalls != 0 {
		t.Fatalf("anonymous toggle must not reach remote")
	}
	if got := store.FavoriteStatus("p1"); got != StatusUnknown {
		t.Fatalf("local state must stay untouched, got %s", got)
	}
}

func TestToggleLikeUsesServerState(t *testing.T) {
	remote := &fakeRemote{
		toggleLikeFn: func(string) (models.LikeState, error) {
			return models.LikeState{Count: 12, Liked: true}, nil
		},
	}
	store := NewStore(remote)

	state, err := store.ToggleLike(context.Background(), "cred", "p1")
	if err != nil {
		t.Fatalf("toggle like failed: %v", err)
	}
	if state.Count != 12 || !state.Liked {
		t.Fatalf("like state want {12 true} got %+v", state)
	}
	if got := store.Like("p1"); got != state {
		t.Fatalf("like mirror want %+v got %+v", state, got)
	}
}

func TestToggleLikeErrorLeavesMirrorUntouched(t *testing.T) {
	remote := &fakeRemote{
		toggleLikeFn: func(string) (models.LikeState, error) {
			return models.LikeState{}, errors.New("server error")
		},
	}
	store := NewStore(remote)

	if _, err := store.ToggleLike(context.Background(), "cred", "p1"); err == nil {
		t.Fatalf("toggle like should fail")
	}
	if got := store.Like("p1"); got != (models.LikeState{}) {
		t.Fatalf("failed like must not write mirror, got %+v", got)
	}

	if _, err := store.ToggleLike(context.Background(), "", "p1"); !backend.IsUnauthenticated(err) {
		t.Fatalf("anonymous like want unauthenticated error, got %v", err)
	}
}

func TestSeedFavorites(t *testing.T) {
	remote := &fakeRemote{
		listFavoritesFn: func() ([]string, error) { return []string{"p1", "", "p2"}, nil },
	}
	store := NewStore(remote)

	if err := store.SeedFavorites(context.Background(), "cred"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if !store.Favorite("p1") || !store.Favorite("p2") {
		t.Fatalf("seeded products must be favorited")
	}
	if got := store.FavoriteStatus("p1"); got != StatusConfirmed {
		t.Fatalf("seeded status want %s got %s", StatusConfirmed, got)
	}
	if got := store.FavoriteCount(); got != 2 {
		t.Fatalf("favorite count want 2 got %d", got)
	}
}

func TestResetClearsMirrors(t *testing.T) {
	remote := &fakeRemote{
		toggleFavoriteFn: func(string) (bool, error) { return true, nil },
		toggleLikeFn: func(string) (models.LikeState, error) {
			return models.LikeState{Count: 1, Liked: true}, nil
		},
	}
	store := NewStore(remote)

	if _, err := store.ToggleFavorite(context.Background(), "cred", "p1"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if _, err := store.ToggleLike(context.Background(), "cred", "p1"); err != nil {
		t.Fatalf("like failed: %v", err)
	}

	store.Reset()
	if store.Favorite("p1") {
		t.Fatalf("reset must drop favorite mirror")
	}
	if got := store.FavoriteStatus("p1"); got != StatusUnknown {
		t.Fatalf("reset status want %s got %s", StatusUnknown, got)
	}
	if got := store.Like("p1"); got != (models.LikeState{}) {
		t.Fatalf("reset must drop like mirror, got %+v", got)
	}
}
