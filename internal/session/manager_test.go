package session

import (
	"context"
	"testing"

	"github.com/restyle-next/internal/backend"
	"github.com/restyle-next/internal/constants"
	"github.com/restyle-next/internal/models"
)

// stubRemote 互动远端空实现
type stubRemote struct{}

func (stubRemote) ToggleFavorite(ctx context.Context, cred backend.Credential, productID string) (bool, error) {
	return true, nil
}

func (stubRemote) ListFavorites(ctx context.Context, cred backend.Credential) ([]string, error) {
	return nil, nil
}

func (stubRemote) ToggleLike(ctx context.Context, cred backend.Credential, productID string) (models.LikeState, error) {
	return models.LikeState{}, nil
}

func newTestManager() *Manager {
	return NewManager(stubRemote{}, NewTokenIssuer("test-secret-0123456789-0123456789", 24))
}

func TestCreateSessionDefaults(t *testing.T) {
	manager := newTestManager()
	sess := manager.Create()

	if sess.ID == "" {
		t.Fatalf("session id must be assigned")
	}
	if sess.Theme() != constants.ThemeLight {
		t.Fatalf("new session theme want light got %s", sess.Theme())
	}
	if sess.Identity() != nil {
		t.Fatalf("new session must be anonymous")
	}
	if sess.Cart.Len() != 0 {
		t.Fatalf("new session cart must be empty")
	}
}

func TestAttachReusesLiveSession(t *testing.T) {
	manager := newTestManager()
	created := manager.Create()
	if err := created.Cart.Add("p1", 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	attached := manager.Attach(context.Background(), created.ID)
	if attached.ID != created.ID {
		t.Fatalf("attach should reuse live session")
	}
	if attached.Cart.Quantity("p1") != 2 {
		t.Fatalf("reused session must keep cart content")
	}
}

func TestAttachUnknownIDCreatesFresh(t *testing.T) {
	manager := newTestManager()

	sess := manager.Attach(context.Background(), "gone")
	if sess.ID == "gone" || sess.ID == "" {
		t.Fatalf("unknown id should yield a fresh session, got %q", sess.ID)
	}
	if sess.Cart.Len() != 0 {
		t.Fatalf("fresh session cart must be empty")
	}
}

func TestSignOutClearsIdentityScopedState(t *testing.T) {
	manager := newTestManager()
	sess := manager.Create()

	sess.LogIn(&models.Identity{ID: "u1", Username: "ada", Role: "seller"}, "cred")
	if err := sess.Cart.Add("p1", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := sess.Interactions.ToggleFavorite(context.Background(), sess.Credential(), "p1"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	sess.ToggleTheme()

	sess.SignOut()
	if sess.Identity() != nil {
		t.Fatalf("sign out must clear identity")
	}
	if sess.Credential() != "" {
		t.Fatalf("sign out must clear credential")
	}
	if sess.Cart.Len() != 0 {
		t.Fatalf("sign out must clear cart")
	}
	if sess.Interactions.Favorite("p1") {
		t.Fatalf("sign out must clear interaction mirrors")
	}
	// 主题是会话偏好，不随登出重置
	if sess.Theme() != constants.ThemeDark {
		t.Fatalf("theme must survive sign out, got %s", sess.Theme())
	}
}

func TestDestroyRemovesSession(t *testing.T) {
	manager := newTestManager()
	sess := manager.Create()

	manager.Destroy(context.Background(), sess.ID)
	if _, ok := manager.Get(sess.ID); ok {
		t.Fatalf("destroyed session must not be reachable")
	}
}

func TestRoleAndThemeHelpers(t *testing.T) {
	manager := newTestManager()
	sess := manager.Create()

	if sess.Role() != "" {
		t.Fatalf("anonymous role want empty got %q", sess.Role())
	}
	sess.LogIn(&models.Identity{ID: "u1", Role: "admin"}, "cred")
	if sess.Role() != "admin" {
		t.Fatalf("role want admin got %q", sess.Role())
	}

	if got := sess.ToggleTheme(); got != constants.ThemeDark {
		t.Fatalf("first toggle want dark got %s", got)
	}
	if got := sess.ToggleTheme(); got != constants.ThemeLight {
		t.Fatalf("second toggle want light got %s", got)
	}
}
