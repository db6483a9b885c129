package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/restyle-next/internal/backend"
	"github.com/restyle-next/internal/models"
	"github.com/restyle-next/internal/session"
	"github.com/restyle-next/internal/view"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) (*backend.Client, func()) {
	t.Helper()
	server := httptest.NewServer(handler)
	client := backend.NewClient(backend.Options{BaseURL: server.URL})
	return client, server.Close
}

func newTestSession(client *backend.Client) (*session.Manager, *session.Session) {
	manager := session.NewManager(client, session.NewTokenIssuer("test-secret-0123456789-0123456789", 24))
	return manager, manager.Create()
}

func identityFixture() *models.Identity {
	return &models.Identity{ID: "u1", Username: "ada", Email: "ada@example.com", Role: "buyer"}
}

func TestLogInStoresIdentityAndSeedsFavorites(t *testing.T) {
	client, closeFn := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"user":  map[string]string{"_id": "u1", "username": "ada", "role": "seller"},
				"token": "issued-token",
			})
		case "/api/product-actions/favorites":
			json.NewEncoder(w).Encode(map[string]interface{}{"favorites": []string{"p1"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	defer closeFn()

	manager, sess := newTestSession(client)
	svc := NewAccountService(client, manager)

	identity, err := svc.LogIn(context.Background(), sess, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if identity.Username != "ada" {
		t.Fatalf("identity want ada got %+v", identity)
	}
	if sess.Credential() != "issued-token" {
		t.Fatalf("session credential want issued-token got %s", sess.Credential())
	}
	if !sess.Interactions.Favorite("p1") {
		t.Fatalf("favorites should be seeded after login")
	}
}

func TestLogInSurvivesSeedFailure(t *testing.T) {
	client, closeFn := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"user":  map[string]string{"_id": "u1", "username": "ada", "role": "buyer"},
				"token": "issued-token",
			})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	defer closeFn()

	manager, sess := newTestSession(client)
	svc := NewAccountService(client, manager)

	if _, err := svc.LogIn(context.Background(), sess, "a@example.com", "pw"); err != nil {
		t.Fatalf("seed failure must not block login: %v", err)
	}
	if sess.Identity() == nil {
		t.Fatalf("identity must be stored despite seed failure")
	}
}

func TestRefreshIdentitySignsOutOnExpiredCredential(t *testing.T) {
	client, closeFn := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Token expired"})
	})
	defer closeFn()

	manager, sess := newTestSession(client)
	svc := NewAccountService(client, manager)
	sess.LogIn(identityFixture(), "stale-token")

	identity, err := svc.RefreshIdentity(context.Background(), sess)
	if err != nil {
		t.Fatalf("expired credential should degrade to anonymous, got %v", err)
	}
	if identity != nil {
		t.Fatalf("identity want nil got %+v", identity)
	}
	if sess.Credential() != "" {
		t.Fatalf("expired credential must be cleared")
	}
}

func TestUpdateProfileValidationFailureStaysLocal(t *testing.T) {
	var backendCalls int
	client, closeFn := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		backendCalls++
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer closeFn()

	manager, sess := newTestSession(client)
	svc := NewAccountService(client, manager)
	sess.LogIn(identityFixture(), "cred")

	_, _, err := svc.UpdateProfile(context.Background(), sess, view.ProfileUpdateForm{Username: "new-name"})
	if !backend.IsValidationFailed(err) {
		t.Fatalf("local validation failure want ValidationFailed got %v", err)
	}
	if backend.MessageOf(err) != view.ErrUsernameNeedsPassword.Error() {
		t.Fatalf("validation message want %q got %q", view.ErrUsernameNeedsPassword.Error(), backend.MessageOf(err))
	}
	if backendCalls != 0 {
		t.Fatalf("local validation failure must not reach backend")
	}
}

func TestUpdateProfileRotatesCredential(t *testing.T) {
	client, closeFn := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user":    map[string]string{"_id": "u1", "username": "new-name", "role": "buyer"},
			"token":   "rotated-token",
			"message": "Username updated.",
		})
	})
	defer closeFn()

	manager, sess := newTestSession(client)
	svc := NewAccountService(client, manager)
	sess.LogIn(identityFixture(), "old-token")

	identity, message, err := svc.UpdateProfile(context.Background(), sess, view.ProfileUpdateForm{
		Username:        "new-name",
		CurrentPassword: "pw",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if identity.Username != "new-name" {
		t.Fatalf("identity want new-name got %+v", identity)
	}
	if message != "Username updated." {
		t.Fatalf("message want backend text got %q", message)
	}
	if sess.Credential() != "rotated-token" {
		t.Fatalf("rotated token must replace session credential, got %s", sess.Credential())
	}
}

func TestUpdateProfileRequiresSignIn(t *testing.T) {
	client, closeFn := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {})
	defer closeFn()

	manager, sess := newTestSession(client)
	svc := NewAccountService(client, manager)

	_, _, err := svc.UpdateProfile(context.Background(), sess, view.ProfileUpdateForm{Username: "x"})
	if !errors.Is(err, ErrNotSignedIn) {
		t.Fatalf("anonymous update want ErrNotSignedIn got %v", err)
	}
}

func TestSignOutDestroysSessionEvenIfBackendFails(t *testing.T) {
	client, closeFn := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer closeFn()

	manager, sess := newTestSession(client)
	svc := NewAccountService(client, manager)
	sess.LogIn(identityFixture(), "cred")

	svc.SignOut(context.Background(), sess)
	if sess.Identity() != nil {
		t.Fatalf("sign out must clear identity even when backend logout fails")
	}
	if _, ok := manager.Get(sess.ID); ok {
		t.Fatalf("sign out must destroy the session")
	}
}
