package authz

import (
	"testing"

	"github.com/restyle-next/internal/constants"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	service, err := NewService()
	if err != nil {
		t.Fatalf("new visibility service failed: %v", err)
	}
	return service
}

func TestSellerVisibility(t *testing.T) {
	service := newTestService(t)

	if !service.CanSee(constants.RoleSeller, constants.AffordanceProductAdd) {
		t.Fatalf("seller should see product add")
	}
	if !service.CanSee(constants.RoleSeller, constants.AffordanceProductDelete) {
		t.Fatalf("seller should see product delete")
	}
	if !service.CanSee(constants.RoleSeller, constants.AffordanceSellerProducts) {
		t.Fatalf("seller should see own products section")
	}
	if service.CanSee(constants.RoleSeller, constants.AffordanceAdminPanel) {
		t.Fatalf("seller must not see admin panel")
	}
}

func TestBuyerSeesNoManagementAffordances(t *testing.T) {
	service := newTestService(t)

	affordances := []string{
		constants.AffordanceProductAdd,
		constants.AffordanceProductDelete,
		constants.AffordanceAdminPanel,
		constants.AffordanceSellerProducts,
		constants.AffordanceUserRoleChange,
		constants.AffordanceUserDelete,
	}
	for _, affordance := range affordances {
		if service.CanSee(constants.RoleBuyer, affordance) {
			t.Fatalf("buyer must not see %s", affordance)
		}
	}
}

func TestAdminVisibility(t *testing.T) {
	service := newTestService(t)

	if !service.CanSee(constants.RoleAdmin, constants.AffordanceAdminPanel) {
		t.Fatalf("admin should see admin panel")
	}
	if !service.CanSee(constants.RoleAdmin, constants.AffordanceProductDelete) {
		t.Fatalf("admin should see product delete")
	}
	if !service.CanSee(constants.RoleAdmin, constants.AffordanceUserRoleChange) {
		t.Fatalf("admin should see role change")
	}
	if service.CanSee(constants.RoleAdmin, constants.AffordanceProductAdd) {
		t.Fatalf("admin must not see product add (selling is a seller affordance)")
	}
}

func TestAnonymousAndUnknownRolesHidden(t *testing.T) {
	service := newTestService(t)

	if service.CanSee("", constants.AffordanceProductAdd) {
		t.Fatalf("empty role must see nothing")
	}
	if service.CanSee("superuser", constants.AffordanceAdminPanel) {
		t.Fatalf("unknown role must see nothing")
	}
}

func TestRoleNormalization(t *testing.T) {
	service := newTestService(t)

	if !service.CanSee("  Admin ", constants.AffordanceAdminPanel) {
		t.Fatalf("role matching should trim and lowercase")
	}
}
