package service

import (
	"testing"

	"homecare_portal/internal/model"
)

func moduleKeys(mods []NavModule) map[string]bool {
	keys := make(map[string]bool, len(mods))
	for _, m := range mods {
		keys[m.Key] = true
	}
	return keys
}

func TestNavigationModulesPerRole(t *testing.T) {
	svc := NewNavigationService()

	admin := moduleKeys(svc.ModulesFor(model.RoleAdmin))
	if !admin["staff"] || !admin["billing"] || !admin["physio"] || !admin["analytics"] {
		t.Fatalf("admin must see every module, got %v", admin)
	}

	biller := moduleKeys(svc.ModulesFor(model.RoleBiller))
	if !biller["billing"] || !biller["analytics"] {
		t.Fatalf("biller missing finance modules: %v", biller)
	}
	if biller["patients"] || biller["staff"] || biller["physio"] {
		t.Fatalf("biller sees clinical modules: %v", biller)
	}

	nurse := moduleKeys(svc.ModulesFor(model.RoleNurse))
	if !nurse["patients"] || !nurse["scheduling"] || !nurse["training"] {
		t.Fatalf("nurse missing clinical modules: %v", nurse)
	}
	if nurse["billing"] || nurse["staff"] {
		t.Fatalf("nurse sees restricted modules: %v", nurse)
	}

	// 全员模块对每个角色都在
	for _, role := range model.AllRoles {
		keys := moduleKeys(svc.ModulesFor(role))
		for _, common := range []string{"dashboard", "feedback", "messaging", "training"} {
			if !keys[common] {
				t.Fatalf("role %s missing common module %s", role, common)
			}
		}
	}
}
