package service

import "homecare_portal/internal/model"

// NavigationService 按角色给出可见模块。只是界面层的"藏与不藏"，
// 真正的权限在上游判定，令牌始终透传
type NavigationService struct{}

func NewNavigationService() *NavigationService {
	return &NavigationService{}
}

type NavModule struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

var navCatalog = []struct {
	module NavModule
	roles  map[model.StaffRole]bool
}{
	{NavModule{"dashboard", "Dashboard", "/dashboard"}, roleSet(model.AllRoles...)},
	{NavModule{"patients", "Patients", "/patients"}, roleSet(model.RoleAdmin, model.RoleNurse, model.RoleSpecialist, model.RoleReceptionist, model.RolePhysiotherapist)},
	{NavModule{"scheduling", "Scheduling", "/scheduling"}, roleSet(model.RoleAdmin, model.RoleNurse, model.RoleSpecialist, model.RoleReceptionist, model.RolePhysiotherapist)},
	{NavModule{"billing", "Billing", "/billing"}, roleSet(model.RoleAdmin, model.RoleBiller, model.RoleReceptionist)},
	{NavModule{"staff", "Staff", "/staff"}, roleSet(model.RoleAdmin)},
	{NavModule{"physio", "Physiotherapy", "/physio"}, roleSet(model.RoleAdmin, model.RolePhysiotherapist, model.RoleSpecialist)},
	{NavModule{"feedback", "Feedback", "/feedback"}, roleSet(model.AllRoles...)},
	{NavModule{"messaging", "Messages", "/messages"}, roleSet(model.AllRoles...)},
	{NavModule{"analytics", "Analytics", "/analytics"}, roleSet(model.RoleAdmin, model.RoleBiller)},
	{NavModule{"training", "Training", "/training"}, roleSet(model.AllRoles...)},
}

func roleSet(roles ...model.StaffRole) map[model.StaffRole]bool {
	m := make(map[model.StaffRole]bool, len(roles))
	for _, r := range roles {
		m[r] = true
	}
	return m
}

func (s *NavigationService) ModulesFor(role model.StaffRole) []NavModule {
	out := make([]NavModule, 0, len(navCatalog))
	for _, entry := range navCatalog {
		if role == model.RoleAdmin || entry.roles[role] {
			out = append(out, entry.module)
		}
	}
	return out
}
