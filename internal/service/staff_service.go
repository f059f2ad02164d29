package service

import (
	"context"

	"homecare_portal/internal/model"
	"homecare_portal/internal/upstream"
)

type StaffService struct {
	API *upstream.StaffAPI
}

func NewStaffService(api *upstream.StaffAPI) *StaffService {
	return &StaffService{API: api}
}

func (s *StaffService) List(ctx context.Context, bearer string, f model.StaffFilter) ([]model.StaffMember, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	return s.API.List(ctx, bearer, f)
}

func (s *StaffService) Get(ctx context.Context, bearer, id string) (*model.StaffMember, error) {
	return s.API.Get(ctx, bearer, id)
}

func (s *StaffService) Create(ctx context.Context, bearer string, m *model.StaffMember) (*model.StaffMember, error) {
	return s.API.Create(ctx, bearer, m)
}

func (s *StaffService) Update(ctx context.Context, bearer, id string, m *model.StaffMember) (*model.StaffMember, error) {
	return s.API.Update(ctx, bearer, id, m)
}

func (s *StaffService) Delete(ctx context.Context, bearer, id string) error {
	return s.API.Delete(ctx, bearer, id)
}
