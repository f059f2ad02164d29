package service

import (
	"context"

	"homecare_portal/internal/model"
	"homecare_portal/internal/upstream"
)

// PatientService 患者档案的透传层，业务校验在上游
type PatientService struct {
	API *upstream.PatientAPI
}

func NewPatientService(api *upstream.PatientAPI) *PatientService {
	return &PatientService{API: api}
}

func (s *PatientService) List(ctx context.Context, bearer string, f model.PatientFilter) ([]model.Patient, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	return s.API.List(ctx, bearer, f)
}

func (s *PatientService) Get(ctx context.Context, bearer, id string) (*model.Patient, error) {
	return s.API.Get(ctx, bearer, id)
}

func (s *PatientService) Create(ctx context.Context, bearer string, p *model.Patient) (*model.Patient, error) {
	return s.API.Create(ctx, bearer, p)
}

func (s *PatientService) Update(ctx context.Context, bearer, id string, p *model.Patient) (*model.Patient, error) {
	return s.API.Update(ctx, bearer, id, p)
}

func (s *PatientService) Delete(ctx context.Context, bearer, id string) error {
	return s.API.Delete(ctx, bearer, id)
}
