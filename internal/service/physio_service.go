package service

import (
	"context"

	"homecare_portal/internal/model"
	"homecare_portal/internal/upstream"
)

// PhysioService 理疗评估/治疗计划/治疗记录
type PhysioService struct {
	API *upstream.PhysioAPI
}

func NewPhysioService(api *upstream.PhysioAPI) *PhysioService {
	return &PhysioService{API: api}
}

func (s *PhysioService) ListAssessments(ctx context.Context, bearer, patientID string, page, limit int) ([]model.PhysioAssessment, int64, error) {
	return s.API.ListAssessments(ctx, bearer, patientID, normPage(page), normLimit(limit))
}

func (s *PhysioService) CreateAssessment(ctx context.Context, bearer string, as *model.PhysioAssessment) (*model.PhysioAssessment, error) {
	return s.API.CreateAssessment(ctx, bearer, as)
}

func (s *PhysioService) ListPlans(ctx context.Context, bearer, patientID string, page, limit int) ([]model.TreatmentPlan, int64, error) {
	return s.API.ListPlans(ctx, bearer, patientID, normPage(page), normLimit(limit))
}

func (s *PhysioService) CreatePlan(ctx context.Context, bearer string, p *model.TreatmentPlan) (*model.TreatmentPlan, error) {
	return s.API.CreatePlan(ctx, bearer, p)
}

func (s *PhysioService) UpdatePlanProgress(ctx context.Context, bearer, planID string, progress int, status string) (*model.TreatmentPlan, error) {
	return s.API.UpdatePlanProgress(ctx, bearer, planID, progress, status)
}

func (s *PhysioService) ListSessions(ctx context.Context, bearer, planID string, page, limit int) ([]model.TherapySession, int64, error) {
	return s.API.ListSessions(ctx, bearer, planID, normPage(page), normLimit(limit))
}

func (s *PhysioService) CreateSession(ctx context.Context, bearer string, ts *model.TherapySession) (*model.TherapySession, error) {
	return s.API.CreateSession(ctx, bearer, ts)
}

func normPage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

func normLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}
