package upstream

import (
	"context"
	"net/url"

	"homecare_portal/internal/model"
)

type PhysioAPI struct {
	c *Client
}

func NewPhysioAPI(c *Client) *PhysioAPI {
	return &PhysioAPI{c: c}
}

func (a *PhysioAPI) ListAssessments(ctx context.Context, bearer, patientID string, page, limit int) ([]model.PhysioAssessment, int64, error) {
	q := url.Values{}
	if patientID != "" {
		q.Set("patientId", patientID)
	}
	q = pageQuery(q, page, limit)

	var list []model.PhysioAssessment
	total, err := a.c.getList(ctx, bearer, "/physio/assessments", q, &list, "physio.assessments.list")
	return list, total, err
}

func (a *PhysioAPI) CreateAssessment(ctx context.Context, bearer string, as *model.PhysioAssessment) (*model.PhysioAssessment, error) {
	var created model.PhysioAssessment
	if err := a.c.post(ctx, bearer, "/physio/assessments", as, &created, "physio.assessments.create"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *PhysioAPI) ListPlans(ctx context.Context, bearer, patientID string, page, limit int) ([]model.TreatmentPlan, int64, error) {
	q := url.Values{}
	if patientID != "" {
		q.Set("patientId", patientID)
	}
	q = pageQuery(q, page, limit)

	var list []model.TreatmentPlan
	total, err := a.c.getList(ctx, bearer, "/physio/plans", q, &list, "physio.plans.list")
	return list, total, err
}

func (a *PhysioAPI) CreatePlan(ctx context.Context, bearer string, p *model.TreatmentPlan) (*model.TreatmentPlan, error) {
	var created model.TreatmentPlan
	if err := a.c.post(ctx, bearer, "/physio/plans", p, &created, "physio.plans.create"); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePlanProgress 更新计划进度/状态
func (a *PhysioAPI) UpdatePlanProgress(ctx context.Context, bearer, planID string, progress int, status string) (*model.TreatmentPlan, error) {
	body := map[string]interface{}{"progress": progress}
	if status != "" {
		body["status"] = status
	}
	var updated model.TreatmentPlan
	if err := a.c.put(ctx, bearer, "/physio/plans/"+planID+"/progress", body, &updated, "physio.plans.progress"); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *PhysioAPI) ListSessions(ctx context.Context, bearer, planID string, page, limit int) ([]model.TherapySession, int64, error) {
	q := url.Values{}
	if planID != "" {
		q.Set("planId", planID)
	}
	q = pageQuery(q, page, limit)

	var list []model.TherapySession
	total, err := a.c.getList(ctx, bearer, "/physio/sessions", q, &list, "physio.sessions.list")
	return list, total, err
}

func (a *PhysioAPI) CreateSession(ctx context.Context, bearer string, s *model.TherapySession) (*model.TherapySession, error) {
	var created model.TherapySession
	if err := a.c.post(ctx, bearer, "/physio/sessions", s, &created, "physio.sessions.create"); err != nil {
		return nil, err
	}
	return &created, nil
}
