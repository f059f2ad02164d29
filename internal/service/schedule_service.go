package service

import (
	"context"

	"homecare_portal/internal/model"
	"homecare_portal/internal/upstream"
)

type ScheduleService struct {
	API *upstream.ScheduleAPI
}

func NewScheduleService(api *upstream.ScheduleAPI) *ScheduleService {
	return &ScheduleService{API: api}
}

func (s *ScheduleService) List(ctx context.Context, bearer string, f model.AppointmentFilter) ([]model.Appointment, int64, error) {
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	return s.API.List(ctx, bearer, f)
}

// Calendar 日历视图：给定日期区间的全部预约，不分页
func (s *ScheduleService) Calendar(ctx context.Context, bearer, from, to, staffID string) ([]model.Appointment, error) {
	list, _, err := s.API.List(ctx, bearer, model.AppointmentFilter{
		DateFrom: from,
		DateTo:   to,
		StaffID:  staffID,
		Limit:    200,
		Page:     1,
	})
	return list, err
}

func (s *ScheduleService) Get(ctx context.Context, bearer, id string) (*model.Appointment, error) {
	return s.API.Get(ctx, bearer, id)
}

func (s *ScheduleService) Create(ctx context.Context, bearer string, ap *model.Appointment) (*model.Appointment, error) {
	if ap.Status == "" {
		ap.Status = model.AppointmentScheduled
	}
	return s.API.Create(ctx, bearer, ap)
}

func (s *ScheduleService) Update(ctx context.Context, bearer, id string, ap *model.Appointment) (*model.Appointment, error) {
	return s.API.Update(ctx, bearer, id, ap)
}

func (s *ScheduleService) SetStatus(ctx context.Context, bearer, id, status string) (*model.Appointment, error) {
	return s.API.SetStatus(ctx, bearer, id, status)
}

func (s *ScheduleService) Delete(ctx context.Context, bearer, id string) error {
	return s.API.Delete(ctx, bearer, id)
}
