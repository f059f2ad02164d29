package upstream

import (
	"context"
	"net/url"

	"homecare_portal/internal/model"
)

type ScheduleAPI struct {
	c *Client
}

func NewScheduleAPI(c *Client) *ScheduleAPI {
	return &ScheduleAPI{c: c}
}

func (a *ScheduleAPI) List(ctx context.Context, bearer string, f model.AppointmentFilter) ([]model.Appointment, int64, error) {
	q := url.Values{}
	if f.PatientID != "" {
		q.Set("patientId", f.PatientID)
	}
	if f.StaffID != "" {
		q.Set("staffId", f.StaffID)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.DateFrom != "" {
		q.Set("from", f.DateFrom)
	}
	if f.DateTo != "" {
		q.Set("to", f.DateTo)
	}
	q = pageQuery(q, f.Page, f.Limit)

	var list []model.Appointment
	total, err := a.c.getList(ctx, bearer, "/appointments", q, &list, "schedule.list")
	return list, total, err
}

func (a *ScheduleAPI) Get(ctx context.Context, bearer, id string) (*model.Appointment, error) {
	var ap model.Appointment
	if err := a.c.get(ctx, bearer, "/appointments/"+id, nil, &ap, "schedule.get"); err != nil {
		return nil, err
	}
	return &ap, nil
}

func (a *ScheduleAPI) Create(ctx context.Context, bearer string, ap *model.Appointment) (*model.Appointment, error) {
	var created model.Appointment
	if err := a.c.post(ctx, bearer, "/appointments", ap, &created, "schedule.create"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *ScheduleAPI) Update(ctx context.Context, bearer, id string, ap *model.Appointment) (*model.Appointment, error) {
	var updated model.Appointment
	if err := a.c.put(ctx, bearer, "/appointments/"+id, ap, &updated, "schedule.update"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetStatus 状态流转（scheduled/completed/cancelled/no_show），合法性由上游判定
func (a *ScheduleAPI) SetStatus(ctx context.Context, bearer, id, status string) (*model.Appointment, error) {
	var updated model.Appointment
	body := map[string]string{"status": status}
	if err := a.c.put(ctx, bearer, "/appointments/"+id+"/status", body, &updated, "schedule.status"); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *ScheduleAPI) Delete(ctx context.Context, bearer, id string) error {
	return a.c.delete(ctx, bearer, "/appointments/"+id, "schedule.delete")
}
