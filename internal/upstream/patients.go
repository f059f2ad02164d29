package upstream

import (
	"context"
	"net/url"

	"homecare_portal/internal/model"
)

type PatientAPI struct {
	c *Client
}

func NewPatientAPI(c *Client) *PatientAPI {
	return &PatientAPI{c: c}
}

func (a *PatientAPI) List(ctx context.Context, bearer string, f model.PatientFilter) ([]model.Patient, int64, error) {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	q = pageQuery(q, f.Page, f.Limit)

	var list []model.Patient
	total, err := a.c.getList(ctx, bearer, "/patients", q, &list, "patients.list")
	return list, total, err
}

func (a *PatientAPI) Get(ctx context.Context, bearer, id string) (*model.Patient, error) {
	var p model.Patient
	if err := a.c.get(ctx, bearer, "/patients/"+id, nil, &p, "patients.get"); err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *PatientAPI) Create(ctx context.Context, bearer string, p *model.Patient) (*model.Patient, error) {
	var created model.Patient
	if err := a.c.post(ctx, bearer, "/patients", p, &created, "patients.create"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *PatientAPI) Update(ctx context.Context, bearer, id string, p *model.Patient) (*model.Patient, error) {
	var updated model.Patient
	if err := a.c.put(ctx, bearer, "/patients/"+id, p, &updated, "patients.update"); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *PatientAPI) Delete(ctx context.Context, bearer, id string) error {
	return a.c.delete(ctx, bearer, "/patients/"+id, "patients.delete")
}
