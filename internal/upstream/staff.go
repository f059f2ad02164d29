package upstream

import (
	"context"
	"net/url"
	"strconv"

	"homecare_portal/internal/model"
)

type StaffAPI struct {
	c *Client
}

func NewStaffAPI(c *Client) *StaffAPI {
	return &StaffAPI{c: c}
}

func (a *StaffAPI) List(ctx context.Context, bearer string, f model.StaffFilter) ([]model.StaffMember, int64, error) {
	q := url.Values{}
	if f.Role != "" {
		q.Set("role", f.Role)
	}
	if f.Active != nil {
		q.Set("active", strconv.FormatBool(*f.Active))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	q = pageQuery(q, f.Page, f.Limit)

	var list []model.StaffMember
	total, err := a.c.getList(ctx, bearer, "/staff", q, &list, "staff.list")
	return list, total, err
}

func (a *StaffAPI) Get(ctx context.Context, bearer, id string) (*model.StaffMember, error) {
	var m model.StaffMember
	if err := a.c.get(ctx, bearer, "/staff/"+id, nil, &m, "staff.get"); err != nil {
		return nil, err
	}
	return &m, nil
}

func (a *StaffAPI) Create(ctx context.Context, bearer string, m *model.StaffMember) (*model.StaffMember, error) {
	var created model.StaffMember
	if err := a.c.post(ctx, bearer, "/staff", m, &created, "staff.create"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *StaffAPI) Update(ctx context.Context, bearer, id string, m *model.StaffMember) (*model.StaffMember, error) {
	var updated model.StaffMember
	if err := a.c.put(ctx, bearer, "/staff/"+id, m, &updated, "staff.update"); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *StaffAPI) Delete(ctx context.Context, bearer, id string) error {
	return a.c.delete(ctx, bearer, "/staff/"+id, "staff.delete")
}
