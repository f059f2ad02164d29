package upstream

import (
	"context"
	"net/url"

	"homecare_portal/internal/model"
)

type AnalyticsAPI struct {
	c *Client
}

func NewAnalyticsAPI(c *Client) *AnalyticsAPI {
	return &AnalyticsAPI{c: c}
}

// Overview 总览看板，上游预聚合
func (a *AnalyticsAPI) Overview(ctx context.Context, bearer string) (*model.DashboardOverview, error) {
	var o model.DashboardOverview
	if err := a.c.get(ctx, bearer, "/analytics/overview", nil, &o, "analytics.overview"); err != nil {
		return nil, err
	}
	return &o, nil
}

// Report 指定报表的时间序列（revenue | appointments | patient_growth ...）
func (a *AnalyticsAPI) Report(ctx context.Context, bearer, name, period string) (*model.ReportSeries, error) {
	q := url.Values{}
	q.Set("period", period)

	var s model.ReportSeries
	if err := a.c.get(ctx, bearer, "/analytics/reports/"+name, q, &s, "analytics.report"); err != nil {
		return nil, err
	}
	return &s, nil
}
