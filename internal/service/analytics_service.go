package service

import (
	"context"
	"time"

	"homecare_portal/internal/model"
	"homecare_portal/internal/upstream"
	"homecare_portal/pkg/cache"
)

// AnalyticsService 看板数据透传，图表直接渲染上游预聚合结果；
// 热点接口走redis短TTL缓存
type AnalyticsService struct {
	API   *upstream.AnalyticsAPI
	Cache *cache.Store
	TTL   time.Duration
}

func NewAnalyticsService(api *upstream.AnalyticsAPI, store *cache.Store, ttl time.Duration) *AnalyticsService {
	return &AnalyticsService{API: api, Cache: store, TTL: ttl}
}

func (s *AnalyticsService) Overview(ctx context.Context, bearer string) (*model.DashboardOverview, error) {
	const key = "portal:analytics:overview"

	var hit model.DashboardOverview
	if s.Cache.GetJSON(ctx, key, &hit) {
		return &hit, nil
	}

	o, err := s.API.Overview(ctx, bearer)
	if err != nil {
		return nil, err
	}
	s.Cache.SetJSON(ctx, key, o, s.TTL)
	return o, nil
}

func (s *AnalyticsService) Report(ctx context.Context, bearer, name, period string) (*model.ReportSeries, error) {
	if period == "" {
		period = "30d"
	}
	key := "portal:analytics:report:" + name + ":" + period

	var hit model.ReportSeries
	if s.Cache.GetJSON(ctx, key, &hit) {
		return &hit, nil
	}

	r, err := s.API.Report(ctx, bearer, name, period)
	if err != nil {
		return nil, err
	}
	s.Cache.SetJSON(ctx, key, r, s.TTL)
	return r, nil
}
