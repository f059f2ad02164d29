package service

import (
	"context"

	"homecare_portal/internal/model"
	"homecare_portal/internal/upstream"
)

type FeedbackService struct {
	API *upstream.FeedbackAPI
}

func NewFeedbackService(api *upstream.FeedbackAPI) *FeedbackService {
	return &FeedbackService{API: api}
}

func (s *FeedbackService) List(ctx context.Context, bearer, targetType, targetID string, page, limit int) ([]model.Feedback, int64, error) {
	return s.API.List(ctx, bearer, targetType, targetID, normPage(page), normLimit(limit))
}

func (s *FeedbackService) Create(ctx context.Context, bearer string, fb *model.Feedback) (*model.Feedback, error) {
	return s.API.Create(ctx, bearer, fb)
}

func (s *FeedbackService) Summary(ctx context.Context, bearer, targetType, targetID string) (*model.FeedbackSummary, error) {
	return s.API.Summary(ctx, bearer, targetType, targetID)
}
