package upstream

import (
	"context"
	"net/url"

	"homecare_portal/internal/model"
)

type FeedbackAPI struct {
	c *Client
}

func NewFeedbackAPI(c *Client) *FeedbackAPI {
	return &FeedbackAPI{c: c}
}

func (a *FeedbackAPI) List(ctx context.Context, bearer, targetType, targetID string, page, limit int) ([]model.Feedback, int64, error) {
	q := url.Values{}
	if targetType != "" {
		q.Set("targetType", targetType)
	}
	if targetID != "" {
		q.Set("targetId", targetID)
	}
	q = pageQuery(q, page, limit)

	var list []model.Feedback
	total, err := a.c.getList(ctx, bearer, "/feedback", q, &list, "feedback.list")
	return list, total, err
}

func (a *FeedbackAPI) Create(ctx context.Context, bearer string, fb *model.Feedback) (*model.Feedback, error) {
	var created model.Feedback
	if err := a.c.post(ctx, bearer, "/feedback", fb, &created, "feedback.create"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *FeedbackAPI) Summary(ctx context.Context, bearer, targetType, targetID string) (*model.FeedbackSummary, error) {
	q := url.Values{}
	q.Set("targetType", targetType)
	q.Set("targetId", targetID)

	var s model.FeedbackSummary
	if err := a.c.get(ctx, bearer, "/feedback/summary", q, &s, "feedback.summary"); err != nil {
		return nil, err
	}
	return &s, nil
}
