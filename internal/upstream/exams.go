package upstream

import (
	"context"
	"net/url"

	"homecare_portal/internal/model"
)

type ExamAPI struct {
	c *Client
}

func NewExamAPI(c *Client) *ExamAPI {
	return &ExamAPI{c: c}
}

func (a *ExamAPI) List(ctx context.Context, bearer, status string, page, limit int) ([]model.Exam, int64, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	q = pageQuery(q, page, limit)

	var list []model.Exam
	total, err := a.c.getList(ctx, bearer, "/exams", q, &list, "exams.list")
	return list, total, err
}

func (a *ExamAPI) Get(ctx context.Context, bearer, id string) (*model.Exam, error) {
	var e model.Exam
	if err := a.c.get(ctx, bearer, "/exams/"+id, nil, &e, "exams.get"); err != nil {
		return nil, err
	}
	return &e, nil
}

func (a *ExamAPI) Create(ctx context.Context, bearer string, e *model.Exam) (*model.Exam, error) {
	var created model.Exam
	if err := a.c.post(ctx, bearer, "/exams", e, &created, "exams.create"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *ExamAPI) Update(ctx context.Context, bearer, id string, e *model.Exam) (*model.Exam, error) {
	var updated model.Exam
	if err := a.c.put(ctx, bearer, "/exams/"+id, e, &updated, "exams.update"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetStatus 生命周期流转 draft → published → archived
func (a *ExamAPI) SetStatus(ctx context.Context, bearer, id, status string) (*model.Exam, error) {
	var updated model.Exam
	body := map[string]string{"status": status}
	if err := a.c.put(ctx, bearer, "/exams/"+id+"/status", body, &updated, "exams.status"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// StartAttempt 在上游创建一次作答实例，可能带服务端指定的题目展示顺序
func (a *ExamAPI) StartAttempt(ctx context.Context, bearer, examID string) (*model.ExamAttempt, error) {
	var at model.ExamAttempt
	if err := a.c.post(ctx, bearer, "/exams/"+examID+"/attempts", nil, &at, "exams.attempt.start"); err != nil {
		return nil, err
	}
	return &at, nil
}

// SubmitAttempt 交卷，答案按展示顺序排列；返回判分结果ID供跳转
func (a *ExamAPI) SubmitAttempt(ctx context.Context, bearer, attemptID string, answers []model.AttemptAnswer) (string, error) {
	body := map[string]interface{}{
		"attemptId": attemptID,
		"answers":   answers,
	}
	var out struct {
		ResultID string `json:"resultId"`
	}
	if err := a.c.post(ctx, bearer, "/attempts/"+attemptID+"/submit", body, &out, "exams.attempt.submit"); err != nil {
		return "", err
	}
	return out.ResultID, nil
}

func (a *ExamAPI) GetResult(ctx context.Context, bearer, resultID string) (*model.ExamResult, error) {
	var r model.ExamResult
	if err := a.c.get(ctx, bearer, "/results/"+resultID, nil, &r, "exams.result"); err != nil {
		return nil, err
	}
	return &r, nil
}
