package service

import (
	"context"
	"fmt"
	"time"

	"homecare_portal/internal/model"
	"homecare_portal/internal/upstream"
	"homecare_portal/internal/util"
	"homecare_portal/pkg/cache"
)

const examListCacheKey = "portal:exams:published"

// ExamService 考试编辑与查询。持久化在上游，本层只做出题期校验、
// 学员视图脱敏和已发布列表的短TTL缓存
type ExamService struct {
	API     *upstream.ExamAPI
	Cache   *cache.Store
	ListTTL time.Duration
}

func NewExamService(api *upstream.ExamAPI, store *cache.Store, listTTL time.Duration) *ExamService {
	return &ExamService{API: api, Cache: store, ListTTL: listTTL}
}

type ExamQuestionRequest struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"prompt" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectAnswer int      `json:"correctAnswer"`
	Points        int      `json:"points"`
	Explanation   string   `json:"explanation"`
}

type ExamRequest struct {
	Title        string                `json:"title" binding:"required"`
	Description  string                `json:"description"`
	Duration     int                   `json:"duration" binding:"required"`
	PassingScore int                   `json:"passingScore"`
	MaxAttempts  int                   `json:"maxAttempts"`
	Questions    []ExamQuestionRequest `json:"questions"`
}

// validate 出题期校验：至少两个选项、正确答案下标在界内。
// 作答期不再重复校验选项下标，防线就在这里
func (req *ExamRequest) validate() error {
	if req.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %d", req.Duration)
	}
	for i, q := range req.Questions {
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d must have at least two options", i+1)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("question %d correct answer index %d out of range [0,%d)", i+1, q.CorrectAnswer, len(q.Options))
		}
	}
	return nil
}

func (req *ExamRequest) toModel() *model.Exam {
	exam := &model.Exam{
		Title:        req.Title,
		Description:  req.Description,
		Duration:     req.Duration,
		PassingScore: req.PassingScore,
		MaxAttempts:  req.MaxAttempts,
	}
	for _, q := range req.Questions {
		points := q.Points
		if points <= 0 {
			points = 1
		}
		exam.Questions = append(exam.Questions, model.ExamQuestion{
			ID:            q.ID,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Points:        points,
			Explanation:   q.Explanation,
		})
	}
	return exam
}

func (s *ExamService) Create(ctx context.Context, bearer string, req ExamRequest) (*model.Exam, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	exam, err := s.API.Create(ctx, bearer, req.toModel())
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, examListCacheKey)
	return exam, nil
}

func (s *ExamService) Update(ctx context.Context, bearer, id string, req ExamRequest) (*model.Exam, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	exam, err := s.API.Update(ctx, bearer, id, req.toModel())
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, examListCacheKey)
	return exam, nil
}

func (s *ExamService) SetStatus(ctx context.Context, bearer, id, status string) (*model.Exam, error) {
	switch status {
	case model.ExamDraft, model.ExamPublished, model.ExamArchived:
	default:
		return nil, fmt.Errorf("unknown exam status %q", status)
	}
	exam, err := s.API.SetStatus(ctx, bearer, id, status)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, examListCacheKey)
	return exam, nil
}

// GetForAuthor 教务视图，含正确答案与解析
func (s *ExamService) GetForAuthor(ctx context.Context, bearer, id string) (*model.Exam, error) {
	exam, err := s.API.Get(ctx, bearer, id)
	if err == util.ErrUpstreamNotFound {
		return nil, util.ErrExamNotFound
	}
	return exam, err
}

// StudentExam 学员视图
type StudentExam struct {
	ID           string                      `json:"id"`
	Title        string                      `json:"title"`
	Description  string                      `json:"description"`
	Duration     int                         `json:"duration"`
	PassingScore int                         `json:"passingScore"`
	MaxAttempts  int                         `json:"maxAttempts"`
	Questions    []model.StudentExamQuestion `json:"questions"`
}

// GetForStudent 学员视图，题目去除正确答案与解析
func (s *ExamService) GetForStudent(ctx context.Context, bearer, id string) (*StudentExam, error) {
	exam, err := s.API.Get(ctx, bearer, id)
	if err != nil {
		if err == util.ErrUpstreamNotFound {
			return nil, util.ErrExamNotFound
		}
		return nil, err
	}
	if exam.Status != model.ExamPublished {
		return nil, util.ErrExamNotPublished
	}

	se := &StudentExam{
		ID:           exam.ID,
		Title:        exam.Title,
		Description:  exam.Description,
		Duration:     exam.Duration,
		PassingScore: exam.PassingScore,
		MaxAttempts:  exam.MaxAttempts,
	}
	for _, q := range exam.Questions {
		se.Questions = append(se.Questions, toStudentQuestion(q))
	}
	return se, nil
}

// ExamSummary 列表项，不带题目
type ExamSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Duration      int    `json:"duration"`
	PassingScore  int    `json:"passingScore"`
	MaxAttempts   int    `json:"maxAttempts"`
	Status        string `json:"status"`
	QuestionCount int    `json:"questionCount"`
}

// ListPublished 学员可见的已发布考试，带缓存
func (s *ExamService) ListPublished(ctx context.Context, bearer string, page, limit int) ([]ExamSummary, int64, error) {
	type cached struct {
		List  []ExamSummary `json:"list"`
		Total int64         `json:"total"`
	}

	// 只缓存首页，翻页场景少
	cacheable := page <= 1
	if cacheable {
		var hit cached
		if s.Cache.GetJSON(ctx, examListCacheKey, &hit) {
			return hit.List, hit.Total, nil
		}
	}

	exams, total, err := s.API.List(ctx, bearer, model.ExamPublished, page, limit)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]ExamSummary, 0, len(exams))
	for _, e := range exams {
		summaries = append(summaries, summarize(e))
	}

	if cacheable {
		s.Cache.SetJSON(ctx, examListCacheKey, cached{List: summaries, Total: total}, s.ListTTL)
	}
	return summaries, total, nil
}

// ListAll 教务列表，含草稿与归档，不缓存
func (s *ExamService) ListAll(ctx context.Context, bearer, status string, page, limit int) ([]ExamSummary, int64, error) {
	exams, total, err := s.API.List(ctx, bearer, status, page, limit)
	if err != nil {
		return nil, 0, err
	}
	summaries := make([]ExamSummary, 0, len(exams))
	for _, e := range exams {
		summaries = append(summaries, summarize(e))
	}
	return summaries, total, nil
}

func summarize(e model.Exam) ExamSummary {
	return ExamSummary{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Duration:      e.Duration,
		PassingScore:  e.PassingScore,
		MaxAttempts:   e.MaxAttempts,
		Status:        e.Status,
		QuestionCount: len(e.Questions),
	}
}

func (s *ExamService) GetResult(ctx context.Context, bearer, resultID string) (*model.ExamResult, error) {
	r, err := s.API.GetResult(ctx, bearer, resultID)
	if err == util.ErrUpstreamNotFound {
		return nil, util.ErrExamNotFound
	}
	return r, err
}
