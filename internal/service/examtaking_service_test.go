package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"homecare_portal/internal/model"
	"homecare_portal/internal/util"
	"homecare_portal/pkg/logger"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// fakeExamGateway 内存版上游，记录调用次数与最近一次提交内容
type fakeExamGateway struct {
	mu sync.Mutex

	exam      *model.Exam
	getErr    error
	submitErr error
	resultID  string
	order     []string

	startCalls  int
	submitCalls int
	lastAnswers []model.AttemptAnswer
}

func (f *fakeExamGateway) Get(ctx context.Context, bearer, id string) (*model.Exam, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.exam == nil || f.exam.ID != id {
		return nil, util.ErrUpstreamNotFound
	}
	return f.exam, nil
}

func (f *fakeExamGateway) StartAttempt(ctx context.Context, bearer, examID string) (*model.ExamAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.startCalls++
	return &model.ExamAttempt{
		ID:            fmt.Sprintf("attempt-%d", f.startCalls),
		ExamID:        examID,
		QuestionOrder: f.order,
		StartedAt:     time.Now(),
	}, nil
}

func (f *fakeExamGateway) SubmitAttempt(ctx context.Context, bearer, attemptID string, answers []model.AttemptAnswer) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitCalls++
	if f.submitErr != nil {
		return "", f.submitErr
	}
	f.lastAnswers = answers
	if f.resultID == "" {
		return "result-1", nil
	}
	return f.resultID, nil
}

func (f *fakeExamGateway) submitted() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitCalls
}

func (f *fakeExamGateway) clearSubmitErr() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitErr = nil
}

func publishedExam(questionCount int) *model.Exam {
	exam := &model.Exam{
		ID:       "exam-1",
		Title:    "感染控制年度考核",
		Status:   model.ExamPublished,
		Duration: 30,
	}
	for i := 0; i < questionCount; i++ {
		exam.Questions = append(exam.Questions, model.ExamQuestion{
			ID:            fmt.Sprintf("q%d", i+1),
			Prompt:        fmt.Sprintf("question %d", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: 0,
			Points:        1,
		})
	}
	return exam
}

func TestStartAttemptRejectsUnavailableExams(t *testing.T) {
	cases := []struct {
		name    string
		gateway *fakeExamGateway
		wantErr error
	}{
		{"missing", &fakeExamGateway{}, util.ErrExamNotFound},
		{"draft", &fakeExamGateway{exam: &model.Exam{ID: "exam-1", Status: model.ExamDraft, Duration: 30}}, util.ErrExamNotPublished},
		{"no questions", &fakeExamGateway{exam: publishedExam(0)}, util.ErrExamNoQuestions},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewExamTakingService(tc.gateway, time.Second)
			_, err := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if tc.gateway.startCalls != 0 {
				t.Fatalf("no upstream attempt should be created, got %d", tc.gateway.startCalls)
			}
		})
	}
}

func TestStartAttemptIsIdempotentPerUserAndExam(t *testing.T) {
	gw := &fakeExamGateway{exam: publishedExam(3)}
	svc := NewExamTakingService(gw, time.Second)
	defer svc.Close()

	first, err := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	second, err := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")
	if err != nil {
		t.Fatalf("second start: %v", err)
	}

	if first.AttemptID != second.AttemptID {
		t.Fatalf("expected same attempt, got %s and %s", first.AttemptID, second.AttemptID)
	}
	if gw.startCalls != 1 {
		t.Fatalf("expected 1 upstream attempt, got %d", gw.startCalls)
	}

	// 另一个用户开同一场考试是独立会话
	other, err := svc.StartAttempt(context.Background(), "tok2", 2, "exam-1")
	if err != nil {
		t.Fatalf("other user start: %v", err)
	}
	if other.AttemptID == first.AttemptID {
		t.Fatal("different users must get different attempts")
	}
}

func TestStartAttemptSeedsSessionFromExam(t *testing.T) {
	gw := &fakeExamGateway{exam: publishedExam(4)}
	svc := NewExamTakingService(gw, time.Second)
	defer svc.Close()

	view, err := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if view.Remaining != 30*60 {
		t.Fatalf("expected %d remaining seconds, got %d", 30*60, view.Remaining)
	}
	if view.State != sessionRunning {
		t.Fatalf("expected running state, got %s", view.State)
	}
	if view.ViewMode != ViewSingle {
		t.Fatalf("expected single view mode, got %s", view.ViewMode)
	}
	if view.TotalQuestions != 4 || view.AnsweredCount != 0 || view.Progress != 0 {
		t.Fatalf("unexpected initial counters: %+v", view)
	}
	for _, q := range view.Questions {
		if q.Prompt == "" || len(q.Options) == 0 {
			t.Fatalf("student question missing content: %+v", q)
		}
	}
}

func TestStartAttemptAppliesQuestionOrder(t *testing.T) {
	// 排列含未知ID和重复ID，缺失的题目按原始顺序补在末尾
	gw := &fakeExamGateway{exam: publishedExam(4), order: []string{"q3", "bogus", "q1", "q3"}}
	svc := NewExamTakingService(gw, time.Second)
	defer svc.Close()

	view, err := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	got := make([]string, 0, len(view.Questions))
	for _, q := range view.Questions {
		got = append(got, q.ID)
	}
	want := []string{"q3", "q1", "q2", "q4"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSelectAnswerOverwritesIdempotently(t *testing.T) {
	gw := &fakeExamGateway{exam: publishedExam(3)}
	svc := NewExamTakingService(gw, time.Second)
	defer svc.Close()

	view, _ := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")

	v, err := svc.SelectAnswer(view.AttemptID, 1, "q1", 2)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if v.AnsweredCount != 1 || v.Answers["q1"] != 2 {
		t.Fatalf("unexpected state after first select: %+v", v)
	}

	// 重选同一题只覆盖选项，已答数不变
	v, err = svc.SelectAnswer(view.AttemptID, 1, "q1", 0)
	if err != nil {
		t.Fatalf("re-select: %v", err)
	}
	if v.AnsweredCount != 1 || v.Answers["q1"] != 0 {
		t.Fatalf("re-select must overwrite in place: %+v", v)
	}

	if _, err := svc.SelectAnswer(view.AttemptID, 1, "nope", 1); !errors.Is(err, util.ErrQuestionNotInExam) {
		t.Fatalf("expected ErrQuestionNotInExam, got %v", err)
	}
}

func TestNavigationNeverTouchesAnswers(t *testing.T) {
	gw := &fakeExamGateway{exam: publishedExam(3)}
	svc := NewExamTakingService(gw, time.Second)
	defer svc.Close()

	view, _ := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")
	svc.SelectAnswer(view.AttemptID, 1, "q1", 1)
	svc.SelectAnswer(view.AttemptID, 1, "q2", 3)

	v, err := svc.Navigate(view.AttemptID, 1, 2)
	if err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if v.CurrentIndex != 2 {
		t.Fatalf("expected index 2, got %d", v.CurrentIndex)
	}
	if v.AnsweredCount != 2 || v.Answers["q1"] != 1 || v.Answers["q2"] != 3 {
		t.Fatalf("navigation must not change answers: %+v", v)
	}

	if _, err := svc.Navigate(view.AttemptID, 1, 3); !errors.Is(err, util.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := svc.Navigate(view.AttemptID, 1, -1); !errors.Is(err, util.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}

	// 切换整卷视图同样保留答案与当前题号
	v, err = svc.SetViewMode(view.AttemptID, 1, ViewAll)
	if err != nil {
		t.Fatalf("set view mode: %v", err)
	}
	if v.ViewMode != ViewAll || v.CurrentIndex != 2 || v.AnsweredCount != 2 {
		t.Fatalf("view mode switch changed unrelated state: %+v", v)
	}

	if _, err := svc.SetViewMode(view.AttemptID, 1, "grid"); err == nil {
		t.Fatal("expected error for unknown view mode")
	}
}

func TestStepClampsAtBothEnds(t *testing.T) {
	gw := &fakeExamGateway{exam: publishedExam(3)}
	svc := NewExamTakingService(gw, time.Second)
	defer svc.Close()

	view, _ := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")

	// 起点再往前停在0
	v, err := svc.Step(view.AttemptID, 1, -1)
	if err != nil {
		t.Fatalf("step back: %v", err)
	}
	if v.CurrentIndex != 0 {
		t.Fatalf("expected clamp at 0, got %d", v.CurrentIndex)
	}

	for i := 0; i < 5; i++ {
		v, err = svc.Step(view.AttemptID, 1, 1)
		if err != nil {
			t.Fatalf("step forward: %v", err)
		}
	}
	if v.CurrentIndex != 2 {
		t.Fatalf("expected clamp at last question, got %d", v.CurrentIndex)
	}
}

func TestSubmitGateRequiresConfirmationWhenUnanswered(t *testing.T) {
	gw := &fakeExamGateway{exam: publishedExam(3)}
	svc := NewExamTakingService(gw, time.Second)
	defer svc.Close()

	view, _ := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")
	svc.SelectAnswer(view.AttemptID, 1, "q1", 0)
	svc.SelectAnswer(view.AttemptID, 1, "q2", 1)

	_, err := svc.Submit(context.Background(), "tok", view.AttemptID, 1, false)
	var unanswered *util.UnansweredError
	if !errors.As(err, &unanswered) {
		t.Fatalf("expected UnansweredError, got %v", err)
	}
	if unanswered.Unanswered != 1 {
		t.Fatalf("expected 1 unanswered, got %d", unanswered.Unanswered)
	}
	if gw.submitted() != 0 {
		t.Fatal("gate must not reach upstream")
	}

	// 取消确认后会话原样保留
	v, err := svc.Snapshot(view.AttemptID, 1)
	if err != nil {
		t.Fatalf("snapshot after gate: %v", err)
	}
	if v.State != sessionRunning || v.AnsweredCount != 2 {
		t.Fatalf("gate must leave session intact: %+v", v)
	}

	// 确认后放行
	resultID, err := svc.Submit(context.Background(), "tok", view.AttemptID, 1, true)
	if err != nil {
		t.Fatalf("confirmed submit: %v", err)
	}
	if resultID != "result-1" {
		t.Fatalf("unexpected result id %q", resultID)
	}
	if len(gw.lastAnswers) != 2 {
		t.Fatalf("expected 2 packaged answers, got %d", len(gw.lastAnswers))
	}
}

func TestSubmitSkipsGateWhenAllAnswered(t *testing.T) {
	gw := &fakeExamGateway{exam: publishedExam(2)}
	svc := NewExamTakingService(gw, time.Second)
	defer svc.Close()

	view, _ := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")
	svc.SelectAnswer(view.AttemptID, 1, "q1", 0)
	svc.SelectAnswer(view.AttemptID, 1, "q2", 1)

	if _, err := svc.Submit(context.Background(), "tok", view.AttemptID, 1, false); err != nil {
		t.Fatalf("fully answered submit must not require confirmation: %v", err)
	}

	// 答案按展示顺序打包
	if gw.lastAnswers[0].QuestionID != "q1" || gw.lastAnswers[1].QuestionID != "q2" {
		t.Fatalf("answers out of order: %+v", gw.lastAnswers)
	}
}

func TestSubmitFailureLeavesSessionForRetry(t *testing.T) {
	gw := &fakeExamGateway{exam: publishedExam(1), submitErr: util.ErrUpstreamUnavailable}
	svc := NewExamTakingService(gw, time.Second)
	defer svc.Close()

	view, _ := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")
	svc.SelectAnswer(view.AttemptID, 1, "q1", 2)

	if _, err := svc.Submit(context.Background(), "tok", view.AttemptID, 1, true); !errors.Is(err, util.ErrUpstreamUnavailable) {
		t.Fatalf("expected upstream error, got %v", err)
	}

	v, err := svc.Snapshot(view.AttemptID, 1)
	if err != nil {
		t.Fatalf("session must survive a failed submit: %v", err)
	}
	if v.State != sessionRunning || v.Answers["q1"] != 2 {
		t.Fatalf("failed submit corrupted session: %+v", v)
	}

	gw.clearSubmitErr()
	if _, err := svc.Submit(context.Background(), "tok", view.AttemptID, 1, true); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
}

func TestSubmittedAttemptRejectsFurtherChanges(t *testing.T) {
	gw := &fakeExamGateway{exam: publishedExam(1)}
	svc := NewExamTakingService(gw, time.Second)
	defer svc.Close()

	view, _ := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")
	svc.SelectAnswer(view.AttemptID, 1, "q1", 0)
	if _, err := svc.Submit(context.Background(), "tok", view.AttemptID, 1, false); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := svc.SelectAnswer(view.AttemptID, 1, "q1", 3); !errors.Is(err, util.ErrAttemptSubmitted) {
		t.Fatalf("expected ErrAttemptSubmitted on select, got %v", err)
	}
	if _, err := svc.Submit(context.Background(), "tok", view.AttemptID, 1, true); !errors.Is(err, util.ErrAttemptSubmitted) {
		t.Fatalf("expected ErrAttemptSubmitted on re-submit, got %v", err)
	}

	// 已交卷快照保留resultId供前端跳转
	v, err := svc.Snapshot(view.AttemptID, 1)
	if err != nil {
		t.Fatalf("snapshot after submit: %v", err)
	}
	if v.State != sessionSubmitted || v.ResultID == "" {
		t.Fatalf("submitted snapshot incomplete: %+v", v)
	}

	// 占位释放后可重新开考
	second, err := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")
	if err != nil {
		t.Fatalf("restart after submit: %v", err)
	}
	if second.AttemptID == view.AttemptID {
		t.Fatal("expected a fresh attempt after submission")
	}
}

func TestCountdownAutoSubmitsExactlyOnce(t *testing.T) {
	exam := publishedExam(2)
	exam.Duration = 1 // 60个tick
	gw := &fakeExamGateway{exam: exam}
	svc := NewExamTakingService(gw, time.Millisecond)
	defer svc.Close()

	view, err := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	svc.SelectAnswer(view.AttemptID, 1, "q1", 0)

	deadline := time.Now().Add(5 * time.Second)
	for {
		v, err := svc.Snapshot(view.AttemptID, 1)
		if err != nil {
			t.Fatalf("snapshot during countdown: %v", err)
		}
		if v.State == sessionSubmitted {
			if v.Remaining != 0 {
				t.Fatalf("expected zero remaining after expiry, got %d", v.Remaining)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("auto-submit never happened, state=%s remaining=%d", v.State, v.Remaining)
		}
		time.Sleep(5 * time.Millisecond)
	}

	// 等倒计时协程彻底退出后确认只交了一次卷
	time.Sleep(50 * time.Millisecond)
	if got := gw.submitted(); got != 1 {
		t.Fatalf("expected exactly one forced submission, got %d", got)
	}
	// 到期强制交卷只打包已作答的题
	if len(gw.lastAnswers) != 1 || gw.lastAnswers[0].QuestionID != "q1" {
		t.Fatalf("unexpected forced submission payload: %+v", gw.lastAnswers)
	}
}

func TestExpiredSessionRetriesWithoutGate(t *testing.T) {
	exam := publishedExam(2)
	exam.Duration = 1
	gw := &fakeExamGateway{exam: exam, submitErr: util.ErrUpstreamUnavailable}
	svc := NewExamTakingService(gw, time.Millisecond)
	defer svc.Close()

	view, _ := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")

	deadline := time.Now().Add(5 * time.Second)
	for {
		v, err := svc.Snapshot(view.AttemptID, 1)
		if err != nil {
			t.Fatalf("snapshot: %v", err)
		}
		if v.State == sessionExpired && gw.submitted() > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("expiry never hit, state=%s", v.State)
		}
		time.Sleep(5 * time.Millisecond)
	}

	// 上游恢复后手动重试，过期会话不再弹未答确认
	gw.clearSubmitErr()
	if _, err := svc.Submit(context.Background(), "tok", view.AttemptID, 1, false); err != nil {
		t.Fatalf("manual retry after failed auto-submit: %v", err)
	}
}

func TestAbandonDiscardsDraft(t *testing.T) {
	gw := &fakeExamGateway{exam: publishedExam(2)}
	svc := NewExamTakingService(gw, time.Second)
	defer svc.Close()

	view, _ := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")
	svc.SelectAnswer(view.AttemptID, 1, "q1", 1)

	if err := svc.Abandon(view.AttemptID, 1); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if _, err := svc.Snapshot(view.AttemptID, 1); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Fatalf("expected ErrAttemptNotFound after abandon, got %v", err)
	}
	if gw.submitted() != 0 {
		t.Fatal("abandon must not submit answers")
	}

	// 放弃后可重新开考，答案草稿不带入
	second, err := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")
	if err != nil {
		t.Fatalf("restart after abandon: %v", err)
	}
	if second.AnsweredCount != 0 {
		t.Fatalf("fresh attempt carried stale answers: %+v", second)
	}
}

func TestSessionIsScopedToOwner(t *testing.T) {
	gw := &fakeExamGateway{exam: publishedExam(1)}
	svc := NewExamTakingService(gw, time.Second)
	defer svc.Close()

	view, _ := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")

	if _, err := svc.Snapshot(view.AttemptID, 2); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Fatalf("expected ErrAttemptNotFound for foreign user, got %v", err)
	}
	if _, err := svc.SelectAnswer(view.AttemptID, 2, "q1", 0); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Fatalf("expected ErrAttemptNotFound for foreign select, got %v", err)
	}
}

func TestProgressRounding(t *testing.T) {
	gw := &fakeExamGateway{exam: publishedExam(3)}
	svc := NewExamTakingService(gw, time.Second)
	defer svc.Close()

	view, _ := svc.StartAttempt(context.Background(), "tok", 1, "exam-1")

	v, _ := svc.SelectAnswer(view.AttemptID, 1, "q1", 0)
	if v.Progress != 33 {
		t.Fatalf("expected 33%%, got %d", v.Progress)
	}
	v, _ = svc.SelectAnswer(view.AttemptID, 1, "q2", 0)
	if v.Progress != 67 {
		t.Fatalf("expected 67%%, got %d", v.Progress)
	}
	v, _ = svc.SelectAnswer(view.AttemptID, 1, "q3", 0)
	if v.Progress != 100 {
		t.Fatalf("expected 100%%, got %d", v.Progress)
	}
}
