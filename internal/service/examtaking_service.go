package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"homecare_portal/internal/model"
	"homecare_portal/internal/util"
	"homecare_portal/pkg/logger"
	"homecare_portal/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExamGateway 作答流程依赖的上游操作，显式注入便于单测
type ExamGateway interface {
	Get(ctx context.Context, bearer, id string) (*model.Exam, error)
	StartAttempt(ctx context.Context, bearer, examID string) (*model.ExamAttempt, error)
	SubmitAttempt(ctx context.Context, bearer, attemptID string, answers []model.AttemptAnswer) (string, error)
}

const (
	ViewSingle = "single"
	ViewAll    = "all"

	sessionRunning   = "running"
	sessionExpired   = "expired"
	sessionSubmitted = "submitted"
)

// ExamSession 一次作答的门户侧瞬时状态。答案草稿只存在于进程内，
// 进程重启即丢失，与浏览器端"刷新丢失未交卷答案"的行为对齐
type ExamSession struct {
	AttemptID string
	ExamID    string
	UserID    uint

	mu        sync.Mutex
	traceID   string
	bearer    string
	title     string
	questions []model.StudentExamQuestion // 展示顺序
	answers   map[string]int              // questionID -> 选项下标
	current   int
	viewMode  string
	remaining int // 秒
	state     string
	inFlight  bool
	resultID  string

	submitOnce sync.Once
	stop       chan struct{}
	stopOnce   sync.Once
	gaugeOnce  sync.Once
}

// SessionView 返回给前端渲染的会话快照
type SessionView struct {
	AttemptID      string                      `json:"attemptId"`
	ExamID         string                      `json:"examId"`
	Title          string                      `json:"title"`
	Questions      []model.StudentExamQuestion `json:"questions"`
	Answers        map[string]int              `json:"answers"`
	AnsweredCount  int                         `json:"answeredCount"`
	TotalQuestions int                         `json:"totalQuestions"`
	Progress       int                         `json:"progress"`
	CurrentIndex   int                         `json:"currentIndex"`
	ViewMode       string                      `json:"viewMode"`
	Remaining      int                         `json:"remainingSeconds"`
	State          string                      `json:"state"`
	ResultID       string                      `json:"resultId,omitempty"`
}

// retainSubmitted 交卷后会话保留的时长，供前端拉取resultId后跳转
const retainSubmitted = 10 * time.Minute

type ExamTakingService struct {
	exams ExamGateway
	tick  time.Duration

	mu         sync.Mutex
	sessions   map[string]*ExamSession // attemptID -> session
	byUserExam map[string]string       // "userID:examID" -> attemptID，防止重复开考
}

func NewExamTakingService(exams ExamGateway, tick time.Duration) *ExamTakingService {
	if tick <= 0 {
		tick = time.Second
	}
	return &ExamTakingService{
		exams:      exams,
		tick:       tick,
		sessions:   make(map[string]*ExamSession),
		byUserExam: make(map[string]string),
	}
}

func userExamKey(userID uint, examID string) string {
	return fmt.Sprintf("%d:%s", userID, examID)
}

// StartAttempt 开始作答。同一用户同一考试已有进行中的会话时直接返回该会话，
// 不会向上游重复创建；空卷考试不创建会话也不起倒计时
func (s *ExamTakingService) StartAttempt(ctx context.Context, bearer string, userID uint, examID string) (*SessionView, error) {
	s.mu.Lock()
	if attemptID, ok := s.byUserExam[userExamKey(userID, examID)]; ok {
		if sess, ok := s.sessions[attemptID]; ok {
			s.mu.Unlock()
			return sess.view(), nil
		}
	}
	s.mu.Unlock()

	exam, err := s.exams.Get(ctx, bearer, examID)
	if err != nil {
		if err == util.ErrUpstreamNotFound {
			return nil, util.ErrExamNotFound
		}
		return nil, err
	}
	if exam.Status != model.ExamPublished {
		return nil, util.ErrExamNotPublished
	}
	if len(exam.Questions) == 0 {
		return nil, util.ErrExamNoQuestions
	}

	attempt, err := s.exams.StartAttempt(ctx, bearer, examID)
	if err != nil {
		return nil, err
	}

	sess := &ExamSession{
		AttemptID: attempt.ID,
		ExamID:    examID,
		UserID:    userID,
		traceID:   uuid.NewString(),
		bearer:    bearer,
		title:     exam.Title,
		questions: orderQuestions(exam.Questions, attempt.QuestionOrder),
		answers:   make(map[string]int),
		viewMode:  ViewSingle,
		remaining: exam.Duration * 60,
		state:     sessionRunning,
		stop:      make(chan struct{}),
	}

	s.mu.Lock()
	// 竞争下以先注册者为准，后来者的上游attempt弃用
	if attemptID, ok := s.byUserExam[userExamKey(userID, examID)]; ok {
		if existing, ok := s.sessions[attemptID]; ok {
			s.mu.Unlock()
			return existing.view(), nil
		}
	}
	s.sessions[attempt.ID] = sess
	s.byUserExam[userExamKey(userID, examID)] = attempt.ID
	s.mu.Unlock()

	monitoring.ActiveExamSessions.Inc()
	logger.Log.Info("Exam attempt started",
		zap.String("trace", sess.traceID),
		zap.String("attempt", attempt.ID),
		zap.String("exam", examID),
		zap.Uint("user", userID),
		zap.Int("seconds", sess.remaining))

	go s.runCountdown(sess)

	return sess.view(), nil
}

// orderQuestions 按上游指定的排列重排学员视图；排列缺失或不完整时剩余题目
// 依原始顺序补在末尾
func orderQuestions(questions []model.ExamQuestion, order []string) []model.StudentExamQuestion {
	byID := make(map[string]model.ExamQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	out := make([]model.StudentExamQuestion, 0, len(questions))
	seen := make(map[string]bool, len(questions))
	for _, id := range order {
		q, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, toStudentQuestion(q))
	}
	for _, q := range questions {
		if !seen[q.ID] {
			out = append(out, toStudentQuestion(q))
		}
	}
	return out
}

func toStudentQuestion(q model.ExamQuestion) model.StudentExamQuestion {
	return model.StudentExamQuestion{
		ID:      q.ID,
		Prompt:  q.Prompt,
		Options: q.Options,
		Points:  q.Points,
	}
}

// runCountdown 每个会话一个倒计时goroutine。到零时走新鲜闭包触发强制交卷，
// 不经过未答确认
func (s *ExamTakingService) runCountdown(sess *ExamSession) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-sess.stop:
			return
		case <-ticker.C:
			if sess.tickDown() {
				s.autoSubmit(sess)
				return
			}
		}
	}
}

// tickDown 递减一秒，到零时迁移到expired并返回true（仅发生一次）
func (sess *ExamSession) tickDown() bool {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state != sessionRunning {
		return false
	}
	sess.remaining--
	if sess.remaining <= 0 {
		sess.remaining = 0
		sess.state = sessionExpired
		return true
	}
	return false
}

func (s *ExamTakingService) autoSubmit(sess *ExamSession) {
	sess.submitOnce.Do(func() {
		monitoring.ExamAutoSubmits.Inc()
		logger.Log.Info("Exam timer expired, forcing submission",
			zap.String("trace", sess.traceID),
			zap.String("attempt", sess.AttemptID))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := s.finalize(ctx, sess, sess.bearer); err != nil {
			// 会话保留，用户可手动重试交卷（已过期，不再弹未答确认）
			logger.Log.Error("Auto-submit failed, session kept for manual retry",
				zap.String("trace", sess.traceID),
				zap.String("attempt", sess.AttemptID),
				zap.Error(err))
		}
	})
}

// SelectAnswer 记录/覆盖某题的选项。重复选择为幂等覆盖，已答题数不变。
// 选项下标不在此层做越界校验，越界防护在出题保存时完成
func (s *ExamTakingService) SelectAnswer(attemptID string, userID uint, questionID string, option int) (*SessionView, error) {
	sess, err := s.lookup(attemptID, userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state == sessionSubmitted {
		return nil, util.ErrAttemptSubmitted
	}

	found := false
	for _, q := range sess.questions {
		if q.ID == questionID {
			found = true
			break
		}
	}
	if !found {
		return nil, util.ErrQuestionNotInExam
	}

	sess.answers[questionID] = option
	return sess.viewLocked(), nil
}

// Navigate 单题视图下的跳转；不触碰答案状态
func (s *ExamTakingService) Navigate(attemptID string, userID uint, index int) (*SessionView, error) {
	sess, err := s.lookup(attemptID, userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if index < 0 || index >= len(sess.questions) {
		return nil, util.ErrIndexOutOfRange
	}
	sess.current = index
	return sess.viewLocked(), nil
}

// Step 相对跳转，前端的"上一题/下一题"按钮。越过两端时停在边界
func (s *ExamTakingService) Step(attemptID string, userID uint, delta int) (*SessionView, error) {
	sess, err := s.lookup(attemptID, userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	next := sess.current + delta
	if next < 0 {
		next = 0
	}
	if last := len(sess.questions) - 1; next > last {
		next = last
	}
	sess.current = next
	return sess.viewLocked(), nil
}

// SetViewMode 切换单题/整卷视图，不改变答案与当前题号
func (s *ExamTakingService) SetViewMode(attemptID string, userID uint, mode string) (*SessionView, error) {
	if mode != ViewSingle && mode != ViewAll {
		return nil, util.ErrBadViewMode
	}

	sess, err := s.lookup(attemptID, userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.viewMode = mode
	return sess.viewLocked(), nil
}

func (s *ExamTakingService) Snapshot(attemptID string, userID uint) (*SessionView, error) {
	sess, err := s.lookup(attemptID, userID)
	if err != nil {
		return nil, err
	}
	return sess.view(), nil
}

// Submit 交卷。存在未答题且未经确认时返回UnansweredError（携带准确的未答数），
// 调用方确认后以confirm=true重试；倒计时已到期的会话不再设卡。
// 上游失败时答案与会话原样保留，可手动重试
func (s *ExamTakingService) Submit(ctx context.Context, bearer, attemptID string, userID uint, confirm bool) (string, error) {
	sess, err := s.lookup(attemptID, userID)
	if err != nil {
		return "", err
	}

	sess.mu.Lock()
	if sess.state == sessionSubmitted {
		sess.mu.Unlock()
		return "", util.ErrAttemptSubmitted
	}
	if sess.inFlight {
		sess.mu.Unlock()
		return "", util.ErrSubmissionInFlight
	}
	if sess.state == sessionRunning && !confirm {
		if unanswered := len(sess.questions) - len(sess.answers); unanswered > 0 {
			sess.mu.Unlock()
			return "", &util.UnansweredError{Unanswered: unanswered}
		}
	}
	sess.mu.Unlock()

	if bearer == "" {
		bearer = sess.bearer
	}
	return s.finalize(ctx, sess, bearer)
}

// finalize 打包答案并提交上游；成功后销毁会话
func (s *ExamTakingService) finalize(ctx context.Context, sess *ExamSession, bearer string) (string, error) {
	sess.mu.Lock()
	if sess.state == sessionSubmitted {
		sess.mu.Unlock()
		return "", util.ErrAttemptSubmitted
	}
	if sess.inFlight {
		sess.mu.Unlock()
		return "", util.ErrSubmissionInFlight
	}
	sess.inFlight = true

	// 按展示顺序打包已作答的题目
	answers := make([]model.AttemptAnswer, 0, len(sess.answers))
	for _, q := range sess.questions {
		if opt, ok := sess.answers[q.ID]; ok {
			answers = append(answers, model.AttemptAnswer{QuestionID: q.ID, SelectedAnswer: opt})
		}
	}
	sess.mu.Unlock()

	resultID, err := s.exams.SubmitAttempt(ctx, bearer, sess.AttemptID, answers)
	if err != nil {
		sess.mu.Lock()
		sess.inFlight = false
		sess.mu.Unlock()
		return "", err
	}

	sess.mu.Lock()
	sess.state = sessionSubmitted
	sess.inFlight = false
	sess.resultID = resultID
	sess.mu.Unlock()

	// 停表并释放"进行中"占位，已交卷快照保留一段时间供前端取resultId
	sess.stopOnce.Do(func() { close(sess.stop) })
	sess.gaugeOnce.Do(func() { monitoring.ActiveExamSessions.Dec() })

	s.mu.Lock()
	delete(s.byUserExam, userExamKey(sess.UserID, sess.ExamID))
	s.mu.Unlock()

	time.AfterFunc(retainSubmitted, func() { s.remove(sess) })

	logger.Log.Info("Exam attempt submitted",
		zap.String("trace", sess.traceID),
		zap.String("attempt", sess.AttemptID),
		zap.Int("answered", len(answers)),
		zap.String("result", resultID))
	return resultID, nil
}

// Abandon 放弃作答（对应前端组件卸载），停表并丢弃答案草稿
func (s *ExamTakingService) Abandon(attemptID string, userID uint) error {
	sess, err := s.lookup(attemptID, userID)
	if err != nil {
		return err
	}

	logger.Log.Info("Exam attempt abandoned",
		zap.String("trace", sess.traceID),
		zap.String("attempt", sess.AttemptID))
	s.teardown(sess)
	return nil
}

// Close 停止全部会话，服务关停时调用
func (s *ExamTakingService) Close() {
	s.mu.Lock()
	sessions := make([]*ExamSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		s.teardown(sess)
	}
}

func (s *ExamTakingService) teardown(sess *ExamSession) {
	sess.stopOnce.Do(func() {
		close(sess.stop)
	})
	sess.gaugeOnce.Do(func() { monitoring.ActiveExamSessions.Dec() })
	s.remove(sess)
}

func (s *ExamTakingService) remove(sess *ExamSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sess.AttemptID]; ok {
		delete(s.sessions, sess.AttemptID)
	}
	if s.byUserExam[userExamKey(sess.UserID, sess.ExamID)] == sess.AttemptID {
		delete(s.byUserExam, userExamKey(sess.UserID, sess.ExamID))
	}
}

func (s *ExamTakingService) lookup(attemptID string, userID uint) (*ExamSession, error) {
	s.mu.Lock()
	sess, ok := s.sessions[attemptID]
	s.mu.Unlock()
	if !ok || sess.UserID != userID {
		return nil, util.ErrAttemptNotFound
	}
	return sess, nil
}

func (sess *ExamSession) view() *SessionView {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.viewLocked()
}

func (sess *ExamSession) viewLocked() *SessionView {
	answers := make(map[string]int, len(sess.answers))
	for k, v := range sess.answers {
		answers[k] = v
	}

	total := len(sess.questions)
	answered := len(sess.answers)
	progress := 0
	if total > 0 {
		progress = (answered*100 + total/2) / total
	}

	return &SessionView{
		AttemptID:      sess.AttemptID,
		ExamID:         sess.ExamID,
		Title:          sess.title,
		Questions:      sess.questions,
		Answers:        answers,
		AnsweredCount:  answered,
		TotalQuestions: total,
		Progress:       progress,
		CurrentIndex:   sess.current,
		ViewMode:       sess.viewMode,
		Remaining:      sess.remaining,
		State:          sess.state,
		ResultID:       sess.resultID,
	}
}
