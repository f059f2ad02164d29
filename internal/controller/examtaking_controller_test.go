package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"homecare_portal/internal/model"
	"homecare_portal/internal/service"
	"homecare_portal/internal/util"
	"homecare_portal/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type stubExamGateway struct {
	exam *model.Exam
}

func (s *stubExamGateway) Get(ctx context.Context, bearer, id string) (*model.Exam, error) {
	if s.exam == nil || s.exam.ID != id {
		return nil, util.ErrUpstreamNotFound
	}
	return s.exam, nil
}

func (s *stubExamGateway) StartAttempt(ctx context.Context, bearer, examID string) (*model.ExamAttempt, error) {
	return &model.ExamAttempt{ID: "attempt-1", ExamID: examID, StartedAt: time.Now()}, nil
}

func (s *stubExamGateway) SubmitAttempt(ctx context.Context, bearer, attemptID string, answers []model.AttemptAnswer) (string, error) {
	return "result-1", nil
}

func testExam() *model.Exam {
	exam := &model.Exam{ID: "exam-1", Title: "急救流程考核", Status: model.ExamPublished, Duration: 30}
	for i := 1; i <= 2; i++ {
		exam.Questions = append(exam.Questions, model.ExamQuestion{
			ID:      fmt.Sprintf("q%d", i),
			Prompt:  fmt.Sprintf("question %d", i),
			Options: []string{"A", "B", "C"},
			Points:  1,
		})
	}
	return exam
}

// trainingRouter 装配作答路由，auth中间件用注入好的claims替代
func trainingRouter(svc *service.ExamTakingService) *gin.Engine {
	c := NewExamTakingController(svc)

	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		ctx.Set("user", &util.Claims{UserID: 7, Role: model.RoleNurse})
		ctx.Set("bearer", "test-token")
	})

	training := r.Group("/api/training")
	{
		training.POST("/exams/:id/attempts", c.StartAttempt)
		training.GET("/attempts/:id", c.GetSession)
		training.PUT("/attempts/:id/answers", c.SelectAnswer)
		training.PUT("/attempts/:id/position", c.Navigate)
		training.PUT("/attempts/:id/view", c.SetViewMode)
		training.POST("/attempts/:id/submit", c.Submit)
		training.DELETE("/attempts/:id", c.Abandon)
	}
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Code    int                    `json:"code"`
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return resp.Data
}

func TestExamTakingFlowOverHTTP(t *testing.T) {
	svc := service.NewExamTakingService(&stubExamGateway{exam: testExam()}, time.Second)
	defer svc.Close()
	r := trainingRouter(svc)

	// 开考
	w := doJSON(r, http.MethodPost, "/api/training/exams/exam-1/attempts", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("start: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	attemptID, _ := data["attemptId"].(string)
	if attemptID == "" {
		t.Fatalf("missing attemptId: %v", data)
	}

	// 答一题
	w = doJSON(r, http.MethodPut, "/api/training/attempts/"+attemptID+"/answers", `{"questionId":"q1","selectedAnswer":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("select: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// 相对跳转
	w = doJSON(r, http.MethodPut, "/api/training/attempts/"+attemptID+"/position", `{"direction":"next"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("step next: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// 有未答题，未确认交卷返回409并携带未答数
	w = doJSON(r, http.MethodPost, "/api/training/attempts/"+attemptID+"/submit", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("gated submit: expected 409, got %d: %s", w.Code, w.Body.String())
	}
	data = decodeData(t, w)
	if data["confirmRequired"] != true || data["unanswered"] != float64(1) {
		t.Fatalf("bad confirmation payload: %v", data)
	}

	// 确认后交卷成功
	w = doJSON(r, http.MethodPost, "/api/training/attempts/"+attemptID+"/submit", `{"confirm":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("confirmed submit: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data = decodeData(t, w)
	if data["resultId"] != "result-1" {
		t.Fatalf("missing resultId: %v", data)
	}
}

func TestExamTakingHTTPErrors(t *testing.T) {
	svc := service.NewExamTakingService(&stubExamGateway{exam: testExam()}, time.Second)
	defer svc.Close()
	r := trainingRouter(svc)

	// 不存在的考试
	if w := doJSON(r, http.MethodPost, "/api/training/exams/nope/attempts", ""); w.Code != http.StatusNotFound {
		t.Fatalf("unknown exam: expected 404, got %d", w.Code)
	}

	// 不存在的作答会话
	if w := doJSON(r, http.MethodGet, "/api/training/attempts/nope", ""); w.Code != http.StatusNotFound {
		t.Fatalf("unknown attempt: expected 404, got %d", w.Code)
	}

	// 缺字段的答题请求
	w := doJSON(r, http.MethodPost, "/api/training/exams/exam-1/attempts", "")
	attemptID, _ := decodeData(t, w)["attemptId"].(string)

	if w := doJSON(r, http.MethodPut, "/api/training/attempts/"+attemptID+"/answers", `{"questionId":"q1"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing selectedAnswer: expected 400, got %d", w.Code)
	}

	// 界外跳转
	if w := doJSON(r, http.MethodPut, "/api/training/attempts/"+attemptID+"/position", `{"index":9}`); w.Code != http.StatusBadRequest {
		t.Fatalf("out of range navigate: expected 400, got %d", w.Code)
	}

	// 非法视图模式
	if w := doJSON(r, http.MethodPut, "/api/training/attempts/"+attemptID+"/view", `{"mode":"grid"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("bad view mode: expected 400, got %d", w.Code)
	}
}
