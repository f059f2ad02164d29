package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"homecare_portal/internal/config"
	"homecare_portal/internal/model"
	"homecare_portal/internal/util"
	"homecare_portal/pkg/logger"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(&config.UpstreamConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
}

func TestClientForwardsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(model.Exam{ID: "exam-1", Status: model.ExamPublished})
	}))
	defer srv.Close()

	api := NewExamAPI(newTestClient(srv))
	if _, err := api.Get(context.Background(), "token-abc", "exam-1"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotAuth != "Bearer token-abc" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClientStatusMapping(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"not found", http.StatusNotFound, `{}`, util.ErrUpstreamNotFound},
		{"unauthorized", http.StatusUnauthorized, `{}`, util.ErrPermissionDenied},
		{"forbidden", http.StatusForbidden, `{}`, util.ErrPermissionDenied},
		{"rejected", http.StatusUnprocessableEntity, `{"message":"duplicate title"}`, util.ErrUpstreamRejected},
		{"server error", http.StatusInternalServerError, `{}`, util.ErrUpstreamUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			api := NewExamAPI(newTestClient(srv))
			_, err := api.Get(context.Background(), "tok", "exam-1")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestClientRejectedCarriesUpstreamMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"exam already archived"}`))
	}))
	defer srv.Close()

	api := NewExamAPI(newTestClient(srv))
	_, err := api.SetStatus(context.Background(), "tok", "exam-1", model.ExamArchived)
	if !errors.Is(err, util.ErrUpstreamRejected) {
		t.Fatalf("expected ErrUpstreamRejected, got %v", err)
	}
	if err.Error() == util.ErrUpstreamRejected.Error() {
		t.Fatal("upstream message was dropped from the error")
	}
}

func TestClientTransportErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // 立即关掉，模拟上游不可达

	api := NewExamAPI(newTestClient(srv))
	_, err := api.Get(context.Background(), "tok", "exam-1")
	if !errors.Is(err, util.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestListEnvelopeAndPaging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("limit") != "10" || q.Get("status") != model.ExamPublished {
			t.Errorf("unexpected query: %v", q)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"list":  []model.Exam{{ID: "exam-1"}, {ID: "exam-2"}},
			"total": 12,
		})
	}))
	defer srv.Close()

	api := NewExamAPI(newTestClient(srv))
	list, total, err := api.List(context.Background(), "tok", model.ExamPublished, 2, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || total != 12 {
		t.Fatalf("unexpected page: %d items, total %d", len(list), total)
	}
}

func TestSubmitAttemptPayload(t *testing.T) {
	var got struct {
		AttemptID string                `json:"attemptId"`
		Answers   []model.AttemptAnswer `json:"answers"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/attempts/attempt-7/submit" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(map[string]string{"resultId": "result-9"})
	}))
	defer srv.Close()

	api := NewExamAPI(newTestClient(srv))
	answers := []model.AttemptAnswer{
		{QuestionID: "q1", SelectedAnswer: 2},
		{QuestionID: "q3", SelectedAnswer: 0},
	}
	resultID, err := api.SubmitAttempt(context.Background(), "tok", "attempt-7", answers)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if resultID != "result-9" {
		t.Fatalf("unexpected result id %q", resultID)
	}
	if got.AttemptID != "attempt-7" || len(got.Answers) != 2 || got.Answers[0].QuestionID != "q1" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}
