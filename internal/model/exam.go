package model

import "time"

const (
	ExamDraft     = "draft"
	ExamPublished = "published"
	ExamArchived  = "archived"
)

// ExamQuestion 单选题。CorrectAnswer 与 Explanation 仅教务视图可见
type ExamQuestion struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Points        int      `json:"points"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Exam 培训考试，Duration 单位为分钟
type Exam struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Duration     int            `json:"duration"`
	PassingScore int            `json:"passingScore"`
	MaxAttempts  int            `json:"maxAttempts"`
	Status       string         `json:"status"`
	Questions    []ExamQuestion `json:"questions"`
}

// StudentExamQuestion 学员视图，去除正确答案与解析
type StudentExamQuestion struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Points  int      `json:"points"`
}

// ExamAttempt 上游创建的作答实例。QuestionOrder 为题目ID的展示顺序排列，
// 缺省时按考试原始顺序
type ExamAttempt struct {
	ID            string   `json:"id"`
	ExamID        string   `json:"examId"`
	QuestionOrder []string  `json:"questionOrder,omitempty"`
	StartedAt     time.Time `json:"startedAt"`
}

// AttemptAnswer 提交时的单题选项
type AttemptAnswer struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer int    `json:"selectedAnswer"`
}

// ExamResult 上游判分结果，门户仅展示
type ExamResult struct {
	ID            string `json:"id"`
	AttemptID     string `json:"attemptId"`
	ExamID        string `json:"examId"`
	Score         int    `json:"score"`
	TotalPoints   int    `json:"totalPoints"`
	Passed        bool   `json:"passed"`
	CertificateID string `json:"certificateId,omitempty"`
}
