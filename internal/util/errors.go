package util

import "errors"

var (
	ErrPermissionDenied      = errors.New("permission denied")
	ErrExamNotFound          = errors.New("exam not found")
	ErrExamNotPublished      = errors.New("exam not published or not accessible")
	ErrExamNoQuestions       = errors.New("exam has no questions")
	ErrAttemptNotFound       = errors.New("attempt not found")
	ErrAttemptSubmitted      = errors.New("attempt already submitted")
	ErrSubmissionInFlight    = errors.New("submission already in progress")
	ErrQuestionNotInExam     = errors.New("question does not belong to this exam")
	ErrIndexOutOfRange       = errors.New("question index out of range")
	ErrBadViewMode           = errors.New("view mode must be single or all")
	ErrUpstreamUnavailable   = errors.New("care platform unavailable")
	ErrUpstreamNotFound      = errors.New("resource not found on care platform")
	ErrUpstreamRejected      = errors.New("care platform rejected the request")
)

// UnansweredError 提交前存在未作答题目，需用户显式确认后重试
type UnansweredError struct {
	Unanswered int
}

func (e *UnansweredError) Error() string {
	return "attempt has unanswered questions"
}
