package controller

import (
	"errors"
	"strconv"

	"homecare_portal/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError 服务层/上游错误到HTTP状态码的统一映射
func respondError(ctx *gin.Context, err error) {
	var unanswered *util.UnansweredError
	switch {
	case errors.As(err, &unanswered):
		// 未答确认不是错误，是一次需要用户拍板的往返
		util.Conflict(ctx, "unanswered questions require confirmation", gin.H{
			"unanswered":      unanswered.Unanswered,
			"confirmRequired": true,
		})
	case errors.Is(err, util.ErrExamNotFound),
		errors.Is(err, util.ErrAttemptNotFound),
		errors.Is(err, util.ErrUpstreamNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrSubmissionInFlight):
		util.Conflict(ctx, err.Error(), nil)
	case errors.Is(err, util.ErrExamNotPublished),
		errors.Is(err, util.ErrExamNoQuestions),
		errors.Is(err, util.ErrAttemptSubmitted),
		errors.Is(err, util.ErrQuestionNotInExam),
		errors.Is(err, util.ErrIndexOutOfRange),
		errors.Is(err, util.ErrBadViewMode),
		errors.Is(err, util.ErrUpstreamRejected):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrUpstreamUnavailable):
		util.BadGateway(ctx, "care platform unavailable")
	default:
		util.LogInternalError(ctx, err)
	}
}

func queryInt(ctx *gin.Context, key string, def int) int {
	if v := ctx.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
