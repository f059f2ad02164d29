package controller

import (
	"homecare_portal/internal/service"
	"homecare_portal/internal/util"

	"github.com/gin-gonic/gin"
)

// ExamTakingController 限时作答流程：开考、答题、导航、交卷
type ExamTakingController struct {
	Service *service.ExamTakingService
}

func NewExamTakingController(svc *service.ExamTakingService) *ExamTakingController {
	return &ExamTakingController{Service: svc}
}

// @Summary 开始作答
// @Tags 培训考试
// @Produce json
// @Security BearerAuth
// @Param id path string true "考试ID"
// @Success 201 {object} util.Response
// @Router /api/training/exams/{id}/attempts [post]
func (c *ExamTakingController) StartAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	view, err := c.Service.StartAttempt(ctx.Request.Context(), util.BearerToken(ctx), user.UserID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, view)
}

// @Summary 作答会话快照
// @Tags 培训考试
// @Produce json
// @Security BearerAuth
// @Param id path string true "作答ID"
// @Success 200 {object} util.Response
// @Router /api/training/attempts/{id} [get]
func (c *ExamTakingController) GetSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	view, err := c.Service.Snapshot(ctx.Param("id"), user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

type selectAnswerRequest struct {
	QuestionID     string `json:"questionId" binding:"required"`
	SelectedAnswer *int   `json:"selectedAnswer" binding:"required"`
}

// @Summary 记录某题的选项（幂等覆盖）
// @Tags 培训考试
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "作答ID"
// @Param body body selectAnswerRequest true "题目与选项"
// @Success 200 {object} util.Response
// @Router /api/training/attempts/{id}/answers [put]
func (c *ExamTakingController) SelectAnswer(ctx *gin.Context) {
	var req selectAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := util.GetUserFromContext(ctx)
	view, err := c.Service.SelectAnswer(ctx.Param("id"), user.UserID, req.QuestionID, *req.SelectedAnswer)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

type navigateRequest struct {
	Index     *int   `json:"index"`
	Direction string `json:"direction"` // next | prev
}

// @Summary 单题视图跳转。index为绝对跳转，direction为相对跳转（边界处停住）
// @Tags 培训考试
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "作答ID"
// @Param body body navigateRequest true "目标题号（从0起）或方向"
// @Success 200 {object} util.Response
// @Router /api/training/attempts/{id}/position [put]
func (c *ExamTakingController) Navigate(ctx *gin.Context) {
	var req navigateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := util.GetUserFromContext(ctx)

	var view *service.SessionView
	var err error
	switch {
	case req.Index != nil:
		view, err = c.Service.Navigate(ctx.Param("id"), user.UserID, *req.Index)
	case req.Direction == "next":
		view, err = c.Service.Step(ctx.Param("id"), user.UserID, 1)
	case req.Direction == "prev":
		view, err = c.Service.Step(ctx.Param("id"), user.UserID, -1)
	default:
		util.BadRequest(ctx, "index or direction is required")
		return
	}
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

type viewModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// @Summary 切换单题/整卷视图
// @Tags 培训考试
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "作答ID"
// @Param body body viewModeRequest true "single 或 all"
// @Success 200 {object} util.Response
// @Router /api/training/attempts/{id}/view [put]
func (c *ExamTakingController) SetViewMode(ctx *gin.Context) {
	var req viewModeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := util.GetUserFromContext(ctx)
	view, err := c.Service.SetViewMode(ctx.Param("id"), user.UserID, req.Mode)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

type submitRequest struct {
	Confirm bool `json:"confirm"`
}

// @Summary 交卷。存在未答题且未确认时返回409与未答数
// @Tags 培训考试
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "作答ID"
// @Param body body submitRequest false "confirm=true表示已确认仍要交卷"
// @Success 200 {object} util.Response
// @Router /api/training/attempts/{id}/submit [post]
func (c *ExamTakingController) Submit(ctx *gin.Context) {
	var req submitRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	user := util.GetUserFromContext(ctx)
	resultID, err := c.Service.Submit(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"), user.UserID, req.Confirm)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"resultId": resultID})
}

// @Summary 放弃作答，丢弃答案草稿
// @Tags 培训考试
// @Produce json
// @Security BearerAuth
// @Param id path string true "作答ID"
// @Success 200 {object} util.Response
// @Router /api/training/attempts/{id} [delete]
func (c *ExamTakingController) Abandon(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if err := c.Service.Abandon(ctx.Param("id"), user.UserID); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
