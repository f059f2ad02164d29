package controller

import (
	"homecare_portal/internal/service"
	"homecare_portal/internal/util"

	"github.com/gin-gonic/gin"
)

// ExamController 考试编辑（教务）与查询（学员）
type ExamController struct {
	Service *service.ExamService
}

func NewExamController(svc *service.ExamService) *ExamController {
	return &ExamController{Service: svc}
}

// @Summary 已发布考试列表
// @Tags 培训考试
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码"
// @Param limit query int false "每页条数"
// @Success 200 {object} util.Response
// @Router /api/training/exams [get]
func (c *ExamController) ListPublished(ctx *gin.Context) {
	page := queryInt(ctx, "page", 1)
	limit := queryInt(ctx, "limit", 20)

	list, total, err := c.Service.ListPublished(ctx.Request.Context(), util.BearerToken(ctx), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: page, Limit: limit})
}

// @Summary 考试详情（学员视图，不含答案）
// @Tags 培训考试
// @Produce json
// @Security BearerAuth
// @Param id path string true "考试ID"
// @Success 200 {object} util.Response
// @Router /api/training/exams/{id} [get]
func (c *ExamController) GetForStudent(ctx *gin.Context) {
	exam, err := c.Service.GetForStudent(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, exam)
}

// @Summary 成绩详情
// @Tags 培训考试
// @Produce json
// @Security BearerAuth
// @Param id path string true "成绩ID"
// @Success 200 {object} util.Response
// @Router /api/training/results/{id} [get]
func (c *ExamController) GetResult(ctx *gin.Context) {
	r, err := c.Service.GetResult(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, r)
}

// @Summary 考试列表（教务，含草稿/归档）
// @Tags 考试管理
// @Produce json
// @Security BearerAuth
// @Param status query string false "draft | published | archived"
// @Success 200 {object} util.Response
// @Router /api/admin/exams [get]
func (c *ExamController) ListAll(ctx *gin.Context) {
	page := queryInt(ctx, "page", 1)
	limit := queryInt(ctx, "limit", 20)

	list, total, err := c.Service.ListAll(ctx.Request.Context(), util.BearerToken(ctx), ctx.Query("status"), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: page, Limit: limit})
}

// @Summary 考试详情（教务视图，含答案与解析）
// @Tags 考试管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "考试ID"
// @Success 200 {object} util.Response
// @Router /api/admin/exams/{id} [get]
func (c *ExamController) GetForAuthor(ctx *gin.Context) {
	exam, err := c.Service.GetForAuthor(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, exam)
}

// @Summary 创建考试
// @Tags 考试管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ExamRequest true "考试内容"
// @Success 201 {object} util.Response
// @Router /api/admin/exams [post]
func (c *ExamController) Create(ctx *gin.Context) {
	var req service.ExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.Service.Create(ctx.Request.Context(), util.BearerToken(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, exam)
}

// @Summary 更新考试
// @Tags 考试管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "考试ID"
// @Param body body service.ExamRequest true "考试内容"
// @Success 200 {object} util.Response
// @Router /api/admin/exams/{id} [put]
func (c *ExamController) Update(ctx *gin.Context) {
	var req service.ExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.Service.Update(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, exam)
}

type examStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// @Summary 考试状态流转
// @Tags 考试管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "考试ID"
// @Param body body examStatusRequest true "目标状态"
// @Success 200 {object} util.Response
// @Router /api/admin/exams/{id}/status [put]
func (c *ExamController) SetStatus(ctx *gin.Context) {
	var req examStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.Service.SetStatus(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"), req.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, exam)
}
