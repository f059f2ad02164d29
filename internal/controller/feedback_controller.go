package controller

import (
	"homecare_portal/internal/model"
	"homecare_portal/internal/service"
	"homecare_portal/internal/util"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	Service *service.FeedbackService
}

func NewFeedbackController(svc *service.FeedbackService) *FeedbackController {
	return &FeedbackController{Service: svc}
}

// @Summary 反馈列表
// @Tags 反馈
// @Produce json
// @Security BearerAuth
// @Param targetType query string false "staff | service | facility"
// @Param targetId query string false "对象ID"
// @Success 200 {object} util.Response
// @Router /api/feedback [get]
func (c *FeedbackController) List(ctx *gin.Context) {
	page, limit := queryInt(ctx, "page", 1), queryInt(ctx, "limit", 20)
	list, total, err := c.Service.List(ctx.Request.Context(), util.BearerToken(ctx), ctx.Query("targetType"), ctx.Query("targetId"), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: page, Limit: limit})
}

type feedbackRequest struct {
	PatientID  string `json:"patientId"`
	TargetType string `json:"targetType" binding:"required"`
	TargetID   string `json:"targetId" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

// @Summary 提交反馈
// @Tags 反馈
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body feedbackRequest true "反馈内容"
// @Success 201 {object} util.Response
// @Router /api/feedback [post]
func (c *FeedbackController) Create(ctx *gin.Context) {
	var req feedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	fb, err := c.Service.Create(ctx.Request.Context(), util.BearerToken(ctx), &model.Feedback{
		PatientID:  req.PatientID,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, fb)
}

// @Summary 评分汇总
// @Tags 反馈
// @Produce json
// @Security BearerAuth
// @Param targetType query string true "对象类型"
// @Param targetId query string true "对象ID"
// @Success 200 {object} util.Response
// @Router /api/feedback/summary [get]
func (c *FeedbackController) Summary(ctx *gin.Context) {
	targetType, targetID := ctx.Query("targetType"), ctx.Query("targetId")
	if targetType == "" || targetID == "" {
		util.BadRequest(ctx, "targetType and targetId are required")
		return
	}

	s, err := c.Service.Summary(ctx.Request.Context(), util.BearerToken(ctx), targetType, targetID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, s)
}
