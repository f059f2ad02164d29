package controller

import (
	"homecare_portal/internal/service"
	"homecare_portal/internal/util"

	"github.com/gin-gonic/gin"
)

type MessagingController struct {
	Service *service.MessagingService
}

func NewMessagingController(svc *service.MessagingService) *MessagingController {
	return &MessagingController{Service: svc}
}

// @Summary 会话列表
// @Tags 站内信
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/conversations [get]
func (c *MessagingController) ListConversations(ctx *gin.Context) {
	page, limit := queryInt(ctx, "page", 1), queryInt(ctx, "limit", 20)
	list, total, err := c.Service.ListConversations(ctx.Request.Context(), util.BearerToken(ctx), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: page, Limit: limit})
}

// @Summary 会话消息
// @Tags 站内信
// @Produce json
// @Security BearerAuth
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Router /api/conversations/{id}/messages [get]
func (c *MessagingController) Thread(ctx *gin.Context) {
	page, limit := queryInt(ctx, "page", 1), queryInt(ctx, "limit", 50)
	list, total, err := c.Service.Thread(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: page, Limit: limit})
}

type sendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// @Summary 发送消息
// @Tags 站内信
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "会话ID"
// @Param body body sendMessageRequest true "消息内容"
// @Success 201 {object} util.Response
// @Router /api/conversations/{id}/messages [post]
func (c *MessagingController) Send(ctx *gin.Context) {
	var req sendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	msg, err := c.Service.Send(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"), req.Body)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, msg)
}

type startConversationRequest struct {
	Participants []string `json:"participants" binding:"required"`
	Subject      string   `json:"subject"`
	Body         string   `json:"body" binding:"required"`
}

// @Summary 新建会话
// @Tags 站内信
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body startConversationRequest true "参与人与首条消息"
// @Success 201 {object} util.Response
// @Router /api/conversations [post]
func (c *MessagingController) StartConversation(ctx *gin.Context) {
	var req startConversationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	conv, err := c.Service.StartConversation(ctx.Request.Context(), util.BearerToken(ctx), req.Participants, req.Subject, req.Body)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, conv)
}

// @Summary 未读数
// @Tags 站内信
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/conversations/unread [get]
func (c *MessagingController) UnreadCount(ctx *gin.Context) {
	n, err := c.Service.UnreadCount(ctx.Request.Context(), util.BearerToken(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"unread": n})
}

// @Summary 标记会话已读
// @Tags 站内信
// @Produce json
// @Security BearerAuth
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Router /api/conversations/{id}/read [put]
func (c *MessagingController) MarkRead(ctx *gin.Context) {
	if err := c.Service.MarkRead(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
