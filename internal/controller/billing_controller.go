package controller

import (
	"homecare_portal/internal/model"
	"homecare_portal/internal/service"
	"homecare_portal/internal/util"

	"github.com/gin-gonic/gin"
)

type BillingController struct {
	Service *service.BillingService
}

func NewBillingController(svc *service.BillingService) *BillingController {
	return &BillingController{Service: svc}
}

// @Summary 账单列表
// @Tags 账务
// @Produce json
// @Security BearerAuth
// @Param patientId query string false "患者ID"
// @Param status query string false "账单状态"
// @Success 200 {object} util.Response
// @Router /api/invoices [get]
func (c *BillingController) List(ctx *gin.Context) {
	f := model.InvoiceFilter{
		PatientID: ctx.Query("patientId"),
		Status:    ctx.Query("status"),
		Page:      queryInt(ctx, "page", 1),
		Limit:     queryInt(ctx, "limit", 20),
	}

	list, total, err := c.Service.List(ctx.Request.Context(), util.BearerToken(ctx), f)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: f.Page, Limit: f.Limit})
}

// @Summary 账单详情
// @Tags 账务
// @Produce json
// @Security BearerAuth
// @Param id path string true "账单ID"
// @Success 200 {object} util.Response
// @Router /api/invoices/{id} [get]
func (c *BillingController) Get(ctx *gin.Context) {
	inv, err := c.Service.Get(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, inv)
}

type invoiceRequest struct {
	PatientID string              `json:"patientId" binding:"required"`
	Items     []model.InvoiceItem `json:"items" binding:"required"`
	Discount  float64             `json:"discount"`
	DueDate   string              `json:"dueDate"`
}

// @Summary 开具账单（金额由上游计算）
// @Tags 账务
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body invoiceRequest true "账单明细"
// @Success 201 {object} util.Response
// @Router /api/invoices [post]
func (c *BillingController) Create(ctx *gin.Context) {
	var req invoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	inv, err := c.Service.Create(ctx.Request.Context(), util.BearerToken(ctx), &model.Invoice{
		PatientID: req.PatientID,
		Items:     req.Items,
		Discount:  req.Discount,
		DueDate:   req.DueDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, inv)
}

// @Summary 更新账单
// @Tags 账务
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "账单ID"
// @Param body body invoiceRequest true "账单明细"
// @Success 200 {object} util.Response
// @Router /api/invoices/{id} [put]
func (c *BillingController) Update(ctx *gin.Context) {
	var req invoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	inv, err := c.Service.Update(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"), &model.Invoice{
		PatientID: req.PatientID,
		Items:     req.Items,
		Discount:  req.Discount,
		DueDate:   req.DueDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, inv)
}

type paymentRequest struct {
	Amount    float64 `json:"amount" binding:"required"`
	Method    string  `json:"method" binding:"required"`
	Reference string  `json:"reference"`
}

// @Summary 登记收款
// @Tags 账务
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "账单ID"
// @Param body body paymentRequest true "收款信息"
// @Success 200 {object} util.Response
// @Router /api/invoices/{id}/payments [post]
func (c *BillingController) RecordPayment(ctx *gin.Context) {
	var req paymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	inv, err := c.Service.RecordPayment(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"), &model.Payment{
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, inv)
}

// @Summary 患者对账单
// @Tags 账务
// @Produce json
// @Security BearerAuth
// @Param id path string true "患者ID"
// @Success 200 {object} util.Response
// @Router /api/patients/{id}/statement [get]
func (c *BillingController) Statement(ctx *gin.Context) {
	list, total, err := c.Service.Statement(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: 1, Limit: len(list)})
}
