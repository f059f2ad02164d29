package controller

import (
	"homecare_portal/internal/model"
	"homecare_portal/internal/service"
	"homecare_portal/internal/util"

	"github.com/gin-gonic/gin"
)

type ScheduleController struct {
	Service *service.ScheduleService
}

func NewScheduleController(svc *service.ScheduleService) *ScheduleController {
	return &ScheduleController{Service: svc}
}

// @Summary 预约列表
// @Tags 预约排班
// @Produce json
// @Security BearerAuth
// @Param patientId query string false "患者ID"
// @Param staffId query string false "员工ID"
// @Param status query string false "状态"
// @Success 200 {object} util.Response
// @Router /api/appointments [get]
func (c *ScheduleController) List(ctx *gin.Context) {
	f := model.AppointmentFilter{
		PatientID: ctx.Query("patientId"),
		StaffID:   ctx.Query("staffId"),
		Status:    ctx.Query("status"),
		DateFrom:  ctx.Query("from"),
		DateTo:    ctx.Query("to"),
		Page:      queryInt(ctx, "page", 1),
		Limit:     queryInt(ctx, "limit", 50),
	}

	list, total, err := c.Service.List(ctx.Request.Context(), util.BearerToken(ctx), f)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: f.Page, Limit: f.Limit})
}

// @Summary 日历视图
// @Tags 预约排班
// @Produce json
// @Security BearerAuth
// @Param from query string true "起始日期 YYYY-MM-DD"
// @Param to query string true "截止日期 YYYY-MM-DD"
// @Success 200 {object} util.Response
// @Router /api/appointments/calendar [get]
func (c *ScheduleController) Calendar(ctx *gin.Context) {
	from, to := ctx.Query("from"), ctx.Query("to")
	if from == "" || to == "" {
		util.BadRequest(ctx, "from and to are required")
		return
	}

	list, err := c.Service.Calendar(ctx.Request.Context(), util.BearerToken(ctx), from, to, ctx.Query("staffId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

type appointmentRequest struct {
	PatientID string `json:"patientId" binding:"required"`
	StaffID   string `json:"staffId" binding:"required"`
	Type      string `json:"type" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime"`
	Notes     string `json:"notes"`
}

func (r *appointmentRequest) toModel() *model.Appointment {
	return &model.Appointment{
		PatientID: r.PatientID,
		StaffID:   r.StaffID,
		Type:      r.Type,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Notes:     r.Notes,
	}
}

// @Summary 新建预约
// @Tags 预约排班
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body appointmentRequest true "预约信息"
// @Success 201 {object} util.Response
// @Router /api/appointments [post]
func (c *ScheduleController) Create(ctx *gin.Context) {
	var req appointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ap, err := c.Service.Create(ctx.Request.Context(), util.BearerToken(ctx), req.toModel())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, ap)
}

// @Summary 更新预约
// @Tags 预约排班
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "预约ID"
// @Param body body appointmentRequest true "预约信息"
// @Success 200 {object} util.Response
// @Router /api/appointments/{id} [put]
func (c *ScheduleController) Update(ctx *gin.Context) {
	var req appointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ap, err := c.Service.Update(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"), req.toModel())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, ap)
}

type appointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// @Summary 预约状态流转
// @Tags 预约排班
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "预约ID"
// @Param body body appointmentStatusRequest true "目标状态"
// @Success 200 {object} util.Response
// @Router /api/appointments/{id}/status [put]
func (c *ScheduleController) SetStatus(ctx *gin.Context) {
	var req appointmentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ap, err := c.Service.SetStatus(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"), req.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, ap)
}

// @Summary 删除预约
// @Tags 预约排班
// @Produce json
// @Security BearerAuth
// @Param id path string true "预约ID"
// @Success 200 {object} util.Response
// @Router /api/appointments/{id} [delete]
func (c *ScheduleController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
