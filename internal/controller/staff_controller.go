package controller

import (
	"strconv"

	"homecare_portal/internal/model"
	"homecare_portal/internal/service"
	"homecare_portal/internal/util"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	Service *service.StaffService
}

func NewStaffController(svc *service.StaffService) *StaffController {
	return &StaffController{Service: svc}
}

// @Summary 员工列表
// @Tags 员工管理
// @Produce json
// @Security BearerAuth
// @Param role query string false "角色"
// @Param active query bool false "在职状态"
// @Success 200 {object} util.Response
// @Router /api/staff [get]
func (c *StaffController) List(ctx *gin.Context) {
	f := model.StaffFilter{
		Role:   ctx.Query("role"),
		Search: ctx.Query("search"),
		Page:   queryInt(ctx, "page", 1),
		Limit:  queryInt(ctx, "limit", 20),
	}
	if v := ctx.Query("active"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.Active = &b
		}
	}

	list, total, err := c.Service.List(ctx.Request.Context(), util.BearerToken(ctx), f)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: f.Page, Limit: f.Limit})
}

// @Summary 员工详情
// @Tags 员工管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "员工ID"
// @Success 200 {object} util.Response
// @Router /api/staff/{id} [get]
func (c *StaffController) Get(ctx *gin.Context) {
	m, err := c.Service.Get(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, m)
}

type staffRequest struct {
	FirstName      string          `json:"firstName" binding:"required"`
	LastName       string          `json:"lastName" binding:"required"`
	Role           model.StaffRole `json:"role" binding:"required"`
	Specialization string          `json:"specialization"`
	Phone          string          `json:"phone" binding:"required"`
	Email          string          `json:"email"`
	LicenseNumber  string          `json:"licenseNumber"`
	HireDate       string          `json:"hireDate"`
	Active         *bool           `json:"active"`
}

func (r *staffRequest) toModel() *model.StaffMember {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &model.StaffMember{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Role:           r.Role,
		Specialization: r.Specialization,
		Phone:          r.Phone,
		Email:          r.Email,
		LicenseNumber:  r.LicenseNumber,
		HireDate:       r.HireDate,
		Active:         active,
	}
}

// @Summary 新建员工
// @Tags 员工管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body staffRequest true "员工信息"
// @Success 201 {object} util.Response
// @Router /api/staff [post]
func (c *StaffController) Create(ctx *gin.Context) {
	var req staffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	m, err := c.Service.Create(ctx.Request.Context(), util.BearerToken(ctx), req.toModel())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, m)
}

// @Summary 更新员工
// @Tags 员工管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "员工ID"
// @Param body body staffRequest true "员工信息"
// @Success 200 {object} util.Response
// @Router /api/staff/{id} [put]
func (c *StaffController) Update(ctx *gin.Context) {
	var req staffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	m, err := c.Service.Update(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"), req.toModel())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, m)
}

// @Summary 删除员工
// @Tags 员工管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "员工ID"
// @Success 200 {object} util.Response
// @Router /api/staff/{id} [delete]
func (c *StaffController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
