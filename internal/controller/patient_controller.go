package controller

import (
	"homecare_portal/internal/model"
	"homecare_portal/internal/service"
	"homecare_portal/internal/util"

	"github.com/gin-gonic/gin"
)

type PatientController struct {
	Service *service.PatientService
}

func NewPatientController(svc *service.PatientService) *PatientController {
	return &PatientController{Service: svc}
}

// @Summary 患者列表
// @Tags 患者
// @Produce json
// @Security BearerAuth
// @Param search query string false "姓名/电话检索"
// @Param status query string false "active | discharged | deceased"
// @Success 200 {object} util.Response
// @Router /api/patients [get]
func (c *PatientController) List(ctx *gin.Context) {
	f := model.PatientFilter{
		Search: ctx.Query("search"),
		Status: ctx.Query("status"),
		Page:   queryInt(ctx, "page", 1),
		Limit:  queryInt(ctx, "limit", 20),
	}

	list, total, err := c.Service.List(ctx.Request.Context(), util.BearerToken(ctx), f)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: f.Page, Limit: f.Limit})
}

// @Summary 患者详情
// @Tags 患者
// @Produce json
// @Security BearerAuth
// @Param id path string true "患者ID"
// @Success 200 {object} util.Response
// @Router /api/patients/{id} [get]
func (c *PatientController) Get(ctx *gin.Context) {
	p, err := c.Service.Get(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

type patientRequest struct {
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	Gender           string `json:"gender"`
	DateOfBirth      string `json:"dateOfBirth"`
	Phone            string `json:"phone" binding:"required"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
	BloodGroup       string `json:"bloodGroup"`
	Allergies        string `json:"allergies"`
	MedicalHistory   string `json:"medicalHistory"`
	Status           string `json:"status"`
}

func (r *patientRequest) toModel() *model.Patient {
	return &model.Patient{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Gender:           r.Gender,
		DateOfBirth:      r.DateOfBirth,
		Phone:            r.Phone,
		Email:            r.Email,
		Address:          r.Address,
		EmergencyContact: r.EmergencyContact,
		BloodGroup:       r.BloodGroup,
		Allergies:        r.Allergies,
		MedicalHistory:   r.MedicalHistory,
		Status:           r.Status,
	}
}

// @Summary 新建患者档案
// @Tags 患者
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body patientRequest true "患者信息"
// @Success 201 {object} util.Response
// @Router /api/patients [post]
func (c *PatientController) Create(ctx *gin.Context) {
	var req patientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.Service.Create(ctx.Request.Context(), util.BearerToken(ctx), req.toModel())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, p)
}

// @Summary 更新患者档案
// @Tags 患者
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "患者ID"
// @Param body body patientRequest true "患者信息"
// @Success 200 {object} util.Response
// @Router /api/patients/{id} [put]
func (c *PatientController) Update(ctx *gin.Context) {
	var req patientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.Service.Update(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"), req.toModel())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// @Summary 删除患者档案
// @Tags 患者
// @Produce json
// @Security BearerAuth
// @Param id path string true "患者ID"
// @Success 200 {object} util.Response
// @Router /api/patients/{id} [delete]
func (c *PatientController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
