package controller

import (
	"homecare_portal/internal/model"
	"homecare_portal/internal/service"
	"homecare_portal/internal/util"

	"github.com/gin-gonic/gin"
)

type PhysioController struct {
	Service *service.PhysioService
}

func NewPhysioController(svc *service.PhysioService) *PhysioController {
	return &PhysioController{Service: svc}
}

// @Summary 理疗评估列表
// @Tags 理疗
// @Produce json
// @Security BearerAuth
// @Param patientId query string false "患者ID"
// @Success 200 {object} util.Response
// @Router /api/physio/assessments [get]
func (c *PhysioController) ListAssessments(ctx *gin.Context) {
	page, limit := queryInt(ctx, "page", 1), queryInt(ctx, "limit", 20)
	list, total, err := c.Service.ListAssessments(ctx.Request.Context(), util.BearerToken(ctx), ctx.Query("patientId"), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: page, Limit: limit})
}

type assessmentRequest struct {
	PatientID       string `json:"patientId" binding:"required"`
	TherapistID     string `json:"therapistId" binding:"required"`
	ChiefComplaint  string `json:"chiefComplaint" binding:"required"`
	PainScale       int    `json:"painScale"`
	RangeOfMotion   string `json:"rangeOfMotion"`
	MuscleStrength  string `json:"muscleStrength"`
	FunctionalGoals string `json:"functionalGoals"`
}

// @Summary 新建理疗评估
// @Tags 理疗
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body assessmentRequest true "评估内容"
// @Success 201 {object} util.Response
// @Router /api/physio/assessments [post]
func (c *PhysioController) CreateAssessment(ctx *gin.Context) {
	var req assessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	as, err := c.Service.CreateAssessment(ctx.Request.Context(), util.BearerToken(ctx), &model.PhysioAssessment{
		PatientID:       req.PatientID,
		TherapistID:     req.TherapistID,
		ChiefComplaint:  req.ChiefComplaint,
		PainScale:       req.PainScale,
		RangeOfMotion:   req.RangeOfMotion,
		MuscleStrength:  req.MuscleStrength,
		FunctionalGoals: req.FunctionalGoals,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, as)
}

// @Summary 治疗计划列表
// @Tags 理疗
// @Produce json
// @Security BearerAuth
// @Param patientId query string false "患者ID"
// @Success 200 {object} util.Response
// @Router /api/physio/plans [get]
func (c *PhysioController) ListPlans(ctx *gin.Context) {
	page, limit := queryInt(ctx, "page", 1), queryInt(ctx, "limit", 20)
	list, total, err := c.Service.ListPlans(ctx.Request.Context(), util.BearerToken(ctx), ctx.Query("patientId"), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: page, Limit: limit})
}

type planRequest struct {
	AssessmentID    string `json:"assessmentId" binding:"required"`
	PatientID       string `json:"patientId" binding:"required"`
	Diagnosis       string `json:"diagnosis" binding:"required"`
	PlannedSessions int    `json:"plannedSessions" binding:"required"`
	Frequency       string `json:"frequency"`
	Interventions   string `json:"interventions"`
	StartDate       string `json:"startDate"`
}

// @Summary 新建治疗计划
// @Tags 理疗
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body planRequest true "计划内容"
// @Success 201 {object} util.Response
// @Router /api/physio/plans [post]
func (c *PhysioController) CreatePlan(ctx *gin.Context) {
	var req planRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.Service.CreatePlan(ctx.Request.Context(), util.BearerToken(ctx), &model.TreatmentPlan{
		AssessmentID:    req.AssessmentID,
		PatientID:       req.PatientID,
		Diagnosis:       req.Diagnosis,
		PlannedSessions: req.PlannedSessions,
		Frequency:       req.Frequency,
		Interventions:   req.Interventions,
		StartDate:       req.StartDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, p)
}

type planProgressRequest struct {
	Progress *int   `json:"progress" binding:"required"`
	Status   string `json:"status"`
}

// @Summary 更新计划进度
// @Tags 理疗
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "计划ID"
// @Param body body planProgressRequest true "进度与状态"
// @Success 200 {object} util.Response
// @Router /api/physio/plans/{id}/progress [put]
func (c *PhysioController) UpdatePlanProgress(ctx *gin.Context) {
	var req planProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.Service.UpdatePlanProgress(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("id"), *req.Progress, req.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// @Summary 治疗记录列表
// @Tags 理疗
// @Produce json
// @Security BearerAuth
// @Param planId query string false "计划ID"
// @Success 200 {object} util.Response
// @Router /api/physio/sessions [get]
func (c *PhysioController) ListSessions(ctx *gin.Context) {
	page, limit := queryInt(ctx, "page", 1), queryInt(ctx, "limit", 20)
	list, total, err := c.Service.ListSessions(ctx.Request.Context(), util.BearerToken(ctx), ctx.Query("planId"), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: list, Total: total, Page: page, Limit: limit})
}

type therapySessionRequest struct {
	PlanID      string `json:"planId" binding:"required"`
	PatientID   string `json:"patientId" binding:"required"`
	TherapistID string `json:"therapistId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Procedures  string `json:"procedures"`
	Response    string `json:"response"`
	PainBefore  int    `json:"painBefore"`
	PainAfter   int    `json:"painAfter"`
	Notes       string `json:"notes"`
}

// @Summary 记录一次理疗
// @Tags 理疗
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body therapySessionRequest true "治疗记录"
// @Success 201 {object} util.Response
// @Router /api/physio/sessions [post]
func (c *PhysioController) CreateSession(ctx *gin.Context) {
	var req therapySessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ts, err := c.Service.CreateSession(ctx.Request.Context(), util.BearerToken(ctx), &model.TherapySession{
		PlanID:      req.PlanID,
		PatientID:   req.PatientID,
		TherapistID: req.TherapistID,
		Date:        req.Date,
		Procedures:  req.Procedures,
		Response:    req.Response,
		PainBefore:  req.PainBefore,
		PainAfter:   req.PainAfter,
		Notes:       req.Notes,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, ts)
}
