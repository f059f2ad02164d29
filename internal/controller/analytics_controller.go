package controller

import (
	"homecare_portal/internal/service"
	"homecare_portal/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Service *service.AnalyticsService
}

func NewAnalyticsController(svc *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: svc}
}

// @Summary 总览看板
// @Tags 数据分析
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/analytics/overview [get]
func (c *AnalyticsController) Overview(ctx *gin.Context) {
	o, err := c.Service.Overview(ctx.Request.Context(), util.BearerToken(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, o)
}

// @Summary 报表时间序列
// @Tags 数据分析
// @Produce json
// @Security BearerAuth
// @Param name path string true "revenue | appointments | patient_growth"
// @Param period query string false "7d | 30d | 90d"
// @Success 200 {object} util.Response
// @Router /api/analytics/reports/{name} [get]
func (c *AnalyticsController) Report(ctx *gin.Context) {
	r, err := c.Service.Report(ctx.Request.Context(), util.BearerToken(ctx), ctx.Param("name"), ctx.Query("period"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, r)
}
