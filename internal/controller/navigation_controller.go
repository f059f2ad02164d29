package controller

import (
	"homecare_portal/internal/service"
	"homecare_portal/internal/util"

	"github.com/gin-gonic/gin"
)

type NavigationController struct {
	Service *service.NavigationService
}

func NewNavigationController(svc *service.NavigationService) *NavigationController {
	return &NavigationController{Service: svc}
}

// @Summary 当前角色可见的模块
// @Tags 导航
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/navigation [get]
func (c *NavigationController) Modules(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	util.Success(ctx, gin.H{
		"role":    user.Role,
		"modules": c.Service.ModulesFor(user.Role),
	})
}
