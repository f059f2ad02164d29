package middleware

import (
	"strings"

	"homecare_portal/internal/config"
	"homecare_portal/internal/model"
	"homecare_portal/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 解析上游签发的令牌并注入claims与原始bearer。
// 门户不做真正的鉴权，令牌随每次上游调用透传，由上游把关
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Set("bearer", tokenString)
		c.Next()
	}
}

// RoleMiddleware 界面级角色门禁（对应前端按角色隐藏入口），管理员全放行
func RoleMiddleware(roles ...model.StaffRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := false
		for _, role := range roles {
			if user.Role == model.RoleAdmin {
				hasRole = true
				break
			}
			if user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
