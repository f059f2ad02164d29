package util

import (
	"homecare_portal/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims 上游签发令牌中的声明，门户只解析不签发
type Claims struct {
	UserID uint            `json:"user_id"`
	Role   model.StaffRole `json:"role"`
	Email  string          `json:"email"`
	jwt.RegisteredClaims
}

func ParseJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, err
}

func GetUserFromContext(c *gin.Context) *Claims {
	user, exists := c.Get("user")
	if !exists {
		return nil
	}
	claims, ok := user.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// BearerToken 取出原始令牌用于向上游透传
func BearerToken(c *gin.Context) string {
	token, exists := c.Get("bearer")
	if !exists {
		return ""
	}
	s, _ := token.(string)
	return s
}
