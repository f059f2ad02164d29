package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"homecare_portal/internal/config"
	"homecare_portal/internal/model"
	"homecare_portal/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, userID uint, role model.StaffRole, secret string) string {
	t.Helper()
	claims := util.Claims{
		UserID: userID,
		Role:   role,
		Email:  "nurse@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func authRouter(roles ...model.StaffRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret}}

	r := gin.New()
	group := r.Group("/api")
	group.Use(AuthMiddleware(cfg))
	if len(roles) > 0 {
		group.Use(RoleMiddleware(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user": user.UserID, "bearer": util.BearerToken(c)})
	})
	return r
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingOrBadToken(t *testing.T) {
	r := authRouter()

	if w := request(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", w.Code)
	}
	if w := request(r, "garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("malformed token: expected 401, got %d", w.Code)
	}
	if w := request(r, signToken(t, 1, model.RoleNurse, "wrong-secret")); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad signature: expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareInjectsClaimsAndBearer(t *testing.T) {
	r := authRouter()
	token := signToken(t, 42, model.RoleNurse, testSecret)

	w := request(r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	// 原始令牌必须原样透传给handler供上游调用使用
	if body := w.Body.String(); !strings.Contains(body, token) {
		t.Fatalf("bearer not forwarded: %s", body)
	}
}

func TestRoleMiddlewareGating(t *testing.T) {
	r := authRouter(model.RoleBiller)

	if w := request(r, signToken(t, 1, model.RoleNurse, testSecret)); w.Code != http.StatusForbidden {
		t.Fatalf("nurse on billing route: expected 403, got %d", w.Code)
	}
	if w := request(r, signToken(t, 2, model.RoleBiller, testSecret)); w.Code != http.StatusOK {
		t.Fatalf("biller on billing route: expected 200, got %d", w.Code)
	}
	// 管理员全放行
	if w := request(r, signToken(t, 3, model.RoleAdmin, testSecret)); w.Code != http.StatusOK {
		t.Fatalf("admin on billing route: expected 200, got %d", w.Code)
	}
}
