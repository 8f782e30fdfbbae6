package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// 角色是调用方自报的 query 参数，没有鉴权（前端按工位选择身份）。
// 这里集中成中间件，之后换成真正的登录态时路由表不用动。
const (
	RoleAdmin      = "admin"
	RoleUser       = "user"
	RoleManagement = "management"
)

// Role 取 ?role=，小写化，缺省按普通用户处理。
func Role(c *gin.Context) string {
	role := strings.ToLower(c.Query("role"))
	if role == "" {
		role = RoleUser
	}
	return role
}

// WriteAccess 拦截 management：该角色只读。
func WriteAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Role(c) == RoleManagement {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Management role is view-only"})
			return
		}
		c.Next()
	}
}

// AdminOnly 只放行 role=admin，其余一律 403。
func AdminOnly(denyMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if Role(c) != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": denyMsg})
			return
		}
		c.Next()
	}
}
