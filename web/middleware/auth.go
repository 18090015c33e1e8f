package middleware

import (
	"github.com/afumu/corpus/web/api"
	"github.com/afumu/corpus/web/transport"
	"github.com/gin-gonic/gin"
)

// AdminAuth 保护管理接口：未设置管理员密码时接口关闭，否则要求有效的会话 token。
func AdminAuth(a *api.API) gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.Conf.AdminPasswordHash == "" {
			transport.Forbidden(c, "未设置管理员密码，审计查询已关闭")
			return
		}

		if !a.Admin.IsValid(api.SessionToken(c)) {
			transport.Unauthorized(c, "请先验证管理员密码")
			return
		}

		c.Next()
	}
}
