package api

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"github.com/afumu/corpus/web/transport"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// AdminTokenHeader 携带管理员会话 token 的请求头。
const AdminTokenHeader = "X-Auth-Token"

const (
	adminCookie     = "auth_token"
	adminSessionTTL = 24 * time.Hour
)

// AdminSessions 管理已通过密码验证的管理员会话。
type AdminSessions struct {
	mu       sync.Mutex
	sessions map[string]time.Time // token -> 过期时间
	now      func() time.Time
}

// NewAdminSessions 创建会话管理器。
func NewAdminSessions() *AdminSessions {
	return &AdminSessions{
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

// generateToken 生成随机 token
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Add 登记一个新会话。
func (s *AdminSessions) Add(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = s.now().Add(adminSessionTTL)
}

// IsValid 检查会话是否存在且未过期，过期的会话顺带删除。
func (s *AdminSessions) IsValid(token string) bool {
	if token == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.sessions[token]
	if !ok {
		return false
	}
	if s.now().After(exp) {
		delete(s.sessions, token)
		return false
	}
	return true
}

// Remove 注销会话。
func (s *AdminSessions) Remove(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// SessionToken 从请求头或 cookie 中取出会话 token。
func SessionToken(c *gin.Context) string {
	token := c.GetHeader(AdminTokenHeader)
	if token == "" {
		token, _ = c.Cookie(adminCookie)
	}
	return token
}

// AdminLogin 验证管理员密码并签发会话。
func (a *API) AdminLogin(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		transport.BadRequest(c, "参数错误")
		return
	}

	if a.Conf.AdminPasswordHash == "" {
		transport.Forbidden(c, "未设置管理员密码")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.Conf.AdminPasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Str("ip", c.ClientIP()).Msg("管理员密码验证失败")
		transport.Unauthorized(c, "密码错误")
		return
	}

	token, err := generateToken()
	if err != nil {
		transport.InternalServerError(c, "生成会话失败")
		return
	}
	a.Admin.Add(token)

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, token, int(adminSessionTTL.Seconds()), "/api/v1", "", false, true)
	transport.SendSuccess(c, gin.H{"token": token})
}

// AdminLogout 注销当前会话。
func (a *API) AdminLogout(c *gin.Context) {
	a.Admin.Remove(SessionToken(c))
	c.SetCookie(adminCookie, "", -1, "/api/v1", "", false, true)
	transport.SendSuccess(c, gin.H{"status": "logged_out"})
}
