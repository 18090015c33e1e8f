package web

import (
	"io"
	"net/http"
	"strings"

	"github.com/afumu/corpus/web/middleware"
	"github.com/gin-gonic/gin"
)

// setupRoutes 初始化所有应用程序路由。
func (s *Service) setupRoutes() {
	// 与旧版前端兼容的分析入口
	s.router.POST("/corpus", s.api.AnalyzeCorpus)
	s.router.POST("/", s.api.AnalyzeCorpus)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/system/status", s.api.GetSystemStatus)

		corpusGroup := v1.Group("/corpus")
		{
			corpusGroup.POST("", s.api.AnalyzeCorpus)
			corpusGroup.POST("/export", s.api.ExportCorpus)
		}

		adminGroup := v1.Group("/admin")
		{
			adminGroup.POST("/login", s.api.AdminLogin)
			adminGroup.POST("/logout", s.api.AdminLogout)
		}

		v1.GET("/audit", middleware.AdminAuth(s.api), s.api.GetAuditRecords)
	}

	// 健康检查
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 静态文件服务 (UI)
	if s.staticFS != nil {
		s.router.StaticFS("/assets", http.FS(s.staticFS))
		// 除了 /api 开头的路径外，都返回 index.html
		s.router.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(http.StatusNotFound, gin.H{"error": "API route not found"})
				return
			}

			file, err := s.staticFS.Open(strings.TrimPrefix(c.Request.URL.Path, "/"))
			if err == nil {
				defer file.Close()
				stat, err := file.Stat()
				if err == nil && !stat.IsDir() {
					http.FileServer(http.FS(s.staticFS)).ServeHTTP(c.Writer, c.Request)
					return
				}
			}

			f, err := s.staticFS.Open("index.html")
			if err != nil {
				c.String(http.StatusNotFound, "UI not found")
				return
			}
			defer f.Close()
			c.Status(http.StatusOK)
			c.Header("Content-Type", "text/html; charset=utf-8")
			_, _ = io.Copy(c.Writer, f)
		})
	}
}
