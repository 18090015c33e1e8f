package web

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/afumu/corpus/internal/dict"
	"github.com/afumu/corpus/pkg/tokenizer"
	"github.com/afumu/corpus/store"
	"github.com/afumu/corpus/web/api"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Service 定义了 web 服务。
type Service struct {
	router   *gin.Engine
	server   *http.Server
	conf     *Config
	api      *api.API
	staticFS fs.FS
}

// Config 保存 web 服务的配置。
type Config struct {
	ListenAddr string
	// AllowOrigins 为空时不发送跨域响应头。
	AllowOrigins []string
	API          api.Config
}

// NewService 创建一个新的 web 服务。staticFS 为 nil 时不提供页面。
func NewService(s store.Store, tok tokenizer.Tokenizer, d *dict.Dictionary, conf *Config, staticFS fs.FS) *Service {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	apiConf := conf.API
	svc := &Service{
		router:   router,
		conf:     conf,
		api:      api.NewAPI(s, tok, d, &apiConf),
		staticFS: staticFS,
	}

	svc.setupMiddleware()
	svc.setupRoutes()

	return svc
}

// Start 开始提供 web 应用服务。
func (s *Service) Start() error {
	s.server = &http.Server{
		Addr:    s.conf.ListenAddr,
		Handler: s.router,
	}

	log.Info().Msg(fmt.Sprintf("在 %s 上启动 web 服务", s.conf.ListenAddr))

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Web 服务启动失败")
		}
	}()

	return nil
}

// Stop 优雅地关闭 web 服务器。
func (s *Service) Stop() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("优雅关闭 web 服务器失败")
		return err
	}

	log.Info().Msg("Web 服务已停止")
	return nil
}

func (s *Service) GetRouter() *gin.Engine {
	return s.router
}
