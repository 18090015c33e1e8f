package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/afumu/corpus/internal/dict"
	"github.com/afumu/corpus/pkg/tokenizer"
	"github.com/afumu/corpus/store"
	"github.com/afumu/corpus/web"
	"github.com/afumu/corpus/web/api"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 Web 服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func serve() error {
	conf, closer, err := loadConfig()
	if err != nil {
		return err
	}
	defer closer.Close()

	log.Info().Str("work_dir", conf.WorkDir).Msg("使用工作目录")
	if err := os.MkdirAll(conf.WorkDir, 0755); err != nil {
		return fmt.Errorf("创建工作目录失败: %w", err)
	}

	// 分词引擎不可用属于配置错误，直接退出
	tok, err := tokenizer.New(conf.Tokenizer, conf.TokenizerConfig())
	if err != nil {
		log.Fatal().Err(err).Str("tokenizer", conf.Tokenizer).Msg("初始化分词引擎失败")
	}
	defer tok.Close()

	d, err := dict.Load(conf.StopWordsFile, conf.UserDictFile)
	if err != nil {
		return err
	}
	if err := d.Watch(); err != nil {
		log.Warn().Err(err).Msg("无法监听词表文件，修改后需要重启")
	}
	defer d.Close()

	auditStore, err := store.NewStore(filepath.Join(conf.WorkDir, conf.DBFile))
	if err != nil {
		return fmt.Errorf("初始化审计库失败: %w", err)
	}
	defer auditStore.Close()
	log.Info().Msg("Store 初始化成功。")

	webService := web.NewService(auditStore, tok, d, &web.Config{
		ListenAddr:   conf.ListenAddr,
		AllowOrigins: conf.AllowOrigins(),
		API: api.Config{
			TokenizerName:          conf.Tokenizer,
			MaxContentChars:        conf.MaxContentChars,
			MaxDictEntries:         conf.MaxDictEntries,
			TopN:                   conf.TopN,
			CloudTopN:              conf.CloudTopN,
			HonorDeletePunctuation: conf.HonorDeletePunctuation,
			AdminPasswordHash:      conf.AdminPasswordHash,
		},
	}, StaticFS)

	if err := webService.Start(); err != nil {
		return fmt.Errorf("启动 web 服务失败: %w", err)
	}
	log.Info().Msgf("服务已启动，请访问: http://%s", conf.ListenAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("接收到关闭信号，正在关闭服务...")

	if err := webService.Stop(); err != nil {
		return fmt.Errorf("关闭 web 服务时出错: %w", err)
	}
	log.Info().Msg("服务已成功关闭。")
	return nil
}
