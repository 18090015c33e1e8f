package cmd

import (
	"io"
	"io/fs"
	"os"

	"github.com/afumu/corpus/internal/config"
	"github.com/afumu/corpus/internal/logging"
	_ "github.com/afumu/corpus/pkg/tokenizer/bigram"
	_ "github.com/afumu/corpus/pkg/tokenizer/gojieba"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// StaticFS 是内嵌的前端页面，由 main 设置。
var StaticFS fs.FS

var configFile string

var rootCmd = &cobra.Command{
	Use:   "corpus",
	Short: "中文语料分析服务",
	Long:  `对中文文本进行分词、词频、标点与词性统计，并提供 Web 页面与 HTTP 接口。`,
	// 不带子命令时启动服务
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".env", "配置文件路径")
}

// Execute 运行命令行。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig 读取配置并初始化日志，返回的 Closer 用于关闭日志文件。
func loadConfig() (*config.Config, io.Closer, error) {
	conf, err := config.Load(viper.GetViper(), configFile)
	if err != nil {
		return nil, nil, err
	}
	closer, err := logging.Setup(conf.LogLevel, conf.LogFile)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Interface("config", conf).Msg("配置已加载")
	return conf, closer, nil
}
