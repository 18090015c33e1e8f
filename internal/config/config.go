package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config 是服务的全部配置，来源于 .env 文件与环境变量。
type Config struct {
	ListenAddr string `mapstructure:"LISTEN_ADDR"`
	Port       string `mapstructure:"PORT"`
	WorkDir    string `mapstructure:"WORK_DIR"`
	DBFile     string `mapstructure:"DB_FILE"`

	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogFile  string `mapstructure:"LOG_FILE"`

	Tokenizer         string `mapstructure:"TOKENIZER"`
	JiebaDictPath     string `mapstructure:"JIEBA_DICT_PATH"`
	JiebaHMMPath      string `mapstructure:"JIEBA_HMM_PATH"`
	JiebaUserDictPath string `mapstructure:"JIEBA_USER_DICT_PATH"`
	JiebaIDFPath      string `mapstructure:"JIEBA_IDF_PATH"`
	JiebaStopWordPath string `mapstructure:"JIEBA_STOP_WORDS_PATH"`
	JiebaHMM          bool   `mapstructure:"JIEBA_HMM"`
	JiebaUserWordFreq int    `mapstructure:"JIEBA_USER_WORD_FREQ"`

	StopWordsFile string `mapstructure:"STOP_WORDS_FILE"`
	UserDictFile  string `mapstructure:"USER_DICT_FILE"`

	MaxContentChars        int  `mapstructure:"MAX_CONTENT_CHARS"`
	MaxDictEntries         int  `mapstructure:"MAX_DICT_ENTRIES"`
	TopN                   int  `mapstructure:"TOP_N"`
	CloudTopN              int  `mapstructure:"CLOUD_TOP_N"`
	HonorDeletePunctuation bool `mapstructure:"HONOR_DELETE_PUNCTUATION"`

	// AdminPasswordHash 是 bcrypt 哈希，为空时审计查询接口关闭。
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`
	CORSAllowOrigins  string `mapstructure:"CORS_ALLOW_ORIGINS"`
}

var keys = []string{
	"LISTEN_ADDR", "PORT", "WORK_DIR", "DB_FILE", "LOG_LEVEL", "LOG_FILE",
	"TOKENIZER", "JIEBA_DICT_PATH", "JIEBA_HMM_PATH", "JIEBA_USER_DICT_PATH",
	"JIEBA_IDF_PATH", "JIEBA_STOP_WORDS_PATH", "JIEBA_HMM", "JIEBA_USER_WORD_FREQ",
	"STOP_WORDS_FILE", "USER_DICT_FILE",
	"MAX_CONTENT_CHARS", "MAX_DICT_ENTRIES", "TOP_N", "CLOUD_TOP_N",
	"HONOR_DELETE_PUNCTUATION", "ADMIN_PASSWORD_HASH", "CORS_ALLOW_ORIGINS",
}

// SetDefaults 写入默认值。
func SetDefaults(v *viper.Viper) {
	v.SetDefault("WORK_DIR", "data")
	v.SetDefault("DB_FILE", "corpus.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "corpus.log")
	v.SetDefault("TOKENIZER", "gojieba")
	v.SetDefault("JIEBA_HMM", true)
	v.SetDefault("MAX_CONTENT_CHARS", 10000)
	v.SetDefault("MAX_DICT_ENTRIES", 500)
	v.SetDefault("TOP_N", 15)
	v.SetDefault("CLOUD_TOP_N", 1000)
	v.SetDefault("HONOR_DELETE_PUNCTUATION", false)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	// AutomaticEnv 只对已知的键生效，Unmarshal 前逐个绑定。
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

// Load 读取 path 指向的 .env 文件，文件不存在时尝试创建。
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || isNotExist(err) {
			if err := v.SafeWriteConfigAs(path); err != nil {
				log.Warn().Err(err).Msg("无法创建默认 .env 文件")
			} else {
				log.Info().Str("path", path).Msg("已自动创建 .env 配置文件")
			}
		} else {
			log.Warn().Err(err).Msg("读取 .env 文件出错，将使用默认值或环境变量")
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	conf.normalize()
	return &conf, nil
}

// normalize 处理 LISTEN_ADDR 与 PORT 的优先级以及非法数值。
func (c *Config) normalize() {
	if c.ListenAddr == "" {
		if c.Port != "" {
			c.ListenAddr = "127.0.0.1:" + c.Port
		} else {
			c.ListenAddr = "127.0.0.1:5000"
		}
	}
	if c.TopN <= 0 {
		c.TopN = 15
	}
	if c.CloudTopN <= 0 {
		c.CloudTopN = 1000
	}
}

// TokenizerConfig 返回交给分词引擎构造器的配置。
func (c *Config) TokenizerConfig() map[string]interface{} {
	return map[string]interface{}{
		"dict_path":       c.JiebaDictPath,
		"hmm_path":        c.JiebaHMMPath,
		"user_dict_path":  c.JiebaUserDictPath,
		"idf_path":        c.JiebaIDFPath,
		"stop_words_path": c.JiebaStopWordPath,
		"hmm":             c.JiebaHMM,
		"user_word_freq":  c.JiebaUserWordFreq,
	}
}

// AllowOrigins 拆分逗号分隔的 CORS_ALLOW_ORIGINS。
func (c *Config) AllowOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// SetValue 在 .env 文件中写入或替换一行 key='value'，其余内容保持不变。
// 单引号使 gotenv 读取时不展开 value 中的 $。
func SetValue(path, key, value string) error {
	if strings.ContainsAny(value, "'\n") {
		return fmt.Errorf("配置项 %s 的值不能包含单引号或换行", key)
	}

	data, err := os.ReadFile(path)
	if err != nil && !isNotExist(err) {
		return fmt.Errorf("读取配置文件失败: %w", err)
	}

	line := key + "='" + value + "'"
	var lines []string
	if content := strings.TrimRight(string(data), "\n"); content != "" {
		lines = strings.Split(content, "\n")
	}
	replaced := false
	for i, l := range lines {
		if k, _, ok := strings.Cut(l, "="); ok && strings.TrimSpace(k) == key {
			lines[i], replaced = line, true
		}
	}
	if !replaced {
		lines = append(lines, line)
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}
	return nil
}
