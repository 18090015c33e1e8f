package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	conf, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if conf.MaxContentChars != 10000 || conf.MaxDictEntries != 500 || conf.TopN != 15 || conf.CloudTopN != 1000 {
		t.Errorf("默认值不符: %+v", conf)
	}
	if conf.Tokenizer != "gojieba" || !conf.JiebaHMM {
		t.Errorf("默认分词引擎不符: %+v", conf)
	}
	if conf.ListenAddr != "127.0.0.1:5000" {
		t.Errorf("默认监听地址不符: %s", conf.ListenAddr)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("应自动创建 .env 文件: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=8088\nMAX_CONTENT_CHARS=20\nTOKENIZER=bigram\nHONOR_DELETE_PUNCTUATION=true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	conf, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if conf.ListenAddr != "127.0.0.1:8088" {
		t.Errorf("期望 127.0.0.1:8088, 实际得到 %s", conf.ListenAddr)
	}
	if conf.MaxContentChars != 20 || conf.Tokenizer != "bigram" || !conf.HonorDeletePunctuation {
		t.Errorf("文件中的配置未生效: %+v", conf)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("TOP_N", "30")

	conf, err := Load(viper.New(), filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if conf.ListenAddr != ":9999" || conf.TopN != 30 {
		t.Errorf("环境变量未生效: %+v", conf)
	}
}

func TestTokenizerConfig(t *testing.T) {
	c := Config{JiebaDictPath: "/tmp/dict.txt", JiebaHMM: true, JiebaUserWordFreq: 300}
	m := c.TokenizerConfig()
	if m["dict_path"] != "/tmp/dict.txt" || m["hmm"] != true || m["user_word_freq"] != 300 {
		t.Errorf("TokenizerConfig 不符: %v", m)
	}
}

func TestAllowOrigins(t *testing.T) {
	conf, err := Load(viper.New(), filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if got := conf.AllowOrigins(); len(got) != 1 || got[0] != "*" {
		t.Errorf("默认 CORS 来源不符: %v", got)
	}
	if conf.AdminPasswordHash != "" {
		t.Errorf("默认不应设置管理员密码: %q", conf.AdminPasswordHash)
	}

	c := Config{CORSAllowOrigins: " https://a.example , ,https://b.example"}
	got := c.AllowOrigins()
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("期望两个来源, 实际得到 %v", got)
	}
}

func TestSetValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("# 审计\nTOKENIZER=bigram\n\nADMIN_PASSWORD_HASH=old\n"), 0644); err != nil {
		t.Fatal(err)
	}

	hash := "$2a$10$abcdefghijklmnopqrstuv"
	if err := SetValue(path, "ADMIN_PASSWORD_HASH", hash); err != nil {
		t.Fatalf("SetValue 失败: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Count(string(data), "ADMIN_PASSWORD_HASH") != 1 || !strings.Contains(string(data), "# 审计\nTOKENIZER=bigram\n\n") {
		t.Errorf("应原地替换已有的键: %s", data)
	}

	conf, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if conf.AdminPasswordHash != hash {
		t.Errorf("哈希中的 $ 不应被展开, 期望 %s, 实际得到 %s", hash, conf.AdminPasswordHash)
	}
	if conf.Tokenizer != "bigram" {
		t.Errorf("其余配置应保留: %+v", conf)
	}

	if err := SetValue(path, "ADMIN_PASSWORD_HASH", "a'b"); err == nil {
		t.Error("含单引号的值应返回错误")
	}
}
