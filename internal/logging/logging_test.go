package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "corpus.log")
	closer, err := Setup("debug", path)
	if err != nil {
		t.Fatalf("Setup 失败: %v", err)
	}
	log.Info().Str("ip", "127.0.0.1").Msg("hello corpus")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取日志失败: %v", err)
	}
	if !strings.Contains(string(data), "hello corpus") || !strings.Contains(string(data), `"ip":"127.0.0.1"`) {
		t.Errorf("日志文件内容不符: %s", data)
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("期望 debug 级别, 实际得到 %s", zerolog.GlobalLevel())
	}
}

func TestSetup_BadLevel(t *testing.T) {
	closer, err := Setup("nonsense", "")
	if err != nil {
		t.Fatalf("Setup 失败: %v", err)
	}
	defer closer.Close()
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("非法级别应回退到 info, 实际得到 %s", zerolog.GlobalLevel())
	}
}
