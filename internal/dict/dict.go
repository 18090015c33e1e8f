// Package dict 管理服务级的默认停用词表与用户词典文件，文件修改后自动重新加载。
package dict

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Dictionary 保存从文件加载的停用词和用户词。
type Dictionary struct {
	mu        sync.RWMutex
	stopFile  string
	userFile  string
	stopWords []string
	userWords []string
	watcher   *Watcher
}

// Load 读取两个词表文件，路径为空表示不使用该文件。
func Load(stopFile, userFile string) (*Dictionary, error) {
	d := &Dictionary{stopFile: stopFile, userFile: userFile}
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// Reload 重新读取词表文件。
func (d *Dictionary) Reload() error {
	stop, err := ReadWords(d.stopFile)
	if err != nil {
		return fmt.Errorf("读取停用词文件失败: %w", err)
	}
	user, err := ReadWords(d.userFile)
	if err != nil {
		return fmt.Errorf("读取用户词典失败: %w", err)
	}

	d.mu.Lock()
	d.stopWords = stop
	d.userWords = user
	d.mu.Unlock()

	log.Info().Int("stop_words", len(stop)).Int("user_words", len(user)).Msg("词表已加载")
	return nil
}

// StopWords 返回默认停用词的拷贝。
func (d *Dictionary) StopWords() []string {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string(nil), d.stopWords...)
}

// UserWords 返回默认用户词的拷贝。
func (d *Dictionary) UserWords() []string {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string(nil), d.userWords...)
}

// Watch 监听词表文件所在目录，文件被写入或替换时重新加载。
func (d *Dictionary) Watch() error {
	files := map[string]bool{}
	dirs := map[string]bool{}
	for _, f := range []string{d.stopFile, d.userFile} {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	if len(dirs) == 0 {
		return nil
	}

	list := make([]string, 0, len(dirs))
	for dir := range dirs {
		list = append(list, dir)
	}
	w, err := NewWatcher(list...)
	if err != nil {
		return err
	}
	w.AddCallback(func(event fsnotify.Event) {
		if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
			return
		}
		abs, err := filepath.Abs(event.Name)
		if err != nil || !files[abs] {
			return
		}
		if err := d.Reload(); err != nil {
			log.Error().Err(err).Str("file", event.Name).Msg("重新加载词表失败")
		}
	})
	w.Start()

	d.mu.Lock()
	d.watcher = w
	d.mu.Unlock()
	return nil
}

// Close 停止文件监听。
func (d *Dictionary) Close() error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	w := d.watcher
	d.watcher = nil
	d.mu.Unlock()
	if w == nil {
		return nil
	}
	return w.Stop()
}

// ReadWords 每行读取一个词。空行与 # 开头的行被忽略；
// jieba 词典格式 "词 词频 词性" 只取第一列。
func ReadWords(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.Fields(line)[0])
	}
	return words, scanner.Err()
}
