package tokenizer

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownEngine 表示请求的分词引擎没有注册。
var ErrUnknownEngine = errors.New("tokenizer: unknown engine")

// TaggedToken 是一个带词性标注的词。
type TaggedToken struct {
	Word string
	Tag  string
}

// Tokenizer 是分词与词性标注引擎的统一接口。
// userWords 是本次调用临时生效的用户词典，实现必须保证它不会影响其他调用。
type Tokenizer interface {
	Cut(text string, userWords []string) ([]string, error)
	Tag(text string, userWords []string) ([]TaggedToken, error)
	Close() error
}

// Constructor 根据配置构建一个引擎实例。
type Constructor func(config map[string]interface{}) (Tokenizer, error)

var (
	mu           sync.RWMutex
	constructors = make(map[string]Constructor)
)

// Register 注册一个引擎构造器，通常在引擎包的 init 中调用。
func Register(name string, c Constructor) {
	mu.Lock()
	defer mu.Unlock()
	if _, exist := constructors[name]; exist {
		panic("tokenizer: engine " + name + " registered twice")
	}
	constructors[name] = c
}

// New 按名称构建引擎。
func New(name string, config map[string]interface{}) (Tokenizer, error) {
	mu.RLock()
	c, ok := constructors[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	t, err := c(config)
	if err != nil {
		return nil, fmt.Errorf("初始化分词引擎 %s 失败: %w", name, err)
	}
	return t, nil
}

// Engines 返回已注册的引擎名称。
func Engines() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
