package api

import (
	"github.com/afumu/corpus/internal/dict"
	"github.com/afumu/corpus/pkg/corpus"
	"github.com/afumu/corpus/pkg/tokenizer"
	"github.com/afumu/corpus/store"
	"github.com/afumu/corpus/web/export"
)

// API 封装了 API 处理器所需的所有依赖。
type API struct {
	Store     store.Store
	Tokenizer tokenizer.Tokenizer
	Dict      *dict.Dictionary
	Export    *export.Service
	Admin     *AdminSessions
	Conf      *Config
}

type Config struct {
	TokenizerName          string
	MaxContentChars        int
	MaxDictEntries         int
	TopN                   int
	CloudTopN              int
	HonorDeletePunctuation bool
	AdminPasswordHash      string
}

// NewAPI 创建一个新的 API 处理器。d 可以为 nil，表示没有服务级词表。
func NewAPI(s store.Store, tok tokenizer.Tokenizer, d *dict.Dictionary, conf *Config) *API {
	if conf.TopN <= 0 {
		conf.TopN = 15
	}
	return &API{
		Store:     s,
		Tokenizer: tok,
		Dict:      d,
		Export:    &export.Service{},
		Admin:     NewAdminSessions(),
		Conf:      conf,
	}
}

func (a *API) options() corpus.Options {
	return corpus.Options{
		HonorDeletePunctuation: a.Conf.HonorDeletePunctuation,
		CloudTopN:              a.Conf.CloudTopN,
	}
}
