package api

import (
	"github.com/afumu/corpus/pkg/tokenizer"
	"github.com/afumu/corpus/web/transport"
	"github.com/gin-gonic/gin"
)

// GetSystemStatus 返回服务当前的配置与状态。
func (a *API) GetSystemStatus(c *gin.Context) {
	status := gin.H{
		"tokenizer":         a.Conf.TokenizerName,
		"tokenizer_ready":   a.Tokenizer != nil,
		"engines":           tokenizer.Engines(),
		"store_initialized": a.Store != nil,
		"admin_enabled":     a.Conf.AdminPasswordHash != "",
		"config": gin.H{
			"max_content_chars":        a.Conf.MaxContentChars,
			"max_dict_entries":         a.Conf.MaxDictEntries,
			"top_n":                    a.Conf.TopN,
			"cloud_top_n":              a.Conf.CloudTopN,
			"honor_delete_punctuation": a.Conf.HonorDeletePunctuation,
		},
		"dict": gin.H{
			"stop_words": len(a.Dict.StopWords()),
			"user_words": len(a.Dict.UserWords()),
		},
	}
	transport.SendSuccess(c, status)
}
