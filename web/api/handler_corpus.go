package api

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/afumu/corpus/internal/model"
	"github.com/afumu/corpus/pkg/corpus"
	"github.com/afumu/corpus/web/transport"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// corpusInput 是校验后的请求，raw 保留用户提交的词表用于审计。
type corpusInput struct {
	raw       transport.CorpusRequest
	userWords []string
	stopWords []string
	req       corpus.Request
}

// bindCorpusRequest 解析并校验请求体，失败时已写入错误响应。
func (a *API) bindCorpusRequest(c *gin.Context) (*corpusInput, bool) {
	var raw transport.CorpusRequest
	if err := c.ShouldBindJSON(&raw); err != nil {
		transport.BadRequest(c, "参数错误: "+err.Error())
		return nil, false
	}

	if max := a.Conf.MaxContentChars; max > 0 && utf8.RuneCountInString(raw.Content) > max {
		transport.TooLarge(c, fmt.Sprintf("内容超过%d字", max))
		return nil, false
	}

	userWords := raw.UserWordList()
	stopWords := raw.StopWordList()
	if max := a.Conf.MaxDictEntries; max > 0 && (len(userWords) > max || len(stopWords) > max) {
		transport.TooLarge(c, "用户字典或停用词过多")
		return nil, false
	}

	req := corpus.Request{
		Text:              raw.CleanContent(),
		UserWords:         append(a.Dict.UserWords(), userWords...),
		StopWords:         stopWords,
		DeletePunctuation: raw.DeletePunctuation,
	}
	if len(req.StopWords) == 0 {
		req.StopWords = a.Dict.StopWords()
	}

	return &corpusInput{raw: raw, userWords: userWords, stopWords: stopWords, req: req}, true
}

// AnalyzeCorpus 对提交的文本做词频、标点与词性统计。
func (a *API) AnalyzeCorpus(c *gin.Context) {
	log.Info().Str("ip", c.ClientIP()).Str("user_agent", c.Request.UserAgent()).Msg("收到分析请求")

	in, ok := a.bindCorpusRequest(c)
	if !ok {
		return
	}

	result, err := corpus.Analyze(a.Tokenizer, in.req, a.options(), a.Conf.TopN)
	if err != nil {
		log.Error().Err(err).Msg("文本分析失败")
		transport.InternalServerError(c, "文本分析失败: "+err.Error())
		return
	}

	a.audit(c, in)
	transport.SendSuccess(c, model.NewCorpusAnalysis(result))
}

// audit 记录请求。审计失败只记日志，不影响分析结果。
func (a *API) audit(c *gin.Context, in *corpusInput) {
	if a.Store == nil {
		return
	}
	rec := &model.AuditRecord{
		IP:                c.ClientIP(),
		Content:           in.req.Text,
		UserWords:         strings.Join(in.userWords, "/"),
		StopWords:         strings.Join(in.stopWords, "/"),
		DeletePunctuation: in.raw.DeletePunctuation,
		AddTime:           time.Now(),
		UserAgent:         c.Request.UserAgent(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Store.SaveRequest(ctx, rec); err != nil {
		log.Error().Err(err).
			Str("ip", rec.IP).
			Str("user_words", rec.UserWords).
			Str("stop_words", rec.StopWords).
			Bool("delete_punctuation", rec.DeletePunctuation).
			Str("user_agent", rec.UserAgent).
			Msg("写入审计记录失败")
	}
}
