package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/afumu/corpus/internal/model"
	"github.com/afumu/corpus/pkg/corpus"
	"github.com/afumu/corpus/web/export"
	"github.com/afumu/corpus/web/transport"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ExportCorpus 分析提交的文本并以文件形式返回结果。
// format 取 csv、xlsx 或 docx，默认 xlsx。
func (a *API) ExportCorpus(c *gin.Context) {
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

	name := fmt.Sprintf("corpus_%s", time.Now().Format("20060102_150405"))
	file, err := a.Export.Export(model.NewCorpusAnalysis(result), c.Query("format"), name)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			transport.BadRequest(c, err.Error())
			return
		}
		transport.InternalServerError(c, fmt.Sprintf("导出失败: %v", err))
		return
	}

	a.audit(c, in)
	transport.SendFile(c, file.Name, file.ContentType, file.Data)
}
