package api

import (
	"github.com/afumu/corpus/store/types"
	"github.com/afumu/corpus/web/transport"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetAuditRecords 返回最近提交的分析请求。
func (a *API) GetAuditRecords(c *gin.Context) {
	var pageQuery transport.PaginationQuery
	if err := c.ShouldBindQuery(&pageQuery); err != nil {
		transport.BadRequest(c, "无效的分页参数: "+err.Error())
		return
	}
	if a.Store == nil {
		transport.NotFound(c, "审计存储未启用")
		return
	}

	records, err := a.Store.ListRequests(c.Request.Context(), types.AuditQuery{
		IP:     c.Query("ip"),
		Limit:  pageQuery.Limit,
		Offset: pageQuery.Offset,
	})
	if err != nil {
		log.Error().Err(err).Msg("从 store 获取审计记录失败")
		transport.InternalServerError(c, err.Error())
		return
	}

	total, err := a.Store.CountRequests(c.Request.Context())
	if err != nil {
		transport.InternalServerError(c, err.Error())
		return
	}

	transport.SendSuccess(c, gin.H{"total": total, "items": records})
}
