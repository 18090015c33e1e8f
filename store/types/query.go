package types

import "time"

// AuditQuery 封装了查询审计记录的参数
type AuditQuery struct {
	IP        string
	StartTime time.Time
	EndTime   time.Time
	Limit     int
	Offset    int
}
