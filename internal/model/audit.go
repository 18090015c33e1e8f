package model

import "time"

// AuditRecord 是一次提交的分析请求，只用于审计，不会被分析流程读回。
type AuditRecord struct {
	ID                string    `json:"id"`
	IP                string    `json:"ip"`
	Content           string    `json:"content"`
	ContentHash       string    `json:"content_hash"`
	CharLength        int       `json:"char_length"`
	UserWords         string    `json:"user_words"`
	StopWords         string    `json:"stop_words"`
	DeletePunctuation bool      `json:"delete_punctuation"`
	AddTime           time.Time `json:"add_time"`
	UserAgent         string    `json:"user_agent"`
}
