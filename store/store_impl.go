package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/afumu/corpus/internal/model"
	"github.com/afumu/corpus/store/core"
	"github.com/afumu/corpus/store/types"
	"github.com/google/uuid"
)

const timeLayout = "2006-01-02 15:04:05"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS corpus_request (
		id TEXT PRIMARY KEY,
		ip TEXT NOT NULL DEFAULT '',
		content BLOB,
		content_hash TEXT NOT NULL DEFAULT '',
		char_length INTEGER NOT NULL DEFAULT 0,
		user_words TEXT NOT NULL DEFAULT '',
		stop_words TEXT NOT NULL DEFAULT '',
		delete_punctuation INTEGER NOT NULL DEFAULT 0,
		add_time TEXT NOT NULL,
		user_agent TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_corpus_request_add_time ON corpus_request (add_time)`,
	`CREATE INDEX IF NOT EXISTS idx_corpus_request_hash ON corpus_request (content_hash)`,
}

// DefaultStore 是基于 SQLite 的 Store 实现
type DefaultStore struct {
	db *sql.DB
}

// NewStore 打开 path 处的审计库
func NewStore(path string) (*DefaultStore, error) {
	db, err := core.Open(path, schema...)
	if err != nil {
		return nil, err
	}
	return &DefaultStore{db: db}, nil
}

func (s *DefaultStore) Close() error {
	return s.db.Close()
}

func (s *DefaultStore) SaveRequest(ctx context.Context, rec *model.AuditRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.AddTime.IsZero() {
		rec.AddTime = time.Now()
	}
	if rec.ContentHash == "" {
		rec.ContentHash = ContentHash(rec.Content)
	}
	if rec.CharLength == 0 {
		rec.CharLength = utf8.RuneCountInString(rec.Content)
	}

	deletePunctuation := 0
	if rec.DeletePunctuation {
		deletePunctuation = 1
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO corpus_request
			(id, ip, content, content_hash, char_length, user_words, stop_words, delete_punctuation, add_time, user_agent)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.IP, compress(rec.Content), rec.ContentHash, rec.CharLength,
		rec.UserWords, rec.StopWords, deletePunctuation, rec.AddTime.Format(timeLayout), rec.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("写入审计记录失败: %w", err)
	}
	return nil
}

func (s *DefaultStore) ListRequests(ctx context.Context, query types.AuditQuery) ([]*model.AuditRecord, error) {
	var where []string
	var args []interface{}
	if query.IP != "" {
		where = append(where, "ip = ?")
		args = append(args, query.IP)
	}
	if !query.StartTime.IsZero() {
		where = append(where, "add_time >= ?")
		args = append(args, query.StartTime.Format(timeLayout))
	}
	if !query.EndTime.IsZero() {
		where = append(where, "add_time <= ?")
		args = append(args, query.EndTime.Format(timeLayout))
	}

	sqlStr := `SELECT id, ip, content, content_hash, char_length, user_words, stop_words, delete_punctuation, add_time, user_agent
		FROM corpus_request`
	if len(where) > 0 {
		sqlStr += " WHERE " + strings.Join(where, " AND ")
	}
	sqlStr += " ORDER BY add_time DESC, rowid DESC"

	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}
	sqlStr += " LIMIT ? OFFSET ?"
	args = append(args, limit, query.Offset)

	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("查询审计记录失败: %w", err)
	}
	defer rows.Close()

	var records []*model.AuditRecord
	for rows.Next() {
		var (
			rec      model.AuditRecord
			content  []byte
			delPunct int
			addTime  string
		)
		if err := rows.Scan(&rec.ID, &rec.IP, &content, &rec.ContentHash, &rec.CharLength,
			&rec.UserWords, &rec.StopWords, &delPunct, &addTime, &rec.UserAgent); err != nil {
			return nil, fmt.Errorf("读取审计记录失败: %w", err)
		}
		if rec.Content, err = decompress(content); err != nil {
			return nil, err
		}
		rec.DeletePunctuation = delPunct == 1
		rec.AddTime, _ = time.ParseInLocation(timeLayout, addTime, time.Local)
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (s *DefaultStore) CountRequests(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM corpus_request").Scan(&n); err != nil {
		return 0, fmt.Errorf("统计审计记录失败: %w", err)
	}
	return n, nil
}
