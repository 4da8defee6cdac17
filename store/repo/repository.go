package repo

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"

	"github.com/afumu/gramtrace/store/core"
	"github.com/klauspost/compress/zstd"
)

// Repository 是数据访问层的入口。所有查询都是只读的，
// 写入由采集管道完成。
type Repository struct {
	pool   *core.ConnectionPool
	dbPath string
	zdec   *zstd.Decoder
}

// New 创建一个新的 Repository
func New(pool *core.ConnectionPool, dbPath string) (*Repository, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("初始化 zstd 解码器失败: %w", err)
	}
	return &Repository{
		pool:   pool,
		dbPath: dbPath,
		zdec:   dec,
	}, nil
}

// DBPath 返回底层数据库文件路径
func (r *Repository) DBPath() string {
	return r.dbPath
}

func (r *Repository) conn() (*sql.DB, error) {
	return r.pool.GetConnection(r.dbPath)
}

// zstd 压缩数据的魔数。采集端通常以 zstd 压缩原始载荷，
// 但旧版本直接存明文 JSON，这里按魔数区分。
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// decodePayload 解压原始抓取载荷。非压缩数据原样返回。
func (r *Repository) decodePayload(blob []byte) ([]byte, error) {
	if len(blob) == 0 {
		return nil, nil
	}
	if !bytes.HasPrefix(blob, zstdMagic) {
		return blob, nil
	}
	return r.zdec.DecodeAll(blob, nil)
}

// EnsureSchema 建表。表结构与采集管道共享，IF NOT EXISTS 保证
// 对已有数据文件是无操作。
func (r *Repository) EnsureSchema(ctx context.Context) error {
	db, err := r.conn()
	if err != nil {
		return err
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			username TEXT PRIMARY KEY,
			full_name TEXT DEFAULT '',
			follower_count INTEGER DEFAULT 0,
			following_count INTEGER DEFAULT 0,
			media_count INTEGER DEFAULT 0,
			is_verified INTEGER DEFAULT 0,
			is_private INTEGER DEFAULT 0,
			avg_engagement_rate REAL DEFAULT 0,
			scraped_at INTEGER DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			media_type TEXT DEFAULT 'post',
			caption TEXT DEFAULT '',
			like_count INTEGER DEFAULT 0,
			comment_count INTEGER DEFAULT 0,
			play_count INTEGER DEFAULT 0,
			is_collaboration INTEGER DEFAULT 0,
			posted_at INTEGER DEFAULT 0,
			raw_payload BLOB
		)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_username ON posts(username)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_posted_at ON posts(posted_at)`,
		`CREATE TABLE IF NOT EXISTS stories (
			story_id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			media_type TEXT DEFAULT 'post',
			posted_at INTEGER DEFAULT 0,
			expires_at INTEGER DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stories_expires_at ON stories(expires_at)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("初始化表结构失败: %w", err)
		}
	}
	return nil
}
