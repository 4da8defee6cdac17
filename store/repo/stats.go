package repo

import (
	"context"
	"database/sql"
	"os"

	"github.com/afumu/gramtrace/internal/model"
)

// GetStoreStats 统计数据文件的总体状态
func (r *Repository) GetStoreStats(ctx context.Context) (*model.StoreStats, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	stats := &model.StoreStats{DBPath: r.dbPath}

	if s, err := os.Stat(r.dbPath); err == nil {
		stats.DBSizeMB = float64(s.Size()) / 1024 / 1024
	}

	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM profiles").Scan(&stats.ProfileCount); err != nil {
		return nil, err
	}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM stories").Scan(&stats.StoryCount); err != nil {
		return nil, err
	}

	var count int
	var minT, maxT sql.NullInt64
	query := "SELECT COUNT(*), MIN(posted_at), MAX(posted_at) FROM posts WHERE posted_at > 0"
	if err := db.QueryRowContext(ctx, query).Scan(&count, &minT, &maxT); err != nil {
		return nil, err
	}
	stats.PostCount = count
	if minT.Valid {
		stats.EarliestPostTime = minT.Int64
	}
	if maxT.Valid {
		stats.LatestPostTime = maxT.Int64
	}

	// 时间缺失的帖子不在上面的时间范围内，但仍计入总数
	var untimed int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts WHERE posted_at <= 0").Scan(&untimed); err == nil {
		stats.PostCount += untimed
	}

	return stats, nil
}
