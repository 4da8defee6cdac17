package repo

import (
	"context"
	"time"

	"github.com/afumu/gramtrace/internal/model"
	"github.com/afumu/gramtrace/store/types"
)

// GetActiveStories 查询在 ActiveAt 时刻仍然活跃的快拍。
// 过期时间必须严格晚于该时刻。
func (r *Repository) GetActiveStories(ctx context.Context, q types.StoryQuery) ([]*model.Story, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	query := `SELECT story_id, username, media_type, posted_at, expires_at
		FROM stories WHERE expires_at > ?`
	args := []interface{}{q.ActiveAt.Unix()}
	if q.Username != "" {
		query += " AND username = ?"
		args = append(args, q.Username)
	}
	query += " ORDER BY posted_at DESC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stories := make([]*model.Story, 0)
	for rows.Next() {
		var s model.Story
		var postedAt, expiresAt int64
		if err := rows.Scan(&s.StoryID, &s.Username, &s.MediaType, &postedAt, &expiresAt); err != nil {
			return nil, err
		}
		s.MediaType = model.NormalizeMediaType(s.MediaType)
		if postedAt > 0 {
			s.PostedAt = time.Unix(postedAt, 0)
		}
		if expiresAt > 0 {
			s.ExpiresAt = time.Unix(expiresAt, 0)
		}
		stories = append(stories, &s)
	}
	return stories, rows.Err()
}
