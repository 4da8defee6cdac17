package repo

import (
	"context"
	"database/sql"

	"github.com/afumu/gramtrace/internal/model"
	"github.com/afumu/gramtrace/store/types"
)

// GetProfiles 查询账号档案。未知账号返回空列表而不是错误。
func (r *Repository) GetProfiles(ctx context.Context, q types.ProfileQuery) ([]*model.Profile, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	query := `SELECT username, full_name, follower_count, following_count, media_count,
		is_verified, is_private, avg_engagement_rate, scraped_at
		FROM profiles`
	var args []interface{}
	if q.Username != "" {
		query += " WHERE username = ?"
		args = append(args, q.Username)
	}
	query += " ORDER BY follower_count DESC"
	if q.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, q.Limit, q.Offset)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]*model.Profile, 0)
	for rows.Next() {
		var p model.Profile
		var fullName sql.NullString
		var rate sql.NullFloat64
		var verified, private int
		if err := rows.Scan(&p.Username, &fullName, &p.FollowerCount, &p.FollowingCount,
			&p.MediaCount, &verified, &private, &rate, &p.ScrapedAt); err != nil {
			return nil, err
		}
		p.FullName = fullName.String
		p.AvgEngagementRate = rate.Float64
		p.IsVerified = verified == 1
		p.IsPrivate = private == 1
		profiles = append(profiles, &p)
	}
	return profiles, rows.Err()
}
