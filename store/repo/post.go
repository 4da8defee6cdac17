package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/afumu/gramtrace/internal/model"
	"github.com/afumu/gramtrace/store/types"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
)

// rawPostPayload 原始抓取载荷中引擎关心的可选计数。
// 不同版本的采集端字段不全，缺失时保持零值，入库读取时解析一次，
// 下游计算不再做任何动态兜底。
type rawPostPayload struct {
	ReshareCount int `mapstructure:"reshare_count"`
	SaveCount    int `mapstructure:"save_count"`
}

// GetPosts 查询帖子。返回发布时间不早于 Since 的帖子；
// 发布时间缺失（<=0）的帖子也会返回，由上层决定是否参与时间分桶。
func (r *Repository) GetPosts(ctx context.Context, q types.PostQuery) ([]*model.Post, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	query := `SELECT id, username, media_type, caption, like_count, comment_count,
		play_count, is_collaboration, posted_at, raw_payload
		FROM posts WHERE (posted_at >= ? OR posted_at <= 0)`
	args := []interface{}{q.Since.Unix()}
	if q.Username != "" {
		query += " AND username = ?"
		args = append(args, q.Username)
	}
	query += " ORDER BY posted_at ASC"
	if q.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, q.Limit, q.Offset)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*model.Post, 0)
	for rows.Next() {
		var p model.Post
		var caption sql.NullString
		var collab int
		var postedAt int64
		var payload []byte
		if err := rows.Scan(&p.ID, &p.Username, &p.MediaType, &caption, &p.LikeCount,
			&p.CommentCount, &p.PlayCount, &collab, &postedAt, &payload); err != nil {
			return nil, err
		}
		p.Caption = caption.String
		p.IsCollaboration = collab == 1
		p.MediaType = model.NormalizeMediaType(p.MediaType)
		if postedAt > 0 {
			p.PostedAt = time.Unix(postedAt, 0)
		}
		r.resolveOptionalCounts(&p, payload)
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

// resolveOptionalCounts 从原始载荷解析可选计数。
// 载荷损坏只记日志，不影响该帖子的必有字段。
func (r *Repository) resolveOptionalCounts(p *model.Post, payload []byte) {
	if len(payload) == 0 {
		return
	}
	raw, err := r.decodePayload(payload)
	if err != nil {
		log.Warn().Err(err).Str("post", p.ID).Msg("解压原始载荷失败")
		return
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		log.Warn().Err(err).Str("post", p.ID).Msg("解析原始载荷失败")
		return
	}

	var extra rawPostPayload
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true, // 计数字段在旧载荷里可能是字符串
		Result:           &extra,
	})
	if err != nil {
		return
	}
	if err := dec.Decode(m); err != nil {
		log.Warn().Err(err).Str("post", p.ID).Msg("解码可选计数失败")
		return
	}
	p.ReshareCount = extra.ReshareCount
	p.SaveCount = extra.SaveCount
}
