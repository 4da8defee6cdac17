package analytics

import "github.com/afumu/gramtrace/internal/model"

// BuildProfileSection 汇总账号档案。空档案列表返回全零结果。
func BuildProfileSection(w *WindowData) *model.ProfileSection {
	sec := &model.ProfileSection{
		Profiles: make(map[string]*model.ProfileDetail),
	}

	for _, p := range w.Profiles {
		sec.Profiles[p.Username] = &model.ProfileDetail{
			Username:          p.Username,
			FullName:          p.FullName,
			FollowerCount:     p.FollowerCount,
			FollowingCount:    p.FollowingCount,
			MediaCount:        p.MediaCount,
			IsVerified:        p.IsVerified,
			IsPrivate:         p.IsPrivate,
			AvgEngagementRate: p.AvgEngagementRate,
		}
		sec.TotalFollowers += p.FollowerCount
		sec.TotalFollowing += p.FollowingCount
		if p.IsVerified {
			sec.VerifiedCount++
		}
		if p.IsPrivate {
			sec.PrivateCount++
		}
	}

	sec.TotalProfiles = len(w.Profiles)
	if sec.TotalProfiles > 0 {
		sec.AvgFollowers = round2(float64(sec.TotalFollowers) / float64(sec.TotalProfiles))
		sec.AvgFollowing = round2(float64(sec.TotalFollowing) / float64(sec.TotalProfiles))
	}
	return sec
}
