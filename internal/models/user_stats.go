package models

import "time"

// UserStats is the denormalized per-user aggregate row. It is mutated only
// inside the same transaction as the relationship change it mirrors: a
// counter delta is never issued on its own.
type UserStats struct {
	UserID         uint       `json:"user_id" gorm:"primaryKey"`
	PostsCount     int64      `json:"posts_count" gorm:"not null;default:0"`
	FollowersCount int64      `json:"followers_count" gorm:"not null;default:0"`
	FollowingCount int64      `json:"following_count" gorm:"not null;default:0"`
	MatchesCount   int64      `json:"matches_count" gorm:"not null;default:0"`
	LastActiveDate *time.Time `json:"last_active_date,omitempty"`
}

// TableName keeps the aggregate table singular per user
func (UserStats) TableName() string {
	return "user_stats"
}
