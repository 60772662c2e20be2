package models

import "time"

// PostLike represents a like on a post. The composite unique index is the
// authoritative guard against duplicate likes under concurrency; the row's
// existence is the sole source of "liked" state.
type PostLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"not null;index;uniqueIndex:idx_post_like_once"`
	UserID    uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_post_like_once"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentLike represents a like on a comment
type CommentLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CommentID uint      `json:"comment_id" gorm:"not null;index;uniqueIndex:idx_comment_like_once"`
	UserID    uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_comment_like_once"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeResult is the outcome of a toggle: the state the caller ends up in
type LikeResult struct {
	Liked bool `json:"liked"`
}
