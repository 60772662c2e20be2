package models

import "time"

// Comment represents a comment on a post. ParentCommentID, when set, points
// at a top-level comment on the same post; replies to replies are not
// allowed, so the tree is at most two levels deep.
type Comment struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	PostID          uint      `json:"post_id" gorm:"not null;index"`
	AuthorID        uint      `json:"author_id" gorm:"not null;index"`
	Author          User      `json:"author" gorm:"foreignKey:AuthorID"`
	Content         string    `json:"content" gorm:"type:text;not null"`
	ParentCommentID *uint     `json:"parent_comment_id,omitempty" gorm:"index"`
	CreatedAt       time.Time `json:"created_at" gorm:"index"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content         string `json:"content" validate:"required,min=1,max=1000"`
	ParentCommentID *uint  `json:"parent_comment_id,omitempty"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}
