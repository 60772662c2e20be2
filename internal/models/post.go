package models

import "time"

// Post represents a user's post (PostgreSQL)
type Post struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	AuthorID   uint        `json:"author_id" gorm:"not null;index"`
	Author     User        `json:"author" gorm:"foreignKey:AuthorID"`
	Content    string      `json:"content" gorm:"type:text;not null"`
	LanguageID *uint       `json:"language_id,omitempty" gorm:"index"`
	Language   *Language   `json:"language,omitempty" gorm:"foreignKey:LanguageID"`
	IsPublic   bool        `json:"is_public" gorm:"not null;default:true"`
	Media      []PostMedia `json:"media,omitempty" gorm:"foreignKey:PostID"`
	CreatedAt  time.Time   `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// PostMedia represents a media item attached to a post
type PostMedia struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PostID      uint      `json:"post_id" gorm:"not null;index"`
	MediaType   string    `json:"media_type" gorm:"size:20;not null"` // image, video, audio
	MediaURL    string    `json:"media_url" gorm:"not null"`
	Description string    `json:"description,omitempty" gorm:"size:255"`
	OrderIndex  int       `json:"order_index" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

// Language is a read-only reference row mirroring the external language
// catalog. Only the ID is authoritative here; code/name exist so feeds can
// annotate posts without a catalog round trip.
type Language struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Code string `json:"code" gorm:"size:10;uniqueIndex"`
	Name string `json:"name" gorm:"size:50"`
}

// MediaInput describes one media item in a create/update post request
type MediaInput struct {
	MediaType   string `json:"media_type" validate:"required,oneof=image video audio"`
	MediaURL    string `json:"media_url" validate:"required,url"`
	Description string `json:"description,omitempty" validate:"omitempty,max=255"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content    string       `json:"content" validate:"required,min=1,max=2000"`
	LanguageID *uint        `json:"language_id,omitempty"`
	IsPublic   *bool        `json:"is_public,omitempty"`
	Media      []MediaInput `json:"media,omitempty" validate:"omitempty,max=10,dive"`
}

// UpdatePostRequest defines the request body for updating an existing post.
// Nil fields are left untouched; a non-nil Media slice replaces the whole set.
type UpdatePostRequest struct {
	Content    *string      `json:"content,omitempty" validate:"omitempty,min=1,max=2000"`
	LanguageID *uint        `json:"language_id,omitempty"`
	IsPublic   *bool        `json:"is_public,omitempty"`
	Media      []MediaInput `json:"media,omitempty" validate:"omitempty,max=10,dive"`
}
