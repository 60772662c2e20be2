package repositories

import (
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations on posts and
// comments. Insert relies on the store's composite unique index to collapse
// concurrent duplicates: a losing insert surfaces gorm.ErrDuplicatedKey.
type LikeRepository interface {
	InsertPostLike(like *models.PostLike) error
	DeletePostLike(postID, userID uint) (bool, error)
	HasUserLikedPost(postID, userID uint) (bool, error)
	InsertCommentLike(like *models.CommentLike) error
	DeleteCommentLike(commentID, userID uint) (bool, error)
	HasUserLikedComment(commentID, userID uint) (bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// InsertPostLike creates a post like and touches the liker's activity timestamp
func (r *PostgresLikeRepository) InsertPostLike(like *models.PostLike) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(like).Error; err != nil {
			return err
		}
		return touchLastActive(tx, like.UserID)
	})
}

// DeletePostLike removes the (post, user) like row; reports whether one
// existed. An unlike is still an engagement, so the actor's activity
// timestamp moves with the delete.
func (r *PostgresLikeRepository) DeletePostLike(postID, userID uint) (bool, error) {
	var removed bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return touchLastActive(tx, userID)
	})
	return removed, err
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *PostgresLikeRepository) HasUserLikedPost(postID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertCommentLike creates a comment like and touches the liker's activity timestamp
func (r *PostgresLikeRepository) InsertCommentLike(like *models.CommentLike) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(like).Error; err != nil {
			return err
		}
		return touchLastActive(tx, like.UserID)
	})
}

// DeleteCommentLike removes the (comment, user) like row; reports whether
// one existed
func (r *PostgresLikeRepository) DeleteCommentLike(commentID, userID uint) (bool, error) {
	var removed bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).Delete(&models.CommentLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return touchLastActive(tx, userID)
	})
	return removed, err
}

// HasUserLikedComment checks if a user has liked a specific comment
func (r *PostgresLikeRepository) HasUserLikedComment(commentID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.CommentLike{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
