package repositories

import (
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations.
// DeleteCascade takes the acting user separately: a post owner moderating
// someone else's comment is the actor, not the comment's author.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	Update(comment *models.Comment) error
	DeleteCascade(commentID, actorID uint) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// Create inserts the comment and touches the author's activity timestamp
func (r *PostgresCommentRepository) Create(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return touchLastActive(tx, comment.AuthorID)
	})
}

// GetByID retrieves a comment with its author preloaded
func (r *PostgresCommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Preload("Author").First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update saves an edited comment and touches the author's activity timestamp
func (r *PostgresCommentRepository) Update(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Comment{}).Where("id = ?", comment.ID).
			UpdateColumn("content", comment.Content).Error; err != nil {
			return err
		}
		return touchLastActive(tx, comment.AuthorID)
	})
}

// DeleteCascade removes the comment, its replies, and the likes on all of
// them in one transaction
func (r *PostgresCommentRepository) DeleteCascade(commentID, actorID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		replyIDs := tx.Model(&models.Comment{}).Select("id").Where("parent_comment_id = ?", commentID)
		if err := tx.Where("comment_id IN (?)", replyIDs).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_id = ?", commentID).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("parent_comment_id = ?", commentID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", commentID).Delete(&models.Comment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return touchLastActive(tx, actorID)
	})
}
