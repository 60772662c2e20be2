package repositories

import (
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations. Mutations
// that have a paired counter apply both in one transaction; there is no way
// to create or delete a post here without the posts_count delta.
type PostRepository interface {
	CreateWithCount(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	Update(post *models.Post, media []models.PostMedia) error
	DeleteCascadeWithCount(postID, authorID uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreateWithCount inserts the post (and its media rows) and increments the
// author's posts_count in the same transaction
func (r *PostgresPostRepository) CreateWithCount(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		if err := incrementStat(tx, post.AuthorID, "posts_count"); err != nil {
			return err
		}
		return touchLastActive(tx, post.AuthorID)
	})
}

// GetByID retrieves a post with its author, media and language preloaded
func (r *PostgresPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.
		Preload("Author").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("post_media.order_index ASC")
		}).
		Preload("Language").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update saves the post's columns and, when media is non-nil, replaces the
// media set, as one transaction
func (r *PostgresPostRepository) Update(post *models.Post, media []models.PostMedia) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Post{}).Where("id = ?", post.ID).
			Updates(map[string]interface{}{
				"content":     post.Content,
				"language_id": post.LanguageID,
				"is_public":   post.IsPublic,
			}).Error
		if err != nil {
			return err
		}
		if media != nil {
			if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostMedia{}).Error; err != nil {
				return err
			}
			for i := range media {
				media[i].PostID = post.ID
			}
			if len(media) > 0 {
				if err := tx.Create(&media).Error; err != nil {
					return err
				}
			}
		}
		return touchLastActive(tx, post.AuthorID)
	})
}

// DeleteCascadeWithCount removes the post, its media, its likes, its comments
// and their likes, and decrements the author's posts_count, all or nothing.
func (r *PostgresPostRepository) DeleteCascadeWithCount(postID, authorID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		commentIDs := tx.Model(&models.Comment{}).Select("id").Where("post_id = ?", postID)
		if err := tx.Where("comment_id IN (?)", commentIDs).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostMedia{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", postID).Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := decrementStat(tx, authorID, "posts_count"); err != nil {
			return err
		}
		// only the author may delete, so the author is the acting user
		return touchLastActive(tx, authorID)
	})
}
