package repositories

import (
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow data operations. The two
// counters move with the row or not at all.
type FollowRepository interface {
	CreateWithCounts(follow *models.Follow) error
	DeleteWithCounts(followerID, followingID uint) error
	IsFollowing(followerID, followingID uint) (bool, error)
	GetFollowingIDs(userID uint) ([]uint, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// CreateWithCounts inserts the follow row and increments following_count for
// the follower and followers_count for the followed user, atomically. A
// duplicate pair surfaces gorm.ErrDuplicatedKey from the unique index.
func (r *PostgresFollowRepository) CreateWithCounts(follow *models.Follow) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(follow).Error; err != nil {
			return err
		}
		if err := incrementStat(tx, follow.FollowerID, "following_count"); err != nil {
			return err
		}
		if err := incrementStat(tx, follow.FollowingID, "followers_count"); err != nil {
			return err
		}
		return touchLastActive(tx, follow.FollowerID)
	})
}

// DeleteWithCounts removes the follow row and decrements both counters
// atomically; returns gorm.ErrRecordNotFound when no such row exists
func (r *PostgresFollowRepository) DeleteWithCounts(followerID, followingID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&models.Follow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := decrementStat(tx, followerID, "following_count"); err != nil {
			return err
		}
		if err := decrementStat(tx, followingID, "followers_count"); err != nil {
			return err
		}
		return touchLastActive(tx, followerID)
	})
}

// IsFollowing checks whether the follow pair exists
func (r *PostgresFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowingIDs returns the IDs of everyone the user follows
func (r *PostgresFollowRepository) GetFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}
