package repositories

import (
	"time"

	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatsRepository reads the denormalized per-user aggregates. Counter writes
// are not exposed here: they only happen inside the same transaction as the
// relationship change, via the helpers below used by the other repositories.
type StatsRepository interface {
	GetByUserID(userID uint) (*models.UserStats, error)
}

// PostgresStatsRepository implements StatsRepository for PostgreSQL
type PostgresStatsRepository struct {
	db *gorm.DB
}

// NewPostgresStatsRepository creates a new PostgresStatsRepository
func NewPostgresStatsRepository(db *gorm.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

// GetByUserID returns the stats row for a user, zero-valued if none exists yet
func (r *PostgresStatsRepository) GetByUserID(userID uint) (*models.UserStats, error) {
	var stats models.UserStats
	err := r.db.Where("user_id = ?", userID).First(&stats).Error
	if err == gorm.ErrRecordNotFound {
		return &models.UserStats{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ensureStatsRow makes sure the aggregate row exists before applying a delta
func ensureStatsRow(tx *gorm.DB, userID uint) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserStats{UserID: userID}).Error
}

// incrementStat bumps one counter column for a user inside tx
func incrementStat(tx *gorm.DB, userID uint, column string) error {
	if err := ensureStatsRow(tx, userID); err != nil {
		return err
	}
	return tx.Model(&models.UserStats{}).
		Where("user_id = ?", userID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1)).Error
}

// decrementStat lowers one counter column, flooring at zero so a replayed
// delete can never drive the aggregate negative
func decrementStat(tx *gorm.DB, userID uint, column string) error {
	if err := ensureStatsRow(tx, userID); err != nil {
		return err
	}
	return tx.Model(&models.UserStats{}).
		Where("user_id = ?", userID).
		UpdateColumn(column, gorm.Expr("GREATEST("+column+" - ?, 0)", 1)).Error
}

// touchLastActive records engagement activity for the acting user inside tx
func touchLastActive(tx *gorm.DB, userID uint) error {
	if err := ensureStatsRow(tx, userID); err != nil {
		return err
	}
	now := time.Now().UTC()
	return tx.Model(&models.UserStats{}).
		Where("user_id = ?", userID).
		UpdateColumn("last_active_date", now).Error
}
