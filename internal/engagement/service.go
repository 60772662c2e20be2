// Package engagement implements the mutation side of the subsystem: posts,
// comments, likes and follows, each paired with its counter inside one store
// transaction, with best-effort notification fan-out after commit.
package engagement

import (
	"errors"

	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/apperr"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/notify"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Notifier is the slice of the dispatcher the engine needs
type Notifier interface {
	Dispatch(event notify.Event)
}

// Service is the engagement engine. All mutations go through here; reads for
// feeds live in the feed package.
type Service struct {
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	likes    repositories.LikeRepository
	follows  repositories.FollowRepository
	users    repositories.UserRepository
	notifier Notifier
	logger   *zap.Logger
}

// NewService creates an engagement Service
func NewService(
	posts repositories.PostRepository,
	comments repositories.CommentRepository,
	likes repositories.LikeRepository,
	follows repositories.FollowRepository,
	users repositories.UserRepository,
	notifier Notifier,
	logger *zap.Logger,
) *Service {
	return &Service{
		posts:    posts,
		comments: comments,
		likes:    likes,
		follows:  follows,
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

// storeErr wraps a storage failure as Internal, passing coded errors through
func storeErr(err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperr.Wrap(apperr.CodeInternal, "storage failure", err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
