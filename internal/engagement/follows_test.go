package engagement

import (
	"testing"

	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/apperr"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestFollowUser_SelfFollowRejected(t *testing.T) {
	svc := newTestService(new(MockPostRepository), new(MockCommentRepository), new(MockLikeRepository), new(MockFollowRepository), new(MockUserRepository), nil)

	err := svc.FollowUser(42, 42)
	assert.True(t, apperr.Is(err, apperr.CodeBadRequest))
}

func TestFollowUser_MissingUser(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Exists", uint(42)).Return(true, nil)
	users.On("Exists", uint(99)).Return(false, nil)

	svc := newTestService(new(MockPostRepository), new(MockCommentRepository), new(MockLikeRepository), new(MockFollowRepository), users, nil)

	err := svc.FollowUser(42, 99)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestFollowUser_CreatesPairOnce(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Exists", mock.Anything).Return(true, nil)

	follows := new(MockFollowRepository)
	follows.On("IsFollowing", uint(42), uint(7)).Return(false, nil).Once()
	follows.On("CreateWithCounts", mock.MatchedBy(func(f *models.Follow) bool {
		return f.FollowerID == 42 && f.FollowingID == 7
	})).Return(nil)

	svc := newTestService(new(MockPostRepository), new(MockCommentRepository), new(MockLikeRepository), follows, users, nil)

	assert.NoError(t, svc.FollowUser(42, 7))

	// second attempt sees the existing pair
	follows.On("IsFollowing", uint(42), uint(7)).Return(true, nil)
	err := svc.FollowUser(42, 7)
	assert.True(t, apperr.Is(err, apperr.CodeConflict))

	follows.AssertNumberOfCalls(t, "CreateWithCounts", 1)
}

func TestFollowUser_DuplicateKeyMapsToConflict(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Exists", mock.Anything).Return(true, nil)

	// the existence check raced: row appeared between read and insert
	follows := new(MockFollowRepository)
	follows.On("IsFollowing", uint(42), uint(7)).Return(false, nil)
	follows.On("CreateWithCounts", mock.Anything).Return(gorm.ErrDuplicatedKey)

	svc := newTestService(new(MockPostRepository), new(MockCommentRepository), new(MockLikeRepository), follows, users, nil)

	err := svc.FollowUser(42, 7)
	assert.True(t, apperr.Is(err, apperr.CodeConflict))
}

func TestUnfollowUser_WithoutPriorFollow(t *testing.T) {
	follows := new(MockFollowRepository)
	follows.On("DeleteWithCounts", uint(42), uint(7)).Return(gorm.ErrRecordNotFound)

	svc := newTestService(new(MockPostRepository), new(MockCommentRepository), new(MockLikeRepository), follows, new(MockUserRepository), nil)

	err := svc.UnfollowUser(42, 7)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestUnfollowUser_DeletesPair(t *testing.T) {
	follows := new(MockFollowRepository)
	follows.On("DeleteWithCounts", uint(42), uint(7)).Return(nil)

	svc := newTestService(new(MockPostRepository), new(MockCommentRepository), new(MockLikeRepository), follows, new(MockUserRepository), nil)

	assert.NoError(t, svc.UnfollowUser(42, 7))
	follows.AssertCalled(t, "DeleteWithCounts", uint(42), uint(7))
}
