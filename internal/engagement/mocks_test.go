package engagement

import (
	"sync"

	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/models"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/notify"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockPostRepository is a mock implementation of repositories.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) CreateWithCount(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id uint) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(post *models.Post, media []models.PostMedia) error {
	args := m.Called(post, media)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteCascadeWithCount(postID, authorID uint) error {
	args := m.Called(postID, authorID)
	return args.Error(0)
}

// MockCommentRepository is a mock implementation of repositories.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(id uint) (*models.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteCascade(commentID, actorID uint) error {
	args := m.Called(commentID, actorID)
	return args.Error(0)
}

// MockLikeRepository is a mock implementation of repositories.LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) InsertPostLike(like *models.PostLike) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockLikeRepository) DeletePostLike(postID, userID uint) (bool, error) {
	args := m.Called(postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) HasUserLikedPost(postID, userID uint) (bool, error) {
	args := m.Called(postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) InsertCommentLike(like *models.CommentLike) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockLikeRepository) DeleteCommentLike(commentID, userID uint) (bool, error) {
	args := m.Called(commentID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) HasUserLikedComment(commentID, userID uint) (bool, error) {
	args := m.Called(commentID, userID)
	return args.Bool(0), args.Error(1)
}

// MockFollowRepository is a mock implementation of repositories.FollowRepository
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) CreateWithCounts(follow *models.Follow) error {
	args := m.Called(follow)
	return args.Error(0)
}

func (m *MockFollowRepository) DeleteWithCounts(followerID, followingID uint) error {
	args := m.Called(followerID, followingID)
	return args.Error(0)
}

func (m *MockFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	args := m.Called(followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) GetFollowingIDs(userID uint) ([]uint, error) {
	args := m.Called(userID)
	return args.Get(0).([]uint), args.Error(1)
}

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Exists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// recordingNotifier captures dispatched events synchronously
type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *recordingNotifier) Dispatch(event notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) Events() []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notify.Event, len(n.events))
	copy(out, n.events)
	return out
}

// fakeLikeRepo is an in-memory LikeRepository; the map plays the role of the
// store's unique index
type fakeLikeRepo struct {
	mu           sync.Mutex
	postLikes    map[[2]uint]bool
	commentLikes map[[2]uint]bool
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{
		postLikes:    make(map[[2]uint]bool),
		commentLikes: make(map[[2]uint]bool),
	}
}

func (f *fakeLikeRepo) InsertPostLike(like *models.PostLike) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := [2]uint{like.PostID, like.UserID}
	if f.postLikes[key] {
		return gorm.ErrDuplicatedKey
	}
	f.postLikes[key] = true
	return nil
}

func (f *fakeLikeRepo) DeletePostLike(postID, userID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := [2]uint{postID, userID}
	if !f.postLikes[key] {
		return false, nil
	}
	delete(f.postLikes, key)
	return true, nil
}

func (f *fakeLikeRepo) HasUserLikedPost(postID, userID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.postLikes[[2]uint{postID, userID}], nil
}

func (f *fakeLikeRepo) InsertCommentLike(like *models.CommentLike) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := [2]uint{like.CommentID, like.UserID}
	if f.commentLikes[key] {
		return gorm.ErrDuplicatedKey
	}
	f.commentLikes[key] = true
	return nil
}

func (f *fakeLikeRepo) DeleteCommentLike(commentID, userID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := [2]uint{commentID, userID}
	if !f.commentLikes[key] {
		return false, nil
	}
	delete(f.commentLikes, key)
	return true, nil
}

func (f *fakeLikeRepo) HasUserLikedComment(commentID, userID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commentLikes[[2]uint{commentID, userID}], nil
}
