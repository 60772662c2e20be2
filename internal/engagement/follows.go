package engagement

import (
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/apperr"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/models"
)

// FollowUser creates a follow from follower to following and moves both
// counters with it atomically
func (s *Service) FollowUser(followerID, followingID uint) error {
	if followerID == followingID {
		return apperr.New(apperr.CodeBadRequest, "you cannot follow yourself")
	}
	for _, id := range []uint{followerID, followingID} {
		exists, err := s.users.Exists(id)
		if err != nil {
			return storeErr(err)
		}
		if !exists {
			return apperr.New(apperr.CodeNotFound, "user not found")
		}
	}
	following, err := s.follows.IsFollowing(followerID, followingID)
	if err != nil {
		return storeErr(err)
	}
	if following {
		return apperr.New(apperr.CodeConflict, "already following this user")
	}
	err = s.follows.CreateWithCounts(&models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	})
	if err != nil {
		if isDuplicate(err) {
			return apperr.New(apperr.CodeConflict, "already following this user")
		}
		return storeErr(err)
	}
	return nil
}

// UnfollowUser deletes the follow pair and moves both counters with it
// atomically
func (s *Service) UnfollowUser(followerID, followingID uint) error {
	err := s.follows.DeleteWithCounts(followerID, followingID)
	if err != nil {
		if isNotFound(err) {
			return apperr.New(apperr.CodeNotFound, "you are not following this user")
		}
		return storeErr(err)
	}
	return nil
}
