package engagement

import (
	"fmt"

	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/apperr"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/models"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/notify"
)

// ToggleLikePost flips the user's like on a post. The like row's existence
// selects the effect: present deletes, absent creates. Two concurrent likes
// by the same user collapse on the store's unique index; the losing insert
// is treated as "already liked", not an error.
func (s *Service) ToggleLikePost(postID, userID uint) (*models.LikeResult, error) {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.CodeNotFound, "post not found")
		}
		return nil, storeErr(err)
	}
	if !post.IsPublic && post.AuthorID != userID {
		return nil, apperr.New(apperr.CodeForbidden, "this post is private")
	}

	liked, err := s.likes.HasUserLikedPost(postID, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	if liked {
		if _, err := s.likes.DeletePostLike(postID, userID); err != nil {
			return nil, storeErr(err)
		}
		return &models.LikeResult{Liked: false}, nil
	}

	err = s.likes.InsertPostLike(&models.PostLike{PostID: postID, UserID: userID})
	if err != nil {
		if isDuplicate(err) {
			// lost the race to a concurrent like by the same user
			return &models.LikeResult{Liked: true}, nil
		}
		return nil, storeErr(err)
	}

	if post.AuthorID != userID {
		s.notifier.Dispatch(notify.Event{
			RecipientID: post.AuthorID,
			Type:        notify.EventLike,
			ActorID:     userID,
			EntityID:    postID,
			EntityType:  notify.EntityPost,
			Message:     "liked your post",
		})
	}
	return &models.LikeResult{Liked: true}, nil
}

// ToggleLikeComment flips the user's like on a comment, with the same
// race-collapsing behavior as ToggleLikePost
func (s *Service) ToggleLikeComment(commentID, userID uint) (*models.LikeResult, error) {
	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.CodeNotFound, "comment not found")
		}
		return nil, storeErr(err)
	}
	post, err := s.posts.GetByID(comment.PostID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.CodeNotFound, "post not found")
		}
		return nil, storeErr(err)
	}
	if !post.IsPublic && post.AuthorID != userID {
		return nil, apperr.New(apperr.CodeForbidden, "this post is private")
	}

	liked, err := s.likes.HasUserLikedComment(commentID, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	if liked {
		if _, err := s.likes.DeleteCommentLike(commentID, userID); err != nil {
			return nil, storeErr(err)
		}
		return &models.LikeResult{Liked: false}, nil
	}

	err = s.likes.InsertCommentLike(&models.CommentLike{CommentID: commentID, UserID: userID})
	if err != nil {
		if isDuplicate(err) {
			return &models.LikeResult{Liked: true}, nil
		}
		return nil, storeErr(err)
	}

	if comment.AuthorID != userID {
		s.notifier.Dispatch(notify.Event{
			RecipientID: comment.AuthorID,
			Type:        notify.EventLike,
			ActorID:     userID,
			EntityID:    commentID,
			EntityType:  notify.EntityComment,
			Message:     fmt.Sprintf("liked your comment on post %d", comment.PostID),
		})
	}
	return &models.LikeResult{Liked: true}, nil
}
