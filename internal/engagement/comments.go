package engagement

import (
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/apperr"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/models"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/notify"
)

// AddComment creates a comment (or a reply, when ParentCommentID is set) on
// a post the user can see. After the write commits, the post author gets a
// COMMENT event, and so does the parent comment's author for replies;
// commenting on your own post or replying to yourself never notifies you.
func (s *Service) AddComment(postID, userID uint, req *models.CreateCommentRequest) (*models.Comment, error) {
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

	var parent *models.Comment
	if req.ParentCommentID != nil {
		parent, err = s.comments.GetByID(*req.ParentCommentID)
		if err != nil {
			if isNotFound(err) {
				return nil, apperr.New(apperr.CodeBadRequest, "parent comment does not exist")
			}
			return nil, storeErr(err)
		}
		if parent.PostID != postID {
			return nil, apperr.New(apperr.CodeBadRequest, "parent comment belongs to another post")
		}
		if parent.ParentCommentID != nil {
			return nil, apperr.New(apperr.CodeBadRequest, "replies to replies are not allowed")
		}
	}

	comment := &models.Comment{
		PostID:          postID,
		AuthorID:        userID,
		Content:         req.Content,
		ParentCommentID: req.ParentCommentID,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, storeErr(err)
	}

	if post.AuthorID != userID {
		s.notifier.Dispatch(notify.Event{
			RecipientID: post.AuthorID,
			Type:        notify.EventComment,
			ActorID:     userID,
			EntityID:    comment.ID,
			EntityType:  notify.EntityComment,
			Message:     "commented on your post",
		})
	}
	if parent != nil && parent.AuthorID != userID {
		s.notifier.Dispatch(notify.Event{
			RecipientID: parent.AuthorID,
			Type:        notify.EventComment,
			ActorID:     userID,
			EntityID:    comment.ID,
			EntityType:  notify.EntityComment,
			Message:     "replied to your comment",
		})
	}
	return comment, nil
}

// UpdateComment edits a comment's content. Only the comment's author may edit.
func (s *Service) UpdateComment(commentID, requesterID uint, req *models.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.CodeNotFound, "comment not found")
		}
		return nil, storeErr(err)
	}
	if comment.AuthorID != requesterID {
		return nil, apperr.New(apperr.CodeForbidden, "only the author can edit this comment")
	}
	comment.Content = req.Content
	if err := s.comments.Update(comment); err != nil {
		return nil, storeErr(err)
	}
	return comment, nil
}

// DeleteComment removes a comment, its replies and the likes on them. The
// comment's author may delete, and so may the post's author: post owners
// moderate comments on their own posts.
func (s *Service) DeleteComment(commentID, requesterID uint) error {
	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		if isNotFound(err) {
			return apperr.New(apperr.CodeNotFound, "comment not found")
		}
		return storeErr(err)
	}
	if comment.AuthorID != requesterID {
		post, err := s.posts.GetByID(comment.PostID)
		if err != nil {
			if isNotFound(err) {
				return apperr.New(apperr.CodeNotFound, "post not found")
			}
			return storeErr(err)
		}
		if post.AuthorID != requesterID {
			return apperr.New(apperr.CodeForbidden, "only the comment author or the post author can delete this comment")
		}
	}
	if err := s.comments.DeleteCascade(commentID, requesterID); err != nil {
		if isNotFound(err) {
			return apperr.New(apperr.CodeNotFound, "comment not found")
		}
		return storeErr(err)
	}
	return nil
}
