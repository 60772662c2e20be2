package engagement

import (
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/apperr"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/models"
)

// CreatePost creates a post for the author and bumps their posts_count in
// the same transaction
func (s *Service) CreatePost(authorID uint, req *models.CreatePostRequest) (*models.Post, error) {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	post := &models.Post{
		AuthorID:   authorID,
		Content:    req.Content,
		LanguageID: req.LanguageID,
		IsPublic:   isPublic,
		Media:      mediaRows(req.Media),
	}
	if err := s.posts.CreateWithCount(post); err != nil {
		return nil, storeErr(err)
	}
	return s.getPostOrCreated(post)
}

// GetPost returns a post, enforcing that private posts are visible only to
// their author
func (s *Service) GetPost(postID, requesterID uint) (*models.Post, error) {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.CodeNotFound, "post not found")
		}
		return nil, storeErr(err)
	}
	if !post.IsPublic && post.AuthorID != requesterID {
		return nil, apperr.New(apperr.CodeForbidden, "this post is private")
	}
	return post, nil
}

// UpdatePost edits a post's content, language, visibility or media set.
// Only the author may edit.
func (s *Service) UpdatePost(postID, requesterID uint, req *models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.CodeNotFound, "post not found")
		}
		return nil, storeErr(err)
	}
	if post.AuthorID != requesterID {
		return nil, apperr.New(apperr.CodeForbidden, "only the author can edit this post")
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.LanguageID != nil {
		post.LanguageID = req.LanguageID
	}
	if req.IsPublic != nil {
		post.IsPublic = *req.IsPublic
	}
	var media []models.PostMedia
	if req.Media != nil {
		// non-nil request media replaces the whole set; an explicit empty
		// array clears it, so keep the slice non-nil
		media = mediaRows(req.Media)
		if media == nil {
			media = []models.PostMedia{}
		}
	}
	if err := s.posts.Update(post, media); err != nil {
		return nil, storeErr(err)
	}
	updated, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, storeErr(err)
	}
	return updated, nil
}

// DeletePost removes a post, cascading its comments, likes and media and
// decrementing the author's posts_count, all in one transaction. Only the
// author may delete.
func (s *Service) DeletePost(postID, requesterID uint) error {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		if isNotFound(err) {
			return apperr.New(apperr.CodeNotFound, "post not found")
		}
		return storeErr(err)
	}
	if post.AuthorID != requesterID {
		return apperr.New(apperr.CodeForbidden, "only the author can delete this post")
	}
	if err := s.posts.DeleteCascadeWithCount(postID, post.AuthorID); err != nil {
		if isNotFound(err) {
			return apperr.New(apperr.CodeNotFound, "post not found")
		}
		return storeErr(err)
	}
	return nil
}

func (s *Service) getPostOrCreated(post *models.Post) (*models.Post, error) {
	loaded, err := s.posts.GetByID(post.ID)
	if err != nil {
		// the row committed; fall back to what we wrote
		s.logger.Warn("reload after create failed")
		return post, nil
	}
	return loaded, nil
}

func mediaRows(inputs []models.MediaInput) []models.PostMedia {
	if len(inputs) == 0 {
		return nil
	}
	rows := make([]models.PostMedia, len(inputs))
	for i, m := range inputs {
		rows[i] = models.PostMedia{
			MediaType:   m.MediaType,
			MediaURL:    m.MediaURL,
			Description: m.Description,
			OrderIndex:  i,
		}
	}
	return rows
}
