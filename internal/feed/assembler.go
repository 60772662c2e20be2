package feed

import (
	"errors"

	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/apperr"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/models"
	"gorm.io/gorm"
)

// maxRepliesPerComment bounds the eager reply fan-out on comment pages
const maxRepliesPerComment = 3

// replyWindowSQL keeps each parent's newest replies and returns them in a
// stable order, grouped by parent and newest first within each group
const replyWindowSQL = `
	SELECT * FROM (
		SELECT comments.*,
			ROW_NUMBER() OVER (PARTITION BY parent_comment_id ORDER BY created_at DESC) AS rn
		FROM comments
		WHERE parent_comment_id IN ?
	) ranked WHERE rn <= ?
	ORDER BY parent_comment_id, created_at DESC`

// FeedPost is a post annotated for one viewer. The raw like rows never leave
// the store; callers only see counts and their own liked flag.
type FeedPost struct {
	models.Post
	LikesCount    int64 `json:"likes_count"`
	CommentsCount int64 `json:"comments_count"`
	LikedByMe     bool  `json:"liked_by_me"`
}

// CommentView is a comment annotated for one viewer, carrying a bounded set
// of its most recent replies
type CommentView struct {
	models.Comment
	LikesCount int64         `json:"likes_count"`
	LikedByMe  bool          `json:"liked_by_me"`
	Replies    []CommentView `json:"replies,omitempty"`
}

// Page is one page of results plus the total for the same predicate
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

// Assembler is the read-only feed component. It talks to the store directly:
// every page costs one COUNT, one row query and a fixed handful of batched
// association loads, independent of page size.
type Assembler struct {
	db *gorm.DB
}

// NewAssembler creates a feed Assembler
func NewAssembler(db *gorm.DB) *Assembler {
	return &Assembler{db: db}
}

// GetFeed returns the viewer's feed page for the given query
func (a *Assembler) GetFeed(userID uint, query Query) (*Page[FeedPost], error) {
	if err := query.Normalize(); err != nil {
		return nil, err
	}

	var total int64
	counted := query.apply(a.db.Model(&models.Post{}), userID)
	if err := counted.Count(&total).Error; err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "feed count failed", err)
	}

	rows, err := a.fetchPostPage(query.order(query.apply(a.db.Model(&models.Post{}), userID)), userID, query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}
	return &Page[FeedPost]{Items: rows, Total: total}, nil
}

// GetUserPosts returns one user's posts as seen by the viewer; private posts
// appear only when the viewer is the author
func (a *Assembler) GetUserPosts(authorID, viewerID uint, limit, offset int) (*Page[FeedPost], error) {
	q := Query{Limit: limit, Offset: offset}
	if err := q.Normalize(); err != nil {
		return nil, err
	}
	base := func() *gorm.DB {
		db := a.db.Model(&models.Post{}).Where("posts.author_id = ?", authorID)
		if authorID != viewerID {
			db = db.Where("posts.is_public")
		}
		return db
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "post count failed", err)
	}
	rows, err := a.fetchPostPage(base().Order("posts.created_at DESC"), viewerID, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	return &Page[FeedPost]{Items: rows, Total: total}, nil
}

// fetchPostPage runs the page query with per-viewer annotations baked in as
// correlated subselects, then batch-loads authors, media and languages.
func (a *Assembler) fetchPostPage(db *gorm.DB, viewerID uint, limit, offset int) ([]FeedPost, error) {
	var rows []FeedPost
	err := db.
		Select(`posts.*,
			(SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id) AS likes_count,
			(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comments_count,
			EXISTS(SELECT 1 FROM post_likes WHERE post_likes.post_id = posts.id AND post_likes.user_id = ?) AS liked_by_me`,
			viewerID).
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "feed page query failed", err)
	}
	if len(rows) == 0 {
		return []FeedPost{}, nil
	}
	if err := a.attachPostAssociations(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// attachPostAssociations fills Author, Media and Language for a page with one
// batched query per association
func (a *Assembler) attachPostAssociations(rows []FeedPost) error {
	postIDs := make([]uint, len(rows))
	authorIDs := make([]uint, 0, len(rows))
	languageIDs := make([]uint, 0, len(rows))
	for i := range rows {
		postIDs[i] = rows[i].ID
		authorIDs = append(authorIDs, rows[i].AuthorID)
		if rows[i].LanguageID != nil {
			languageIDs = append(languageIDs, *rows[i].LanguageID)
		}
	}

	var authors []models.User
	if err := a.db.Where("id IN ?", authorIDs).Find(&authors).Error; err != nil {
		return apperr.Wrap(apperr.CodeInternal, "author load failed", err)
	}
	authorByID := make(map[uint]models.User, len(authors))
	for _, u := range authors {
		authorByID[u.ID] = u
	}

	var media []models.PostMedia
	err := a.db.Where("post_id IN ?", postIDs).
		Order("post_id, order_index ASC").
		Find(&media).Error
	if err != nil {
		return apperr.Wrap(apperr.CodeInternal, "media load failed", err)
	}
	mediaByPost := make(map[uint][]models.PostMedia)
	for _, m := range media {
		mediaByPost[m.PostID] = append(mediaByPost[m.PostID], m)
	}

	languageByID := make(map[uint]models.Language)
	if len(languageIDs) > 0 {
		var languages []models.Language
		if err := a.db.Where("id IN ?", languageIDs).Find(&languages).Error; err != nil {
			return apperr.Wrap(apperr.CodeInternal, "language load failed", err)
		}
		for _, l := range languages {
			languageByID[l.ID] = l
		}
	}

	for i := range rows {
		rows[i].Author = authorByID[rows[i].AuthorID]
		rows[i].Media = mediaByPost[rows[i].ID]
		if rows[i].LanguageID != nil {
			if l, ok := languageByID[*rows[i].LanguageID]; ok {
				lang := l
				rows[i].Language = &lang
			}
		}
	}
	return nil
}

// GetPostComments returns a page of a post's top-level comments, each with
// up to maxRepliesPerComment of its most recent replies, all annotated with
// the viewer's like state
func (a *Assembler) GetPostComments(postID, viewerID uint, limit, offset int) (*Page[CommentView], error) {
	q := Query{Limit: limit, Offset: offset}
	if err := q.Normalize(); err != nil {
		return nil, err
	}

	var post models.Post
	if err := a.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.CodeNotFound, "post not found")
		}
		return nil, apperr.Wrap(apperr.CodeInternal, "post load failed", err)
	}
	if !post.IsPublic && post.AuthorID != viewerID {
		return nil, apperr.New(apperr.CodeForbidden, "this post is private")
	}

	topLevel := func() *gorm.DB {
		return a.db.Model(&models.Comment{}).
			Where("post_id = ? AND parent_comment_id IS NULL", postID)
	}

	var total int64
	if err := topLevel().Count(&total).Error; err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "comment count failed", err)
	}

	var comments []models.Comment
	err := topLevel().
		Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&comments).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "comment page query failed", err)
	}
	if len(comments) == 0 {
		return &Page[CommentView]{Items: []CommentView{}, Total: total}, nil
	}

	parentIDs := make([]uint, len(comments))
	for i, c := range comments {
		parentIDs[i] = c.ID
	}

	// bounded reply fan-out: one window-function query covers the whole page
	var replies []models.Comment
	err = a.db.Raw(replyWindowSQL, parentIDs, maxRepliesPerComment).
		Scan(&replies).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "reply query failed", err)
	}

	allIDs := make([]uint, 0, len(comments)+len(replies))
	authorIDs := make([]uint, 0, len(comments)+len(replies))
	for _, c := range comments {
		allIDs = append(allIDs, c.ID)
		authorIDs = append(authorIDs, c.AuthorID)
	}
	for _, r := range replies {
		allIDs = append(allIDs, r.ID)
		authorIDs = append(authorIDs, r.AuthorID)
	}

	likeCounts, likedByMe, err := a.commentLikeState(allIDs, viewerID)
	if err != nil {
		return nil, err
	}

	var authors []models.User
	if err := a.db.Where("id IN ?", authorIDs).Find(&authors).Error; err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "author load failed", err)
	}
	authorByID := make(map[uint]models.User, len(authors))
	for _, u := range authors {
		authorByID[u.ID] = u
	}

	replyViews := make(map[uint][]CommentView)
	for _, r := range replies {
		r.Author = authorByID[r.AuthorID]
		view := CommentView{
			Comment:    r,
			LikesCount: likeCounts[r.ID],
			LikedByMe:  likedByMe[r.ID],
		}
		replyViews[*r.ParentCommentID] = append(replyViews[*r.ParentCommentID], view)
	}

	items := make([]CommentView, len(comments))
	for i, c := range comments {
		c.Author = authorByID[c.AuthorID]
		items[i] = CommentView{
			Comment:    c,
			LikesCount: likeCounts[c.ID],
			LikedByMe:  likedByMe[c.ID],
			Replies:    replyViews[c.ID],
		}
	}
	return &Page[CommentView]{Items: items, Total: total}, nil
}

// commentLikeState batch-loads like counts and the viewer's liked flags for
// a set of comment IDs
func (a *Assembler) commentLikeState(commentIDs []uint, viewerID uint) (map[uint]int64, map[uint]bool, error) {
	type likeCount struct {
		CommentID uint
		Count     int64
	}
	var counts []likeCount
	err := a.db.Model(&models.CommentLike{}).
		Select("comment_id, COUNT(*) AS count").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&counts).Error
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.CodeInternal, "comment like count failed", err)
	}
	countByID := make(map[uint]int64, len(counts))
	for _, c := range counts {
		countByID[c.CommentID] = c.Count
	}

	var likedIDs []uint
	err = a.db.Model(&models.CommentLike{}).
		Where("comment_id IN ? AND user_id = ?", commentIDs, viewerID).
		Pluck("comment_id", &likedIDs).Error
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.CodeInternal, "comment like state failed", err)
	}
	liked := make(map[uint]bool, len(likedIDs))
	for _, id := range likedIDs {
		liked[id] = true
	}
	return countByID, liked, nil
}
