// Package feed assembles ranked, filtered, paginated post and comment views.
// It never mutates; writes live in the engagement package.
package feed

import (
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/apperr"
	"gorm.io/gorm"
)

// Scope selects which authors' posts a feed query covers
type Scope string

const (
	// ScopeAll covers every visible post
	ScopeAll Scope = "all"
	// ScopeFriends narrows public posts to authors the caller follows;
	// the caller's own posts stay visible either way
	ScopeFriends Scope = "friends"
)

// Sort selects the feed ordering. SortRelevance currently ranks by recency;
// no separate relevance signal exists yet.
type Sort string

const (
	SortRecent    Sort = "recent"
	SortPopular   Sort = "popular"
	SortRelevance Sort = "relevance"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// Query is the typed feed filter. Building predicates from explicit fields
// keeps malformed filters from ever reaching the store.
type Query struct {
	Scope      Scope
	Sort       Sort
	LanguageID *uint
	Limit      int
	Offset     int
}

// Normalize fills defaults, caps the page size and rejects unknown enums
func (q *Query) Normalize() error {
	if q.Scope == "" {
		q.Scope = ScopeAll
	}
	if q.Sort == "" {
		q.Sort = SortRecent
	}
	switch q.Scope {
	case ScopeAll, ScopeFriends:
	default:
		return apperr.Newf(apperr.CodeBadRequest, "unknown feed scope %q", string(q.Scope))
	}
	switch q.Sort {
	case SortRecent, SortPopular, SortRelevance:
	default:
		return apperr.Newf(apperr.CodeBadRequest, "unknown feed sort %q", string(q.Sort))
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return nil
}

// apply compiles the query's predicate onto db for the given caller. The
// visibility rule is always present: own posts or public ones, with the
// friends scope narrowing the public branch to followed authors.
func (q *Query) apply(db *gorm.DB, userID uint) *gorm.DB {
	switch q.Scope {
	case ScopeFriends:
		db = db.Where(
			"posts.author_id = ? OR (posts.is_public AND posts.author_id IN (?))",
			userID,
			db.Session(&gorm.Session{NewDB: true}).
				Table("follows").Select("following_id").Where("follower_id = ?", userID),
		)
	default:
		db = db.Where("posts.author_id = ? OR posts.is_public", userID)
	}
	if q.LanguageID != nil {
		db = db.Where("posts.language_id = ?", *q.LanguageID)
	}
	return db
}

// order compiles the query's sort onto db
func (q *Query) order(db *gorm.DB) *gorm.DB {
	switch q.Sort {
	case SortPopular:
		return db.Order("(SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id) DESC").
			Order("posts.created_at DESC")
	default: // recent and relevance both rank by recency
		return db.Order("posts.created_at DESC")
	}
}
