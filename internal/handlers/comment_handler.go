package handlers

import (
	"net/http"

	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/engagement"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/feed"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/middleware"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/models"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	engine    *engagement.Service
	assembler *feed.Assembler
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(engine *engagement.Service, assembler *feed.Assembler) *CommentHandler {
	return &CommentHandler{engine: engine, assembler: assembler}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.GetPostComments)
	g.PUT("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// CreateComment creates a new comment (or reply) on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	postID, err := pathID(c, "post_id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.engine.AddComment(postID, userID, &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetPostComments returns a page of top-level comments with recent replies
func (h *CommentHandler) GetPostComments(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	postID, err := pathID(c, "post_id")
	if err != nil {
		return err
	}
	limit, offset := pageParams(c)

	page, err := h.assembler.GetPostComments(postID, userID, limit, offset)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// UpdateComment updates a comment owned by the authenticated user
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	commentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.engine.UpdateComment(commentID, userID, &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, comment)
}

// DeleteComment deletes a comment; the comment author and the post author
// are both allowed
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	commentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.engine.DeleteComment(commentID, userID); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
