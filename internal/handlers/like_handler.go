package handlers

import (
	"net/http"

	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/engagement"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/middleware"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles like toggles on posts and comments
type LikeHandler struct {
	engine *engagement.Service
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(engine *engagement.Service) *LikeHandler {
	return &LikeHandler{engine: engine}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.PUT("/posts/:id/like", h.ToggleLikePost)
	g.PUT("/comments/:id/like", h.ToggleLikeComment)
}

// ToggleLikePost flips the caller's like on a post and returns the new state
func (h *LikeHandler) ToggleLikePost(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.engine.ToggleLikePost(postID, userID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// ToggleLikeComment flips the caller's like on a comment and returns the new state
func (h *LikeHandler) ToggleLikeComment(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	commentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.engine.ToggleLikeComment(commentID, userID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
