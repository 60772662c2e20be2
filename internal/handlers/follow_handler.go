package handlers

import (
	"net/http"

	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/engagement"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/middleware"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow requests
type FollowHandler struct {
	engine *engagement.Service
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(engine *engagement.Service) *FollowHandler {
	return &FollowHandler{engine: engine}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
}

// FollowUser makes the caller follow the target user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	followerID := middleware.CurrentUserID(c)
	followingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.engine.FollowUser(followerID, followingID); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"follower_id":  followerID,
		"following_id": followingID,
	})
}

// UnfollowUser removes the caller's follow of the target user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	followerID := middleware.CurrentUserID(c)
	followingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.engine.UnfollowUser(followerID, followingID); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
