package handlers

import (
	"net/http"

	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/engagement"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/feed"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/middleware"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/models"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	engine    *engagement.Service
	assembler *feed.Assembler
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(engine *engagement.Service, assembler *feed.Assembler) *PostHandler {
	return &PostHandler{engine: engine, assembler: assembler}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.GET("/users/:id/posts", h.GetUserPosts)
}

// CreatePost creates a new post for the authenticated user
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID := middleware.CurrentUserID(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.engine.CreatePost(userID, &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a single post, enforcing visibility
func (h *PostHandler) GetPost(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.engine.GetPost(postID, userID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, post)
}

// UpdatePost updates a post owned by the authenticated user
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.engine.UpdatePost(postID, userID, &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post owned by the authenticated user
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.engine.DeletePost(postID, userID); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetUserPosts lists one user's posts as visible to the caller
func (h *PostHandler) GetUserPosts(c echo.Context) error {
	viewerID := middleware.CurrentUserID(c)
	authorID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	limit, offset := pageParams(c)

	page, err := h.assembler.GetUserPosts(authorID, viewerID, limit, offset)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, page)
}
