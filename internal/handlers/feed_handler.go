package handlers

import (
	"net/http"
	"strconv"

	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/feed"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/middleware"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	assembler *feed.Assembler
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(assembler *feed.Assembler) *FeedHandler {
	return &FeedHandler{assembler: assembler}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns the authenticated user's feed page
func (h *FeedHandler) GetFeed(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	limit, offset := pageParams(c)

	query := feed.Query{
		Scope:  feed.Scope(c.QueryParam("scope")),
		Sort:   feed.Sort(c.QueryParam("sort")),
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.QueryParam("languageId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid languageId")
		}
		langID := uint(id)
		query.LanguageID = &langID
	}

	page, err := h.assembler.GetFeed(userID, query)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, page)
}
