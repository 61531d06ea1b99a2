package handler

import (
	"net/http"
	"strconv"

	"propertyfinder/internal/model"
	"propertyfinder/internal/service"

	"github.com/gin-gonic/gin"
)

// ListingHandler serves the result page, single listings, filters and favorites
type ListingHandler struct {
	session *service.Session
}

// NewListingHandler creates a new listing handler
func NewListingHandler(session *service.Session) *ListingHandler {
	return &ListingHandler{session: session}
}

// List handles GET /api/v1/listings?page=N
func (h *ListingHandler) List(c *gin.Context) {
	pageStr := c.Query("page")
	if pageStr == "" {
		c.JSON(http.StatusOK, h.session.View())
		return
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page: " + pageStr})
		return
	}
	c.JSON(http.StatusOK, h.session.SetPage(page))
}

// GetListing handles GET /api/v1/listings/:id
func (h *ListingHandler) GetListing(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	listing, err := h.session.Listing(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// ToggleFavorite handles POST /api/v1/listings/:id/favorite
func (h *ListingHandler) ToggleFavorite(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	resp, err := h.session.ToggleFavorite(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetFilters handles GET /api/v1/filters
func (h *ListingHandler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.View().Filters)
}

// PatchFilters handles PATCH /api/v1/filters
func (h *ListingHandler) PatchFilters(c *gin.Context) {
	var patch model.FilterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.session.PatchFilters(patch))
}

// ResetFilters handles DELETE /api/v1/filters
func (h *ListingHandler) ResetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.ResetFilters())
}
