package handler

import (
	"net/http"

	"propertyfinder/internal/service"

	"github.com/gin-gonic/gin"
)

// CompareHandler manages the comparison selection
type CompareHandler struct {
	session *service.Session
}

// NewCompareHandler creates a new compare handler
func NewCompareHandler(session *service.Session) *CompareHandler {
	return &CompareHandler{session: session}
}

// Summary handles GET /api/v1/compare
func (h *CompareHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.CompareSummary())
}

// Toggle handles POST /api/v1/compare/:id
func (h *CompareHandler) Toggle(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	resp, err := h.session.ToggleCompare(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Remove handles DELETE /api/v1/compare/:id
func (h *CompareHandler) Remove(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.session.RemoveCompare(id))
}

// Clear handles DELETE /api/v1/compare
func (h *CompareHandler) Clear(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.ClearCompare())
}
