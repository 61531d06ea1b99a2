package handler

import (
	"errors"
	"net/http"
	"strconv"

	"propertyfinder/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps session errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrListingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
	case errors.Is(err, service.ErrNotReady):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Catalog is still loading"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// listingID parses the :id path parameter, writing a 400 on failure
func listingID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return 0, false
	}
	return id, true
}
