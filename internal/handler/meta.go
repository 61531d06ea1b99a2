package handler

import (
	"net/http"

	"propertyfinder/internal/model"
	"propertyfinder/internal/service"

	"github.com/gin-gonic/gin"
)

// MetaHandler serves the about text, vocabularies and notices
type MetaHandler struct {
	session *service.Session
}

// NewMetaHandler creates a new meta handler
func NewMetaHandler(session *service.Session) *MetaHandler {
	return &MetaHandler{session: session}
}

// About handles GET /api/v1/about
func (h *MetaHandler) About(c *gin.Context) {
	about, err := h.session.About()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"about": about})
}

// Vocabulary handles GET /api/v1/vocabulary
func (h *MetaHandler) Vocabulary(c *gin.Context) {
	c.JSON(http.StatusOK, model.Vocabulary{
		Types:     model.PropertyTypes,
		Amenities: model.AvailableAmenities,
		PriceMax:  h.session.Rules().PriceDomainMax,
	})
}

// DismissNotice handles DELETE /api/v1/notice
func (h *MetaHandler) DismissNotice(c *gin.Context) {
	h.session.DismissNotice()
	c.Status(http.StatusNoContent)
}
