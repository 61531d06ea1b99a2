package handler

import (
	"net/http"
	"strings"

	"propertyfinder/internal/service"

	"github.com/gin-gonic/gin"
)

// BuildInfo is reported by /health and /version
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// RegisterRoutes mounts the health endpoints and the /api/v1 routes
func RegisterRoutes(router *gin.Engine, session *service.Session, build BuildInfo) {
	listingHandler := NewListingHandler(session)
	searchHandler := NewSearchHandler(session)
	compareHandler := NewCompareHandler(session)
	metaHandler := NewMetaHandler(session)

	router.GET("/health", func(c *gin.Context) {
		view := session.View()
		status := "healthy"
		if !view.Ready {
			status = "loading"
		} else if view.LoadError != "" {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":     status,
			"service":    "property-finder",
			"version":    build.Version,
			"build_time": build.BuildTime,
			"git_commit": build.GitCommit,
		})
	})

	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    build.Version,
			"build_time": build.BuildTime,
			"git_commit": build.GitCommit,
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/listings", listingHandler.List)
		apiV1.GET("/listings/:id", listingHandler.GetListing)
		apiV1.POST("/listings/:id/favorite", listingHandler.ToggleFavorite)

		apiV1.GET("/filters", listingHandler.GetFilters)
		apiV1.PATCH("/filters", listingHandler.PatchFilters)
		apiV1.DELETE("/filters", listingHandler.ResetFilters)

		apiV1.POST("/search", searchHandler.Search)
		apiV1.POST("/search/stream", searchHandler.SearchStream)
		apiV1.DELETE("/search", searchHandler.ClearSearch)

		apiV1.GET("/compare", compareHandler.Summary)
		apiV1.POST("/compare/:id", compareHandler.Toggle)
		apiV1.DELETE("/compare/:id", compareHandler.Remove)
		apiV1.DELETE("/compare", compareHandler.Clear)

		apiV1.GET("/about", metaHandler.About)
		apiV1.GET("/vocabulary", metaHandler.Vocabulary)
		apiV1.DELETE("/notice", metaHandler.DismissNotice)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}
