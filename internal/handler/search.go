package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"propertyfinder/internal/model"
	"propertyfinder/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles natural language search requests
type SearchHandler struct {
	session *service.Session
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(session *service.Session) *SearchHandler {
	return &SearchHandler{session: session}
}

// Search handles POST /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.session.Search(c.Request.Context(), req.Query))
}

// SearchStream handles POST /api/v1/search/stream - SSE streaming search
func (h *SearchHandler) SearchStream(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming not supported"})
		return
	}

	c.Header("Content-Type", "text/event-stream; charset=utf-8")
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	emit := func(event string, data any) {
		sendSSE(c, event, data)
		flusher.Flush()
	}

	emit("start", map[string]any{"query": req.Query})
	emit("parsing", map[string]any{"status": "Parsing your query..."})

	response := h.session.SearchStream(c.Request.Context(), req.Query, func(thinking, content string) error {
		if err := c.Request.Context().Err(); err != nil {
			return err
		}
		if thinking != "" {
			emit("thinking", map[string]any{"content": thinking})
		}
		if content != "" {
			emit("content", map[string]any{"content": content})
		}
		return nil
	})

	emit("intent", response.Intent)
	emit("results", response)
	emit("done", nil)
}

// ClearSearch handles DELETE /api/v1/search
func (h *SearchHandler) ClearSearch(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.ClearSearch())
}

// sendSSE sends a Server-Sent Event
func sendSSE(c *gin.Context, event string, data any) {
	if data == nil {
		fmt.Fprintf(c.Writer, "event: %s\ndata: {}\n\n", event)
		return
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		fmt.Fprintf(c.Writer, "event: error\ndata: {\"error\": \"JSON marshal failed\"}\n\n")
		return
	}
	fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, jsonData)
}
