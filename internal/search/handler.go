package search

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Searcher is the query side of the sellers index.
type Searcher interface {
	Search(ctx context.Context, query string, size int) ([]SellerDocument, error)
}

type Handler struct {
	searcher Searcher
}

func NewHandler(searcher Searcher) *Handler {
	return &Handler{searcher: searcher}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sellers/search", h.Search)
}

// Search serves the buyer-facing supplier search.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	docs, err := h.searcher.Search(c.Request.Context(), query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sellers": docs})
}
