package api

import (
	"fmt"
	"net/http"
	"strconv"

	"wikigate/config"
	"wikigate/wikipedia"

	"github.com/gin-gonic/gin"
)

// RegisterSearchRoutes registers the search endpoint.
func RegisterSearchRoutes(r *gin.Engine, wiki *wikipedia.Client) {
	r.GET("/search/:query", func(c *gin.Context) { handleSearch(c, wiki) })
}

// SearchResponse is the gateway's search result shape.
type SearchResponse struct {
	Query        string   `json:"query"`
	ResultsCount int      `json:"resultsCount"`
	Articles     []string `json:"articles"`
}

// handleSearch validates the limit, queries the upstream API, and maps the
// result pages to their titles in upstream order. An out-of-range limit never
// reaches the upstream client.
func handleSearch(c *gin.Context, wiki *wikipedia.Client) {
	query := c.Param("query")

	limit := config.DefaultSearchLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = n
	}
	if limit < config.MinSearchLimit || limit > config.MaxSearchLimit {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("limit must be between %d and %d", config.MinSearchLimit, config.MaxSearchLimit),
		})
		return
	}

	result, err := wiki.Search(c.Request.Context(), query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upstream search failed"})
		return
	}

	titles := make([]string, 0, len(result.Pages))
	for _, page := range result.Pages {
		titles = append(titles, page.Title)
	}

	c.JSON(http.StatusOK, SearchResponse{
		Query:        query,
		ResultsCount: len(titles),
		Articles:     titles,
	})
}
