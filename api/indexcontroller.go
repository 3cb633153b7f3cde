package api

import (
	"net/http"

	"wikigate/wikipedia"

	"github.com/gin-gonic/gin"
)

// RegisterIndexRoutes registers the route listing and health endpoints.
func RegisterIndexRoutes(r *gin.Engine, wiki *wikipedia.Client) {
	r.GET("/", func(c *gin.Context) { handleIndex(c, wiki) })
	r.GET("/api/health", handleHealth)
}

// handleIndex describes the available routes.
func handleIndex(c *gin.Context, wiki *wikipedia.Client) {
	c.JSON(http.StatusOK, gin.H{
		"service":  "wikigate",
		"language": wiki.Lang(),
		"routes": gin.H{
			"GET /search/{query}":          "search articles; query param: limit (1-50, default 10)",
			"GET /article/{title}/summary": "article summary",
			"GET /article/{title}/content": "assembled article content; query param: includeLead (bool, default true)",
		},
	})
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
