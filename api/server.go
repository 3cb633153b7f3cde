package api

import (
	"wikigate/wikipedia"

	"github.com/gin-gonic/gin"
)

// NewRouter constructs a Gin engine with registered routes. The wikipedia
// client is shared across requests and holds no mutable state.
func NewRouter(wiki *wikipedia.Client) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	// Register resource routers
	RegisterIndexRoutes(r, wiki)
	RegisterSearchRoutes(r, wiki)
	RegisterArticleRoutes(r, wiki)
	return r
}
