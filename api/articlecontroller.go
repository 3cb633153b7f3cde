package api

import (
	"net/http"
	"strconv"

	"wikigate/content"
	"wikigate/wikipedia"

	"github.com/gin-gonic/gin"
)

// RegisterArticleRoutes registers the article summary and content endpoints.
func RegisterArticleRoutes(r *gin.Engine, wiki *wikipedia.Client) {
	g := r.Group("/article/:title")
	g.GET("/summary", func(c *gin.Context) { handleSummary(c, wiki) })
	g.GET("/content", func(c *gin.Context) { handleContent(c, wiki) })
}

// SummaryResponse is the gateway's article summary shape.
type SummaryResponse struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
}

// ContentResponse is the gateway's assembled article content shape.
type ContentResponse struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	SectionsCount int    `json:"sectionsCount"`
}

// handleSummary fetches an article summary. Any upstream failure maps to 404;
// fields missing from the upstream payload default to empty strings.
func handleSummary(c *gin.Context, wiki *wikipedia.Client) {
	title := c.Param("title")

	summary, err := wiki.Summary(c.Request.Context(), title)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Title:   summary.Title,
		Summary: summary.Extract,
		URL:     summary.ContentURLs.Desktop.Page,
	})
}

// handleContent fetches the sectioned article payload and runs it through the
// content assembler. sectionsCount reflects the full body-section count of the
// article, not the number of sections included in the content string.
func handleContent(c *gin.Context, wiki *wikipedia.Client) {
	title := c.Param("title")

	includeLead := true
	if v := c.Query("includeLead"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			includeLead = b
		}
	}

	sections, err := wiki.MobileSections(c.Request.Context(), title)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	text, count := content.Assemble(sections, includeLead)
	c.JSON(http.StatusOK, ContentResponse{
		Title:         sections.Lead.NormalizedTitle,
		Content:       text,
		SectionsCount: count,
	})
}
