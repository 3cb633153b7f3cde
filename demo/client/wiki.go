package client

import (
	"fmt"
	"net/url"

	"wikigate/api"
)

// Search queries the gateway search endpoint
func (c *Client) Search(query string, limit int) (*api.SearchResponse, error) {
	path := fmt.Sprintf("/search/%s", url.PathEscape(query))
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}

	var result api.SearchResponse
	if err := c.getJSON(path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Summary fetches an article summary from the gateway
func (c *Client) Summary(title string) (*api.SummaryResponse, error) {
	var result api.SummaryResponse
	if err := c.getJSON(fmt.Sprintf("/article/%s/summary", url.PathEscape(title)), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Content fetches assembled article content from the gateway
func (c *Client) Content(title string, includeLead bool) (*api.ContentResponse, error) {
	path := fmt.Sprintf("/article/%s/content", url.PathEscape(title))
	if !includeLead {
		path += "?includeLead=false"
	}

	var result api.ContentResponse
	if err := c.getJSON(path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
