package models

import "time"

// Search categories accepted by the site search.
const (
	SearchAll      = ""
	SearchNotices  = "notices"
	SearchEvents   = "events"
	SearchUniforms = "uniforms"
	SearchPosts    = "posts"
)

// SearchResult is one scored hit.
type SearchResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	URL         string `json:"url"`
	Score       int    `json:"score"`
}

// Breadcrumb is one entry of a breadcrumb trail.
type Breadcrumb struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Current bool   `json:"current,omitempty"`
}

// SearchResponse is everything the results page needs.
type SearchResponse struct {
	Term           string                 `json:"term"`
	Category       string                 `json:"category,omitempty"`
	Grade          string                 `json:"grade,omitempty"`
	Results        []SearchResult         `json:"results"`
	Title          string                 `json:"title"`
	URL            string                 `json:"url"`
	Breadcrumbs    []Breadcrumb           `json:"breadcrumbs"`
	StructuredData map[string]interface{} `json:"structuredData"`
}

// SearchEvent is one tracked search.
type SearchEvent struct {
	Term        string    `json:"term"`
	Category    string    `json:"category,omitempty"`
	Grade       string    `json:"grade,omitempty"`
	ResultCount int       `json:"resultCount"`
	Timestamp   time.Time `json:"timestamp"`
}

// MetaTag is a name or property keyed meta tag.
type MetaTag struct {
	Name     string `json:"name,omitempty"`
	Property string `json:"property,omitempty"`
	Content  string `json:"content"`
}

// PageMeta is the head metadata for a page.
type PageMeta struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Keywords     string    `json:"keywords"`
	CanonicalURL string    `json:"canonicalUrl"`
	Tags         []MetaTag `json:"tags"`
}
