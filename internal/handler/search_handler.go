package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pips-site-api/internal/middleware"
	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/pkg/response"
)

type searchService interface {
	Search(ctx context.Context, term, category, grade string) (models.SearchResponse, error)
	Analytics(ctx context.Context) []models.SearchEvent
}

type seoService interface {
	PageMeta(pageURL string) models.PageMeta
	Breadcrumbs(page, term string) []models.Breadcrumb
	Sitemap() ([]byte, error)
	RobotsTxt() string
}

// SearchHandler serves site search and the SEO documents.
type SearchHandler struct {
	search searchService
	seo    seoService
}

// NewSearchHandler constructs a search handler.
func NewSearchHandler(search searchService, seo seoService) *SearchHandler {
	return &SearchHandler{search: search, seo: seo}
}

// Search godoc
// @Summary Site search
// @Tags Search
// @Produce json
// @Param q query string true "Search term"
// @Param cat query string false "notices, events, uniforms or posts"
// @Param grade query string false "Grade filter; boys or girls narrows uniforms"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	res, err := h.search.Search(c.Request.Context(), c.Query("q"), c.Query("cat"), c.Query("grade"))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMeta(c, "result_count", len(res.Results))
	response.JSON(c, http.StatusOK, res, nil, middleware.ExtractMeta(c))
}

// Analytics godoc
// @Summary Recent searches
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/search-analytics [get]
func (h *SearchHandler) Analytics(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.search.Analytics(c.Request.Context()), nil)
}

// PageMeta godoc
// @Summary Head metadata for a page
// @Tags SEO
// @Produce json
// @Param url query string false "Page URL, defaults to the site root"
// @Success 200 {object} response.Envelope
// @Router /seo/meta [get]
func (h *SearchHandler) PageMeta(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.seo.PageMeta(c.Query("url")), nil)
}

// Breadcrumbs godoc
// @Summary Breadcrumb trail
// @Tags SEO
// @Produce json
// @Param page query string false "Page path"
// @Param q query string false "Search term"
// @Success 200 {object} response.Envelope
// @Router /seo/breadcrumbs [get]
func (h *SearchHandler) Breadcrumbs(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.seo.Breadcrumbs(c.Query("page"), c.Query("q")), nil)
}

// Sitemap serves sitemap.xml.
func (h *SearchHandler) Sitemap(c *gin.Context) {
	body, err := h.seo.Sitemap()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Text(c, "application/xml; charset=utf-8", string(body))
}

// Robots serves robots.txt.
func (h *SearchHandler) Robots(c *gin.Context) {
	response.Text(c, "text/plain; charset=utf-8", h.seo.RobotsTxt())
}
