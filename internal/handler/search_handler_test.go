package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pips-site-api/internal/models"
	appErrors "github.com/noah-isme/pips-site-api/pkg/errors"
)

type searchServiceStub struct {
	err  error
	args [3]string
}

func (s *searchServiceStub) Search(ctx context.Context, term, category, grade string) (models.SearchResponse, error) {
	s.args = [3]string{term, category, grade}
	return models.SearchResponse{Term: term, Results: []models.SearchResult{{Title: "Winter Blazer"}, {Title: "Winter Jersey"}}}, s.err
}

func (s *searchServiceStub) Analytics(ctx context.Context) []models.SearchEvent {
	return []models.SearchEvent{{Term: "blazer", ResultCount: 2}}
}

type seoServiceStub struct {
	sitemapErr error
	page, term string
}

func (s *seoServiceStub) PageMeta(pageURL string) models.PageMeta {
	return models.PageMeta{CanonicalURL: pageURL}
}

func (s *seoServiceStub) Breadcrumbs(page, term string) []models.Breadcrumb {
	s.page, s.term = page, term
	return []models.Breadcrumb{{Name: "Home", URL: "index.html"}}
}

func (s *seoServiceStub) Sitemap() ([]byte, error) {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?><urlset></urlset>`), s.sitemapErr
}

func (s *seoServiceStub) RobotsTxt() string {
	return "User-agent: *\nAllow: /"
}

func TestSearchHandlerSearch(t *testing.T) {
	svc := &searchServiceStub{}
	h := NewSearchHandler(svc, &seoServiceStub{})

	c, w := newContext(http.MethodGet, "/search?q=winter&cat=uniforms&grade=boys", "")
	h.Search(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, [3]string{"winter", "uniforms", "boys"}, svc.args)
	env := decode(t, w, nil)
	assert.EqualValues(t, 2, env.Meta["result_count"])
}

func TestSearchHandlerEmptyTerm(t *testing.T) {
	h := NewSearchHandler(&searchServiceStub{err: appErrors.Clone(appErrors.ErrValidation, "Please enter a search term.")}, &seoServiceStub{})
	c, w := newContext(http.MethodGet, "/search?q=", "")
	h.Search(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter a search term.")
}

func TestSearchHandlerSEODocuments(t *testing.T) {
	seo := &seoServiceStub{}
	h := NewSearchHandler(&searchServiceStub{}, seo)

	c, w := newContext(http.MethodGet, "/sitemap.xml", "")
	h.Sitemap(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/xml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<urlset>")

	c, w = newContext(http.MethodGet, "/robots.txt", "")
	h.Robots(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User-agent: *")

	c, w = newContext(http.MethodGet, "/seo/breadcrumbs?page=search&q=fees", "")
	h.Breadcrumbs(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "search", seo.page)
	assert.Equal(t, "fees", seo.term)

	seo.sitemapErr = errors.New("encode failed")
	c, w = newContext(http.MethodGet, "/sitemap.xml", "")
	h.Sitemap(c)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
