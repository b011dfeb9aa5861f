package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pips-site-api/internal/models"
)

func newTestSEO() *SEOService {
	svc := NewSEOService(SEOConfig{BaseURL: "https://pips.example/"})
	svc.now = func() time.Time { return time.Date(2025, 4, 2, 15, 0, 0, 0, time.UTC) }
	return svc
}

func TestSEOTitle(t *testing.T) {
	svc := newTestSEO()

	assert.Equal(t, "Pinetown Independent Primary School - Quality Education in Pinetown, KwaZulu-Natal", svc.Title("", "", 0))
	assert.Equal(t, "shirt | School Uniforms & Supplies - Pinetown Independent Primary School | 3 Results", svc.Title("shirt", models.SearchUniforms, 3))
	assert.Equal(t, "Search: shirt | Pinetown Independent Primary School | 0 Results Found", svc.Title("shirt", "", 0))
}

func TestSEOSearchURLAndBreadcrumbs(t *testing.T) {
	svc := newTestSEO()

	assert.Equal(t, "https://pips.example", svc.SearchURL("", "", ""))
	assert.Equal(t, "https://pips.example/?cat=events&grade=grade-3&q=sports+day", svc.SearchURL("sports day", "events", "grade-3"))

	crumbs := svc.Breadcrumbs("search", "hats")
	require.Len(t, crumbs, 2)
	assert.Equal(t, "Home", crumbs[0].Name)
	assert.Equal(t, "Search: hats", crumbs[1].Name)
	assert.True(t, crumbs[1].Current)

	assert.Len(t, svc.Breadcrumbs("search", ""), 1)
	assert.Len(t, svc.Breadcrumbs("about", "hats"), 1)
}

func TestSEOSanitizeQuery(t *testing.T) {
	svc := newTestSEO()

	cases := map[string]string{
		"  school hat  ":                      "school hat",
		"<script>alert('x')</script>uniforms": "uniforms",
		"<b>bold</b>":                         "bboldb",
		"fees & costs; R100":                  "fees  costs R100",
		"Sports day (2025)!":                  "Sports day (2025)!",
	}
	for in, want := range cases {
		assert.Equal(t, want, svc.SanitizeQuery(in), in)
	}
	assert.Len(t, svc.SanitizeQuery(strings.Repeat("a", 150)), 100)
}

func TestSEOSitemapAndRobots(t *testing.T) {
	svc := newTestSEO()

	raw, err := svc.Sitemap()
	require.NoError(t, err)
	xml := string(raw)
	assert.True(t, strings.HasPrefix(xml, "<?xml"))
	assert.Equal(t, 10, strings.Count(xml, "<url>"))
	assert.Contains(t, xml, "<loc>https://pips.example/admissions.html</loc>")
	assert.Contains(t, xml, "<lastmod>2025-04-02</lastmod>")

	robots := svc.RobotsTxt()
	assert.Contains(t, robots, "Disallow: /admin/")
	assert.Contains(t, robots, "Sitemap: https://pips.example/sitemap.xml")
	assert.True(t, strings.HasSuffix(robots, "Crawl-delay: 2"))
}

func TestSEOPageMeta(t *testing.T) {
	svc := newTestSEO()

	meta := svc.PageMeta("https://pips.example/?q=hats")
	assert.Equal(t, "https://pips.example/", meta.CanonicalURL)
	assert.Contains(t, meta.Keywords, "primary school Pinetown, ")
	assert.Contains(t, meta.Keywords, "school facilities")

	found := map[string]string{}
	for _, tag := range meta.Tags {
		found[tag.Name+tag.Property] = tag.Content
	}
	assert.Equal(t, "ZA-KZN", found["geo.region"])
	assert.Equal(t, "https://pips.example/?q=hats", found["og:url"])
	assert.Equal(t, "summary_large_image", found["twitter:card"])
	assert.Equal(t, "https://pips.example/_images/logo.jpg", found["og:image"])
}
