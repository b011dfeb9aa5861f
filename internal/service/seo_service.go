package service

import (
	"encoding/xml"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/noah-isme/pips-site-api/internal/models"
)

const (
	defaultSchoolName  = "Pinetown Independent Primary School"
	defaultQueryLength = 100
)

var (
	scriptBlock   = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	angleBrackets = regexp.MustCompile(`[<>]`)
	queryAllowed  = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.,!?()]+$`)
	queryStripped = regexp.MustCompile(`[^a-zA-Z0-9\s\-_.,!?()]`)
)

var primaryKeywords = []string{
	"Pinetown Independent Primary School",
	"primary school Pinetown",
	"independent school KwaZulu-Natal",
	"private primary education",
	"quality education Pinetown",
}

var secondaryKeywords = []string{
	"school admissions Pinetown",
	"primary school resources",
	"school uniform shop",
	"parent notices",
	"school events calendar",
	"grade 1-7 education",
	"academic programs",
	"school facilities",
}

// SitePage is one public page listed in the sitemap.
type SitePage struct {
	Path       string
	ChangeFreq string
	Priority   string
}

// SitePages is the public page set in sitemap order.
var SitePages = []SitePage{
	{"/", "daily", "1.0"},
	{"/about.html", "monthly", "0.9"},
	{"/admissions.html", "monthly", "0.9"},
	{"/resources.html", "weekly", "0.8"},
	{"/uniform_shop.html", "monthly", "0.7"},
	{"/notice_board.html", "daily", "0.8"},
	{"/contact.html", "monthly", "0.8"},
	{"/gallery.html", "weekly", "0.6"},
	{"/enquiry.html", "monthly", "0.7"},
	{"/volunteer.html", "monthly", "0.6"},
}

// SEOConfig names the site for generated metadata.
type SEOConfig struct {
	SchoolName     string
	BaseURL        string
	MaxQueryLength int
}

// SEOService produces titles, URLs, sitemap and head metadata.
type SEOService struct {
	cfg SEOConfig
	now func() time.Time
}

// NewSEOService constructs the service.
func NewSEOService(cfg SEOConfig) *SEOService {
	if cfg.SchoolName == "" {
		cfg.SchoolName = defaultSchoolName
	}
	if cfg.MaxQueryLength <= 0 {
		cfg.MaxQueryLength = defaultQueryLength
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &SEOService{cfg: cfg, now: time.Now}
}

func (s *SEOService) categoryTitle(category string) (string, bool) {
	switch category {
	case models.SearchUniforms:
		return "School Uniforms & Supplies - " + s.cfg.SchoolName, true
	case models.SearchNotices:
		return "School Notices & Updates - " + s.cfg.SchoolName, true
	case models.SearchEvents:
		return "School Events & Calendar - " + s.cfg.SchoolName, true
	case models.SearchPosts:
		return "School News & Stories - " + s.cfg.SchoolName, true
	}
	return "", false
}

// Title returns the page title for a search.
func (s *SEOService) Title(term, category string, results int) string {
	if term == "" {
		return s.cfg.SchoolName + " - Quality Education in Pinetown, KwaZulu-Natal"
	}
	if title, ok := s.categoryTitle(category); ok {
		return term + " | " + title + " | " + strconv.Itoa(results) + " Results"
	}
	return "Search: " + term + " | " + s.cfg.SchoolName + " | " + strconv.Itoa(results) + " Results Found"
}

// SearchURL returns the shareable URL of a search, or the base URL when no
// parameter is set.
func (s *SEOService) SearchURL(term, category, grade string) string {
	params := url.Values{}
	if term != "" {
		params.Set("q", term)
	}
	if category != "" {
		params.Set("cat", category)
	}
	if grade != "" {
		params.Set("grade", grade)
	}
	if len(params) == 0 {
		return s.cfg.BaseURL
	}
	return s.cfg.BaseURL + "/?" + params.Encode()
}

// Breadcrumbs returns the trail for page. Only search pages with a term get
// a second crumb.
func (s *SEOService) Breadcrumbs(page, term string) []models.Breadcrumb {
	crumbs := []models.Breadcrumb{{Name: "Home", URL: "index.html"}}
	if (page == "" || page == "search") && term != "" {
		crumbs = append(crumbs, models.Breadcrumb{Name: "Search: " + term, URL: s.SearchURL(term, "", ""), Current: true})
	}
	return crumbs
}

// SanitizeQuery strips markup and anything outside the allowed character set.
func (s *SEOService) SanitizeQuery(input string) string {
	out := strings.TrimSpace(input)
	out = scriptBlock.ReplaceAllString(out, "")
	out = angleBrackets.ReplaceAllString(out, "")
	if utf8.RuneCountInString(out) > s.cfg.MaxQueryLength {
		out = string([]rune(out)[:s.cfg.MaxQueryLength])
	}
	if !queryAllowed.MatchString(out) {
		out = queryStripped.ReplaceAllString(out, "")
	}
	return out
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap renders the sitemap XML with today as lastmod.
func (s *SEOService) Sitemap() ([]byte, error) {
	today := s.now().UTC().Format("2006-01-02")
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range SitePages {
		set.URLs = append(set.URLs, sitemapURL{Loc: s.cfg.BaseURL + p.Path, LastMod: today, ChangeFreq: p.ChangeFreq, Priority: p.Priority})
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// RobotsTxt returns the crawler rules.
func (s *SEOService) RobotsTxt() string {
	var b strings.Builder
	b.WriteString("# Robots.txt for " + s.cfg.SchoolName + "\n")
	b.WriteString("# Generated by SEO-Optimized Search System\n\n")
	b.WriteString("User-agent: *\nAllow: /\n\n# Main pages\nAllow: /index.html\n")
	for _, p := range SitePages[1:] {
		b.WriteString("Allow: " + p.Path + "\n")
	}
	b.WriteString("\n# Static resources\nAllow: /css/\nAllow: /_images/\nAllow: /js/\n")
	b.WriteString("\n# Search functionality\nAllow: /?q=*\nAllow: /?cat=*\nAllow: /?grade=*\n")
	b.WriteString("\n# Disallow sensitive areas\nDisallow: /admin/\nDisallow: /private/\nDisallow: /tmp/\nDisallow: /.git/\n")
	b.WriteString("\n# Sitemap location\nSitemap: " + s.cfg.BaseURL + "/sitemap.xml\n")
	b.WriteString("\n# Crawl delay for respectful crawling\nCrawl-delay: 1\n")
	b.WriteString("\n# Specific instructions for major search engines\n")
	b.WriteString("User-agent: Googlebot\nAllow: /\nCrawl-delay: 1\n\n")
	b.WriteString("User-agent: Bingbot\nAllow: /\nCrawl-delay: 1\n\n")
	b.WriteString("User-agent: Slurp\nAllow: /\nCrawl-delay: 2")
	return b.String()
}

// PageMeta returns the head tags for pageURL. The canonical URL drops the query.
func (s *SEOService) PageMeta(pageURL string) models.PageMeta {
	if pageURL == "" {
		pageURL = s.cfg.BaseURL + "/"
	}
	canonical, _, _ := strings.Cut(pageURL, "?")
	school := s.cfg.SchoolName
	logo := s.cfg.BaseURL + "/_images/logo.jpg"
	description := "Search " + school + " for resources, uniforms, notices, and events. Quality education in Pinetown, KwaZulu-Natal."
	keywords := strings.Join(append(append([]string{}, primaryKeywords...), secondaryKeywords...), ", ")

	tags := []models.MetaTag{
		{Name: "description", Content: description},
		{Name: "keywords", Content: keywords},
		{Name: "author", Content: school},
		{Name: "robots", Content: "index, follow, max-snippet:-1, max-image-preview:large, max-video-preview:-1"},
		{Name: "googlebot", Content: "index, follow"},
		{Name: "bingbot", Content: "index, follow"},
		{Name: "language", Content: "English"},
		{Name: "geo.region", Content: "ZA-KZN"},
		{Name: "geo.placename", Content: "Pinetown, KwaZulu-Natal, South Africa"},
		{Name: "geo.position", Content: "-29.816141;30.857285"},
		{Name: "ICBM", Content: "-29.816141, 30.857285"},
		{Property: "og:title", Content: "Search - " + school},
		{Property: "og:description", Content: "Find school resources, uniforms, notices, and events at " + school + "."},
		{Property: "og:type", Content: "website"},
		{Property: "og:url", Content: pageURL},
		{Property: "og:image", Content: logo},
		{Property: "og:site_name", Content: school},
		{Property: "og:locale", Content: "en_ZA"},
		{Name: "twitter:card", Content: "summary_large_image"},
		{Name: "twitter:title", Content: "Search - " + school},
		{Name: "twitter:description", Content: "Find school resources, uniforms, notices, and events."},
		{Name: "twitter:image", Content: logo},
	}
	return models.PageMeta{
		Title:        s.Title("", "", 0),
		Description:  description,
		Keywords:     keywords,
		CanonicalURL: canonical,
		Tags:         tags,
	}
}
