package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/pips-site-api/internal/models"
	appErrors "github.com/noah-isme/pips-site-api/pkg/errors"
)

const structuredDataLimit = 10

type noticeReader interface {
	Get(ctx context.Context) models.NoticeBoard
}

type uniformReader interface {
	Get(ctx context.Context) models.UniformShop
}

type postLister interface {
	List(ctx context.Context) []models.Post
}

type searchAnalytics interface {
	List(ctx context.Context) []models.SearchEvent
	Track(ctx context.Context, event models.SearchEvent) error
}

var searchCategories = []string{models.SearchNotices, models.SearchEvents, models.SearchUniforms, models.SearchPosts}

// SearchService searches the live site content.
type SearchService struct {
	notices   noticeReader
	uniforms  uniformReader
	posts     postLister
	analytics searchAnalytics
	seo       *SEOService
	logger    *zap.Logger
	now       func() time.Time
}

// NewSearchService constructs the service.
func NewSearchService(notices noticeReader, uniforms uniformReader, posts postLister, analytics searchAnalytics, seo *SEOService, logger *zap.Logger) *SearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{notices: notices, uniforms: uniforms, posts: posts, analytics: analytics, seo: seo, logger: logger, now: time.Now}
}

// Search sanitises term, scores matches across the requested category (or
// all of them) and records the search.
func (s *SearchService) Search(ctx context.Context, term, category, grade string) (models.SearchResponse, error) {
	term = s.seo.SanitizeQuery(term)
	if strings.TrimSpace(term) == "" {
		return models.SearchResponse{}, appErrors.Clone(appErrors.ErrValidation, "Please enter a search term.")
	}
	categories := searchCategories
	if category != "" {
		if !knownSearchCategory(category) {
			return models.SearchResponse{}, appErrors.Clone(appErrors.ErrValidation, "unknown search category")
		}
		categories = []string{category}
	}

	lower := strings.ToLower(term)
	results := make([]models.SearchResult, 0)
	for _, cat := range categories {
		for _, c := range s.candidates(ctx, cat, grade) {
			if !strings.Contains(strings.ToLower(c.text), lower) {
				continue
			}
			c.result.Score = relevance(c.result.Title, term)
			results = append(results, c.result)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	pageURL := s.seo.SearchURL(term, category, grade)
	resp := models.SearchResponse{
		Term:           term,
		Category:       category,
		Grade:          grade,
		Results:        results,
		Title:          s.seo.Title(term, category, len(results)),
		URL:            pageURL,
		Breadcrumbs:    s.seo.Breadcrumbs("search", term),
		StructuredData: s.structuredData(results, term, pageURL),
	}

	event := models.SearchEvent{Term: term, Category: category, Grade: grade, ResultCount: len(results), Timestamp: s.now().UTC()}
	if err := s.analytics.Track(ctx, event); err != nil {
		s.logger.Warn("search not tracked", zap.String("term", term), zap.Error(err))
	}
	return resp, nil
}

// Analytics returns the tracked searches, oldest first.
func (s *SearchService) Analytics(ctx context.Context) []models.SearchEvent {
	return s.analytics.List(ctx)
}

func knownSearchCategory(category string) bool {
	for _, c := range searchCategories {
		if c == category {
			return true
		}
	}
	return false
}

type searchCandidate struct {
	result models.SearchResult
	text   string
}

func candidate(text string, r models.SearchResult) searchCandidate {
	return searchCandidate{result: r, text: text}
}

// candidates lists the searchable entries of one category. For uniforms a
// grade of boys or girls narrows the shop to that side.
func (s *SearchService) candidates(ctx context.Context, category, grade string) []searchCandidate {
	var out []searchCandidate
	switch category {
	case models.SearchNotices:
		board := s.notices.Get(ctx)
		for _, item := range board.News {
			out = append(out, candidate(item.Text, models.SearchResult{Title: item.Text, Description: "School news", Category: category, URL: "/notice_board.html"}))
		}
		for _, item := range board.Reminders {
			out = append(out, candidate(item.Text, models.SearchResult{Title: item.Text, Description: "Important reminder", Category: category, URL: "/notice_board.html"}))
		}
	case models.SearchEvents:
		board := s.notices.Get(ctx)
		for _, item := range board.Events {
			out = append(out, candidate(item.Text, models.SearchResult{Title: item.Text, Description: "Upcoming event", Category: category, URL: "/notice_board.html"}))
		}
		for _, p := range s.posts.List(ctx) {
			if p.Type == models.PostEvent {
				out = append(out, candidate(p.Title, models.SearchResult{Title: p.Title, Description: excerpt(p.Content, 150), Category: category, URL: postURL(p.ID)}))
			}
		}
	case models.SearchUniforms:
		shop := s.uniforms.Get(ctx)
		for _, gender := range models.UniformGenders {
			if (grade == string(models.UniformBoys) || grade == string(models.UniformGirls)) && grade != string(gender) {
				continue
			}
			for _, season := range models.UniformSeasons {
				items := shop.Items(gender, season)
				if items == nil {
					continue
				}
				for _, item := range *items {
					out = append(out, candidate(item.Name, models.SearchResult{
						Title:       item.Name,
						Description: "R" + strconv.FormatFloat(item.Price, 'f', 2, 64) + " (" + string(gender) + ", " + string(season) + ")",
						Category:    category,
						URL:         "/uniform_shop.html",
					}))
				}
			}
		}
	case models.SearchPosts:
		for _, p := range s.posts.List(ctx) {
			out = append(out, candidate(p.Title+"\n"+p.Content, models.SearchResult{Title: p.Title, Description: excerpt(p.Content, 150), Category: category, URL: postURL(p.ID)}))
		}
	}
	return out
}

func postURL(id int64) string {
	return "/index.html#post-" + strconv.FormatInt(id, 10)
}

// relevance scores title against term: exact 100, prefix 50, substring 25,
// plus 10 for every term word the title contains.
func relevance(title, term string) int {
	t := strings.ToLower(title)
	q := strings.ToLower(term)
	score := 0
	if t == q {
		score += 100
	}
	if strings.HasPrefix(t, q) {
		score += 50
	}
	if strings.Contains(t, q) {
		score += 25
	}
	for _, word := range strings.Fields(q) {
		if strings.Contains(t, word) {
			score += 10
		}
	}
	return score
}

func (s *SearchService) structuredData(results []models.SearchResult, term, pageURL string) map[string]interface{} {
	top := results
	if len(top) > structuredDataLimit {
		top = top[:structuredDataLimit]
	}
	items := make([]map[string]interface{}, 0, len(top))
	for i, r := range top {
		items = append(items, map[string]interface{}{
			"@type":       "ListItem",
			"position":    i + 1,
			"name":        r.Title,
			"description": r.Description,
			"url":         r.URL,
		})
	}
	return map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "SearchResultsPage",
		"name":        "Search Results for " + term,
		"description": "Search results for " + term + " at " + s.seo.cfg.SchoolName,
		"url":         pageURL,
		"mainEntity": map[string]interface{}{
			"@type":           "ItemList",
			"numberOfItems":   len(results),
			"itemListElement": items,
		},
	}
}
