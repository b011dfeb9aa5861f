package service

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/internal/widget"
	appErrors "github.com/noah-isme/pips-site-api/pkg/errors"
)

const (
	defaultPostPageSize = 6
	maxPostPageSize     = 50
	defaultRecentLimit  = 5
	maxCommentLength    = 500
	shareExcerptLength  = 100
	anonymousAuthor     = "Anonymous User"
	defaultPostCategory = "General"
	postDateLayout      = "2006-01-02"
)

type postRepository interface {
	List(ctx context.Context) []models.Post
	Get(ctx context.Context, id int64) (models.Post, error)
	Add(ctx context.Context, post models.Post) (models.Post, error)
	Update(ctx context.Context, id int64, mutate func(*models.Post) error) (models.Post, error)
	Delete(ctx context.Context, id int64) error
}

// Carousel navigation actions.
const (
	CarouselNext = "next"
	CarouselPrev = "prev"
	CarouselGoTo = "goto"
)

// CarouselResponse is the featured carousel position and its current post.
type CarouselResponse struct {
	widget.CarouselView
	Post *models.Post `json:"post,omitempty"`
}

// PostService runs the school news feed.
type PostService struct {
	repo      postRepository
	validator *validator.Validate
	logger    *zap.Logger
	school    string
	now       func() time.Time
}

// NewPostService constructs the service. school names the site in share text.
func NewPostService(repo postRepository, validate *validator.Validate, logger *zap.Logger, school string) *PostService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostService{repo: repo, validator: validate, logger: logger, school: school, now: time.Now}
}

func (s *PostService) today() string {
	return s.now().Format(postDateLayout)
}

// List returns one page of posts matching filter.
func (s *PostService) List(ctx context.Context, filter models.PostFilter) ([]models.Post, *models.Pagination, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "unknown post type")
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = defaultPostPageSize
	}
	if filter.PageSize > maxPostPageSize {
		filter.PageSize = maxPostPageSize
	}

	matched := make([]models.Post, 0)
	for _, p := range s.repo.List(ctx) {
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		matched = append(matched, p)
	}

	pagination := &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: len(matched)}
	if filter.Page-1 > len(matched)/filter.PageSize {
		return []models.Post{}, pagination, nil
	}
	start := (filter.Page - 1) * filter.PageSize
	if start >= len(matched) {
		return []models.Post{}, pagination, nil
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], pagination, nil
}

// ByType returns every post of type t.
func (s *PostService) ByType(ctx context.Context, t models.PostType) ([]models.Post, error) {
	posts, _, err := s.List(ctx, models.PostFilter{Type: t, PageSize: maxPostPageSize})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Featured returns the featured posts in feed order.
func (s *PostService) Featured(ctx context.Context) []models.Post {
	featured := make([]models.Post, 0)
	for _, p := range s.repo.List(ctx) {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// Recent returns up to limit posts, newest date first.
func (s *PostService) Recent(ctx context.Context, limit int) []models.Post {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	posts := s.repo.List(ctx)
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts
}

// Get returns a post and counts the view.
func (s *PostService) Get(ctx context.Context, id int64) (models.Post, error) {
	post, err := s.repo.Update(ctx, id, func(p *models.Post) error {
		p.Views++
		return nil
	})
	if err != nil {
		return models.Post{}, repositoryError(err, "post not found")
	}
	return post, nil
}

// Search matches q against title, content, category and author.
func (s *PostService) Search(ctx context.Context, q string) ([]models.Post, error) {
	term := strings.ToLower(strings.TrimSpace(q))
	if term == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "search query is required")
	}
	matches := make([]models.Post, 0)
	for _, p := range s.repo.List(ctx) {
		if strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Content), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.Author), term) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// Create publishes a post at the top of the feed.
func (s *PostService) Create(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Post{}, validationError(err, "invalid post payload")
	}
	post := models.Post{
		Type:     req.Type,
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Date:     s.today(),
		Image:    req.Image,
		Category: req.Category,
		Featured: req.Featured,
		Comments: []models.Comment{},
	}
	if post.Type == "" {
		post.Type = models.PostNews
	}
	if post.Category == "" {
		post.Category = defaultPostCategory
	}
	created, err := s.repo.Add(ctx, post)
	if err != nil {
		return models.Post{}, repositoryError(err, "")
	}
	s.logger.Info("post created", zap.Int64("post_id", created.ID), zap.String("type", string(created.Type)))
	return created, nil
}

// Update applies the non-nil fields of req.
func (s *PostService) Update(ctx context.Context, id int64, req models.UpdatePostRequest) (models.Post, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Post{}, validationError(err, "invalid post payload")
	}
	post, err := s.repo.Update(ctx, id, func(p *models.Post) error {
		if req.Type != nil {
			p.Type = *req.Type
		}
		if req.Title != nil {
			p.Title = *req.Title
		}
		if req.Content != nil {
			p.Content = *req.Content
		}
		if req.Author != nil {
			p.Author = *req.Author
		}
		if req.Image != nil {
			p.Image = *req.Image
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Featured != nil {
			p.Featured = *req.Featured
		}
		return nil
	})
	if err != nil {
		return models.Post{}, repositoryError(err, "post not found")
	}
	return post, nil
}

// Delete removes a post. Its id is never handed out again.
func (s *PostService) Delete(ctx context.Context, id int64) error {
	return repositoryError(s.repo.Delete(ctx, id), "post not found")
}

// Like adds one like.
func (s *PostService) Like(ctx context.Context, id int64) (models.Post, error) {
	return s.adjustLikes(ctx, id, 1)
}

// Unlike removes one like; the count never drops below zero.
func (s *PostService) Unlike(ctx context.Context, id int64) (models.Post, error) {
	return s.adjustLikes(ctx, id, -1)
}

func (s *PostService) adjustLikes(ctx context.Context, id int64, delta int) (models.Post, error) {
	post, err := s.repo.Update(ctx, id, func(p *models.Post) error {
		p.Likes += delta
		if p.Likes < 0 {
			p.Likes = 0
		}
		return nil
	})
	if err != nil {
		return models.Post{}, repositoryError(err, "post not found")
	}
	return post, nil
}

// AddComment appends a reader comment dated today.
func (s *PostService) AddComment(ctx context.Context, id int64, req models.CommentRequest) (models.Comment, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return models.Comment{}, appErrors.Clone(appErrors.ErrValidation, "comment text is required")
	}
	if utf8.RuneCountInString(text) > maxCommentLength {
		return models.Comment{}, appErrors.Clone(appErrors.ErrValidation, "comment must not exceed 500 characters")
	}
	author := strings.TrimSpace(req.Author)
	if author == "" {
		author = anonymousAuthor
	}
	comment := models.Comment{Author: author, Text: text, Date: s.today()}
	_, err := s.repo.Update(ctx, id, func(p *models.Post) error {
		p.Comments = append(p.Comments, comment)
		return nil
	})
	if err != nil {
		return models.Comment{}, repositoryError(err, "post not found")
	}
	return comment, nil
}

// Share builds the share payload for a post viewed at pageURL.
func (s *PostService) Share(ctx context.Context, id int64, pageURL string) (models.PostShare, error) {
	post, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.PostShare{}, repositoryError(err, "post not found")
	}
	return models.PostShare{
		Title:     post.Title,
		Excerpt:   excerpt(post.Content, shareExcerptLength) + "...",
		URL:       pageURL,
		ShareText: "Check out this post from " + s.school + `: "` + post.Title + `" - ` + pageURL,
	}, nil
}

// Carousel positions the featured carousel at index and applies action.
func (s *PostService) Carousel(ctx context.Context, index int, action string) (CarouselResponse, error) {
	featured := s.Featured(ctx)
	c := widget.NewCarousel(len(featured))
	c.GoTo(index)
	switch action {
	case "", CarouselGoTo:
	case CarouselNext:
		c.Next()
	case CarouselPrev:
		c.Prev()
	default:
		return CarouselResponse{}, appErrors.Clone(appErrors.ErrValidation, "action must be one of next, prev, goto")
	}
	resp := CarouselResponse{CarouselView: c.View(len(featured))}
	if len(featured) > 0 {
		post := featured[c.Index()]
		resp.Post = &post
	}
	return resp, nil
}

func excerpt(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
