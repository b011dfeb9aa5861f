package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/internal/repository"
	appErrors "github.com/noah-isme/pips-site-api/pkg/errors"
	"github.com/noah-isme/pips-site-api/pkg/kvstore"
)

type stubPostRepo struct {
	posts    []models.Post
	nextID   int64
	writeErr error
}

func (s *stubPostRepo) List(ctx context.Context) []models.Post {
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *stubPostRepo) Get(ctx context.Context, id int64) (models.Post, error) {
	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Post{}, repository.ErrNotFound
}

func (s *stubPostRepo) Add(ctx context.Context, post models.Post) (models.Post, error) {
	if s.writeErr != nil {
		return models.Post{}, s.writeErr
	}
	s.nextID++
	post.ID = s.nextID
	s.posts = append([]models.Post{post}, s.posts...)
	return post, nil
}

func (s *stubPostRepo) Update(ctx context.Context, id int64, mutate func(*models.Post) error) (models.Post, error) {
	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		p := s.posts[i]
		if err := mutate(&p); err != nil {
			return models.Post{}, err
		}
		if s.writeErr != nil {
			return models.Post{}, s.writeErr
		}
		s.posts[i] = p
		return p, nil
	}
	return models.Post{}, repository.ErrNotFound
}

func (s *stubPostRepo) Delete(ctx context.Context, id int64) error {
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func newPostFixture() *stubPostRepo {
	return &stubPostRepo{
		nextID: 3,
		posts: []models.Post{
			{ID: 3, Type: models.PostEvent, Title: "Sports Day", Content: "Annual athletics at the field", Author: "Coach Dlamini", Date: "2025-02-10", Category: "Sport", Featured: true, Likes: 1, Comments: []models.Comment{}},
			{ID: 2, Type: models.PostNews, Title: "Library Week", Content: "Reading challenge for all grades", Author: "Mrs Naidoo", Date: "2025-03-01", Category: "Academics", Comments: []models.Comment{}},
			{ID: 1, Type: models.PostNews, Title: "Welcome Back", Content: "Term one begins", Author: "Principal", Date: "2025-01-15", Category: "General", Featured: true, Comments: []models.Comment{}},
		},
	}
}

func newTestPostService(repo *stubPostRepo) *PostService {
	svc := NewPostService(repo, nil, nil, "Pinetown Independent Primary School")
	svc.now = func() time.Time { return time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC) }
	return svc
}

func TestPostServiceListFiltersAndPaginates(t *testing.T) {
	svc := newTestPostService(newPostFixture())

	posts, page, err := svc.List(context.Background(), models.PostFilter{Type: models.PostNews})
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, 6, page.PageSize)
	assert.Equal(t, 2, page.TotalCount)

	posts, page, err = svc.List(context.Background(), models.PostFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(1), posts[0].ID)
	assert.Equal(t, 2, page.TotalPages())

	posts, _, err = svc.List(context.Background(), models.PostFilter{Page: 9})
	require.NoError(t, err)
	assert.Empty(t, posts)

	posts, page, err = svc.List(context.Background(), models.PostFilter{Page: 2305843009213693953})
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Equal(t, 3, page.TotalCount)

	_, _, err = svc.List(context.Background(), models.PostFilter{Type: "gossip"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestPostServiceRecentSortsByDate(t *testing.T) {
	svc := newTestPostService(newPostFixture())

	recent := svc.Recent(context.Background(), 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "Library Week", recent[0].Title)
	assert.Equal(t, "Sports Day", recent[1].Title)
}

func TestPostServiceGetCountsViews(t *testing.T) {
	repo := newPostFixture()
	svc := newTestPostService(repo)

	post, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, post.Views)
	post, err = svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, post.Views)

	_, err = svc.Get(context.Background(), 99)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestPostServiceSearch(t *testing.T) {
	svc := newTestPostService(newPostFixture())

	matches, err := svc.Search(context.Background(), "  NAIDOO ")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, int64(2), matches[0].ID)

	matches, err = svc.Search(context.Background(), "sport")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	_, err = svc.Search(context.Background(), "   ")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestPostServiceCreateAppliesDefaults(t *testing.T) {
	repo := newPostFixture()
	svc := newTestPostService(repo)

	post, err := svc.Create(context.Background(), models.CreatePostRequest{Title: "Choir Tour", Content: "The choir travels to Durban", Author: "Mr Mokoena"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), post.ID)
	assert.Equal(t, models.PostNews, post.Type)
	assert.Equal(t, "General", post.Category)
	assert.Equal(t, "2025-03-05", post.Date)
	assert.NotNil(t, post.Comments)
	assert.Equal(t, int64(4), repo.posts[0].ID)

	_, err = svc.Create(context.Background(), models.CreatePostRequest{Content: "missing title", Author: "x"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestPostServiceCreateStorageFailure(t *testing.T) {
	repo := newPostFixture()
	repo.writeErr = kvstore.ErrWriteFailed
	svc := newTestPostService(repo)

	_, err := svc.Create(context.Background(), models.CreatePostRequest{Title: "t", Content: "c", Author: "a"})
	assert.True(t, errors.Is(err, appErrors.ErrStorageUnavailable))
}

func TestPostServiceUpdatePartial(t *testing.T) {
	svc := newTestPostService(newPostFixture())

	title := "Sports Day Moved"
	featured := false
	post, err := svc.Update(context.Background(), 3, models.UpdatePostRequest{Title: &title, Featured: &featured})
	require.NoError(t, err)
	assert.Equal(t, "Sports Day Moved", post.Title)
	assert.False(t, post.Featured)
	assert.Equal(t, "Coach Dlamini", post.Author)
}

func TestPostServiceLikesNeverNegative(t *testing.T) {
	svc := newTestPostService(newPostFixture())

	post, err := svc.Unlike(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 0, post.Likes)

	post, err = svc.Like(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, post.Likes)
}

func TestPostServiceAddComment(t *testing.T) {
	repo := newPostFixture()
	svc := newTestPostService(repo)

	comment, err := svc.AddComment(context.Background(), 1, models.CommentRequest{Text: "  Great news!  "})
	require.NoError(t, err)
	assert.Equal(t, "Great news!", comment.Text)
	assert.Equal(t, "Anonymous User", comment.Author)
	assert.Equal(t, "2025-03-05", comment.Date)
	assert.Len(t, repo.posts[2].Comments, 1)

	_, err = svc.AddComment(context.Background(), 1, models.CommentRequest{Text: strings.Repeat("a", 501)})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	_, err = svc.AddComment(context.Background(), 1, models.CommentRequest{Text: "   "})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestPostServiceShare(t *testing.T) {
	repo := newPostFixture()
	repo.posts[1].Content = strings.Repeat("é", 120)
	svc := newTestPostService(repo)

	share, err := svc.Share(context.Background(), 2, "https://pips.example/news.html#post-2")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", 100)+"...", share.Excerpt)
	assert.Equal(t, `Check out this post from Pinetown Independent Primary School: "Library Week" - https://pips.example/news.html#post-2`, share.ShareText)
}

func TestPostServiceCarouselWraps(t *testing.T) {
	svc := newTestPostService(newPostFixture())

	resp, err := svc.Carousel(context.Background(), 1, CarouselNext)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Index)
	require.NotNil(t, resp.Post)
	assert.Equal(t, "Sports Day", resp.Post.Title)

	resp, err = svc.Carousel(context.Background(), 0, CarouselPrev)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Index)
	assert.Equal(t, "Welcome Back", resp.Post.Title)

	_, err = svc.Carousel(context.Background(), 0, "spin")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}
