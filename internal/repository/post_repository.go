package repository

import (
	"context"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/pkg/kvstore"
)

const (
	// PostsKey is the storage key of the post feed.
	PostsKey = "schoolPosts"
	// PostsSeqKey holds the highest post id ever issued.
	PostsSeqKey = "schoolPostsSeq"
)

// PostRepository persists the news feed. Ids are monotonic and never reused,
// even after the newest post is deleted.
type PostRepository struct {
	store *kvstore.Store
}

// NewPostRepository constructs the repository.
func NewPostRepository(store *kvstore.Store) *PostRepository {
	return &PostRepository{store: store}
}

// List returns every post in stored order (newest first for added posts).
func (r *PostRepository) List(ctx context.Context) []models.Post {
	return kvstore.Load(ctx, r.store, PostsKey, DefaultPosts)
}

// Get returns the post with id.
func (r *PostRepository) Get(ctx context.Context, id int64) (models.Post, error) {
	for _, p := range r.List(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Post{}, ErrNotFound
}

// Add assigns the next id to post and prepends it to the feed.
func (r *PostRepository) Add(ctx context.Context, post models.Post) (models.Post, error) {
	_, err := kvstore.Update(ctx, r.store, PostsKey, DefaultPosts, func(posts *[]models.Post) error {
		next := r.highWater(ctx, *posts) + 1
		if !r.store.Set(ctx, PostsSeqKey, next) {
			return kvstore.ErrWriteFailed
		}
		post.ID = next
		if post.Comments == nil {
			post.Comments = []models.Comment{}
		}
		*posts = append([]models.Post{post}, *posts...)
		return nil
	})
	if err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// Update applies mutate to the post with id and stores the result.
func (r *PostRepository) Update(ctx context.Context, id int64, mutate func(*models.Post) error) (models.Post, error) {
	var updated models.Post
	_, err := kvstore.Update(ctx, r.store, PostsKey, DefaultPosts, func(posts *[]models.Post) error {
		for i := range *posts {
			if (*posts)[i].ID != id {
				continue
			}
			if err := mutate(&(*posts)[i]); err != nil {
				return err
			}
			updated = (*posts)[i]
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return models.Post{}, err
	}
	return updated, nil
}

// Delete removes the post with id. The high-water mark is pinned first so
// the id is never issued again.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	_, err := kvstore.Update(ctx, r.store, PostsKey, DefaultPosts, func(posts *[]models.Post) error {
		kept := make([]models.Post, 0, len(*posts))
		for _, p := range *posts {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(*posts) {
			return ErrNotFound
		}
		if !r.store.Set(ctx, PostsSeqKey, r.highWater(ctx, *posts)) {
			return kvstore.ErrWriteFailed
		}
		*posts = kept
		return nil
	})
	return err
}

func (r *PostRepository) highWater(ctx context.Context, posts []models.Post) int64 {
	high := kvstore.Load(ctx, r.store, PostsSeqKey, func() int64 { return 0 })
	for _, p := range posts {
		if p.ID > high {
			high = p.ID
		}
	}
	return high
}
