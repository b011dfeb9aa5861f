package repository

import (
	"context"
	"strings"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/pkg/kvstore"
)

// DraftKeyPrefix starts every auto-save key.
const DraftKeyPrefix = "autosave_"

// DraftKey returns the storage key for a form's draft on page.
func DraftKey(form, page string) string {
	return DraftKeyPrefix + form + "_" + page
}

// DraftRepository persists auto-saved form drafts.
type DraftRepository struct {
	store *kvstore.Store
}

// NewDraftRepository constructs the repository.
func NewDraftRepository(store *kvstore.Store) *DraftRepository {
	return &DraftRepository{store: store}
}

// Save stores draft under its form and page.
func (r *DraftRepository) Save(ctx context.Context, draft models.Draft) error {
	if !r.store.Set(ctx, DraftKey(draft.Form, draft.Page), draft) {
		return kvstore.ErrWriteFailed
	}
	return nil
}

// Get returns the draft for form and page, or ErrNotFound.
func (r *DraftRepository) Get(ctx context.Context, form, page string) (models.Draft, error) {
	draft := kvstore.Load(ctx, r.store, DraftKey(form, page), func() *models.Draft { return nil })
	if draft == nil {
		return models.Draft{}, ErrNotFound
	}
	return *draft, nil
}

// Delete removes the draft for form and page.
func (r *DraftRepository) Delete(ctx context.Context, form, page string) error {
	if !r.store.Remove(ctx, DraftKey(form, page)) {
		return kvstore.ErrWriteFailed
	}
	return nil
}

// List returns every stored draft with its key. Unreadable drafts come back
// with only Form and Page filled from the key so they can still be purged.
func (r *DraftRepository) List(ctx context.Context) map[string]models.Draft {
	keys := r.store.Keys(ctx, DraftKeyPrefix)
	out := make(map[string]models.Draft, len(keys))
	for _, key := range keys {
		draft := kvstore.Load(ctx, r.store, key, func() *models.Draft { return nil })
		if draft == nil {
			form, page := splitDraftKey(key)
			out[key] = models.Draft{Form: form, Page: page}
			continue
		}
		out[key] = *draft
	}
	return out
}

// RemoveKey deletes a draft by raw key.
func (r *DraftRepository) RemoveKey(ctx context.Context, key string) bool {
	return r.store.Remove(ctx, key)
}

func splitDraftKey(key string) (string, string) {
	rest := strings.TrimPrefix(key, DraftKeyPrefix)
	form, page, _ := strings.Cut(rest, "_")
	return form, page
}
