package repository

import (
	"context"
	"time"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/pkg/kvstore"
)

// SubmissionRepository persists accepted form submissions, one document per
// form keyed by the form's storage key.
type SubmissionRepository struct {
	store *kvstore.Store
}

// NewSubmissionRepository constructs the repository.
func NewSubmissionRepository(store *kvstore.Store) *SubmissionRepository {
	return &SubmissionRepository{store: store}
}

func emptySubmissions() []models.FormSubmission {
	return []models.FormSubmission{}
}

// List returns the submissions stored under key in submission order.
func (r *SubmissionRepository) List(ctx context.Context, key string) []models.FormSubmission {
	return kvstore.Load(ctx, r.store, key, emptySubmissions)
}

// Append stores a new submission under key.
func (r *SubmissionRepository) Append(ctx context.Context, key string, submission models.FormSubmission) error {
	_, err := kvstore.Update(ctx, r.store, key, emptySubmissions, func(list *[]models.FormSubmission) error {
		*list = append(*list, submission)
		return nil
	})
	return err
}

// Get returns the submission with id stored under key.
func (r *SubmissionRepository) Get(ctx context.Context, key, id string) (models.FormSubmission, error) {
	for _, s := range r.List(ctx, key) {
		if s.ID == id {
			return s, nil
		}
	}
	return models.FormSubmission{}, ErrNotFound
}

// UpdateStatus sets the review status of a submission and stamps reviewedAt.
func (r *SubmissionRepository) UpdateStatus(ctx context.Context, key, id string, status models.SubmissionStatus, at time.Time) (models.FormSubmission, error) {
	var updated models.FormSubmission
	_, err := kvstore.Update(ctx, r.store, key, emptySubmissions, func(list *[]models.FormSubmission) error {
		for i := range *list {
			if (*list)[i].ID != id {
				continue
			}
			reviewed := at.UTC()
			(*list)[i].Status = status
			(*list)[i].ReviewedAt = &reviewed
			updated = (*list)[i]
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return models.FormSubmission{}, err
	}
	return updated, nil
}

// Delete removes a submission.
func (r *SubmissionRepository) Delete(ctx context.Context, key, id string) error {
	_, err := kvstore.Update(ctx, r.store, key, emptySubmissions, func(list *[]models.FormSubmission) error {
		kept := make([]models.FormSubmission, 0, len(*list))
		for _, s := range *list {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		if len(kept) == len(*list) {
			return ErrNotFound
		}
		*list = kept
		return nil
	})
	return err
}

// All returns the submissions of every key in keys.
func (r *SubmissionRepository) All(ctx context.Context, keys []string) map[string][]models.FormSubmission {
	out := make(map[string][]models.FormSubmission, len(keys))
	for _, key := range keys {
		out[key] = r.List(ctx, key)
	}
	return out
}
