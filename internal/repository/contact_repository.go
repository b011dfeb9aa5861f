package repository

import (
	"context"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/pkg/kvstore"
)

// ContactKey is the storage key of the contact document.
const ContactKey = "schoolContactInfo"

// ContactRepository persists the singleton contact document.
type ContactRepository struct {
	store *kvstore.Store
}

// NewContactRepository constructs the repository.
func NewContactRepository(store *kvstore.Store) *ContactRepository {
	return &ContactRepository{store: store}
}

// Get returns the stored contact document or the default.
func (r *ContactRepository) Get(ctx context.Context) models.ContactInfo {
	return kvstore.Load(ctx, r.store, ContactKey, DefaultContactInfo)
}

// Save replaces the contact document.
func (r *ContactRepository) Save(ctx context.Context, info models.ContactInfo) error {
	if !r.store.Set(ctx, ContactKey, info) {
		return kvstore.ErrWriteFailed
	}
	return nil
}
