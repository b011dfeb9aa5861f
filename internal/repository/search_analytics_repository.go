package repository

import (
	"context"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/pkg/kvstore"
)

// SearchAnalyticsKey is the storage key of the tracked searches.
const SearchAnalyticsKey = "searchAnalytics"

// SearchAnalyticsRepository keeps a bounded history of site searches.
type SearchAnalyticsRepository struct {
	store    *kvstore.Store
	capacity int
}

// NewSearchAnalyticsRepository constructs the repository.
func NewSearchAnalyticsRepository(store *kvstore.Store, capacity int) *SearchAnalyticsRepository {
	if capacity <= 0 {
		capacity = 100
	}
	return &SearchAnalyticsRepository{store: store, capacity: capacity}
}

func emptySearchEvents() []models.SearchEvent {
	return []models.SearchEvent{}
}

// List returns tracked searches, oldest first.
func (r *SearchAnalyticsRepository) List(ctx context.Context) []models.SearchEvent {
	return kvstore.Load(ctx, r.store, SearchAnalyticsKey, emptySearchEvents)
}

// Track records event, dropping the oldest beyond capacity.
func (r *SearchAnalyticsRepository) Track(ctx context.Context, event models.SearchEvent) error {
	_, err := kvstore.Update(ctx, r.store, SearchAnalyticsKey, emptySearchEvents, func(events *[]models.SearchEvent) error {
		*events = append(*events, event)
		if over := len(*events) - r.capacity; over > 0 {
			*events = append([]models.SearchEvent(nil), (*events)[over:]...)
		}
		return nil
	})
	return err
}
