package repository

import (
	"context"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/pkg/kvstore"
)

const (
	// ValidationLogsKey is the storage key of the validation attempt log.
	ValidationLogsKey = "validationLogs"
	// DefaultValidationLogSize caps the log when no size is configured.
	DefaultValidationLogSize = 100
)

// ValidationLogRepository keeps the most recent validation attempts.
type ValidationLogRepository struct {
	store    *kvstore.Store
	capacity int
}

// NewValidationLogRepository constructs the repository with the given capacity.
func NewValidationLogRepository(store *kvstore.Store, capacity int) *ValidationLogRepository {
	if capacity <= 0 {
		capacity = DefaultValidationLogSize
	}
	return &ValidationLogRepository{store: store, capacity: capacity}
}

func emptyValidationLogs() []models.ValidationLog {
	return []models.ValidationLog{}
}

// List returns the logged attempts, oldest first.
func (r *ValidationLogRepository) List(ctx context.Context) []models.ValidationLog {
	return kvstore.Load(ctx, r.store, ValidationLogsKey, emptyValidationLogs)
}

// Append adds entry and drops the oldest entries beyond capacity.
func (r *ValidationLogRepository) Append(ctx context.Context, entry models.ValidationLog) error {
	_, err := kvstore.Update(ctx, r.store, ValidationLogsKey, emptyValidationLogs, func(logs *[]models.ValidationLog) error {
		*logs = append(*logs, entry)
		if over := len(*logs) - r.capacity; over > 0 {
			*logs = append([]models.ValidationLog(nil), (*logs)[over:]...)
		}
		return nil
	})
	return err
}
