package repository

import (
	"context"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/pkg/kvstore"
)

// NoticeBoardKey is the storage key of the notice board.
const NoticeBoardKey = "schoolNoticeBoard"

// NoticeRepository persists the notice board.
type NoticeRepository struct {
	store *kvstore.Store
	now   Clock
}

// NewNoticeRepository constructs the repository.
func NewNoticeRepository(store *kvstore.Store, now Clock) *NoticeRepository {
	return &NoticeRepository{store: store, now: clockOrNow(now)}
}

// Get returns the board or the default board.
func (r *NoticeRepository) Get(ctx context.Context) models.NoticeBoard {
	return kvstore.Load(ctx, r.store, NoticeBoardKey, DefaultNoticeBoard)
}

// Save replaces the whole board.
func (r *NoticeRepository) Save(ctx context.Context, board models.NoticeBoard) error {
	if !r.store.Set(ctx, NoticeBoardKey, board) {
		return kvstore.ErrWriteFailed
	}
	return nil
}

// AddItem appends text to category with an id unique within that list.
func (r *NoticeRepository) AddItem(ctx context.Context, category models.NoticeCategory, text string) (models.NoticeItem, error) {
	var added models.NoticeItem
	_, err := kvstore.Update(ctx, r.store, NoticeBoardKey, DefaultNoticeBoard, func(board *models.NoticeBoard) error {
		items := board.Items(category)
		if items == nil {
			return ErrInvalidCategory
		}
		ids := make([]int64, len(*items))
		for i, item := range *items {
			ids[i] = item.ID
		}
		added = models.NoticeItem{ID: nextTimeID(r.now(), ids), Text: text}
		*items = append(*items, added)
		return nil
	})
	if err != nil {
		return models.NoticeItem{}, err
	}
	return added, nil
}

// DeleteItem removes id from category.
func (r *NoticeRepository) DeleteItem(ctx context.Context, category models.NoticeCategory, id int64) error {
	_, err := kvstore.Update(ctx, r.store, NoticeBoardKey, DefaultNoticeBoard, func(board *models.NoticeBoard) error {
		items := board.Items(category)
		if items == nil {
			return ErrInvalidCategory
		}
		kept := make([]models.NoticeItem, 0, len(*items))
		for _, item := range *items {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		if len(kept) == len(*items) {
			return ErrNotFound
		}
		*items = kept
		return nil
	})
	return err
}
