package repository

import (
	"context"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/pkg/kvstore"
)

// UniformShopKey is the storage key of the uniform price list.
const UniformShopKey = "schoolUniformShop"

// UniformRepository persists the uniform shop.
type UniformRepository struct {
	store *kvstore.Store
	now   Clock
}

// NewUniformRepository constructs the repository.
func NewUniformRepository(store *kvstore.Store, now Clock) *UniformRepository {
	return &UniformRepository{store: store, now: clockOrNow(now)}
}

// Get returns the shop or the default price list.
func (r *UniformRepository) Get(ctx context.Context) models.UniformShop {
	return kvstore.Load(ctx, r.store, UniformShopKey, DefaultUniformShop)
}

// Save replaces the whole shop.
func (r *UniformRepository) Save(ctx context.Context, shop models.UniformShop) error {
	if !r.store.Set(ctx, UniformShopKey, shop) {
		return kvstore.ErrWriteFailed
	}
	return nil
}

// AddItem appends an item under gender and season.
func (r *UniformRepository) AddItem(ctx context.Context, gender models.UniformGender, season models.UniformSeason, name string, price float64) (models.UniformItem, error) {
	var added models.UniformItem
	_, err := kvstore.Update(ctx, r.store, UniformShopKey, DefaultUniformShop, func(shop *models.UniformShop) error {
		items := shop.Items(gender, season)
		if items == nil {
			return ErrInvalidCategory
		}
		added = models.UniformItem{ID: nextTimeID(r.now(), allUniformIDs(shop)), Name: name, Price: price}
		*items = append(*items, added)
		return nil
	})
	if err != nil {
		return models.UniformItem{}, err
	}
	return added, nil
}

// UpdateItem shallow-merges the non-nil fields of patch into the item.
func (r *UniformRepository) UpdateItem(ctx context.Context, gender models.UniformGender, season models.UniformSeason, id int64, patch models.UniformItemPatch) (models.UniformItem, error) {
	var updated models.UniformItem
	_, err := kvstore.Update(ctx, r.store, UniformShopKey, DefaultUniformShop, func(shop *models.UniformShop) error {
		items := shop.Items(gender, season)
		if items == nil {
			return ErrInvalidCategory
		}
		for i := range *items {
			if (*items)[i].ID != id {
				continue
			}
			if patch.Name != nil {
				(*items)[i].Name = *patch.Name
			}
			if patch.Price != nil {
				(*items)[i].Price = *patch.Price
			}
			updated = (*items)[i]
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return models.UniformItem{}, err
	}
	return updated, nil
}

// DeleteItem removes id from gender and season.
func (r *UniformRepository) DeleteItem(ctx context.Context, gender models.UniformGender, season models.UniformSeason, id int64) error {
	_, err := kvstore.Update(ctx, r.store, UniformShopKey, DefaultUniformShop, func(shop *models.UniformShop) error {
		items := shop.Items(gender, season)
		if items == nil {
			return ErrInvalidCategory
		}
		kept := make([]models.UniformItem, 0, len(*items))
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

func allUniformIDs(shop *models.UniformShop) []int64 {
	ids := make([]int64, 0, 32)
	for _, gender := range models.UniformGenders {
		for _, season := range models.UniformSeasons {
			for _, item := range *shop.Items(gender, season) {
				ids = append(ids, item.ID)
			}
		}
	}
	return ids
}
