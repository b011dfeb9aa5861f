package repository

import (
	"context"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/pkg/kvstore"
)

// GalleryKey is the storage key of the gallery image list.
const GalleryKey = "schoolGalleryImages"

// GalleryRepository persists gallery images.
type GalleryRepository struct {
	store *kvstore.Store
	now   Clock
}

// NewGalleryRepository constructs the repository. A nil clock uses time.Now.
func NewGalleryRepository(store *kvstore.Store, now Clock) *GalleryRepository {
	return &GalleryRepository{store: store, now: clockOrNow(now)}
}

func (r *GalleryRepository) defaults() []models.GalleryImage {
	return DefaultGallery()
}

// List returns every image.
func (r *GalleryRepository) List(ctx context.Context) []models.GalleryImage {
	return kvstore.Load(ctx, r.store, GalleryKey, r.defaults)
}

// Add appends an image with a fresh time-based id.
func (r *GalleryRepository) Add(ctx context.Context, src, alt string) (models.GalleryImage, error) {
	var added models.GalleryImage
	_, err := kvstore.Update(ctx, r.store, GalleryKey, r.defaults, func(images *[]models.GalleryImage) error {
		ids := make([]int64, len(*images))
		for i, img := range *images {
			ids[i] = img.ID
		}
		now := r.now()
		added = models.GalleryImage{ID: nextTimeID(now, ids), Src: src, Alt: alt, UploadDate: uploadStamp(now)}
		*images = append(*images, added)
		return nil
	})
	if err != nil {
		return models.GalleryImage{}, err
	}
	return added, nil
}

// Delete removes the image with id.
func (r *GalleryRepository) Delete(ctx context.Context, id int64) error {
	_, err := kvstore.Update(ctx, r.store, GalleryKey, r.defaults, func(images *[]models.GalleryImage) error {
		kept := make([]models.GalleryImage, 0, len(*images))
		for _, img := range *images {
			if img.ID != id {
				kept = append(kept, img)
			}
		}
		if len(kept) == len(*images) {
			return ErrNotFound
		}
		*images = kept
		return nil
	})
	return err
}
