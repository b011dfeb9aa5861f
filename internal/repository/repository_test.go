package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/pkg/kvstore"
)

func newTestStore() (*kvstore.Store, *kvstore.MemoryBackend) {
	backend := kvstore.NewMemoryBackend()
	return kvstore.New(backend, nil), backend
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func corrupt(t *testing.T, backend *kvstore.MemoryBackend, key string) {
	t.Helper()
	require.NoError(t, backend.Set(context.Background(), key, []byte("{broken")))
}

func TestContactRepositoryDefaultsAndSave(t *testing.T) {
	store, backend := newTestStore()
	repo := NewContactRepository(store)
	ctx := context.Background()

	got := repo.Get(ctx)
	if diff := cmp.Diff(DefaultContactInfo(), got); diff != "" {
		t.Fatalf("default contact mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "0748479786", got.Phone)

	got.Phone = "031 000 0000"
	require.NoError(t, repo.Save(ctx, got))
	assert.Equal(t, "031 000 0000", repo.Get(ctx).Phone)

	corrupt(t, backend, ContactKey)
	assert.Equal(t, DefaultContactInfo(), repo.Get(ctx))
}

func TestGalleryRepositoryRoundTrip(t *testing.T) {
	store, backend := newTestStore()
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	repo := NewGalleryRepository(store, fixedClock(now))
	ctx := context.Background()

	first := repo.List(ctx)
	require.Len(t, first, 17)
	if diff := cmp.Diff(first, repo.List(ctx)); diff != "" {
		t.Fatalf("List is not idempotent:\n%s", diff)
	}

	a, err := repo.Add(ctx, "_images/new.jpg", "New")
	require.NoError(t, err)
	b, err := repo.Add(ctx, "_images/new2.jpg", "New 2")
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), a.ID)
	assert.Equal(t, now.UnixMilli()+1, b.ID, "same-millisecond adds must not collide")
	assert.Equal(t, "3/1/2025, 9:30:00 AM", a.UploadDate)

	images := repo.List(ctx)
	require.Len(t, images, 19)
	assert.Equal(t, models.GalleryImage{ID: a.ID, Src: "_images/new.jpg", Alt: "New", UploadDate: a.UploadDate}, images[17])

	require.NoError(t, repo.Delete(ctx, a.ID))
	for _, img := range repo.List(ctx) {
		assert.NotEqual(t, a.ID, img.ID)
	}
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), ErrNotFound)

	corrupt(t, backend, GalleryKey)
	assert.Len(t, repo.List(ctx), 17)
}

func TestGalleryDefaultsStableAcrossReads(t *testing.T) {
	store, _ := newTestStore()
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	repo := NewGalleryRepository(store, func() time.Time {
		now = now.Add(time.Second)
		return now
	})
	ctx := context.Background()

	first := repo.List(ctx)
	second := repo.List(ctx)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("default gallery changed between reads:\n%s", diff)
	}
	assert.Equal(t, "1/6/2025, 8:00:00 AM", first[0].UploadDate)
}

func TestNoticeRepositoryItems(t *testing.T) {
	store, _ := newTestStore()
	repo := NewNoticeRepository(store, fixedClock(time.UnixMilli(1700000000000)))
	ctx := context.Background()

	board := repo.Get(ctx)
	assert.Len(t, board.Events, 4)
	assert.Len(t, board.News, 4)
	assert.Len(t, board.Reminders, 4)

	item, err := repo.AddItem(ctx, models.NoticeNews, "Choir wins regional final")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), item.ID)
	assert.Len(t, repo.Get(ctx).News, 5)

	_, err = repo.AddItem(ctx, models.NoticeCategory("gossip"), "nope")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	require.NoError(t, repo.DeleteItem(ctx, models.NoticeNews, item.ID))
	assert.ErrorIs(t, repo.DeleteItem(ctx, models.NoticeNews, item.ID), ErrNotFound)
	assert.Len(t, repo.Get(ctx).News, 4)
}

func TestUniformRepositoryPatch(t *testing.T) {
	store, _ := newTestStore()
	repo := NewUniformRepository(store, fixedClock(time.UnixMilli(5)))
	ctx := context.Background()

	shop := repo.Get(ctx)
	assert.Equal(t, int64(28), shop.Girls.Sports[3].ID)

	added, err := repo.AddItem(ctx, models.UniformBoys, models.SeasonSports, "Swimming cap", 55)
	require.NoError(t, err)
	assert.Equal(t, int64(29), added.ID, "id must advance past the default ids")

	price := 60.0
	updated, err := repo.UpdateItem(ctx, models.UniformBoys, models.SeasonSports, added.ID, models.UniformItemPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, models.UniformItem{ID: 29, Name: "Swimming cap", Price: 60}, updated)

	_, err = repo.UpdateItem(ctx, models.UniformGirls, models.SeasonSports, added.ID, models.UniformItemPatch{Price: &price})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.AddItem(ctx, models.UniformGender("staff"), models.SeasonSports, "x", 1)
	assert.ErrorIs(t, err, ErrInvalidCategory)

	require.NoError(t, repo.DeleteItem(ctx, models.UniformBoys, models.SeasonSports, added.ID))
	assert.Len(t, repo.Get(ctx).Boys.Sports, 4)
}

func TestPostRepositoryNeverReusesIDs(t *testing.T) {
	store, _ := newTestStore()
	repo := NewPostRepository(store)
	ctx := context.Background()

	require.Len(t, repo.List(ctx), 6)

	created, err := repo.Add(ctx, models.Post{Title: "Fun run", Type: models.PostEvent})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, int64(7), repo.List(ctx)[0].ID, "new posts are prepended")

	require.NoError(t, repo.Delete(ctx, created.ID))
	again, err := repo.Add(ctx, models.Post{Title: "Fun run (rescheduled)"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), again.ID)

	require.NoError(t, repo.Delete(ctx, 3))
	require.NoError(t, repo.Delete(ctx, again.ID))
	third, err := repo.Add(ctx, models.Post{Title: "Library week"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), third.ID)

	_, err = repo.Get(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostRepositoryUpdate(t *testing.T) {
	store, _ := newTestStore()
	repo := NewPostRepository(store)
	ctx := context.Background()

	updated, err := repo.Update(ctx, 1, func(p *models.Post) error {
		p.Views++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 235, updated.Views)

	_, err = repo.Update(ctx, 1, func(p *models.Post) error { return fmt.Errorf("rejected") })
	assert.EqualError(t, err, "rejected")

	_, err = repo.Update(ctx, 404, func(p *models.Post) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmissionRepositoryLifecycle(t *testing.T) {
	store, _ := newTestStore()
	repo := NewSubmissionRepository(store)
	ctx := context.Background()
	submitted := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)

	sub := models.FormSubmission{
		ID:          "ADM-1-abc",
		FormType:    "admission",
		Data:        map[string]string{"fullName": "Sipho Dlamini"},
		Status:      models.StatusPending,
		SubmittedAt: submitted,
	}
	require.NoError(t, repo.Append(ctx, "admissionApplications", sub))

	got, err := repo.Get(ctx, "admissionApplications", "ADM-1-abc")
	require.NoError(t, err)
	if diff := cmp.Diff(sub, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	reviewed, err := repo.UpdateStatus(ctx, "admissionApplications", sub.ID, models.StatusReviewed, submitted.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, models.StatusReviewed, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedAt)

	all := repo.All(ctx, []string{"admissionApplications", "contactMessages"})
	assert.Len(t, all["admissionApplications"], 1)
	assert.Empty(t, all["contactMessages"])

	require.NoError(t, repo.Delete(ctx, "admissionApplications", sub.ID))
	assert.ErrorIs(t, repo.Delete(ctx, "admissionApplications", sub.ID), ErrNotFound)
}

func TestValidationLogRepositoryCapsEntries(t *testing.T) {
	store, _ := newTestStore()
	repo := NewValidationLogRepository(store, 3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, models.ValidationLog{FormType: fmt.Sprintf("f%d", i)}))
	}
	logs := repo.List(ctx)
	require.Len(t, logs, 3)
	assert.Equal(t, "f2", logs[0].FormType)
	assert.Equal(t, "f4", logs[2].FormType)
}

func TestSearchAnalyticsRepositoryRing(t *testing.T) {
	store, _ := newTestStore()
	repo := NewSearchAnalyticsRepository(store, 100)
	ctx := context.Background()

	for i := 0; i < 120; i++ {
		require.NoError(t, repo.Track(ctx, models.SearchEvent{Term: fmt.Sprintf("q%d", i)}))
	}
	events := repo.List(ctx)
	require.Len(t, events, 100)
	assert.Equal(t, "q20", events[0].Term)
	assert.Equal(t, "q119", events[99].Term)
}

func TestDraftRepository(t *testing.T) {
	store, backend := newTestStore()
	repo := NewDraftRepository(store)
	ctx := context.Background()

	draft := models.Draft{Form: "admission", Page: "/admissions", Data: map[string]string{"fullName": "Lee"}, SavedAt: time.Unix(100, 0).UTC()}
	require.NoError(t, repo.Save(ctx, draft))
	assert.Equal(t, "autosave_admission_/admissions", DraftKey("admission", "/admissions"))

	got, err := repo.Get(ctx, "admission", "/admissions")
	require.NoError(t, err)
	assert.Equal(t, draft, got)

	corrupt(t, backend, DraftKey("contact", "/contact"))
	listed := repo.List(ctx)
	require.Len(t, listed, 2)
	assert.Equal(t, models.Draft{Form: "contact", Page: "/contact"}, listed["autosave_contact_/contact"])

	require.NoError(t, repo.Delete(ctx, "admission", "/admissions"))
	_, err = repo.Get(ctx, "admission", "/admissions")
	assert.ErrorIs(t, err, ErrNotFound)
}
