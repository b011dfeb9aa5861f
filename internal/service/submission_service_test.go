package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/internal/repository"
	"github.com/noah-isme/pips-site-api/internal/validation"
	appErrors "github.com/noah-isme/pips-site-api/pkg/errors"
	"github.com/noah-isme/pips-site-api/pkg/kvstore"
)

func newSubmissionFixture(t *testing.T) (*SubmissionService, *repository.SubmissionRepository, *repository.ValidationLogRepository) {
	t.Helper()
	store := kvstore.New(kvstore.NewMemoryBackend(), nil)
	subs := repository.NewSubmissionRepository(store)
	logs := repository.NewValidationLogRepository(store, 10)
	engine, err := validation.Load("")
	require.NoError(t, err)

	svc := NewSubmissionService(subs, logs, engine, nil, nil)
	svc.now = func() time.Time { return time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC) }
	return svc, subs, logs
}

func TestSubmissionServiceStatusLifecycle(t *testing.T) {
	svc, subs, _ := newSubmissionFixture(t)
	ctx := context.Background()
	require.NoError(t, subs.Append(ctx, "admissionApplications", models.FormSubmission{ID: "ADM-1", FormType: "admission", Status: models.StatusPending}))

	list, err := svc.List(ctx, "admission")
	require.NoError(t, err)
	require.Len(t, list, 1)

	updated, err := svc.UpdateStatus(ctx, "admission", "ADM-1", models.UpdateSubmissionStatusRequest{Status: models.StatusReviewed})
	require.NoError(t, err)
	assert.Equal(t, models.StatusReviewed, updated.Status)
	require.NotNil(t, updated.ReviewedAt)

	_, err = svc.UpdateStatus(ctx, "admission", "ADM-1", models.UpdateSubmissionStatusRequest{Status: "archived"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	_, err = svc.UpdateStatus(ctx, "admission", "ADM-404", models.UpdateSubmissionStatusRequest{Status: models.StatusAccepted})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	require.NoError(t, svc.Delete(ctx, "admission", "ADM-1"))
	_, err = svc.Get(ctx, "admission", "ADM-1")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	_, err = svc.List(ctx, "newsletter")
	assert.True(t, errors.Is(err, appErrors.ErrUnknownForm))
}

func TestSubmissionServiceStatistics(t *testing.T) {
	svc, subs, logs := newSubmissionFixture(t)
	ctx := context.Background()

	stats := svc.Statistics(ctx)
	assert.Equal(t, 0, stats.Validation.TotalAttempts)
	assert.Zero(t, stats.Validation.SuccessRate)
	assert.Len(t, stats.Forms, 5)
	assert.Nil(t, stats.Forms["admission"].LastSubmission)

	first := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	last := first.Add(time.Hour)
	require.NoError(t, subs.Append(ctx, "admissionApplications", models.FormSubmission{ID: "ADM-1", Status: models.StatusPending, SubmittedAt: first}))
	require.NoError(t, subs.Append(ctx, "admissionApplications", models.FormSubmission{ID: "ADM-2", Status: models.StatusAccepted, SubmittedAt: last}))
	for _, ok := range []bool{true, false, false, true} {
		require.NoError(t, logs.Append(ctx, models.ValidationLog{FormType: "admission", IsValid: ok}))
	}

	stats = svc.Statistics(ctx)
	adm := stats.Forms["admission"]
	assert.Equal(t, 2, adm.Total)
	assert.Equal(t, 1, adm.ByStatus[models.StatusPending])
	require.NotNil(t, adm.LastSubmission)
	assert.True(t, adm.LastSubmission.Equal(last))
	assert.Equal(t, 4, stats.Validation.TotalAttempts)
	assert.InDelta(t, 50.0, stats.Validation.SuccessRate, 0.001)
}

func TestSubmissionServiceBackup(t *testing.T) {
	svc, subs, _ := newSubmissionFixture(t)
	ctx := context.Background()
	require.NoError(t, subs.Append(ctx, "sponsorApplications", models.FormSubmission{ID: "SPO-1"}))

	backup := svc.Backup(ctx)
	require.Len(t, backup.Sponsors, 1)
	assert.Empty(t, backup.Admissions)
	assert.NotNil(t, backup.Contacts)
	assert.Equal(t, "pinetown-school-data-2025-03-05.json", BackupFileName(backup.ExportedAt))
}
