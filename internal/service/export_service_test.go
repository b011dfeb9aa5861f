package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/internal/validation"
	appErrors "github.com/noah-isme/pips-site-api/pkg/errors"
	"github.com/noah-isme/pips-site-api/pkg/storage"
)

type stubSubmissionLister map[string][]models.FormSubmission

func (s stubSubmissionLister) List(ctx context.Context, key string) []models.FormSubmission {
	return s[key]
}

func newExportServiceForTest(t *testing.T) *ExportService {
	t.Helper()
	engine, err := validation.Load("")
	require.NoError(t, err)
	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("secret", time.Hour)

	subs := stubSubmissionLister{
		"contactMessages": {
			{ID: "CON-1-abc", FormType: "contact", Status: models.StatusNew, SubmittedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
				Data: map[string]string{"firstName": "Thandi", "lastName": "Mokoena", "email": "thandi@example.com", "message": "=HYPERLINK(\"x\")"}},
		},
	}
	svc := NewExportService(subs, engine, files, signer, ExportConfig{APIPrefix: "/api/v1/"}, nil, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC) }
	return svc
}

func tokenFrom(t *testing.T, downloadURL string) string {
	t.Helper()
	u, err := url.Parse(downloadURL)
	require.NoError(t, err)
	return u.Query().Get("token")
}

func TestExportServiceGenerateCSVAndDownload(t *testing.T) {
	svc := newExportServiceForTest(t)

	result, err := svc.Generate(context.Background(), models.ExportRequest{Form: "contact", Format: "csv"})
	require.NoError(t, err)
	assert.Equal(t, "contact_submissions_20250302_100000.csv", result.FileName)
	assert.Equal(t, 1, result.Records)
	assert.True(t, strings.HasPrefix(result.DownloadURL, "/api/v1/exports/download?token="))

	file, err := svc.Download(context.Background(), tokenFrom(t, result.DownloadURL))
	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	body := string(file.Data)
	assert.True(t, strings.HasPrefix(body, "id,submittedAt,status,firstName,lastName,email,phone,subject,message"))
	assert.Contains(t, body, "CON-1-abc,2025-03-01T09:00:00Z,new,Thandi,Mokoena")
	assert.NotContains(t, body, ",=HYPERLINK")
}

func TestExportServiceGeneratePDF(t *testing.T) {
	svc := newExportServiceForTest(t)

	result, err := svc.Generate(context.Background(), models.ExportRequest{Form: "contact", Format: "pdf"})
	require.NoError(t, err)

	file, err := svc.Download(context.Background(), tokenFrom(t, result.DownloadURL))
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Data), "%PDF"))
}

func TestExportServiceRejectsBadRequests(t *testing.T) {
	svc := newExportServiceForTest(t)

	_, err := svc.Generate(context.Background(), models.ExportRequest{Form: "newsletter"})
	assert.True(t, errors.Is(err, appErrors.ErrUnknownForm))

	_, err = svc.Generate(context.Background(), models.ExportRequest{Form: "contact", Format: "xlsx"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	_, err = svc.Download(context.Background(), "garbage")
	assert.True(t, errors.Is(err, appErrors.ErrForbidden))
}
