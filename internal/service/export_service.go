package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/pips-site-api/internal/models"
	appErrors "github.com/noah-isme/pips-site-api/pkg/errors"
	"github.com/noah-isme/pips-site-api/pkg/export"
	"github.com/noah-isme/pips-site-api/pkg/storage"
)

type submissionLister interface {
	List(ctx context.Context, key string) []models.FormSubmission
}

type fileStorage interface {
	Save(name string, data []byte) error
	Read(name string) ([]byte, error)
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type urlSigner interface {
	Sign(name string) (string, time.Time, error)
	Verify(token string) (string, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportFile is a stored export ready to stream.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ExportService renders submissions to CSV or PDF and hands out signed links.
type ExportService struct {
	submissions submissionLister
	forms       formCatalog
	storage     fileStorage
	signer      urlSigner
	validator   *validator.Validate
	logger      *zap.Logger
	cfg         ExportConfig
	now         func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(submissions submissionLister, forms formCatalog, files fileStorage, signer urlSigner, cfg ExportConfig, validate *validator.Validate, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	return &ExportService{
		submissions: submissions,
		forms:       forms,
		storage:     files,
		signer:      signer,
		validator:   validate,
		logger:      logger,
		cfg:         cfg,
		now:         time.Now,
	}
}

// Render builds the export document for a form without storing it.
func (s *ExportService) Render(ctx context.Context, req models.ExportRequest) (ExportFile, int, error) {
	if err := s.validator.Struct(req); err != nil {
		return ExportFile{}, 0, validationError(err, "invalid export request")
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return ExportFile{}, 0, appErrors.Wrap(err, appErrors.ErrUnsupportedFormat.Code, appErrors.ErrUnsupportedFormat.Status, appErrors.ErrUnsupportedFormat.Message)
	}
	form, ok := s.forms.Form(req.Form)
	if !ok {
		return ExportFile{}, 0, appErrors.Clone(appErrors.ErrUnknownForm, fmt.Sprintf("unknown form %q", req.Form))
	}

	subs := s.submissions.List(ctx, form.StorageKey)
	headers := []string{"id", "submittedAt", "status"}
	for _, f := range form.Fields {
		headers = append(headers, f.Name)
	}
	data := export.Dataset{Headers: headers, Rows: make([]map[string]string, 0, len(subs))}
	for _, sub := range subs {
		row := map[string]string{
			"id":          sub.ID,
			"submittedAt": sub.SubmittedAt.UTC().Format(time.RFC3339),
			"status":      string(sub.Status),
		}
		for _, f := range form.Fields {
			row[f.Name] = sub.Data[f.Name]
		}
		data.Rows = append(data.Rows, row)
	}

	payload, err := export.Render(format, data, form.Title+" Submissions")
	if err != nil {
		return ExportFile{}, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	name := fmt.Sprintf("%s_submissions_%s.%s", form.Type, s.now().UTC().Format("20060102_150405"), format.Extension())
	return ExportFile{Name: name, ContentType: format.ContentType(), Data: payload}, len(subs), nil
}

// Generate renders and stores an export, returning its signed download link.
func (s *ExportService) Generate(ctx context.Context, req models.ExportRequest) (models.ExportResult, error) {
	file, records, err := s.Render(ctx, req)
	if err != nil {
		return models.ExportResult{}, err
	}
	if err := s.storage.Save(file.Name, file.Data); err != nil {
		return models.ExportResult{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store export")
	}
	token, expiresAt, err := s.signer.Sign(file.Name)
	if err != nil {
		return models.ExportResult{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign export link")
	}

	prefix := strings.TrimRight(s.cfg.APIPrefix, "/")
	if prefix == "" {
		prefix = "/api/v1"
	}
	s.logger.Info("export generated", zap.String("file", file.Name), zap.Int("records", records))
	return models.ExportResult{
		FileName:    file.Name,
		Records:     records,
		DownloadURL: prefix + "/exports/download?token=" + token,
		ExpiresAt:   expiresAt,
	}, nil
}

// Download resolves a signed token to the stored file.
func (s *ExportService) Download(ctx context.Context, token string) (ExportFile, error) {
	name, err := s.signer.Verify(token)
	if err != nil {
		if errors.Is(err, storage.ErrTokenExpired) {
			return ExportFile{}, appErrors.Clone(appErrors.ErrForbidden, "download link expired")
		}
		return ExportFile{}, appErrors.Clone(appErrors.ErrForbidden, "invalid download link")
	}
	data, err := s.storage.Read(name)
	if err != nil {
		return ExportFile{}, appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "export not found")
	}
	format := export.FormatCSV
	if strings.HasSuffix(name, "."+export.FormatPDF.Extension()) {
		format = export.FormatPDF
	}
	return ExportFile{Name: name, ContentType: format.ContentType(), Data: data}, nil
}

// Cleanup removes stored exports older than ttl, or the configured TTL when ttl <= 0.
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}
