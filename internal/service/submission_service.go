package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/internal/validation"
	appErrors "github.com/noah-isme/pips-site-api/pkg/errors"
)

type submissionRepository interface {
	List(ctx context.Context, key string) []models.FormSubmission
	Get(ctx context.Context, key, id string) (models.FormSubmission, error)
	UpdateStatus(ctx context.Context, key, id string, status models.SubmissionStatus, at time.Time) (models.FormSubmission, error)
	Delete(ctx context.Context, key, id string) error
	All(ctx context.Context, keys []string) map[string][]models.FormSubmission
}

type validationLogReader interface {
	List(ctx context.Context) []models.ValidationLog
}

type formCatalog interface {
	Form(formType string) (*validation.Form, bool)
	Forms() []*validation.Form
}

// SubmissionService is the admin view over stored form submissions.
type SubmissionService struct {
	repo      submissionRepository
	logs      validationLogReader
	forms     formCatalog
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewSubmissionService constructs the service.
func NewSubmissionService(repo submissionRepository, logs validationLogReader, forms formCatalog, validate *validator.Validate, logger *zap.Logger) *SubmissionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionService{repo: repo, logs: logs, forms: forms, validator: validate, logger: logger, now: time.Now}
}

func (s *SubmissionService) form(formType string) (*validation.Form, error) {
	form, ok := s.forms.Form(formType)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnknownForm, fmt.Sprintf("unknown form %q", formType))
	}
	return form, nil
}

// List returns a form's submissions in arrival order.
func (s *SubmissionService) List(ctx context.Context, formType string) ([]models.FormSubmission, error) {
	form, err := s.form(formType)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, form.StorageKey), nil
}

// Get returns one submission.
func (s *SubmissionService) Get(ctx context.Context, formType, id string) (models.FormSubmission, error) {
	form, err := s.form(formType)
	if err != nil {
		return models.FormSubmission{}, err
	}
	sub, err := s.repo.Get(ctx, form.StorageKey, id)
	if err != nil {
		return models.FormSubmission{}, repositoryError(err, "submission not found")
	}
	return sub, nil
}

// UpdateStatus moves a submission to req.Status and stamps reviewedAt.
func (s *SubmissionService) UpdateStatus(ctx context.Context, formType, id string, req models.UpdateSubmissionStatusRequest) (models.FormSubmission, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.FormSubmission{}, validationError(err, "invalid status")
	}
	form, err := s.form(formType)
	if err != nil {
		return models.FormSubmission{}, err
	}
	sub, err := s.repo.UpdateStatus(ctx, form.StorageKey, id, req.Status, s.now().UTC())
	if err != nil {
		return models.FormSubmission{}, repositoryError(err, "submission not found")
	}
	s.logger.Info("submission status updated",
		zap.String("form", form.Type),
		zap.String("submission_id", id),
		zap.String("status", string(req.Status)),
	)
	return sub, nil
}

// Delete removes a submission.
func (s *SubmissionService) Delete(ctx context.Context, formType, id string) error {
	form, err := s.form(formType)
	if err != nil {
		return err
	}
	return repositoryError(s.repo.Delete(ctx, form.StorageKey, id), "submission not found")
}

// ValidationLogs returns the logged submit attempts, oldest first.
func (s *SubmissionService) ValidationLogs(ctx context.Context) []models.ValidationLog {
	return s.logs.List(ctx)
}

// Statistics summarises every form and the validation log.
func (s *SubmissionService) Statistics(ctx context.Context) models.FormStatistics {
	stats := models.FormStatistics{Forms: map[string]models.FormStats{}}
	for _, form := range s.forms.Forms() {
		subs := s.repo.List(ctx, form.StorageKey)
		fs := models.FormStats{Total: len(subs), ByStatus: map[models.SubmissionStatus]int{}}
		for _, sub := range subs {
			fs.ByStatus[sub.Status]++
		}
		if len(subs) > 0 {
			last := subs[len(subs)-1].SubmittedAt
			fs.LastSubmission = &last
		}
		stats.Forms[form.Type] = fs
	}

	logs := s.logs.List(ctx)
	stats.Validation.TotalAttempts = len(logs)
	if len(logs) > 0 {
		valid := 0
		for _, l := range logs {
			if l.IsValid {
				valid++
			}
		}
		stats.Validation.SuccessRate = float64(valid) / float64(len(logs)) * 100
	}
	return stats
}

// Backup gathers every submission list and the validation log.
func (s *SubmissionService) Backup(ctx context.Context) models.Backup {
	keys := make(map[string]string)
	storageKeys := make([]string, 0, len(backupForms))
	for _, formType := range backupForms {
		if form, ok := s.forms.Form(formType); ok {
			keys[formType] = form.StorageKey
			storageKeys = append(storageKeys, form.StorageKey)
		}
	}
	all := s.repo.All(ctx, storageKeys)
	list := func(formType string) []models.FormSubmission {
		if subs, ok := all[keys[formType]]; ok {
			return subs
		}
		return []models.FormSubmission{}
	}
	return models.Backup{
		Admissions:     list("admission"),
		Contacts:       list("contact"),
		Enquiries:      list("enquiry"),
		Volunteers:     list("volunteer"),
		Sponsors:       list("sponsor"),
		ValidationLogs: s.logs.List(ctx),
		ExportedAt:     s.now().UTC(),
	}
}

var backupForms = []string{"admission", "contact", "enquiry", "volunteer", "sponsor"}

// BackupFileName names the backup attachment for the given day.
func BackupFileName(at time.Time) string {
	return "pinetown-school-data-" + at.UTC().Format("2006-01-02") + ".json"
}
