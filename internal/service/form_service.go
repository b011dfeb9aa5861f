package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/internal/repository"
	"github.com/noah-isme/pips-site-api/internal/validation"
	appErrors "github.com/noah-isme/pips-site-api/pkg/errors"
	"github.com/noah-isme/pips-site-api/pkg/mailer"
	"github.com/noah-isme/pips-site-api/pkg/mailto"
)

const (
	submitFailedMessage = "An error occurred while submitting the form. Please try again."
	submissionIDSuffix  = 9
)

type submissionWriter interface {
	Append(ctx context.Context, key string, submission models.FormSubmission) error
}

type validationLogWriter interface {
	Append(ctx context.Context, entry models.ValidationLog) error
}

type draftStore interface {
	Save(ctx context.Context, draft models.Draft) error
	Get(ctx context.Context, form, page string) (models.Draft, error)
	Delete(ctx context.Context, form, page string) error
	List(ctx context.Context) map[string]models.Draft
	RemoveKey(ctx context.Context, key string) bool
}

type notificationQueue interface {
	Notify(msg mailer.Message) error
}

type submissionRecorder interface {
	RecordSubmission(form, outcome string)
}

// FormServiceConfig carries the timings and addresses used by FormService.
type FormServiceConfig struct {
	SchoolName             string
	MailTo                 string
	NotifyEmail            string
	DraftTTL               time.Duration
	MailHandoffDelay       time.Duration
	ClipboardFallbackDelay time.Duration
	RedirectDelay          time.Duration
	SuccessBannerTTL       time.Duration
	ErrorBannerTTL         time.Duration
}

func (c *FormServiceConfig) applyDefaults() {
	if c.SchoolName == "" {
		c.SchoolName = "Pinetown Independent Primary School"
	}
	if c.DraftTTL <= 0 {
		c.DraftTTL = 24 * time.Hour
	}
	if c.MailHandoffDelay <= 0 {
		c.MailHandoffDelay = 1500 * time.Millisecond
	}
	if c.ClipboardFallbackDelay <= 0 {
		c.ClipboardFallbackDelay = 2 * time.Second
	}
	if c.RedirectDelay <= 0 {
		c.RedirectDelay = 3 * time.Second
	}
	if c.SuccessBannerTTL <= 0 {
		c.SuccessBannerTTL = 3 * time.Second
	}
	if c.ErrorBannerTTL <= 0 {
		c.ErrorBannerTTL = 5 * time.Second
	}
}

// MailHandoff is what the client needs to open the visitor's mail client, and
// the clipboard text to offer when it does not open.
type MailHandoff struct {
	To              string `json:"to"`
	Subject         string `json:"subject"`
	Body            string `json:"body"`
	URL             string `json:"url"`
	ClipboardText   string `json:"clipboardText"`
	HandoffDelayMs  int64  `json:"handoffDelayMs"`
	FallbackDelayMs int64  `json:"fallbackDelayMs"`
}

// SubmitResult is the outcome of a submit, whatever state it ended in.
type SubmitResult struct {
	State           FormState         `json:"state"`
	Trace           []FormState       `json:"trace"`
	Status          int               `json:"status"`
	Success         bool              `json:"success"`
	Message         string            `json:"message"`
	SubmissionID    string            `json:"submissionId,omitempty"`
	Errors          map[string]string `json:"errors,omitempty"`
	Fields          map[string]bool   `json:"fields,omitempty"`
	Values          map[string]string `json:"values,omitempty"`
	BannerTTLMs     int64             `json:"bannerTtlMs"`
	Redirect        string            `json:"redirect,omitempty"`
	RedirectDelayMs int64             `json:"redirectDelayMs,omitempty"`
	Mail            *MailHandoff      `json:"mail,omitempty"`
}

// FormService runs form submissions, blur checks and drafts.
type FormService struct {
	engine      *validation.Engine
	submissions submissionWriter
	logs        validationLogWriter
	drafts      draftStore
	notifier    notificationQueue
	metrics     submissionRecorder
	cfg         FormServiceConfig
	logger      *zap.Logger
	now         func() time.Time
}

// NewFormService wires the orchestrator. notifier and metrics may be nil.
func NewFormService(engine *validation.Engine, submissions submissionWriter, logs validationLogWriter, drafts draftStore, notifier notificationQueue, metrics submissionRecorder, cfg FormServiceConfig, logger *zap.Logger) *FormService {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.applyDefaults()
	return &FormService{
		engine:      engine,
		submissions: submissions,
		logs:        logs,
		drafts:      drafts,
		notifier:    notifier,
		metrics:     metrics,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// Forms lists the public form definitions.
func (s *FormService) Forms() []*validation.Form {
	return s.engine.Forms()
}

// Form returns one definition or ErrUnknownForm.
func (s *FormService) Form(formType string) (*validation.Form, error) {
	form, ok := s.engine.Form(formType)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnknownForm, fmt.Sprintf("unknown form %q", formType))
	}
	return form, nil
}

// ValidateField checks a single value the way a blur event would.
func (s *FormService) ValidateField(ctx context.Context, formType, field, value string) (validation.FieldResult, error) {
	form, err := s.Form(formType)
	if err != nil {
		return validation.FieldResult{}, err
	}
	res, err := s.engine.ValidateField(form, field, value)
	if err != nil {
		return validation.FieldResult{}, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	return res, nil
}

// Submit validates values, stores the submission and prepares the mail handoff.
// Validation and storage failures come back as a result carrying their HTTP
// status; only an unknown form or a broken state machine returns an error.
func (s *FormService) Submit(ctx context.Context, formType string, values map[string]string, meta models.SubmissionMeta) (SubmitResult, error) {
	form, err := s.Form(formType)
	if err != nil {
		return SubmitResult{}, err
	}
	if values == nil {
		values = map[string]string{}
	}

	m := NewFormMachine()
	if err := m.Transition(StateValidating); err != nil {
		return SubmitResult{}, err
	}
	check := s.engine.ValidateForm(form, values)
	now := s.now()

	entry := models.ValidationLog{
		FormType:  form.Type,
		Fields:    check.Fields,
		IsValid:   check.Valid,
		Timestamp: now.UTC(),
		Page:      meta.Page,
		UserAgent: meta.UserAgent,
	}
	if err := s.logs.Append(ctx, entry); err != nil {
		s.logger.Warn("validation log write failed", zap.String("form", form.Type), zap.Error(err))
	}

	if !check.Valid {
		if err := s.step(m, StateInvalid, StateIdleWithErrors); err != nil {
			return SubmitResult{}, err
		}
		s.record(form.Type, SubmissionRejected)
		return SubmitResult{
			State:       m.State(),
			Trace:       m.Trace(),
			Status:      http.StatusUnprocessableEntity,
			Message:     form.ErrorMessage,
			Errors:      check.Errors,
			Fields:      check.Fields,
			Values:      values,
			BannerTTLMs: s.cfg.ErrorBannerTTL.Milliseconds(),
		}, nil
	}

	if err := s.step(m, StateValid, StateSubmitting); err != nil {
		return SubmitResult{}, err
	}

	submission := models.FormSubmission{
		ID:          submissionID(form.Prefix, now),
		FormType:    form.Type,
		Data:        declaredValues(form, values),
		Status:      models.SubmissionStatus(form.InitialStatus),
		SubmittedAt: now.UTC(),
		Page:        meta.Page,
		SessionID:   meta.SessionID,
		UserAgent:   meta.UserAgent,
	}
	if err := s.submissions.Append(ctx, form.StorageKey, submission); err != nil {
		s.logger.Error("submission not stored",
			zap.String("form", form.Type),
			zap.String("submission_id", submission.ID),
			zap.Error(err),
		)
		if err := s.step(m, StateError, StateIdleWithBanner); err != nil {
			return SubmitResult{}, err
		}
		s.record(form.Type, SubmissionFailed)
		return SubmitResult{
			State:       m.State(),
			Trace:       m.Trace(),
			Status:      http.StatusInternalServerError,
			Message:     submitFailedMessage,
			Values:      values,
			BannerTTLMs: s.cfg.ErrorBannerTTL.Milliseconds(),
		}, nil
	}

	if err := s.drafts.Delete(ctx, form.Type, meta.Page); err != nil {
		s.logger.Warn("draft not cleared", zap.String("form", form.Type), zap.String("page", meta.Page), zap.Error(err))
	}

	content := mailto.Build(s.cfg.SchoolName, form.Mail, submission.Data, now)
	handoff := &MailHandoff{
		To:              s.cfg.MailTo,
		Subject:         content.Subject,
		Body:            content.Body,
		URL:             mailto.URL(s.cfg.MailTo, content),
		ClipboardText:   mailto.ClipboardText(s.cfg.MailTo, content),
		HandoffDelayMs:  s.cfg.MailHandoffDelay.Milliseconds(),
		FallbackDelayMs: s.cfg.ClipboardFallbackDelay.Milliseconds(),
	}
	s.notify(form, submission, content)

	if err := s.step(m, StateSuccess, StateIdleReset); err != nil {
		return SubmitResult{}, err
	}
	s.record(form.Type, SubmissionAccepted)
	s.logger.Info("form submitted",
		zap.String("form", form.Type),
		zap.String("submission_id", submission.ID),
		zap.String("ip", meta.IP),
	)

	res := SubmitResult{
		State:        m.State(),
		Trace:        m.Trace(),
		Status:       http.StatusCreated,
		Success:      true,
		Message:      form.SuccessMessage,
		SubmissionID: submission.ID,
		BannerTTLMs:  s.cfg.SuccessBannerTTL.Milliseconds(),
		Mail:         handoff,
	}
	if form.Redirect != "" {
		res.Redirect = form.Redirect
		res.RedirectDelayMs = s.cfg.RedirectDelay.Milliseconds()
	}
	return res, nil
}

func (s *FormService) step(m *FormMachine, states ...FormState) error {
	for _, st := range states {
		if err := m.Transition(st); err != nil {
			return err
		}
	}
	return nil
}

func (s *FormService) record(form, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordSubmission(form, outcome)
	}
}

func (s *FormService) notify(form *validation.Form, submission models.FormSubmission, content mailto.Content) {
	if s.notifier == nil || s.cfg.NotifyEmail == "" {
		return
	}
	subject := form.Notification
	if subject == "" {
		subject = content.Subject
	}
	msg := mailer.Message{
		To:      s.cfg.NotifyEmail,
		Subject: subject,
		Text:    content.Body,
		ReplyTo: replyAddress(form, submission.Data),
	}
	if err := s.notifier.Notify(msg); err != nil {
		s.logger.Warn("notification not queued", zap.String("submission_id", submission.ID), zap.Error(err))
	}
}

// SaveDraft stores in-progress values for form on page.
func (s *FormService) SaveDraft(ctx context.Context, formType, page string, values map[string]string) (models.Draft, error) {
	form, err := s.Form(formType)
	if err != nil {
		return models.Draft{}, err
	}
	draft := models.Draft{
		Form:    form.Type,
		Page:    page,
		Data:    values,
		SavedAt: s.now().UTC(),
	}
	if draft.Data == nil {
		draft.Data = map[string]string{}
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return models.Draft{}, repositoryError(err, "")
	}
	return draft, nil
}

// RecoverDraft returns the saved draft while it is younger than the draft TTL.
// An expired draft is removed and reported as missing.
func (s *FormService) RecoverDraft(ctx context.Context, formType, page string) (models.Draft, error) {
	form, err := s.Form(formType)
	if err != nil {
		return models.Draft{}, err
	}
	draft, err := s.drafts.Get(ctx, form.Type, page)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Draft{}, appErrors.Clone(appErrors.ErrDraftNotFound, "")
		}
		return models.Draft{}, repositoryError(err, "")
	}
	if s.expired(draft) {
		if err := s.drafts.Delete(ctx, form.Type, page); err != nil {
			s.logger.Warn("expired draft not removed", zap.String("form", form.Type), zap.Error(err))
		}
		return models.Draft{}, appErrors.Clone(appErrors.ErrDraftNotFound, "")
	}
	return draft, nil
}

// DiscardDraft removes the draft for form on page.
func (s *FormService) DiscardDraft(ctx context.Context, formType, page string) error {
	form, err := s.Form(formType)
	if err != nil {
		return err
	}
	return repositoryError(s.drafts.Delete(ctx, form.Type, page), "")
}

// PurgeExpiredDrafts removes every draft past the TTL and returns how many went.
func (s *FormService) PurgeExpiredDrafts(ctx context.Context) int {
	removed := 0
	for key, draft := range s.drafts.List(ctx) {
		if !s.expired(draft) {
			continue
		}
		if s.drafts.RemoveKey(ctx, key) {
			removed++
		}
	}
	if removed > 0 {
		s.logger.Info("expired drafts purged", zap.Int("count", removed))
	}
	return removed
}

// RunDraftSweeper purges expired drafts every interval until ctx ends.
func (s *FormService) RunDraftSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.PurgeExpiredDrafts(ctx)
		}
	}
}

// A draft without a timestamp could not be read and counts as expired.
func (s *FormService) expired(d models.Draft) bool {
	if d.SavedAt.IsZero() {
		return true
	}
	return s.now().Sub(d.SavedAt) > s.cfg.DraftTTL
}

// declaredValues keeps only the form's fields, trimmed.
func declaredValues(form *validation.Form, values map[string]string) map[string]string {
	data := make(map[string]string, len(form.Fields))
	for _, f := range form.Fields {
		if v, ok := values[f.Name]; ok {
			data[f.Name] = strings.TrimSpace(v)
		}
	}
	return data
}

func replyAddress(form *validation.Form, data map[string]string) string {
	for _, f := range form.Fields {
		if strings.HasSuffix(strings.ToLower(f.Name), "email") && data[f.Name] != "" {
			return data[f.Name]
		}
	}
	return ""
}

// submissionID returns <prefix>-<unix ms>-<9 base36 chars>.
func submissionID(prefix string, at time.Time) string {
	u := uuid.New()
	suffix := new(big.Int).SetBytes(u[:]).Text(36)
	for len(suffix) < submissionIDSuffix {
		suffix = "0" + suffix
	}
	return fmt.Sprintf("%s-%d-%s", prefix, at.UnixMilli(), suffix[len(suffix)-submissionIDSuffix:])
}
