package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/internal/service"
	appErrors "github.com/noah-isme/pips-site-api/pkg/errors"
	"github.com/noah-isme/pips-site-api/pkg/response"
)

type submissionService interface {
	List(ctx context.Context, formType string) ([]models.FormSubmission, error)
	Get(ctx context.Context, formType, id string) (models.FormSubmission, error)
	UpdateStatus(ctx context.Context, formType, id string, req models.UpdateSubmissionStatusRequest) (models.FormSubmission, error)
	Delete(ctx context.Context, formType, id string) error
	ValidationLogs(ctx context.Context) []models.ValidationLog
	Statistics(ctx context.Context) models.FormStatistics
	Backup(ctx context.Context) models.Backup
}

// SubmissionHandler exposes the admin review endpoints.
type SubmissionHandler struct {
	service submissionService
	now     func() time.Time
}

// NewSubmissionHandler constructs a submission handler.
func NewSubmissionHandler(svc submissionService) *SubmissionHandler {
	return &SubmissionHandler{service: svc, now: time.Now}
}

// List godoc
// @Summary List submissions of a form
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param form path string true "Form type"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/submissions/{form} [get]
func (h *SubmissionHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Param("form"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, &models.Pagination{Page: 1, PageSize: len(items), TotalCount: len(items)})
}

// Get godoc
// @Summary Get a submission
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param form path string true "Form type"
// @Param id path string true "Submission ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/submissions/{form}/{id} [get]
func (h *SubmissionHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("form"), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// UpdateStatus godoc
// @Summary Move a submission to a new status
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param form path string true "Form type"
// @Param id path string true "Submission ID"
// @Param payload body models.UpdateSubmissionStatusRequest true "Status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/submissions/{form}/{id}/status [patch]
func (h *SubmissionHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateSubmissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid status payload"))
		return
	}
	item, err := h.service.UpdateStatus(c.Request.Context(), c.Param("form"), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// Delete godoc
// @Summary Delete a submission
// @Tags Admin
// @Security BearerAuth
// @Param form path string true "Form type"
// @Param id path string true "Submission ID"
// @Success 204
// @Router /admin/submissions/{form}/{id} [delete]
func (h *SubmissionHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("form"), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Statistics godoc
// @Summary Submission and validation statistics
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/statistics [get]
func (h *SubmissionHandler) Statistics(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Statistics(c.Request.Context()), nil)
}

// ValidationLogs godoc
// @Summary Recent validation attempts
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/validation-logs [get]
func (h *SubmissionHandler) ValidationLogs(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.ValidationLogs(c.Request.Context()), nil)
}

// Backup godoc
// @Summary Download a JSON backup of every submission
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {file} file
// @Router /admin/backup [get]
func (h *SubmissionHandler) Backup(c *gin.Context) {
	backup := h.service.Backup(c.Request.Context())
	body, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode backup"))
		return
	}
	response.Attachment(c, service.BackupFileName(h.now()), "application/json", body)
}
