package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/internal/service"
	"github.com/noah-isme/pips-site-api/internal/validation"
	"github.com/noah-isme/pips-site-api/pkg/response"
)

type formService interface {
	Forms() []*validation.Form
	Form(formType string) (*validation.Form, error)
	ValidateField(ctx context.Context, formType, field, value string) (validation.FieldResult, error)
	Submit(ctx context.Context, formType string, values map[string]string, meta models.SubmissionMeta) (service.SubmitResult, error)
	SaveDraft(ctx context.Context, formType, page string, values map[string]string) (models.Draft, error)
	RecoverDraft(ctx context.Context, formType, page string) (models.Draft, error)
	DiscardDraft(ctx context.Context, formType, page string) error
}

// FormHandler exposes the public forms.
type FormHandler struct {
	service formService
}

// NewFormHandler constructs a form handler.
func NewFormHandler(svc formService) *FormHandler {
	return &FormHandler{service: svc}
}

// List godoc
// @Summary Form definitions
// @Description Fields, rules and messages so clients can mirror validation
// @Tags Forms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /forms [get]
func (h *FormHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Forms(), nil)
}

// Get godoc
// @Summary One form definition
// @Tags Forms
// @Produce json
// @Param form path string true "admission, contact, enquiry, volunteer or sponsor"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /forms/{form} [get]
func (h *FormHandler) Get(c *gin.Context) {
	form, err := h.service.Form(c.Param("form"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, form, nil)
}

// Validate godoc
// @Summary Check one field
// @Tags Forms
// @Accept json
// @Produce json
// @Param form path string true "Form type"
// @Param payload body models.FieldCheckRequest true "Field and value"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /forms/{form}/validate [post]
func (h *FormHandler) Validate(c *gin.Context) {
	var req models.FieldCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid field payload"))
		return
	}
	res, err := h.service.ValidateField(c.Request.Context(), c.Param("form"), req.Field, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, nil)
}

// Submit godoc
// @Summary Submit a form
// @Description Validates, stores and returns the mail handoff. Rejected and failed
// @Description submissions are reported in the data with their state.
// @Tags Forms
// @Accept json
// @Produce json
// @Param form path string true "Form type"
// @Param payload body models.SubmitRequest true "Values"
// @Success 201 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /forms/{form}/submit [post]
func (h *FormHandler) Submit(c *gin.Context) {
	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid submission payload"))
		return
	}
	meta := models.SubmissionMeta{
		Page:      req.Page,
		SessionID: req.SessionID,
		UserAgent: c.GetHeader("User-Agent"),
		IP:        c.ClientIP(),
	}
	res, err := h.service.Submit(c.Request.Context(), c.Param("form"), req.Values, meta)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, res.Status, res, nil)
}

// SaveDraft godoc
// @Summary Auto-save a draft
// @Tags Forms
// @Accept json
// @Produce json
// @Param form path string true "Form type"
// @Param payload body models.DraftRequest true "Draft"
// @Success 200 {object} response.Envelope
// @Router /forms/{form}/draft [put]
func (h *FormHandler) SaveDraft(c *gin.Context) {
	var req models.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid draft payload"))
		return
	}
	draft, err := h.service.SaveDraft(c.Request.Context(), c.Param("form"), req.Page, req.Values)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, draft, nil)
}

// RecoverDraft godoc
// @Summary Recover a draft
// @Tags Forms
// @Produce json
// @Param form path string true "Form type"
// @Param page query string false "Page the form lives on"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /forms/{form}/draft [get]
func (h *FormHandler) RecoverDraft(c *gin.Context) {
	draft, err := h.service.RecoverDraft(c.Request.Context(), c.Param("form"), c.Query("page"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, draft, nil)
}

// DiscardDraft godoc
// @Summary Discard a draft
// @Tags Forms
// @Param form path string true "Form type"
// @Param page query string false "Page the form lives on"
// @Success 204
// @Router /forms/{form}/draft [delete]
func (h *FormHandler) DiscardDraft(c *gin.Context) {
	if err := h.service.DiscardDraft(c.Request.Context(), c.Param("form"), c.Query("page")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
