package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/internal/service"
	appErrors "github.com/noah-isme/pips-site-api/pkg/errors"
	"github.com/noah-isme/pips-site-api/pkg/response"
)

type exportService interface {
	Generate(ctx context.Context, req models.ExportRequest) (models.ExportResult, error)
	Download(ctx context.Context, token string) (service.ExportFile, error)
}

// ExportHandler renders submission exports and serves signed downloads.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs an export handler.
func NewExportHandler(svc exportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Generate godoc
// @Summary Export submissions
// @Description Renders a form's submissions as CSV or PDF and returns a signed download URL
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ExportRequest true "Export request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/submissions/export [post]
func (h *ExportHandler) Generate(c *gin.Context) {
	var req models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid export payload"))
		return
	}
	res, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, res)
}

// Download godoc
// @Summary Download an export
// @Tags Exports
// @Produce octet-stream
// @Param token query string true "Signed token"
// @Success 200 {file} file
// @Failure 403 {object} response.Envelope
// @Router /exports/download [get]
func (h *ExportHandler) Download(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token is required"))
		return
	}
	file, err := h.service.Download(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Name, file.ContentType, file.Data)
}
