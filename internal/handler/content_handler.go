package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/internal/service"
	"github.com/noah-isme/pips-site-api/internal/widget"
	appErrors "github.com/noah-isme/pips-site-api/pkg/errors"
	"github.com/noah-isme/pips-site-api/pkg/response"
)

type contentService interface {
	Contact(ctx context.Context) models.ContactInfo
	SaveContact(ctx context.Context, info models.ContactInfo) (models.ContactInfo, error)
	Gallery(ctx context.Context) []models.GalleryImage
	AddImage(ctx context.Context, req models.GalleryImageRequest) (models.GalleryImage, error)
	DeleteImage(ctx context.Context, id int64) error
	Lightbox(ctx context.Context, index int, action string) (service.LightboxResponse, error)
	Accordion(items, open []string, action, id string) (service.AccordionView, error)
	Notices(ctx context.Context, tab string) (service.NoticeBoardView, error)
	NoticeModal(ctx context.Context, kind string) (widget.NoticeModalView, error)
	SaveNotices(ctx context.Context, board models.NoticeBoard) (models.NoticeBoard, error)
	AddNotice(ctx context.Context, category models.NoticeCategory, req models.NoticeItemRequest) (models.NoticeItem, error)
	DeleteNotice(ctx context.Context, category models.NoticeCategory, id int64) error
	Uniforms(ctx context.Context) models.UniformShop
	AddUniformItem(ctx context.Context, gender models.UniformGender, season models.UniformSeason, req models.UniformItemRequest) (models.UniformItem, error)
	UpdateUniformItem(ctx context.Context, gender models.UniformGender, season models.UniformSeason, id int64, patch models.UniformItemPatch) (models.UniformItem, error)
	DeleteUniformItem(ctx context.Context, gender models.UniformGender, season models.UniformSeason, id int64) error
}

// ContentHandler serves the editable page content.
type ContentHandler struct {
	service contentService
}

// NewContentHandler constructs a content handler.
func NewContentHandler(svc contentService) *ContentHandler {
	return &ContentHandler{service: svc}
}

// Contact godoc
// @Summary Contact details
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /contact [get]
func (h *ContentHandler) Contact(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Contact(c.Request.Context()), nil)
}

// SaveContact godoc
// @Summary Replace contact details
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ContactInfo true "Contact document"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/contact [put]
func (h *ContentHandler) SaveContact(c *gin.Context) {
	var req models.ContactInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid contact payload"))
		return
	}
	info, err := h.service.SaveContact(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, info, nil)
}

// Gallery godoc
// @Summary List gallery images
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /gallery [get]
func (h *ContentHandler) Gallery(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Gallery(c.Request.Context()), nil)
}

// AddImage godoc
// @Summary Add a gallery image
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.GalleryImageRequest true "Image"
// @Success 201 {object} response.Envelope
// @Router /admin/gallery [post]
func (h *ContentHandler) AddImage(c *gin.Context) {
	var req models.GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid gallery payload"))
		return
	}
	img, err := h.service.AddImage(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, img)
}

// DeleteImage godoc
// @Summary Delete a gallery image
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /admin/gallery/{id} [delete]
func (h *ContentHandler) DeleteImage(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.DeleteImage(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Lightbox godoc
// @Summary Gallery lightbox view
// @Tags Content
// @Produce json
// @Param index query int false "Image index"
// @Param action query string false "open, next, prev, close, zoom or slideshow"
// @Success 200 {object} response.Envelope
// @Router /gallery/lightbox [get]
func (h *ContentHandler) Lightbox(c *gin.Context) {
	view, err := h.service.Lightbox(c.Request.Context(), intQuery(c, "index", 0), c.Query("action"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Accordion godoc
// @Summary FAQ accordion view
// @Tags Content
// @Produce json
// @Param items query string true "Comma separated item ids"
// @Param open query string false "Comma separated open ids"
// @Param action query string false "toggle, open, close, expand-all or collapse-all"
// @Param id query string false "Item the action applies to"
// @Success 200 {object} response.Envelope
// @Router /faq/accordion [get]
func (h *ContentHandler) Accordion(c *gin.Context) {
	items := splitList(c.Query("items"))
	if len(items) == 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "items is required"))
		return
	}
	view, err := h.service.Accordion(items, splitList(c.Query("open")), c.Query("action"), c.Query("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Notices godoc
// @Summary Notice board
// @Tags Content
// @Produce json
// @Param tab query string false "events, news or reminders"
// @Success 200 {object} response.Envelope
// @Router /notices [get]
func (h *ContentHandler) Notices(c *gin.Context) {
	view, err := h.service.Notices(c.Request.Context(), c.Query("tab"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// NoticeModal godoc
// @Summary Notice pop-up view
// @Tags Content
// @Produce json
// @Param type query string false "all, events, news or reminders"
// @Success 200 {object} response.Envelope
// @Router /notices/modal [get]
func (h *ContentHandler) NoticeModal(c *gin.Context) {
	view, err := h.service.NoticeModal(c.Request.Context(), c.DefaultQuery("type", "all"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// SaveNotices godoc
// @Summary Replace the notice board
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.NoticeBoard true "Board"
// @Success 200 {object} response.Envelope
// @Router /admin/notices [put]
func (h *ContentHandler) SaveNotices(c *gin.Context) {
	var req models.NoticeBoard
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid notice board payload"))
		return
	}
	board, err := h.service.SaveNotices(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, board, nil)
}

// AddNotice godoc
// @Summary Add a notice line
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category path string true "events, news or reminders"
// @Param payload body models.NoticeItemRequest true "Notice"
// @Success 201 {object} response.Envelope
// @Router /admin/notices/{category} [post]
func (h *ContentHandler) AddNotice(c *gin.Context) {
	var req models.NoticeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid notice payload"))
		return
	}
	item, err := h.service.AddNotice(c.Request.Context(), models.NoticeCategory(c.Param("category")), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// DeleteNotice godoc
// @Summary Delete a notice line
// @Tags Admin
// @Security BearerAuth
// @Param category path string true "events, news or reminders"
// @Param id path int true "Notice ID"
// @Success 204
// @Router /admin/notices/{category}/{id} [delete]
func (h *ContentHandler) DeleteNotice(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.DeleteNotice(c.Request.Context(), models.NoticeCategory(c.Param("category")), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Uniforms godoc
// @Summary Uniform shop price list
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /uniforms [get]
func (h *ContentHandler) Uniforms(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Uniforms(c.Request.Context()), nil)
}

// AddUniformItem godoc
// @Summary Add a uniform item
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param gender path string true "boys or girls"
// @Param season path string true "summer, winter or sports"
// @Param payload body models.UniformItemRequest true "Item"
// @Success 201 {object} response.Envelope
// @Router /admin/uniforms/{gender}/{season} [post]
func (h *ContentHandler) AddUniformItem(c *gin.Context) {
	var req models.UniformItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid uniform payload"))
		return
	}
	gender, season := uniformGroup(c)
	item, err := h.service.AddUniformItem(c.Request.Context(), gender, season, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// UpdateUniformItem godoc
// @Summary Update a uniform item
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param gender path string true "boys or girls"
// @Param season path string true "summer, winter or sports"
// @Param id path int true "Item ID"
// @Param payload body models.UniformItemPatch true "Patch"
// @Success 200 {object} response.Envelope
// @Router /admin/uniforms/{gender}/{season}/{id} [patch]
func (h *ContentHandler) UpdateUniformItem(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var patch models.UniformItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, bindError(err, "invalid uniform payload"))
		return
	}
	gender, season := uniformGroup(c)
	item, err := h.service.UpdateUniformItem(c.Request.Context(), gender, season, id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// DeleteUniformItem godoc
// @Summary Delete a uniform item
// @Tags Admin
// @Security BearerAuth
// @Param gender path string true "boys or girls"
// @Param season path string true "summer, winter or sports"
// @Param id path int true "Item ID"
// @Success 204
// @Router /admin/uniforms/{gender}/{season}/{id} [delete]
func (h *ContentHandler) DeleteUniformItem(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	gender, season := uniformGroup(c)
	if err := h.service.DeleteUniformItem(c.Request.Context(), gender, season, id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func uniformGroup(c *gin.Context) (models.UniformGender, models.UniformSeason) {
	return models.UniformGender(c.Param("gender")), models.UniformSeason(c.Param("season"))
}
