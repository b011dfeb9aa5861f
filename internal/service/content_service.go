package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/internal/validation"
	"github.com/noah-isme/pips-site-api/internal/widget"
	appErrors "github.com/noah-isme/pips-site-api/pkg/errors"
)

type contactRepository interface {
	Get(ctx context.Context) models.ContactInfo
	Save(ctx context.Context, info models.ContactInfo) error
}

type galleryRepository interface {
	List(ctx context.Context) []models.GalleryImage
	Add(ctx context.Context, src, alt string) (models.GalleryImage, error)
	Delete(ctx context.Context, id int64) error
}

type noticeRepository interface {
	Get(ctx context.Context) models.NoticeBoard
	Save(ctx context.Context, board models.NoticeBoard) error
	AddItem(ctx context.Context, category models.NoticeCategory, text string) (models.NoticeItem, error)
	DeleteItem(ctx context.Context, category models.NoticeCategory, id int64) error
}

type uniformRepository interface {
	Get(ctx context.Context) models.UniformShop
	AddItem(ctx context.Context, gender models.UniformGender, season models.UniformSeason, name string, price float64) (models.UniformItem, error)
	UpdateItem(ctx context.Context, gender models.UniformGender, season models.UniformSeason, id int64, patch models.UniformItemPatch) (models.UniformItem, error)
	DeleteItem(ctx context.Context, gender models.UniformGender, season models.UniformSeason, id int64) error
}

// Lightbox navigation actions.
const (
	LightboxOpen  = "open"
	LightboxNext  = "next"
	LightboxPrev  = "prev"
	LightboxClose = "close"
	LightboxZoom  = "zoom"
	LightboxPlay  = "slideshow"
)

// LightboxResponse is the lightbox state plus the image it shows.
type LightboxResponse struct {
	widget.LightboxView
	Image *models.GalleryImage `json:"image,omitempty"`
}

// Accordion actions.
const (
	AccordionToggle   = "toggle"
	AccordionOpen     = "open"
	AccordionClose    = "close"
	AccordionOpenAll  = "expand-all"
	AccordionCloseAll = "collapse-all"
)

// AccordionView is the FAQ accordion after an action.
type AccordionView struct {
	Open  []string                `json:"open"`
	Items []widget.AccordionAttrs `json:"items"`
}

// NoticeBoardView is the board with its tab strip.
type NoticeBoardView struct {
	models.NoticeBoard
	Tabs widget.TabsView `json:"tabs"`
}

// ContentService manages the editable page content: contact details,
// gallery, notice board and uniform price list.
type ContentService struct {
	contact   contactRepository
	gallery   galleryRepository
	notices   noticeRepository
	uniforms  uniformRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewContentService constructs the service.
func NewContentService(contact contactRepository, gallery galleryRepository, notices noticeRepository, uniforms uniformRepository, validate *validator.Validate, logger *zap.Logger) *ContentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := validation.RegisterTags(validate); err != nil {
		logger.Warn("failed to register form validation tags", zap.Error(err))
	}
	return &ContentService{
		contact:   contact,
		gallery:   gallery,
		notices:   notices,
		uniforms:  uniforms,
		validator: validate,
		logger:    logger,
	}
}

// Contact returns the contact document.
func (s *ContentService) Contact(ctx context.Context) models.ContactInfo {
	return s.contact.Get(ctx)
}

// SaveContact replaces the contact document.
func (s *ContentService) SaveContact(ctx context.Context, info models.ContactInfo) (models.ContactInfo, error) {
	if err := s.validator.Struct(info); err != nil {
		return models.ContactInfo{}, validationError(err, "invalid contact payload")
	}
	if err := s.contact.Save(ctx, info); err != nil {
		return models.ContactInfo{}, repositoryError(err, "")
	}
	s.logger.Info("contact info updated")
	return info, nil
}

// Gallery lists the gallery images.
func (s *ContentService) Gallery(ctx context.Context) []models.GalleryImage {
	return s.gallery.List(ctx)
}

// AddImage appends an image to the gallery.
func (s *ContentService) AddImage(ctx context.Context, req models.GalleryImageRequest) (models.GalleryImage, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.GalleryImage{}, validationError(err, "invalid gallery payload")
	}
	img, err := s.gallery.Add(ctx, req.Src, req.Alt)
	if err != nil {
		return models.GalleryImage{}, repositoryError(err, "")
	}
	return img, nil
}

// DeleteImage removes an image by id.
func (s *ContentService) DeleteImage(ctx context.Context, id int64) error {
	return repositoryError(s.gallery.Delete(ctx, id), "image not found")
}

// Lightbox opens the gallery at index and applies action.
func (s *ContentService) Lightbox(ctx context.Context, index int, action string) (LightboxResponse, error) {
	images := s.gallery.List(ctx)
	lb := widget.NewLightbox(len(images))
	lb.Open(index)
	switch action {
	case "", LightboxOpen:
	case LightboxNext:
		lb.Next()
	case LightboxPrev:
		lb.Prev()
	case LightboxClose:
		lb.Close()
	case LightboxZoom:
		lb.ToggleZoom()
	case LightboxPlay:
		lb.ToggleSlideshow()
	default:
		return LightboxResponse{}, appErrors.Clone(appErrors.ErrValidation, "action must be one of open, next, prev, close, zoom, slideshow")
	}
	resp := LightboxResponse{LightboxView: lb.View()}
	if resp.Open && len(images) > 0 {
		img := images[lb.Index()]
		resp.Image = &img
	}
	return resp, nil
}

// Accordion applies action to the FAQ items starting from the open set.
// Open ids that are not in items are ignored.
func (s *ContentService) Accordion(items, open []string, action, id string) (AccordionView, error) {
	known := make(map[string]struct{}, len(items))
	for _, item := range items {
		known[item] = struct{}{}
	}
	acc := widget.NewAccordion()
	for _, o := range open {
		if _, ok := known[o]; ok {
			acc.Open(o)
		}
	}

	needsID := action == AccordionToggle || action == AccordionOpen || action == AccordionClose
	if needsID {
		if _, ok := known[id]; !ok {
			return AccordionView{}, appErrors.Clone(appErrors.ErrValidation, "unknown accordion item")
		}
	}
	switch action {
	case "":
	case AccordionToggle:
		acc.Toggle(id)
	case AccordionOpen:
		acc.Open(id)
	case AccordionClose:
		acc.Close(id)
	case AccordionOpenAll:
		acc.OpenAll(items)
	case AccordionCloseAll:
		acc.CloseAll()
	default:
		return AccordionView{}, appErrors.Clone(appErrors.ErrValidation, "action must be one of toggle, open, close, expand-all, collapse-all")
	}

	view := AccordionView{Open: acc.OpenIDs(), Items: make([]widget.AccordionAttrs, 0, len(items))}
	for _, item := range items {
		view.Items = append(view.Items, acc.Attrs(item))
	}
	return view, nil
}

// Notices returns the board with tab as the active tab. An empty tab
// selects the first section.
func (s *ContentService) Notices(ctx context.Context, tab string) (NoticeBoardView, error) {
	ids := make([]string, len(models.NoticeCategories))
	for i, c := range models.NoticeCategories {
		ids[i] = string(c)
	}
	tabs := widget.NewTabs(ids...)
	if tab != "" && !tabs.Show(tab) {
		return NoticeBoardView{}, appErrors.Clone(appErrors.ErrValidation, "tab must be one of events, news, reminders")
	}
	return NoticeBoardView{NoticeBoard: s.notices.Get(ctx), Tabs: tabs.View()}, nil
}

// NoticeModal renders the notice pop-up for kind.
func (s *ContentService) NoticeModal(ctx context.Context, kind string) (widget.NoticeModalView, error) {
	view, err := widget.NewNoticeModal().Show(s.notices.Get(ctx), kind)
	if err != nil {
		return widget.NoticeModalView{}, validationError(err, "type must be one of all, events, news, reminders")
	}
	return view, nil
}

// SaveNotices replaces the whole board.
func (s *ContentService) SaveNotices(ctx context.Context, board models.NoticeBoard) (models.NoticeBoard, error) {
	for _, category := range models.NoticeCategories {
		items := board.Items(category)
		if *items == nil {
			*items = []models.NoticeItem{}
		}
	}
	if err := s.notices.Save(ctx, board); err != nil {
		return models.NoticeBoard{}, repositoryError(err, "")
	}
	return board, nil
}

// AddNotice appends a line to category.
func (s *ContentService) AddNotice(ctx context.Context, category models.NoticeCategory, req models.NoticeItemRequest) (models.NoticeItem, error) {
	if !category.Valid() {
		return models.NoticeItem{}, appErrors.Clone(appErrors.ErrValidation, "unknown notice category")
	}
	if err := s.validator.Struct(req); err != nil {
		return models.NoticeItem{}, validationError(err, "invalid notice payload")
	}
	item, err := s.notices.AddItem(ctx, category, req.Text)
	if err != nil {
		return models.NoticeItem{}, repositoryError(err, "")
	}
	return item, nil
}

// DeleteNotice removes a line from category.
func (s *ContentService) DeleteNotice(ctx context.Context, category models.NoticeCategory, id int64) error {
	if !category.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, "unknown notice category")
	}
	return repositoryError(s.notices.DeleteItem(ctx, category, id), "notice not found")
}

// Uniforms returns the uniform price list.
func (s *ContentService) Uniforms(ctx context.Context) models.UniformShop {
	return s.uniforms.Get(ctx)
}

// AddUniformItem appends an item to gender and season.
func (s *ContentService) AddUniformItem(ctx context.Context, gender models.UniformGender, season models.UniformSeason, req models.UniformItemRequest) (models.UniformItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.UniformItem{}, validationError(err, "invalid uniform item payload")
	}
	item, err := s.uniforms.AddItem(ctx, gender, season, req.Name, req.Price)
	if err != nil {
		return models.UniformItem{}, repositoryError(err, "")
	}
	return item, nil
}

// UpdateUniformItem applies patch to an item.
func (s *ContentService) UpdateUniformItem(ctx context.Context, gender models.UniformGender, season models.UniformSeason, id int64, patch models.UniformItemPatch) (models.UniformItem, error) {
	if err := s.validator.Struct(patch); err != nil {
		return models.UniformItem{}, validationError(err, "invalid uniform item payload")
	}
	item, err := s.uniforms.UpdateItem(ctx, gender, season, id, patch)
	if err != nil {
		return models.UniformItem{}, repositoryError(err, "uniform item not found")
	}
	return item, nil
}

// DeleteUniformItem removes an item.
func (s *ContentService) DeleteUniformItem(ctx context.Context, gender models.UniformGender, season models.UniformSeason, id int64) error {
	return repositoryError(s.uniforms.DeleteItem(ctx, gender, season, id), "uniform item not found")
}
