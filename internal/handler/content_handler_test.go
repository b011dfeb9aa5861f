package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/internal/service"
	"github.com/noah-isme/pips-site-api/internal/widget"
	appErrors "github.com/noah-isme/pips-site-api/pkg/errors"
)

type contentServiceStub struct {
	err error

	accordionArgs []interface{}

	savedContact models.ContactInfo
	deletedImage int64
	lightboxArgs []interface{}
	tab          string
	modalKind    string
	noticeCat    models.NoticeCategory
	noticeReq    models.NoticeItemRequest
	uniformGroup [2]string
	uniformID    int64
	uniformPatch models.UniformItemPatch
}

func (s *contentServiceStub) Contact(ctx context.Context) models.ContactInfo {
	return models.ContactInfo{Email: "info@example.com"}
}

func (s *contentServiceStub) SaveContact(ctx context.Context, info models.ContactInfo) (models.ContactInfo, error) {
	s.savedContact = info
	return info, s.err
}

func (s *contentServiceStub) Gallery(ctx context.Context) []models.GalleryImage {
	return []models.GalleryImage{{ID: 1, Src: "a.jpg"}}
}

func (s *contentServiceStub) AddImage(ctx context.Context, req models.GalleryImageRequest) (models.GalleryImage, error) {
	return models.GalleryImage{ID: 9, Src: req.Src, Alt: req.Alt}, s.err
}

func (s *contentServiceStub) DeleteImage(ctx context.Context, id int64) error {
	s.deletedImage = id
	return s.err
}

func (s *contentServiceStub) Lightbox(ctx context.Context, index int, action string) (service.LightboxResponse, error) {
	s.lightboxArgs = []interface{}{index, action}
	return service.LightboxResponse{LightboxView: widget.LightboxView{Index: index, Open: true}}, s.err
}

func (s *contentServiceStub) Accordion(items, open []string, action, id string) (service.AccordionView, error) {
	s.accordionArgs = []interface{}{items, open, action, id}
	return service.AccordionView{Open: open}, s.err
}

func (s *contentServiceStub) Notices(ctx context.Context, tab string) (service.NoticeBoardView, error) {
	s.tab = tab
	return service.NoticeBoardView{}, s.err
}

func (s *contentServiceStub) NoticeModal(ctx context.Context, kind string) (widget.NoticeModalView, error) {
	s.modalKind = kind
	return widget.NoticeModalView{Title: "School Updates"}, s.err
}

func (s *contentServiceStub) SaveNotices(ctx context.Context, board models.NoticeBoard) (models.NoticeBoard, error) {
	return board, s.err
}

func (s *contentServiceStub) AddNotice(ctx context.Context, category models.NoticeCategory, req models.NoticeItemRequest) (models.NoticeItem, error) {
	s.noticeCat = category
	s.noticeReq = req
	return models.NoticeItem{ID: 5, Text: req.Text}, s.err
}

func (s *contentServiceStub) DeleteNotice(ctx context.Context, category models.NoticeCategory, id int64) error {
	s.noticeCat = category
	return s.err
}

func (s *contentServiceStub) Uniforms(ctx context.Context) models.UniformShop {
	return models.UniformShop{}
}

func (s *contentServiceStub) AddUniformItem(ctx context.Context, gender models.UniformGender, season models.UniformSeason, req models.UniformItemRequest) (models.UniformItem, error) {
	s.uniformGroup = [2]string{string(gender), string(season)}
	return models.UniformItem{ID: 3, Name: req.Name, Price: req.Price}, s.err
}

func (s *contentServiceStub) UpdateUniformItem(ctx context.Context, gender models.UniformGender, season models.UniformSeason, id int64, patch models.UniformItemPatch) (models.UniformItem, error) {
	s.uniformGroup = [2]string{string(gender), string(season)}
	s.uniformID = id
	s.uniformPatch = patch
	return models.UniformItem{ID: id}, s.err
}

func (s *contentServiceStub) DeleteUniformItem(ctx context.Context, gender models.UniformGender, season models.UniformSeason, id int64) error {
	s.uniformID = id
	return s.err
}

func TestContentHandlerPublicReads(t *testing.T) {
	svc := &contentServiceStub{}
	h := NewContentHandler(svc)

	c, w := newContext(http.MethodGet, "/contact", "")
	h.Contact(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	var info models.ContactInfo
	decode(t, w, &info)
	assert.Equal(t, "info@example.com", info.Email)

	c, w = newContext(http.MethodGet, "/gallery/lightbox?index=4&action=next", "")
	h.Lightbox(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{4, "next"}, svc.lightboxArgs)

	c, w = newContext(http.MethodGet, "/notices?tab=news", "")
	h.Notices(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "news", svc.tab)

	c, w = newContext(http.MethodGet, "/notices/modal", "")
	h.NoticeModal(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "all", svc.modalKind)
}

func TestContentHandlerLightboxBadAction(t *testing.T) {
	h := NewContentHandler(&contentServiceStub{err: appErrors.Clone(appErrors.ErrValidation, "bad action")})
	c, w := newContext(http.MethodGet, "/gallery/lightbox?action=spin", "")
	h.Lightbox(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContentHandlerAdminWrites(t *testing.T) {
	svc := &contentServiceStub{}
	h := NewContentHandler(svc)

	c, w := newContext(http.MethodPut, "/admin/contact", `{"email":"office@example.com","phone":"031 701 1234"}`)
	h.SaveContact(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "office@example.com", svc.savedContact.Email)

	c, w = newContext(http.MethodPost, "/admin/gallery", `{"src":"b.jpg","alt":"Sports day"}`)
	h.AddImage(c)
	require.Equal(t, http.StatusCreated, w.Code)

	c, w = newContext(http.MethodDelete, "/admin/gallery/12", "", "id", "12")
	h.DeleteImage(c)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, int64(12), svc.deletedImage)

	c, w = newContext(http.MethodPost, "/admin/notices/events", `{"text":"Sports day on Friday"}`, "category", "events")
	h.AddNotice(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.NoticeEvents, svc.noticeCat)
	assert.Equal(t, "Sports day on Friday", svc.noticeReq.Text)

	c, w = newContext(http.MethodPatch, "/admin/uniforms/boys/winter/7", `{"price":125.5}`, "gender", "boys", "season", "winter", "id", "7")
	h.UpdateUniformItem(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, [2]string{"boys", "winter"}, svc.uniformGroup)
	assert.Equal(t, int64(7), svc.uniformID)
	require.NotNil(t, svc.uniformPatch.Price)
	assert.Equal(t, 125.5, *svc.uniformPatch.Price)
	assert.Nil(t, svc.uniformPatch.Name)
}

func TestContentHandlerRejectsBadIDs(t *testing.T) {
	h := NewContentHandler(&contentServiceStub{})

	c, w := newContext(http.MethodDelete, "/admin/gallery/abc", "", "id", "abc")
	h.DeleteImage(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = newContext(http.MethodDelete, "/admin/uniforms/boys/summer/0", "", "gender", "boys", "season", "summer", "id", "0")
	h.DeleteUniformItem(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContentHandlerNotFound(t *testing.T) {
	h := NewContentHandler(&contentServiceStub{err: appErrors.Clone(appErrors.ErrNotFound, "notice not found")})
	c, w := newContext(http.MethodDelete, "/admin/notices/news/99", "", "category", "news", "id", "99")
	h.DeleteNotice(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContentHandlerAccordion(t *testing.T) {
	svc := &contentServiceStub{}
	h := NewContentHandler(svc)

	c, w := newContext(http.MethodGet, "/faq/accordion?items=1,2,%203&open=2&action=toggle&id=3", "")
	h.Accordion(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{[]string{"1", "2", "3"}, []string{"2"}, "toggle", "3"}, svc.accordionArgs)

	c, w = newContext(http.MethodGet, "/faq/accordion", "")
	h.Accordion(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
