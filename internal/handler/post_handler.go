package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pips-site-api/internal/middleware"
	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/internal/service"
	"github.com/noah-isme/pips-site-api/pkg/response"
)

type postService interface {
	List(ctx context.Context, filter models.PostFilter) ([]models.Post, *models.Pagination, error)
	ByType(ctx context.Context, t models.PostType) ([]models.Post, error)
	Featured(ctx context.Context) []models.Post
	Recent(ctx context.Context, limit int) []models.Post
	Get(ctx context.Context, id int64) (models.Post, error)
	Search(ctx context.Context, q string) ([]models.Post, error)
	Create(ctx context.Context, req models.CreatePostRequest) (models.Post, error)
	Update(ctx context.Context, id int64, req models.UpdatePostRequest) (models.Post, error)
	Delete(ctx context.Context, id int64) error
	Like(ctx context.Context, id int64) (models.Post, error)
	Unlike(ctx context.Context, id int64) (models.Post, error)
	AddComment(ctx context.Context, id int64, req models.CommentRequest) (models.Comment, error)
	Share(ctx context.Context, id int64, pageURL string) (models.PostShare, error)
	Carousel(ctx context.Context, index int, action string) (service.CarouselResponse, error)
}

// PostHandler exposes the news feed.
type PostHandler struct {
	service postService
	baseURL string
}

// NewPostHandler constructs a post handler. baseURL builds share links when
// the client does not send its own page URL.
func NewPostHandler(svc postService, baseURL string) *PostHandler {
	return &PostHandler{service: svc, baseURL: strings.TrimRight(baseURL, "/")}
}

// List godoc
// @Summary List posts
// @Tags Posts
// @Produce json
// @Param type query string false "news, event, announcement or achievement"
// @Param category query string false "Category"
// @Param page query int false "Page"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	filter := models.PostFilter{
		Type:     models.PostType(c.Query("type")),
		Category: c.Query("category"),
		Page:     intQuery(c, "page", 1),
		PageSize: intQuery(c, "pageSize", 0),
	}
	posts, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMeta(c, "total_pages", pagination.TotalPages())
	response.JSON(c, http.StatusOK, posts, pagination, middleware.ExtractMeta(c))
}

// ByType godoc
// @Summary Posts of one type
// @Tags Posts
// @Produce json
// @Param type path string true "news, event, announcement or achievement"
// @Success 200 {object} response.Envelope
// @Router /posts/types/{type} [get]
func (h *PostHandler) ByType(c *gin.Context) {
	posts, err := h.service.ByType(c.Request.Context(), models.PostType(c.Param("type")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, posts, nil)
}

// Featured godoc
// @Summary Featured posts
// @Tags Posts
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /posts/featured [get]
func (h *PostHandler) Featured(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Featured(c.Request.Context()), nil)
}

// Carousel godoc
// @Summary Featured posts carousel view
// @Tags Posts
// @Produce json
// @Param index query int false "Slide index"
// @Param action query string false "next, prev or goto"
// @Success 200 {object} response.Envelope
// @Router /posts/featured/carousel [get]
func (h *PostHandler) Carousel(c *gin.Context) {
	view, err := h.service.Carousel(c.Request.Context(), intQuery(c, "index", 0), c.Query("action"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Recent godoc
// @Summary Most recent posts
// @Tags Posts
// @Produce json
// @Param limit query int false "Number of posts, default 5"
// @Success 200 {object} response.Envelope
// @Router /posts/recent [get]
func (h *PostHandler) Recent(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Recent(c.Request.Context(), intQuery(c, "limit", 0)), nil)
}

// Search godoc
// @Summary Search posts
// @Tags Posts
// @Produce json
// @Param q query string true "Query"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /posts/search [get]
func (h *PostHandler) Search(c *gin.Context) {
	posts, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, posts, nil)
}

// Get godoc
// @Summary Get a post
// @Description Returns the post and counts the view
// @Tags Posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	post, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, post, nil)
}

// Create godoc
// @Summary Publish a post
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CreatePostRequest true "Post"
// @Success 201 {object} response.Envelope
// @Router /admin/posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid post payload"))
		return
	}
	post, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

// Update godoc
// @Summary Update a post
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param payload body models.UpdatePostRequest true "Patch"
// @Success 200 {object} response.Envelope
// @Router /admin/posts/{id} [patch]
func (h *PostHandler) Update(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid post payload"))
		return
	}
	post, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, post, nil)
}

// Delete godoc
// @Summary Delete a post
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 204
// @Router /admin/posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Like godoc
// @Summary Like a post
// @Tags Posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} response.Envelope
// @Router /posts/{id}/like [post]
func (h *PostHandler) Like(c *gin.Context) {
	h.adjustLikes(c, h.service.Like)
}

// Unlike godoc
// @Summary Remove a like
// @Tags Posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} response.Envelope
// @Router /posts/{id}/like [delete]
func (h *PostHandler) Unlike(c *gin.Context) {
	h.adjustLikes(c, h.service.Unlike)
}

func (h *PostHandler) adjustLikes(c *gin.Context, fn func(context.Context, int64) (models.Post, error)) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	post, err := fn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"id": post.ID, "likes": post.Likes}, nil)
}

// AddComment godoc
// @Summary Comment on a post
// @Tags Posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param payload body models.CommentRequest true "Comment"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /posts/{id}/comments [post]
func (h *PostHandler) AddComment(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid comment payload"))
		return
	}
	comment, err := h.service.AddComment(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comment)
}

// Share godoc
// @Summary Share text for a post
// @Tags Posts
// @Produce json
// @Param id path int true "Post ID"
// @Param url query string false "Page URL being shared"
// @Success 200 {object} response.Envelope
// @Router /posts/{id}/share [get]
func (h *PostHandler) Share(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	pageURL := c.Query("url")
	if pageURL == "" {
		pageURL = fmt.Sprintf("%s/index.html#post-%d", h.baseURL, id)
	}
	share, err := h.service.Share(c.Request.Context(), id, pageURL)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, share, nil)
}
