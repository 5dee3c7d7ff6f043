package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prernajain1224/MHPS-Website/internal/dto"
	"github.com/prernajain1224/MHPS-Website/internal/models"
	appErrors "github.com/prernajain1224/MHPS-Website/pkg/errors"
	"github.com/prernajain1224/MHPS-Website/pkg/response"
)

type articleService interface {
	List(ctx context.Context, req dto.ArticleListRequest) ([]models.Article, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	Create(ctx context.Context, req dto.CreateArticleRequest) (*models.Article, error)
	Update(ctx context.Context, id string, req dto.UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, id string) error
}

// ArticleHandler exposes the article index and article endpoints.
type ArticleHandler struct {
	service articleService
}

// NewArticleHandler builds a new handler.
func NewArticleHandler(service articleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// List godoc
// @Summary List articles for an index page
// @Tags Articles
// @Produce json
// @Param id path string true "Article index page id"
// @Param article_type query string false "Article type filter"
// @Param featured query bool false "Featured filter"
// @Param page query string false "Page number"
// @Success 200 {object} response.Envelope
// @Router /articles/{id} [get]
func (h *ArticleHandler) List(c *gin.Context) {
	req := dto.ArticleListRequest{
		IndexID:     c.Param("id"),
		ArticleType: c.Query("article_type"),
		Featured:    c.Query("featured"),
		Page:        c.Query("page"),
	}
	articles, pagination, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := map[string]interface{}{
		"article_types": models.ArticleTypes,
	}
	response.JSON(c, http.StatusOK, articles, pagination, meta)
}

// Get godoc
// @Summary Get an article
// @Tags Articles
// @Produce json
// @Param id path string true "Article id"
// @Success 200 {object} response.Envelope
// @Router /articles/items/{id} [get]
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, article, nil)
}

// Create godoc
// @Summary Create an article
// @Tags Articles
// @Accept json
// @Produce json
// @Param payload body dto.CreateArticleRequest true "Article payload"
// @Success 201 {object} response.Envelope
// @Router /articles/items [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid article payload"))
		return
	}
	article, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, article)
}

// Update godoc
// @Summary Update an article
// @Tags Articles
// @Accept json
// @Produce json
// @Param id path string true "Article id"
// @Param payload body dto.UpdateArticleRequest true "Article payload"
// @Success 200 {object} response.Envelope
// @Router /articles/items/{id} [put]
func (h *ArticleHandler) Update(c *gin.Context) {
	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid article payload"))
		return
	}
	article, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, article, nil)
}

// Delete godoc
// @Summary Delete an article
// @Tags Articles
// @Param id path string true "Article id"
// @Success 204
// @Router /articles/items/{id} [delete]
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
