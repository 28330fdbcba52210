package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/models/dto"
	"github.com/yigit/madrasah/internal/app/services"
	"github.com/yigit/madrasah/internal/middleware"
	"github.com/yigit/madrasah/internal/pkg/helpers"
)

// NewsController handles news articles
type NewsController struct {
	newsService services.NewsService
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService services.NewsService) *NewsController {
	return &NewsController{newsService: newsService}
}

// List returns articles, newest first
// @Summary List news articles
// @Tags news
// @Produce json
// @Param published query bool false "Only published (true) or unpublished (false) articles"
// @Success 200 {array} models.NewsArticle
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch news"
// @Router /news [get]
func (c *NewsController) List(ctx *gin.Context) {
	filter := models.NewsFilter{Published: helpers.BoolQuery(ctx, "published")}

	articles, err := c.newsService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch news")
		return
	}
	ctx.JSON(http.StatusOK, articles)
}

// Get returns one article
// @Summary Get a news article
// @Tags news
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} models.NewsArticle
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch news"
// @Router /news/{id} [get]
func (c *NewsController) Get(ctx *gin.Context) {
	article, err := c.newsService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch news")
		return
	}
	ctx.JSON(http.StatusOK, article)
}

// Create adds an article
// @Summary Create a news article
// @Tags news
// @Accept json
// @Produce json
// @Param request body models.NewsArticleInput true "Article"
// @Success 200 {object} dto.ArticleResponse "Article created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security SessionCookie
// @Router /news [post]
func (c *NewsController) Create(ctx *gin.Context) {
	var in models.NewsArticleInput
	if err := middleware.BindJSON(ctx, &in); err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}

	article, err := c.newsService.Create(ctx.Request.Context(), &in)
	if err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}
	ctx.JSON(http.StatusOK, dto.ArticleResponse{Success: true, Message: "Article created successfully", Article: article})
}

// Update changes the supplied fields of an article
// @Summary Update a news article
// @Tags news
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param request body models.NewsArticleInput true "Fields to change"
// @Success 200 {object} dto.ArticleResponse "Article updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security SessionCookie
// @Router /news/{id} [put]
func (c *NewsController) Update(ctx *gin.Context) {
	var in models.NewsArticleInput
	if err := middleware.BindJSON(ctx, &in); err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}

	article, err := c.newsService.Update(ctx.Request.Context(), ctx.Param("id"), &in)
	if err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}
	ctx.JSON(http.StatusOK, dto.ArticleResponse{Success: true, Message: "Article updated successfully", Article: article})
}

// Delete removes an article
// @Summary Delete a news article
// @Tags news
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} dto.MessageResponse "Article deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete article"
// @Security SessionCookie
// @Router /news/{id} [delete]
func (c *NewsController) Delete(ctx *gin.Context) {
	if err := c.newsService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to delete article")
		return
	}
	ctx.JSON(http.StatusOK, dto.Success("Article deleted successfully"))
}
