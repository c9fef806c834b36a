package httpadapter

import (
	"context"
	"log/slog"

	"newsdesk/contexts/publishing/article-service/application"
	"newsdesk/contexts/publishing/article-service/domain/entities"
	"newsdesk/contexts/publishing/article-service/ports"
	httptransport "newsdesk/contexts/publishing/article-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// ListArticlesHandler godoc
// @Summary List visible articles
// @Description Newest first. Drafts appear only to their author and admins. All filters are optional.
// @Tags articles
// @Produce json
// @Param X-User-Id header string false "Caller"
// @Param section query string false "Section id"
// @Param subsection query string false "Subsection id"
// @Param tag query string false "Tag"
// @Param q query string false "Free-text query"
// @Success 200 {object} httptransport.ListArticlesResponse
// @Router /articles [get]
func (h Handler) ListArticlesHandler(ctx context.Context, actorID string, filter ports.ListFilter) (httptransport.ListArticlesResponse, error) {
	articles, err := h.Service.ListVisible(ctx, actorID, filter)
	if err != nil {
		return httptransport.ListArticlesResponse{}, err
	}
	items := make([]httptransport.ArticleDTO, 0, len(articles))
	for _, article := range articles {
		items = append(items, mapArticle(article))
	}
	return httptransport.ListArticlesResponse{Items: items}, nil
}

// GetArticleHandler godoc
// @Summary Fetch one article
// @Tags articles
// @Produce json
// @Param X-User-Id header string false "Caller"
// @Param id path string true "Article id"
// @Success 200 {object} httptransport.ArticleDTO
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /articles/{id} [get]
func (h Handler) GetArticleHandler(ctx context.Context, actorID string, articleID string) (httptransport.ArticleDTO, error) {
	article, err := h.Service.Get(ctx, actorID, articleID)
	if err != nil {
		return httptransport.ArticleDTO{}, err
	}
	return mapArticle(article), nil
}

// CreateArticleHandler godoc
// @Summary Create an article
// @Description Publishing notifies every other registered user atomically with the write.
// @Tags articles
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Author"
// @Param request body httptransport.ArticleRequest true "Article"
// @Success 200 {object} httptransport.ArticleDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /articles [post]
func (h Handler) CreateArticleHandler(ctx context.Context, actorID string, req httptransport.ArticleRequest) (httptransport.ArticleDTO, error) {
	article, err := h.Service.Create(ctx, actorID, mapInput(req))
	if err != nil {
		return httptransport.ArticleDTO{}, err
	}
	return mapArticle(article), nil
}

// UpdateArticleHandler godoc
// @Summary Update an article
// @Description Moving a draft to published triggers the one-time notification fan-out.
// @Tags articles
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Caller"
// @Param id path string true "Article id"
// @Param request body httptransport.ArticleRequest true "Article"
// @Success 200 {object} httptransport.ArticleDTO
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /articles/{id} [put]
func (h Handler) UpdateArticleHandler(ctx context.Context, actorID string, articleID string, req httptransport.ArticleRequest) (httptransport.ArticleDTO, error) {
	article, err := h.Service.Update(ctx, actorID, articleID, mapInput(req))
	if err != nil {
		return httptransport.ArticleDTO{}, err
	}
	return mapArticle(article), nil
}

// DeleteArticleHandler godoc
// @Summary Delete an article
// @Description Removes the article together with its comments and related notifications.
// @Tags articles
// @Param X-User-Id header string true "Caller"
// @Param id path string true "Article id"
// @Success 204
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /articles/{id} [delete]
func (h Handler) DeleteArticleHandler(ctx context.Context, actorID string, articleID string) error {
	return h.Service.Delete(ctx, actorID, articleID)
}

// ListTagsHandler godoc
// @Summary List distinct tags
// @Tags articles
// @Produce json
// @Success 200 {object} httptransport.ListTagsResponse
// @Router /tags [get]
func (h Handler) ListTagsHandler(ctx context.Context) (httptransport.ListTagsResponse, error) {
	tags, err := h.Service.ListTags(ctx)
	if err != nil {
		return httptransport.ListTagsResponse{}, err
	}
	return httptransport.ListTagsResponse{Items: tags}, nil
}

func mapInput(req httptransport.ArticleRequest) ports.ArticleInput {
	attachments := make([]ports.AttachmentInput, 0, len(req.Attachments))
	for _, a := range req.Attachments {
		attachments = append(attachments, ports.AttachmentInput{
			Filename: a.Filename,
			MimeType: a.MimeType,
			Data:     a.Data,
		})
	}
	return ports.ArticleInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		SectionID:     req.SectionID,
		SubsectionID:  req.SubsectionID,
		ImageURL:      req.ImageURL,
		AllowComments: req.AllowComments,
		Status:        req.Status,
		Tags:          req.Tags,
		Attachments:   attachments,
	}
}

func mapArticle(article entities.Article) httptransport.ArticleDTO {
	dto := httptransport.ArticleDTO{
		ID:            article.ID,
		Title:         article.Title,
		Content:       article.Content,
		Excerpt:       article.Excerpt,
		SectionID:     article.SectionID,
		SubsectionID:  article.SubsectionID,
		AuthorID:      article.AuthorID,
		AuthorName:    article.AuthorName,
		Timestamp:     article.Timestamp,
		ImageURL:      article.ImageURL,
		AllowComments: article.AllowComments,
		Status:        article.Status,
		Tags:          article.Tags,
	}
	for _, a := range article.Attachments {
		dto.Attachments = append(dto.Attachments, httptransport.AttachmentDTO{
			ID:       a.ID,
			Filename: a.Filename,
			MimeType: a.MimeType,
			Data:     a.Data,
		})
	}
	return dto
}
