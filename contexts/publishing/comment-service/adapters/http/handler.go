package httpadapter

import (
	"context"
	"log/slog"

	"newsdesk/contexts/publishing/comment-service/application"
	"newsdesk/contexts/publishing/comment-service/domain/entities"
	"newsdesk/contexts/publishing/comment-service/ports"
	httptransport "newsdesk/contexts/publishing/comment-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// ListCommentsHandler godoc
// @Summary List an article's comments
// @Description Oldest first; threads are rebuilt client-side from parent_id.
// @Tags comments
// @Produce json
// @Param X-User-Id header string false "Caller"
// @Param id path string true "Article id"
// @Success 200 {object} httptransport.ListCommentsResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /articles/{id}/comments [get]
func (h Handler) ListCommentsHandler(ctx context.Context, actorID string, articleID string) (httptransport.ListCommentsResponse, error) {
	comments, err := h.Service.ListByArticle(ctx, actorID, articleID)
	if err != nil {
		return httptransport.ListCommentsResponse{}, err
	}
	items := make([]httptransport.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		items = append(items, mapComment(comment))
	}
	return httptransport.ListCommentsResponse{Items: items}, nil
}

// PostCommentHandler godoc
// @Summary Post a comment or reply
// @Description Notifies the article author and, for replies, the parent comment's author.
// @Tags comments
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Commenter"
// @Param id path string true "Article id"
// @Param request body httptransport.PostCommentRequest true "Comment"
// @Success 200 {object} httptransport.CommentDTO
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 422 {object} httptransport.ErrorResponse
// @Router /articles/{id}/comments [post]
func (h Handler) PostCommentHandler(ctx context.Context, actorID string, articleID string, req httptransport.PostCommentRequest) (httptransport.CommentDTO, error) {
	comment, err := h.Service.Post(ctx, actorID, articleID, ports.PostCommentInput{
		Content:  req.Content,
		ParentID: req.ParentID,
	})
	if err != nil {
		return httptransport.CommentDTO{}, err
	}
	return mapComment(comment), nil
}

// DeleteCommentHandler godoc
// @Summary Delete a comment subtree
// @Description Removes the comment and every transitive reply.
// @Tags comments
// @Param X-User-Id header string true "Moderator"
// @Param id path string true "Comment id"
// @Success 204
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /comments/{id} [delete]
func (h Handler) DeleteCommentHandler(ctx context.Context, actorID string, commentID string) error {
	return h.Service.Delete(ctx, actorID, commentID)
}

func mapComment(comment entities.Comment) httptransport.CommentDTO {
	return httptransport.CommentDTO{
		ID:           comment.ID,
		ArticleID:    comment.ArticleID,
		ParentID:     comment.ParentID,
		AuthorID:     comment.AuthorID,
		AuthorName:   comment.AuthorName,
		AuthorAvatar: comment.AuthorAvatar,
		Content:      comment.Content,
		Timestamp:    comment.Timestamp,
	}
}
