package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"newsdesk/contexts/publishing/comment-service/domain/entities"
	domainerrors "newsdesk/contexts/publishing/comment-service/domain/errors"
	"newsdesk/contexts/publishing/comment-service/ports"
	"newsdesk/contracts/accesspolicy"
)

type Service struct {
	Repo      ports.Repository
	Directory ports.Directory
	IDs       ports.IDGenerator
	Clock     ports.Clock
	Logger    *slog.Logger
}

// Post adds a comment or reply. The article author is notified of every
// comment by someone else and the parent's author of replies; a reply to
// a comment the article author wrote yields both rows.
func (s Service) Post(ctx context.Context, actorID string, articleID string, input ports.PostCommentInput) (entities.Comment, error) {
	actor, err := s.requireCommenter(ctx, actorID)
	if err != nil {
		return entities.Comment{}, err
	}
	article, err := s.visibleArticle(ctx, &actor, articleID)
	if err != nil {
		return entities.Comment{}, err
	}
	if !article.AllowComments {
		return entities.Comment{}, domainerrors.ErrCommentsDisabled
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return entities.Comment{}, domainerrors.ErrContentRequired
	}

	var parent entities.Comment
	if input.ParentID != "" {
		found := false
		parent, found, err = s.Repo.GetComment(ctx, input.ParentID)
		if err != nil {
			return entities.Comment{}, err
		}
		if !found {
			return entities.Comment{}, domainerrors.ErrParentNotFound
		}
		if parent.ArticleID != articleID {
			return entities.Comment{}, domainerrors.ErrParentMismatch
		}
	}

	id, err := s.IDs.NewID(ctx)
	if err != nil {
		return entities.Comment{}, err
	}
	comment := entities.Comment{
		ID:           id,
		ArticleID:    articleID,
		ParentID:     input.ParentID,
		AuthorID:     actor.ID,
		AuthorName:   actor.Name,
		AuthorAvatar: actor.Avatar,
		Content:      content,
		Timestamp:    s.Clock.Now(),
	}
	notifications, err := s.fanOut(ctx, actor, article, comment, parent)
	if err != nil {
		return entities.Comment{}, err
	}
	if err := s.Repo.CreateComment(ctx, ports.CreateCommentInput{
		Comment:       comment,
		Notifications: notifications,
	}); err != nil {
		return entities.Comment{}, err
	}

	resolveLogger(s.Logger).Info("comment posted",
		"event", "comments_posted",
		"module", "publishing/comment-service",
		"layer", "application",
		"comment_id", comment.ID,
		"article_id", articleID,
		"notified", len(notifications),
	)
	return comment, nil
}

// Delete removes a comment and its whole reply subtree. Allowed for
// admins and editors of the article's section only.
func (s Service) Delete(ctx context.Context, actorID string, commentID string) error {
	if strings.TrimSpace(actorID) == "" {
		return domainerrors.ErrForbidden
	}
	actor, found, err := s.Directory.GetActor(ctx, actorID)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrForbidden
	}
	comment, found, err := s.Repo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrCommentNotFound
	}
	article, found, err := s.Repo.GetArticleSnapshot(ctx, comment.ArticleID)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrArticleNotFound
	}
	grants, err := s.Directory.GrantSet(ctx, actorID)
	if err != nil {
		return err
	}
	ref := accesspolicy.ArticleRef{
		AuthorID:  article.AuthorID,
		SectionID: article.SectionID,
		Published: article.Published,
	}
	if !accesspolicy.CanModerateComment(&actor, ref, grants) {
		return domainerrors.ErrForbidden
	}
	if err := s.Repo.DeleteCommentSubtree(ctx, commentID); err != nil {
		return err
	}
	resolveLogger(s.Logger).Info("comment deleted",
		"event", "comments_deleted",
		"module", "publishing/comment-service",
		"layer", "application",
		"comment_id", commentID,
		"article_id", comment.ArticleID,
	)
	return nil
}

// ListByArticle returns an article's comments oldest first, subject to
// the same visibility rule as the article itself.
func (s Service) ListByArticle(ctx context.Context, actorID string, articleID string) ([]entities.Comment, error) {
	var actor *accesspolicy.Actor
	if strings.TrimSpace(actorID) != "" {
		resolved, found, err := s.Directory.GetActor(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if found {
			actor = &resolved
		}
	}
	if _, err := s.visibleArticle(ctx, actor, articleID); err != nil {
		return nil, err
	}
	return s.Repo.ListComments(ctx, articleID)
}

func (s Service) fanOut(ctx context.Context, actor accesspolicy.Actor, article ports.ArticleSnapshot, comment entities.Comment, parent entities.Comment) ([]ports.NotificationRecord, error) {
	var records []ports.NotificationRecord
	if comment.ParentID != "" && parent.AuthorID != actor.ID {
		id, err := s.IDs.NewID(ctx)
		if err != nil {
			return nil, err
		}
		records = append(records, ports.NotificationRecord{
			ID:        id,
			UserID:    parent.AuthorID,
			Type:      ports.NotificationCommentReply,
			Message:   fmt.Sprintf("%s replied to your comment on %q", actor.Name, article.Title),
			ArticleID: article.ID,
			Timestamp: comment.Timestamp,
		})
	}
	if article.AuthorID != actor.ID {
		id, err := s.IDs.NewID(ctx)
		if err != nil {
			return nil, err
		}
		records = append(records, ports.NotificationRecord{
			ID:        id,
			UserID:    article.AuthorID,
			Type:      ports.NotificationCommentOnArticle,
			Message:   fmt.Sprintf("%s commented on %q", actor.Name, article.Title),
			ArticleID: article.ID,
			Timestamp: comment.Timestamp,
		})
	}
	return records, nil
}

func (s Service) requireCommenter(ctx context.Context, actorID string) (accesspolicy.Actor, error) {
	if strings.TrimSpace(actorID) == "" {
		return accesspolicy.Actor{}, domainerrors.ErrForbidden
	}
	actor, found, err := s.Directory.GetActor(ctx, actorID)
	if err != nil {
		return accesspolicy.Actor{}, err
	}
	if !found || !accesspolicy.CanComment(&actor) {
		return accesspolicy.Actor{}, domainerrors.ErrForbidden
	}
	return actor, nil
}

// visibleArticle hides drafts from everyone but their author and admins,
// reading as not found so existence does not leak.
func (s Service) visibleArticle(ctx context.Context, actor *accesspolicy.Actor, articleID string) (ports.ArticleSnapshot, error) {
	article, found, err := s.Repo.GetArticleSnapshot(ctx, articleID)
	if err != nil {
		return ports.ArticleSnapshot{}, err
	}
	if !found {
		return ports.ArticleSnapshot{}, domainerrors.ErrArticleNotFound
	}
	ref := accesspolicy.ArticleRef{
		AuthorID:  article.AuthorID,
		SectionID: article.SectionID,
		Published: article.Published,
	}
	if !accesspolicy.CanViewArticle(actor, ref) {
		return ports.ArticleSnapshot{}, domainerrors.ErrArticleNotFound
	}
	return article, nil
}
