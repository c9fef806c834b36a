package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"newsdesk/contexts/publishing/article-service/domain/entities"
	domainerrors "newsdesk/contexts/publishing/article-service/domain/errors"
	domainservices "newsdesk/contexts/publishing/article-service/domain/services"
	"newsdesk/contexts/publishing/article-service/ports"
	"newsdesk/contracts/accesspolicy"
)

const defaultExcerpt = "No excerpt provided."

type Service struct {
	Repo      ports.Repository
	Directory ports.Directory
	Sanitizer ports.Sanitizer
	IDs       ports.IDGenerator
	Clock     ports.Clock
	Logger    *slog.Logger
}

// Create stores a new article. When the article lands as published, one
// notification row per registered user (minus the author) is persisted in
// the same write.
func (s Service) Create(ctx context.Context, actorID string, input ports.ArticleInput) (entities.Article, error) {
	actor, grants, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return entities.Article{}, err
	}
	if !accesspolicy.CanEditSection(actor, input.SectionID, grants) {
		return entities.Article{}, domainerrors.ErrForbidden
	}
	article, err := s.buildArticle(ctx, input)
	if err != nil {
		return entities.Article{}, err
	}
	id, err := s.IDs.NewID(ctx)
	if err != nil {
		return entities.Article{}, err
	}
	article.ID = id
	article.AuthorID = actor.ID
	article.AuthorName = actor.Name
	article.Timestamp = s.Clock.Now()

	var notifications []ports.NotificationRecord
	if article.Published() {
		notifications, err = s.fanOut(ctx, article)
		if err != nil {
			return entities.Article{}, err
		}
	}
	if err := s.Repo.CreateArticle(ctx, ports.CreateArticleInput{
		Article:       article,
		Notifications: notifications,
	}); err != nil {
		return entities.Article{}, err
	}

	resolveLogger(s.Logger).Info("article created",
		"event", "articles_created",
		"module", "publishing/article-service",
		"layer", "application",
		"article_id", article.ID,
		"status", article.Status,
		"notified", len(notifications),
	)
	return article, nil
}

// Update replaces the stored article. The author snapshot and creation id
// are immutable; everything else comes from the input. Crossing the
// draft-to-published edge triggers the same fan-out as publishing on
// create, and only that edge does.
func (s Service) Update(ctx context.Context, actorID string, articleID string, input ports.ArticleInput) (entities.Article, error) {
	actor, grants, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return entities.Article{}, err
	}
	existing, found, err := s.Repo.GetArticle(ctx, articleID)
	if err != nil {
		return entities.Article{}, err
	}
	if !found {
		return entities.Article{}, domainerrors.ErrArticleNotFound
	}
	allowed := accesspolicy.IsAdmin(actor) ||
		existing.AuthorID == actor.ID ||
		accesspolicy.CanEditSection(actor, input.SectionID, grants)
	if !allowed {
		return entities.Article{}, domainerrors.ErrForbidden
	}

	article, err := s.buildArticle(ctx, input)
	if err != nil {
		return entities.Article{}, err
	}
	article.ID = existing.ID
	article.AuthorID = existing.AuthorID
	article.AuthorName = existing.AuthorName
	article.Timestamp = s.Clock.Now()

	var notifications []ports.NotificationRecord
	if !existing.Published() && article.Published() {
		notifications, err = s.fanOut(ctx, article)
		if err != nil {
			return entities.Article{}, err
		}
	}
	if err := s.Repo.UpdateArticle(ctx, ports.UpdateArticleInput{
		Article:       article,
		Notifications: notifications,
	}); err != nil {
		return entities.Article{}, err
	}

	resolveLogger(s.Logger).Info("article updated",
		"event", "articles_updated",
		"module", "publishing/article-service",
		"layer", "application",
		"article_id", article.ID,
		"status", article.Status,
		"notified", len(notifications),
	)
	return article, nil
}

// Delete removes the article with its comment tree and article-scoped
// notifications. Authors cannot delete their own article unless they also
// hold edit capability over its section.
func (s Service) Delete(ctx context.Context, actorID string, articleID string) error {
	actor, grants, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return err
	}
	existing, found, err := s.Repo.GetArticle(ctx, articleID)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrArticleNotFound
	}
	if !accesspolicy.CanEditSection(actor, existing.SectionID, grants) {
		return domainerrors.ErrForbidden
	}
	if err := s.Repo.DeleteArticleCascade(ctx, articleID); err != nil {
		return err
	}
	resolveLogger(s.Logger).Info("article deleted",
		"event", "articles_deleted",
		"module", "publishing/article-service",
		"layer", "application",
		"article_id", articleID,
	)
	return nil
}

// ListVisible returns the articles the caller may see, newest first:
// everything published, plus the caller's own drafts, plus all drafts for
// admins. Filters narrow the result after the visibility cut.
func (s Service) ListVisible(ctx context.Context, actorID string, filter ports.ListFilter) ([]entities.Article, error) {
	actor, err := s.optionalActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	all, err := s.Repo.ListArticles(ctx)
	if err != nil {
		return nil, err
	}
	visible := make([]entities.Article, 0, len(all))
	for _, article := range all {
		ref := accesspolicy.ArticleRef{
			AuthorID:  article.AuthorID,
			SectionID: article.SectionID,
			Published: article.Published(),
		}
		if !accesspolicy.CanViewArticle(actor, ref) {
			continue
		}
		if !matchesFilter(article, filter) {
			continue
		}
		visible = append(visible, article)
	}
	return visible, nil
}

// Get returns one article. Drafts hidden from the caller read as not
// found rather than forbidden so their existence does not leak.
func (s Service) Get(ctx context.Context, actorID string, articleID string) (entities.Article, error) {
	actor, err := s.optionalActor(ctx, actorID)
	if err != nil {
		return entities.Article{}, err
	}
	article, found, err := s.Repo.GetArticle(ctx, articleID)
	if err != nil {
		return entities.Article{}, err
	}
	if !found {
		return entities.Article{}, domainerrors.ErrArticleNotFound
	}
	ref := accesspolicy.ArticleRef{
		AuthorID:  article.AuthorID,
		SectionID: article.SectionID,
		Published: article.Published(),
	}
	if !accesspolicy.CanViewArticle(actor, ref) {
		return entities.Article{}, domainerrors.ErrArticleNotFound
	}
	return article, nil
}

// ListTags returns the distinct normalized tags across all articles.
func (s Service) ListTags(ctx context.Context) ([]string, error) {
	return s.Repo.ListTags(ctx)
}

func (s Service) buildArticle(ctx context.Context, input ports.ArticleInput) (entities.Article, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return entities.Article{}, domainerrors.ErrTitleRequired
	}
	status := input.Status
	if status == "" {
		status = entities.StatusPublished
	}
	if !entities.ValidStatus(status) {
		return entities.Article{}, domainerrors.ErrInvalidStatus
	}
	exists, err := s.Repo.SectionExists(ctx, input.SectionID)
	if err != nil {
		return entities.Article{}, err
	}
	if !exists {
		return entities.Article{}, domainerrors.ErrSectionNotFound
	}
	excerpt := strings.TrimSpace(input.Excerpt)
	if excerpt == "" {
		excerpt = defaultExcerpt
	}
	attachments := make([]entities.Attachment, 0, len(input.Attachments))
	for _, a := range input.Attachments {
		id, err := s.IDs.NewID(ctx)
		if err != nil {
			return entities.Article{}, err
		}
		attachments = append(attachments, entities.Attachment{
			ID:       id,
			Filename: a.Filename,
			MimeType: a.MimeType,
			Data:     a.Data,
		})
	}
	return entities.Article{
		Title:         title,
		Content:       s.Sanitizer.SanitizeHTML(input.Content),
		Excerpt:       excerpt,
		SectionID:     input.SectionID,
		SubsectionID:  input.SubsectionID,
		ImageURL:      input.ImageURL,
		AllowComments: input.AllowComments,
		Status:        status,
		Tags:          domainservices.NormalizeTagSet(input.Tags),
		Attachments:   attachments,
	}, nil
}

func (s Service) fanOut(ctx context.Context, article entities.Article) ([]ports.NotificationRecord, error) {
	recipients, err := s.Repo.ListRecipientIDs(ctx)
	if err != nil {
		return nil, err
	}
	message := fmt.Sprintf("%s published %q", article.AuthorName, article.Title)
	now := s.Clock.Now()
	records := make([]ports.NotificationRecord, 0, len(recipients))
	for _, userID := range recipients {
		if userID == article.AuthorID {
			continue
		}
		id, err := s.IDs.NewID(ctx)
		if err != nil {
			return nil, err
		}
		records = append(records, ports.NotificationRecord{
			ID:        id,
			UserID:    userID,
			Type:      ports.NotificationNewArticle,
			Message:   message,
			ArticleID: article.ID,
			Timestamp: now,
		})
	}
	return records, nil
}

func (s Service) resolveActor(ctx context.Context, actorID string) (*accesspolicy.Actor, accesspolicy.GrantSet, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, nil, domainerrors.ErrForbidden
	}
	actor, found, err := s.Directory.GetActor(ctx, actorID)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, domainerrors.ErrForbidden
	}
	grants, err := s.Directory.GrantSet(ctx, actorID)
	if err != nil {
		return nil, nil, err
	}
	return &actor, grants, nil
}

// optionalActor tolerates anonymous callers; a nil actor reads as the
// unauthenticated visitor.
func (s Service) optionalActor(ctx context.Context, actorID string) (*accesspolicy.Actor, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, nil
	}
	actor, found, err := s.Directory.GetActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &actor, nil
}

func matchesFilter(article entities.Article, filter ports.ListFilter) bool {
	if filter.SectionID != "" && article.SectionID != filter.SectionID {
		return false
	}
	if filter.SubsectionID != "" && article.SubsectionID != filter.SubsectionID {
		return false
	}
	if filter.Tag != "" && !containsTag(article.Tags, filter.Tag) {
		return false
	}
	if filter.Query != "" {
		query := strings.ToLower(filter.Query)
		haystack := strings.ToLower(article.Title + " " + article.Excerpt + " " + article.Content)
		if !strings.Contains(haystack, query) {
			return false
		}
	}
	return true
}

func containsTag(tags []string, tag string) bool {
	tag = domainservices.NormalizeTag(tag)
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
