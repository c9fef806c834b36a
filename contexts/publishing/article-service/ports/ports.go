package ports

import (
	"context"
	"time"

	"newsdesk/contexts/publishing/article-service/domain/entities"
	"newsdesk/contracts/accesspolicy"
)

// Notification type emitted when an article transitions to published.
const NotificationNewArticle = "new_article"

// Clock abstracts wall-clock access for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator issues unique identifiers for articles, attachments and
// notification rows.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Sanitizer strips unsafe markup from author-supplied HTML before it is
// stored.
type Sanitizer interface {
	SanitizeHTML(raw string) string
}

// Directory resolves caller identity and section grants from the
// identity-access context without importing it.
type Directory interface {
	GetActor(ctx context.Context, userID string) (accesspolicy.Actor, bool, error)
	GrantSet(ctx context.Context, userID string) (accesspolicy.GrantSet, error)
}

// ArticleInput is the author-supplied payload for create and update.
type ArticleInput struct {
	Title         string
	Content       string
	Excerpt       string
	SectionID     string
	SubsectionID  string
	ImageURL      string
	AllowComments bool
	Status        string
	Tags          []string
	Attachments   []AttachmentInput
}

type AttachmentInput struct {
	Filename string
	MimeType string
	Data     string
}

// NotificationRecord is a fan-out row persisted atomically with the
// article write that produced it.
type NotificationRecord struct {
	ID        string
	UserID    string
	Type      string
	Message   string
	ArticleID string
	Timestamp time.Time
}

// CreateArticleInput carries the article together with the notification
// rows that must land in the same transaction.
type CreateArticleInput struct {
	Article       entities.Article
	Notifications []NotificationRecord
}

// UpdateArticleInput replaces the stored article wholesale; Notifications
// is non-empty only when the update crossed the draft-to-published edge.
type UpdateArticleInput struct {
	Article       entities.Article
	Notifications []NotificationRecord
}

// ListFilter narrows the visible article listing. Zero values mean no
// filtering on that axis.
type ListFilter struct {
	SectionID    string
	SubsectionID string
	Tag          string
	Query        string
}

// Repository is the persistence boundary of the article service.
type Repository interface {
	SectionExists(ctx context.Context, sectionID string) (bool, error)
	CreateArticle(ctx context.Context, input CreateArticleInput) error
	GetArticle(ctx context.Context, articleID string) (entities.Article, bool, error)
	// ListArticles returns every article ordered newest first; visibility
	// filtering happens in the application layer.
	ListArticles(ctx context.Context) ([]entities.Article, error)
	UpdateArticle(ctx context.Context, input UpdateArticleInput) error
	// DeleteArticleCascade removes the article together with its comments
	// and article-scoped notifications in one transaction.
	DeleteArticleCascade(ctx context.Context, articleID string) error
	ListTags(ctx context.Context) ([]string, error)
	// ListRecipientIDs returns the IDs of every registered user; the
	// service excludes the author before fanning out.
	ListRecipientIDs(ctx context.Context) ([]string, error)
}
