package ports

import (
	"context"
	"time"

	"newsdesk/contexts/publishing/comment-service/domain/entities"
	"newsdesk/contracts/accesspolicy"
)

// Notification types emitted by comment writes.
const (
	NotificationCommentOnArticle = "comment_on_article"
	NotificationCommentReply     = "comment_reply"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Directory resolves caller identity and section grants from the
// identity-access context without importing it.
type Directory interface {
	GetActor(ctx context.Context, userID string) (accesspolicy.Actor, bool, error)
	GrantSet(ctx context.Context, userID string) (accesspolicy.GrantSet, error)
}

// ArticleSnapshot is the slice of article state the comment rules need.
type ArticleSnapshot struct {
	ID            string
	Title         string
	AuthorID      string
	SectionID     string
	AllowComments bool
	Published     bool
}

type PostCommentInput struct {
	Content  string
	ParentID string
}

// NotificationRecord is a fan-out row persisted atomically with the
// comment that produced it.
type NotificationRecord struct {
	ID        string
	UserID    string
	Type      string
	Message   string
	ArticleID string
	Timestamp time.Time
}

// CreateCommentInput carries the comment together with the notification
// rows that must land in the same transaction.
type CreateCommentInput struct {
	Comment       entities.Comment
	Notifications []NotificationRecord
}

// Repository is the persistence boundary of the comment service.
type Repository interface {
	GetArticleSnapshot(ctx context.Context, articleID string) (ArticleSnapshot, bool, error)
	CreateComment(ctx context.Context, input CreateCommentInput) error
	GetComment(ctx context.Context, commentID string) (entities.Comment, bool, error)
	// ListComments returns an article's comments oldest first; callers
	// rebuild the thread from ParentID.
	ListComments(ctx context.Context, articleID string) ([]entities.Comment, error)
	// DeleteCommentSubtree removes the comment and every transitive reply
	// in one transaction.
	DeleteCommentSubtree(ctx context.Context, commentID string) error
}
