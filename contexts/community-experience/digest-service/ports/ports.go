package ports

import (
	"context"
	"time"

	"newsdesk/contexts/community-experience/digest-service/domain/entities"
	"newsdesk/contracts/accesspolicy"
)

type Clock interface {
	Now() time.Time
}

// Directory resolves caller identity from the identity-access context
// without importing it.
type Directory interface {
	GetActor(ctx context.Context, userID string) (accesspolicy.Actor, bool, error)
}

// Mailer delivers one message with the given settings. Implementations
// must not retain the settings between calls; the stored configuration
// can change at any time.
type Mailer interface {
	Send(ctx context.Context, settings entities.MailSettings, to string, subject string, htmlBody string) error
}

// DigestRecipient joins an enabled preference with the owner's address.
type DigestRecipient struct {
	UserID     string
	Email      string
	Name       string
	Frequency  string
	LastSentAt time.Time
}

// DigestArticle is the slice of article state a digest renders.
type DigestArticle struct {
	ID         string
	Title      string
	Excerpt    string
	AuthorName string
	Timestamp  time.Time
}

// Repository is the persistence boundary of the digest service.
type Repository interface {
	GetDigestPreference(ctx context.Context, userID string) (entities.DigestPreference, bool, error)
	UpsertDigestPreference(ctx context.Context, preference entities.DigestPreference) error
	GetMailSettings(ctx context.Context) (entities.MailSettings, bool, error)
	SaveMailSettings(ctx context.Context, settings entities.MailSettings) error
	// ListDigestRecipients returns every enabled preference joined with
	// the owner's email; users without an address are excluded.
	ListDigestRecipients(ctx context.Context) ([]DigestRecipient, error)
	// ListPublishedSince returns published articles with a timestamp at or
	// after since, newest first.
	ListPublishedSince(ctx context.Context, since time.Time) ([]DigestArticle, error)
	RecordDigestSent(ctx context.Context, userID string, at time.Time) error
}
