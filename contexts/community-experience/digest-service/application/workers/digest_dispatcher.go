package workers

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"newsdesk/contexts/community-experience/digest-service/domain/entities"
	"newsdesk/contexts/community-experience/digest-service/ports"
)

// DigestDispatcher periodically mails article digests to opted-in users.
// Each run is independent per recipient; one failed send is logged and
// skipped without aborting the rest of the run.
type DigestDispatcher struct {
	Repo   ports.Repository
	Mailer ports.Mailer
	Clock  ports.Clock
	Logger *slog.Logger
}

// RunOnce processes every due recipient exactly once. A recipient is due
// when their frequency period has elapsed since the last recorded send;
// recipients who never received a digest look back one full period.
func (d DigestDispatcher) RunOnce(ctx context.Context) error {
	settings, found, err := d.Repo.GetMailSettings(ctx)
	if err != nil {
		return err
	}
	if !found || !settings.Enabled {
		return nil
	}
	recipients, err := d.Repo.ListDigestRecipients(ctx)
	if err != nil {
		return err
	}
	now := d.Clock.Now()
	for _, recipient := range recipients {
		period := entities.FrequencyPeriod(recipient.Frequency)
		since := recipient.LastSentAt
		if since.IsZero() {
			since = now.Add(-period)
		} else if now.Sub(since) < period {
			continue
		}
		articles, err := d.Repo.ListPublishedSince(ctx, since)
		if err != nil {
			return err
		}
		if len(articles) == 0 {
			continue
		}
		subject, body := composeDigest(recipient, articles, recipient.Frequency)
		if err := d.Mailer.Send(ctx, settings, recipient.Email, subject, body); err != nil {
			d.logger().Error("digest send failed",
				"event", "digest_send_failed",
				"module", "community-experience/digest-service",
				"layer", "application",
				"user_id", recipient.UserID,
				"error", err,
			)
			continue
		}
		if err := d.Repo.RecordDigestSent(ctx, recipient.UserID, now); err != nil {
			return err
		}
		d.logger().Info("digest sent",
			"event", "digest_sent",
			"module", "community-experience/digest-service",
			"layer", "application",
			"user_id", recipient.UserID,
			"articles", len(articles),
		)
	}
	return nil
}

// Run calls RunOnce on every tick until the context is cancelled.
func (d DigestDispatcher) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := d.RunOnce(ctx); err != nil {
				d.logger().Error("digest run failed",
					"event", "digest_run_failed",
					"module", "community-experience/digest-service",
					"layer", "application",
					"error", err,
				)
			}
		}
	}
}

func composeDigest(recipient ports.DigestRecipient, articles []ports.DigestArticle, frequency string) (string, string) {
	subject := fmt.Sprintf("Your %s digest: %d new article(s)", frequency, len(articles))
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>Hi %s,</h1>", html.EscapeString(recipient.Name))
	fmt.Fprintf(&b, "<p>Here is what was published since your last digest:</p><ul>")
	for _, article := range articles {
		fmt.Fprintf(&b, "<li><strong>%s</strong> by %s<br>%s</li>",
			html.EscapeString(article.Title),
			html.EscapeString(article.AuthorName),
			html.EscapeString(article.Excerpt),
		)
	}
	b.WriteString("</ul>")
	return subject, b.String()
}

func (d DigestDispatcher) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}
