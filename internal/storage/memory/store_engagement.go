package memory

import (
	"context"
	"sort"
	"time"

	digestentities "newsdesk/contexts/community-experience/digest-service/domain/entities"
	digestports "newsdesk/contexts/community-experience/digest-service/ports"
	notificationentities "newsdesk/contexts/community-experience/notification-service/domain/entities"
	notificationerrors "newsdesk/contexts/community-experience/notification-service/domain/errors"
	articleports "newsdesk/contexts/publishing/article-service/ports"
	commententities "newsdesk/contexts/publishing/comment-service/domain/entities"
	commentports "newsdesk/contexts/publishing/comment-service/ports"
)

func (s *Store) GetArticleSnapshot(ctx context.Context, articleID string) (commentports.ArticleSnapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, article := range s.articles {
		if article.ID == articleID {
			return commentports.ArticleSnapshot{
				ID:            article.ID,
				Title:         article.Title,
				AuthorID:      article.AuthorID,
				SectionID:     article.SectionID,
				AllowComments: article.AllowComments,
				Published:     article.Published(),
			}, true, nil
		}
	}
	return commentports.ArticleSnapshot{}, false, nil
}

func (s *Store) CreateComment(ctx context.Context, input commentports.CreateCommentInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments = append(s.comments, input.Comment)
	for _, record := range input.Notifications {
		s.notifications = append(s.notifications, notificationentities.Notification{
			ID:        record.ID,
			UserID:    record.UserID,
			Type:      record.Type,
			Message:   record.Message,
			ArticleID: record.ArticleID,
			Timestamp: record.Timestamp,
		})
	}
	return nil
}

func (s *Store) GetComment(ctx context.Context, commentID string) (commententities.Comment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, comment := range s.comments {
		if comment.ID == commentID {
			return comment, true, nil
		}
	}
	return commententities.Comment{}, false, nil
}

func (s *Store) ListComments(ctx context.Context, articleID string) ([]commententities.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []commententities.Comment
	for _, comment := range s.comments {
		if comment.ArticleID == articleID {
			out = append(out, comment)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

// DeleteCommentSubtree removes the comment and every transitive reply.
func (s *Store) DeleteCommentSubtree(ctx context.Context, commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doomed := map[string]struct{}{commentID: {}}
	for {
		grew := false
		for _, comment := range s.comments {
			if _, gone := doomed[comment.ID]; gone {
				continue
			}
			if comment.ParentID == "" {
				continue
			}
			if _, parentGone := doomed[comment.ParentID]; parentGone {
				doomed[comment.ID] = struct{}{}
				grew = true
			}
		}
		if !grew {
			break
		}
	}
	kept := s.comments[:0]
	for _, comment := range s.comments {
		if _, gone := doomed[comment.ID]; !gone {
			kept = append(kept, comment)
		}
	}
	s.comments = kept
	return nil
}

func (s *Store) ListNotifications(ctx context.Context, userID string) ([]notificationentities.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []notificationentities.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (s *Store) GetNotification(ctx context.Context, notificationID string) (notificationentities.Notification, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notifications {
		if n.ID == notificationID {
			return n, true, nil
		}
	}
	return notificationentities.Notification{}, false, nil
}

func (s *Store) MarkNotificationRead(ctx context.Context, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == notificationID {
			s.notifications[i].Read = true
			return nil
		}
	}
	return notificationerrors.ErrNotificationNotFound
}

func (s *Store) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].UserID == userID {
			s.notifications[i].Read = true
		}
	}
	return nil
}

func (s *Store) GetDigestPreference(ctx context.Context, userID string) (digestentities.DigestPreference, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	preference, ok := s.digests[userID]
	return preference, ok, nil
}

func (s *Store) UpsertDigestPreference(ctx context.Context, preference digestentities.DigestPreference) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.digests[preference.UserID] = preference
	return nil
}

func (s *Store) GetMailSettings(ctx context.Context) (digestentities.MailSettings, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mail == nil {
		return digestentities.MailSettings{}, false, nil
	}
	return *s.mail, true, nil
}

func (s *Store) SaveMailSettings(ctx context.Context, settings digestentities.MailSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mail = &settings
	return nil
}

func (s *Store) ListDigestRecipients(ctx context.Context) ([]digestports.DigestRecipient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []digestports.DigestRecipient
	for _, user := range s.users {
		preference, ok := s.digests[user.ID]
		if !ok || !preference.Enabled || user.Email == "" {
			continue
		}
		out = append(out, digestports.DigestRecipient{
			UserID:     user.ID,
			Email:      user.Email,
			Name:       user.Name,
			Frequency:  preference.Frequency,
			LastSentAt: preference.LastSentAt,
		})
	}
	return out, nil
}

func (s *Store) ListPublishedSince(ctx context.Context, since time.Time) ([]digestports.DigestArticle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []digestports.DigestArticle
	for _, article := range s.articles {
		if !article.Published() || article.Timestamp.Before(since) {
			continue
		}
		out = append(out, digestports.DigestArticle{
			ID:         article.ID,
			Title:      article.Title,
			Excerpt:    article.Excerpt,
			AuthorName: article.AuthorName,
			Timestamp:  article.Timestamp,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (s *Store) RecordDigestSent(ctx context.Context, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	preference, ok := s.digests[userID]
	if !ok {
		return nil
	}
	preference.LastSentAt = at
	s.digests[userID] = preference
	return nil
}

func (s *Store) appendArticleNotifications(records []articleports.NotificationRecord) {
	for _, record := range records {
		s.notifications = append(s.notifications, notificationentities.Notification{
			ID:        record.ID,
			UserID:    record.UserID,
			Type:      record.Type,
			Message:   record.Message,
			ArticleID: record.ArticleID,
			Timestamp: record.Timestamp,
		})
	}
}
