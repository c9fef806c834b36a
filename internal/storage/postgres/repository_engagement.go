package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	digestentities "newsdesk/contexts/community-experience/digest-service/domain/entities"
	digestports "newsdesk/contexts/community-experience/digest-service/ports"
	notificationentities "newsdesk/contexts/community-experience/notification-service/domain/entities"
	notificationerrors "newsdesk/contexts/community-experience/notification-service/domain/errors"
	articleentities "newsdesk/contexts/publishing/article-service/domain/entities"
	commententities "newsdesk/contexts/publishing/comment-service/domain/entities"
	commentports "newsdesk/contexts/publishing/comment-service/ports"
)

const mailSettingsRowID = 1

func (r *Repository) GetArticleSnapshot(ctx context.Context, articleID string) (commentports.ArticleSnapshot, bool, error) {
	var row articleModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(articleID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return commentports.ArticleSnapshot{}, false, nil
		}
		return commentports.ArticleSnapshot{}, false, r.logError("storage_get_article_snapshot_failed", err, "article_id", articleID)
	}
	return commentports.ArticleSnapshot{
		ID:            row.ID,
		Title:         row.Title,
		AuthorID:      row.AuthorID,
		SectionID:     row.SectionID,
		AllowComments: row.AllowComments,
		Published:     row.Status == articleentities.StatusPublished,
	}, true, nil
}

// CreateComment writes the comment and its notification rows in one
// transaction.
func (r *Repository) CreateComment(ctx context.Context, input commentports.CreateCommentInput) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := commentModelFromEntity(input.Comment)
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		for _, record := range input.Notifications {
			notificationRow := notificationModel{
				ID:        record.ID,
				UserID:    record.UserID,
				Type:      record.Type,
				Message:   record.Message,
				ArticleID: record.ArticleID,
				Timestamp: record.Timestamp.UTC(),
			}
			if err := tx.Create(&notificationRow).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return r.logError("storage_create_comment_failed", err, "comment_id", input.Comment.ID)
	}
	return nil
}

func (r *Repository) GetComment(ctx context.Context, commentID string) (commententities.Comment, bool, error) {
	var row commentModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(commentID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return commententities.Comment{}, false, nil
		}
		return commententities.Comment{}, false, r.logError("storage_get_comment_failed", err, "comment_id", commentID)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListComments(ctx context.Context, articleID string) ([]commententities.Comment, error) {
	var rows []commentModel
	if err := r.db.WithContext(ctx).
		Where("article_id = ?", strings.TrimSpace(articleID)).
		Order("timestamp ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("storage_list_comments_failed", err, "article_id", articleID)
	}
	comments := make([]commententities.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, row.toEntity())
	}
	return comments, nil
}

// DeleteCommentSubtree removes the comment and every transitive reply in
// one transaction. The closure is computed over the owning article's
// comments, which bounds the walk.
func (r *Repository) DeleteCommentSubtree(ctx context.Context, commentID string) error {
	commentID = strings.TrimSpace(commentID)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var root commentModel
		if err := tx.Where("id = ?", commentID).First(&root).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		var siblings []commentModel
		if err := tx.Where("article_id = ?", root.ArticleID).Find(&siblings).Error; err != nil {
			return err
		}
		doomed := map[string]struct{}{commentID: {}}
		for {
			grew := false
			for _, row := range siblings {
				if _, gone := doomed[row.ID]; gone || row.ParentID == "" {
					continue
				}
				if _, parentGone := doomed[row.ParentID]; parentGone {
					doomed[row.ID] = struct{}{}
					grew = true
				}
			}
			if !grew {
				break
			}
		}
		ids := make([]string, 0, len(doomed))
		for id := range doomed {
			ids = append(ids, id)
		}
		return tx.Where("id IN ?", ids).Delete(&commentModel{}).Error
	})
	if err != nil {
		return r.logError("storage_delete_comment_subtree_failed", err, "comment_id", commentID)
	}
	return nil
}

func (r *Repository) ListNotifications(ctx context.Context, userID string) ([]notificationentities.Notification, error) {
	var rows []notificationModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Order("timestamp DESC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("storage_list_notifications_failed", err, "user_id", userID)
	}
	notifications := make([]notificationentities.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, row.toEntity())
	}
	return notifications, nil
}

func (r *Repository) GetNotification(ctx context.Context, notificationID string) (notificationentities.Notification, bool, error) {
	var row notificationModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(notificationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notificationentities.Notification{}, false, nil
		}
		return notificationentities.Notification{}, false, r.logError("storage_get_notification_failed", err, "notification_id", notificationID)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) MarkNotificationRead(ctx context.Context, notificationID string) error {
	result := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("id = ?", strings.TrimSpace(notificationID)).
		Update("read", true)
	if result.Error != nil {
		return r.logError("storage_mark_notification_read_failed", result.Error, "notification_id", notificationID)
	}
	if result.RowsAffected == 0 {
		return notificationerrors.ErrNotificationNotFound
	}
	return nil
}

func (r *Repository) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Where("read = ?", false).
		Update("read", true).Error; err != nil {
		return r.logError("storage_mark_all_notifications_read_failed", err, "user_id", userID)
	}
	return nil
}

func (r *Repository) GetDigestPreference(ctx context.Context, userID string) (digestentities.DigestPreference, bool, error) {
	var row digestPreferenceModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return digestentities.DigestPreference{}, false, nil
		}
		return digestentities.DigestPreference{}, false, r.logError("storage_get_digest_preference_failed", err, "user_id", userID)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) UpsertDigestPreference(ctx context.Context, preference digestentities.DigestPreference) error {
	row := digestPreferenceModelFromEntity(preference)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"enabled":      row.Enabled,
			"frequency":    row.Frequency,
			"last_sent_at": row.LastSentAt,
		}),
	}).Create(&row).Error
	if err != nil {
		return r.logError("storage_upsert_digest_preference_failed", err, "user_id", preference.UserID)
	}
	return nil
}

func (r *Repository) GetMailSettings(ctx context.Context) (digestentities.MailSettings, bool, error) {
	var row mailSettingsModel
	err := r.db.WithContext(ctx).
		Where("id = ?", mailSettingsRowID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return digestentities.MailSettings{}, false, nil
		}
		return digestentities.MailSettings{}, false, r.logError("storage_get_mail_settings_failed", err)
	}
	return digestentities.MailSettings{
		Host:        row.Host,
		Port:        row.Port,
		Username:    row.Username,
		Password:    row.Password,
		Encryption:  row.Encryption,
		FromAddress: row.FromAddress,
		FromName:    row.FromName,
		Enabled:     row.Enabled,
	}, true, nil
}

func (r *Repository) SaveMailSettings(ctx context.Context, settings digestentities.MailSettings) error {
	row := mailSettingsModel{
		ID:          mailSettingsRowID,
		Host:        settings.Host,
		Port:        settings.Port,
		Username:    settings.Username,
		Password:    settings.Password,
		Encryption:  settings.Encryption,
		FromAddress: settings.FromAddress,
		FromName:    settings.FromName,
		Enabled:     settings.Enabled,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"host":         row.Host,
			"port":         row.Port,
			"username":     row.Username,
			"password":     row.Password,
			"encryption":   row.Encryption,
			"from_address": row.FromAddress,
			"from_name":    row.FromName,
			"enabled":      row.Enabled,
		}),
	}).Create(&row).Error
	if err != nil {
		return r.logError("storage_save_mail_settings_failed", err)
	}
	return nil
}

func (r *Repository) ListDigestRecipients(ctx context.Context) ([]digestports.DigestRecipient, error) {
	type recipientRow struct {
		UserID     string     `gorm:"column:user_id"`
		Email      string     `gorm:"column:email"`
		Name       string     `gorm:"column:name"`
		Frequency  string     `gorm:"column:frequency"`
		LastSentAt *time.Time `gorm:"column:last_sent_at"`
	}
	var rows []recipientRow
	err := r.db.WithContext(ctx).
		Table("digest_preferences AS p").
		Select("p.user_id, u.email, u.name, p.frequency, p.last_sent_at").
		Joins("JOIN users AS u ON u.id = p.user_id").
		Where("p.enabled = ?", true).
		Where("u.email <> ''").
		Order("p.user_id ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, r.logError("storage_list_digest_recipients_failed", err)
	}
	recipients := make([]digestports.DigestRecipient, 0, len(rows))
	for _, row := range rows {
		recipient := digestports.DigestRecipient{
			UserID:    row.UserID,
			Email:     row.Email,
			Name:      row.Name,
			Frequency: row.Frequency,
		}
		if row.LastSentAt != nil {
			recipient.LastSentAt = row.LastSentAt.UTC()
		}
		recipients = append(recipients, recipient)
	}
	return recipients, nil
}

func (r *Repository) ListPublishedSince(ctx context.Context, since time.Time) ([]digestports.DigestArticle, error) {
	var rows []articleModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", articleentities.StatusPublished).
		Where("timestamp >= ?", since.UTC()).
		Order("timestamp DESC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("storage_list_published_since_failed", err)
	}
	articles := make([]digestports.DigestArticle, 0, len(rows))
	for _, row := range rows {
		articles = append(articles, digestports.DigestArticle{
			ID:         row.ID,
			Title:      row.Title,
			Excerpt:    row.Excerpt,
			AuthorName: row.AuthorName,
			Timestamp:  row.Timestamp.UTC(),
		})
	}
	return articles, nil
}

func (r *Repository) RecordDigestSent(ctx context.Context, userID string, at time.Time) error {
	sentAt := at.UTC()
	if err := r.db.WithContext(ctx).
		Model(&digestPreferenceModel{}).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Update("last_sent_at", &sentAt).Error; err != nil {
		return r.logError("storage_record_digest_sent_failed", err, "user_id", userID)
	}
	return nil
}

func commentModelFromEntity(comment commententities.Comment) commentModel {
	return commentModel{
		ID:           strings.TrimSpace(comment.ID),
		ArticleID:    comment.ArticleID,
		ParentID:     comment.ParentID,
		AuthorID:     comment.AuthorID,
		AuthorName:   comment.AuthorName,
		AuthorAvatar: comment.AuthorAvatar,
		Content:      comment.Content,
		Timestamp:    comment.Timestamp.UTC(),
	}
}

func (m commentModel) toEntity() commententities.Comment {
	return commententities.Comment{
		ID:           m.ID,
		ArticleID:    m.ArticleID,
		ParentID:     m.ParentID,
		AuthorID:     m.AuthorID,
		AuthorName:   m.AuthorName,
		AuthorAvatar: m.AuthorAvatar,
		Content:      m.Content,
		Timestamp:    m.Timestamp.UTC(),
	}
}

func (m notificationModel) toEntity() notificationentities.Notification {
	return notificationentities.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      m.Type,
		Message:   m.Message,
		ArticleID: m.ArticleID,
		Read:      m.Read,
		Timestamp: m.Timestamp.UTC(),
	}
}

func digestPreferenceModelFromEntity(preference digestentities.DigestPreference) digestPreferenceModel {
	row := digestPreferenceModel{
		UserID:    strings.TrimSpace(preference.UserID),
		Enabled:   preference.Enabled,
		Frequency: preference.Frequency,
	}
	if !preference.LastSentAt.IsZero() {
		sentAt := preference.LastSentAt.UTC()
		row.LastSentAt = &sentAt
	}
	return row
}

func (m digestPreferenceModel) toEntity() digestentities.DigestPreference {
	preference := digestentities.DigestPreference{
		UserID:    m.UserID,
		Enabled:   m.Enabled,
		Frequency: m.Frequency,
	}
	if m.LastSentAt != nil {
		preference.LastSentAt = m.LastSentAt.UTC()
	}
	return preference
}
