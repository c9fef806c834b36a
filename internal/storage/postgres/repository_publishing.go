package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	articleentities "newsdesk/contexts/publishing/article-service/domain/entities"
	articleports "newsdesk/contexts/publishing/article-service/ports"
	sectionentities "newsdesk/contexts/publishing/section-service/domain/entities"
	sectionerrors "newsdesk/contexts/publishing/section-service/domain/errors"
)

func (r *Repository) ListSections(ctx context.Context) ([]sectionentities.Section, error) {
	var sectionRows []sectionModel
	if err := r.db.WithContext(ctx).
		Order("position ASC").
		Find(&sectionRows).Error; err != nil {
		return nil, r.logError("storage_list_sections_failed", err)
	}
	var subsectionRows []subsectionModel
	if err := r.db.WithContext(ctx).
		Order("position ASC").
		Find(&subsectionRows).Error; err != nil {
		return nil, r.logError("storage_list_subsections_failed", err)
	}
	byParent := make(map[string][]sectionentities.Subsection)
	for _, row := range subsectionRows {
		byParent[row.SectionID] = append(byParent[row.SectionID], sectionentities.Subsection{
			ID:    row.ID,
			Title: row.Title,
		})
	}
	sections := make([]sectionentities.Section, 0, len(sectionRows))
	for _, row := range sectionRows {
		sections = append(sections, sectionentities.Section{
			ID:          row.ID,
			Title:       row.Title,
			Subsections: byParent[row.ID],
		})
	}
	return sections, nil
}

func (r *Repository) SectionExists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&sectionModel{}).
		Where("id = ?", strings.TrimSpace(id)).
		Count(&count).Error; err != nil {
		return false, r.logError("storage_section_exists_failed", err, "section_id", id)
	}
	return count > 0, nil
}

func (r *Repository) CreateSection(ctx context.Context, section sectionentities.Section) error {
	var position int64
	if err := r.db.WithContext(ctx).
		Model(&sectionModel{}).
		Count(&position).Error; err != nil {
		return r.logError("storage_create_section_count_failed", err, "section_id", section.ID)
	}
	row := sectionModel{ID: section.ID, Title: section.Title, Position: int(position)}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return sectionerrors.ErrSectionExists
		}
		return r.logError("storage_create_section_failed", err, "section_id", section.ID)
	}
	return nil
}

// DeleteSectionCascade drops the section, its subsections and its grants
// in one transaction. Articles filed under it stay in place.
func (r *Repository) DeleteSectionCascade(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&sectionModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return sectionerrors.ErrSectionNotFound
		}
		if err := tx.Where("section_id = ?", id).Delete(&subsectionModel{}).Error; err != nil {
			return err
		}
		return tx.Where("section_id = ?", id).Delete(&grantModel{}).Error
	})
	if err != nil {
		if errors.Is(err, sectionerrors.ErrSectionNotFound) {
			return err
		}
		return r.logError("storage_delete_section_cascade_failed", err, "section_id", id)
	}
	return nil
}

func (r *Repository) CreateSubsection(ctx context.Context, sectionID string, subsection sectionentities.Subsection) error {
	var position int64
	if err := r.db.WithContext(ctx).
		Model(&subsectionModel{}).
		Where("section_id = ?", strings.TrimSpace(sectionID)).
		Count(&position).Error; err != nil {
		return r.logError("storage_create_subsection_count_failed", err, "section_id", sectionID)
	}
	row := subsectionModel{
		ID:        subsection.ID,
		SectionID: strings.TrimSpace(sectionID),
		Title:     subsection.Title,
		Position:  int(position),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.logError("storage_create_subsection_failed", err, "section_id", sectionID)
	}
	return nil
}

func (r *Repository) ListGrants(ctx context.Context) ([]sectionentities.EditorGrant, error) {
	var rows []grantModel
	if err := r.db.WithContext(ctx).
		Order("user_id ASC, section_id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("storage_list_grants_failed", err)
	}
	grants := make([]sectionentities.EditorGrant, 0, len(rows))
	for _, row := range rows {
		grants = append(grants, sectionentities.EditorGrant{
			UserID:    row.UserID,
			SectionID: row.SectionID,
		})
	}
	return grants, nil
}

func (r *Repository) CreateGrant(ctx context.Context, grant sectionentities.EditorGrant) error {
	row := grantModel{UserID: grant.UserID, SectionID: grant.SectionID}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return sectionerrors.ErrDuplicateGrant
		}
		return r.logError("storage_create_grant_failed", err,
			"user_id", grant.UserID,
			"section_id", grant.SectionID,
		)
	}
	return nil
}

func (r *Repository) DeleteGrant(ctx context.Context, userID string, sectionID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Where("section_id = ?", strings.TrimSpace(sectionID)).
		Delete(&grantModel{})
	if result.Error != nil {
		return r.logError("storage_delete_grant_failed", result.Error,
			"user_id", userID,
			"section_id", sectionID,
		)
	}
	if result.RowsAffected == 0 {
		return sectionerrors.ErrGrantNotFound
	}
	return nil
}

// CreateArticle writes the article, its tags and attachments and the
// notification fan-out in one transaction.
func (r *Repository) CreateArticle(ctx context.Context, input articleports.CreateArticleInput) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := articleModelFromEntity(input.Article)
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		if err := insertArticleChildren(tx, input.Article); err != nil {
			return err
		}
		return insertArticleNotifications(tx, input.Notifications)
	})
	if err != nil {
		return r.logError("storage_create_article_failed", err, "article_id", input.Article.ID)
	}
	return nil
}

func (r *Repository) GetArticle(ctx context.Context, id string) (articleentities.Article, bool, error) {
	var row articleModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(id)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return articleentities.Article{}, false, nil
		}
		return articleentities.Article{}, false, r.logError("storage_get_article_failed", err, "article_id", id)
	}
	articles, err := r.hydrateArticles(ctx, []articleModel{row})
	if err != nil {
		return articleentities.Article{}, false, err
	}
	return articles[0], true, nil
}

func (r *Repository) ListArticles(ctx context.Context) ([]articleentities.Article, error) {
	var rows []articleModel
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("storage_list_articles_failed", err)
	}
	return r.hydrateArticles(ctx, rows)
}

// UpdateArticle replaces the article row and its child rows; publish-edge
// notifications land in the same transaction.
func (r *Repository) UpdateArticle(ctx context.Context, input articleports.UpdateArticleInput) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := articleModelFromEntity(input.Article)
		if err := tx.Where("id = ?", row.ID).Save(&row).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", row.ID).Delete(&articleTagModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", row.ID).Delete(&attachmentModel{}).Error; err != nil {
			return err
		}
		if err := insertArticleChildren(tx, input.Article); err != nil {
			return err
		}
		return insertArticleNotifications(tx, input.Notifications)
	})
	if err != nil {
		return r.logError("storage_update_article_failed", err, "article_id", input.Article.ID)
	}
	return nil
}

// DeleteArticleCascade drops the article with its tags, attachments,
// comments and article-scoped notifications in one transaction.
func (r *Repository) DeleteArticleCascade(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Delete(&articleModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&articleTagModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&attachmentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&commentModel{}).Error; err != nil {
			return err
		}
		return tx.Where("article_id = ?", id).Delete(&notificationModel{}).Error
	})
	if err != nil {
		return r.logError("storage_delete_article_cascade_failed", err, "article_id", id)
	}
	return nil
}

func (r *Repository) ListTags(ctx context.Context) ([]string, error) {
	var tags []string
	if err := r.db.WithContext(ctx).
		Model(&articleTagModel{}).
		Distinct("tag").
		Order("tag ASC").
		Pluck("tag", &tags).Error; err != nil {
		return nil, r.logError("storage_list_tags_failed", err)
	}
	return tags, nil
}

func (r *Repository) ListRecipientIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, r.logError("storage_list_recipient_ids_failed", err)
	}
	return ids, nil
}

func (r *Repository) hydrateArticles(ctx context.Context, rows []articleModel) ([]articleentities.Article, error) {
	if len(rows) == 0 {
		return []articleentities.Article{}, nil
	}
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	var tagRows []articleTagModel
	if err := r.db.WithContext(ctx).
		Where("article_id IN ?", ids).
		Order("position ASC").
		Find(&tagRows).Error; err != nil {
		return nil, r.logError("storage_hydrate_tags_failed", err)
	}
	var attachmentRows []attachmentModel
	if err := r.db.WithContext(ctx).
		Where("article_id IN ?", ids).
		Find(&attachmentRows).Error; err != nil {
		return nil, r.logError("storage_hydrate_attachments_failed", err)
	}
	tagsByArticle := make(map[string][]string)
	for _, row := range tagRows {
		tagsByArticle[row.ArticleID] = append(tagsByArticle[row.ArticleID], row.Tag)
	}
	attachmentsByArticle := make(map[string][]articleentities.Attachment)
	for _, row := range attachmentRows {
		attachmentsByArticle[row.ArticleID] = append(attachmentsByArticle[row.ArticleID], articleentities.Attachment{
			ID:       row.ID,
			Filename: row.Filename,
			MimeType: row.MimeType,
			Data:     row.Data,
		})
	}
	articles := make([]articleentities.Article, 0, len(rows))
	for _, row := range rows {
		article := row.toEntity()
		article.Tags = tagsByArticle[row.ID]
		article.Attachments = attachmentsByArticle[row.ID]
		articles = append(articles, article)
	}
	return articles, nil
}

func insertArticleChildren(tx *gorm.DB, article articleentities.Article) error {
	for i, tag := range article.Tags {
		row := articleTagModel{ArticleID: article.ID, Tag: tag, Position: i}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	for _, attachment := range article.Attachments {
		row := attachmentModel{
			ID:        attachment.ID,
			ArticleID: article.ID,
			Filename:  attachment.Filename,
			MimeType:  attachment.MimeType,
			Data:      attachment.Data,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func insertArticleNotifications(tx *gorm.DB, records []articleports.NotificationRecord) error {
	for _, record := range records {
		row := notificationModel{
			ID:        record.ID,
			UserID:    record.UserID,
			Type:      record.Type,
			Message:   record.Message,
			ArticleID: record.ArticleID,
			Timestamp: record.Timestamp.UTC(),
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func articleModelFromEntity(article articleentities.Article) articleModel {
	return articleModel{
		ID:            strings.TrimSpace(article.ID),
		Title:         article.Title,
		Content:       article.Content,
		Excerpt:       article.Excerpt,
		SectionID:     article.SectionID,
		SubsectionID:  article.SubsectionID,
		AuthorID:      article.AuthorID,
		AuthorName:    article.AuthorName,
		Timestamp:     article.Timestamp.UTC(),
		ImageURL:      article.ImageURL,
		AllowComments: article.AllowComments,
		Status:        article.Status,
	}
}

func (m articleModel) toEntity() articleentities.Article {
	return articleentities.Article{
		ID:            m.ID,
		Title:         m.Title,
		Content:       m.Content,
		Excerpt:       m.Excerpt,
		SectionID:     m.SectionID,
		SubsectionID:  m.SubsectionID,
		AuthorID:      m.AuthorID,
		AuthorName:    m.AuthorName,
		Timestamp:     m.Timestamp.UTC(),
		ImageURL:      m.ImageURL,
		AllowComments: m.AllowComments,
		Status:        m.Status,
	}
}
