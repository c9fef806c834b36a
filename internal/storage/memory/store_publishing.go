package memory

import (
	"context"
	"sort"

	articleentities "newsdesk/contexts/publishing/article-service/domain/entities"
	articleports "newsdesk/contexts/publishing/article-service/ports"
	sectionentities "newsdesk/contexts/publishing/section-service/domain/entities"
	sectionerrors "newsdesk/contexts/publishing/section-service/domain/errors"
)

func (s *Store) ListSections(ctx context.Context) ([]sectionentities.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sectionentities.Section, len(s.sections))
	for i, section := range s.sections {
		out[i] = section
		out[i].Subsections = append([]sectionentities.Subsection(nil), section.Subsections...)
	}
	return out, nil
}

func (s *Store) SectionExists(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sectionIndex(id) >= 0, nil
}

func (s *Store) CreateSection(ctx context.Context, section sectionentities.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sectionIndex(section.ID) >= 0 {
		return sectionerrors.ErrSectionExists
	}
	s.sections = append(s.sections, section)
	return nil
}

// DeleteSectionCascade drops the section with its subsections and grants.
// Articles filed under it stay in place.
func (s *Store) DeleteSectionCascade(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.sectionIndex(id)
	if i < 0 {
		return sectionerrors.ErrSectionNotFound
	}
	s.sections = append(s.sections[:i], s.sections[i+1:]...)
	kept := s.grants[:0]
	for _, grant := range s.grants {
		if grant.SectionID != id {
			kept = append(kept, grant)
		}
	}
	s.grants = kept
	return nil
}

func (s *Store) CreateSubsection(ctx context.Context, sectionID string, subsection sectionentities.Subsection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.sectionIndex(sectionID)
	if i < 0 {
		return sectionerrors.ErrSectionNotFound
	}
	s.sections[i].Subsections = append(s.sections[i].Subsections, subsection)
	return nil
}

func (s *Store) ListGrants(ctx context.Context) ([]sectionentities.EditorGrant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sectionentities.EditorGrant(nil), s.grants...), nil
}

func (s *Store) CreateGrant(ctx context.Context, grant sectionentities.EditorGrant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.grants {
		if existing == grant {
			return sectionerrors.ErrDuplicateGrant
		}
	}
	s.grants = append(s.grants, grant)
	return nil
}

func (s *Store) DeleteGrant(ctx context.Context, userID string, sectionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, grant := range s.grants {
		if grant.UserID == userID && grant.SectionID == sectionID {
			s.grants = append(s.grants[:i], s.grants[i+1:]...)
			return nil
		}
	}
	return sectionerrors.ErrGrantNotFound
}

func (s *Store) CreateArticle(ctx context.Context, input articleports.CreateArticleInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles = append(s.articles, input.Article)
	s.appendArticleNotifications(input.Notifications)
	return nil
}

func (s *Store) GetArticle(ctx context.Context, id string) (articleentities.Article, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, article := range s.articles {
		if article.ID == id {
			return article, true, nil
		}
	}
	return articleentities.Article{}, false, nil
}

func (s *Store) ListArticles(ctx context.Context) ([]articleentities.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]articleentities.Article(nil), s.articles...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (s *Store) UpdateArticle(ctx context.Context, input articleports.UpdateArticleInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, article := range s.articles {
		if article.ID == input.Article.ID {
			s.articles[i] = input.Article
			s.appendArticleNotifications(input.Notifications)
			return nil
		}
	}
	return nil
}

// DeleteArticleCascade drops the article with its comments and
// article-scoped notifications.
func (s *Store) DeleteArticleCascade(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, article := range s.articles {
		if article.ID == id {
			s.articles = append(s.articles[:i], s.articles[i+1:]...)
			break
		}
	}
	keptComments := s.comments[:0]
	for _, comment := range s.comments {
		if comment.ArticleID != id {
			keptComments = append(keptComments, comment)
		}
	}
	s.comments = keptComments
	keptNotifications := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ArticleID != id {
			keptNotifications = append(keptNotifications, n)
		}
	}
	s.notifications = keptNotifications
	return nil
}

func (s *Store) ListTags(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{})
	var tags []string
	for _, article := range s.articles {
		for _, tag := range article.Tags {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags, nil
}

func (s *Store) ListRecipientIDs(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(s.users))
	for i, user := range s.users {
		ids[i] = user.ID
	}
	return ids, nil
}

func (s *Store) sectionIndex(id string) int {
	for i, section := range s.sections {
		if section.ID == id {
			return i
		}
	}
	return -1
}
