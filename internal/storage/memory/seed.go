package memory

import (
	"context"
	"time"

	identityentities "newsdesk/contexts/identity-access/identity-service/domain/entities"
	identityports "newsdesk/contexts/identity-access/identity-service/ports"
	articleentities "newsdesk/contexts/publishing/article-service/domain/entities"
	sectionentities "newsdesk/contexts/publishing/section-service/domain/entities"
	"newsdesk/contracts/accesspolicy"
)

// Seed loads the demo dataset: four accounts covering every role, the
// starter section tree, Eddie's EUC grant and a published welcome
// article. All accounts share the password "password".
func (s *Store) Seed(ctx context.Context, hasher identityports.PasswordHasher) error {
	hash, err := hasher.Hash("password")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []identityentities.User{
		{ID: "u1", Name: "Alice Admin", Email: "alice@example.com", PasswordHash: hash, Role: string(accesspolicy.RoleAdmin)},
		{ID: "u2", Name: "Eddie Editor", Email: "eddie@example.com", PasswordHash: hash, Role: string(accesspolicy.RoleEditor)},
		{ID: "u3", Name: "John User", Email: "john@example.com", PasswordHash: hash, Role: string(accesspolicy.RoleUser)},
		{ID: "u4", Name: "Guest Visitor", Email: "guest@example.com", PasswordHash: hash, Role: string(accesspolicy.RoleGuest)},
	}
	s.sections = []sectionentities.Section{
		{ID: "euc", Title: "End User Computing", Subsections: []sectionentities.Subsection{
			{ID: "endpoints", Title: "Endpoints"},
			{ID: "collaboration", Title: "Collaboration"},
		}},
		{ID: "hr", Title: "Human Resources"},
		{ID: "general", Title: "General"},
	}
	s.grants = []sectionentities.EditorGrant{
		{UserID: "u2", SectionID: "euc"},
	}
	s.articles = []articleentities.Article{
		{
			ID:            "a1",
			Title:         "Welcome to the newsdesk",
			Content:       "<p>This is your internal publishing platform. Pick a section and start reading.</p>",
			Excerpt:       "A short tour of the platform.",
			SectionID:     "general",
			AuthorID:      "u1",
			AuthorName:    "Alice Admin",
			Timestamp:     time.Now().UTC(),
			AllowComments: true,
			Status:        articleentities.StatusPublished,
			Tags:          []string{"announcements"},
		},
	}
	return nil
}
