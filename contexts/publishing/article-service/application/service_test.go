package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"newsdesk/contexts/publishing/article-service/domain/entities"
	domainerrors "newsdesk/contexts/publishing/article-service/domain/errors"
	"newsdesk/contexts/publishing/article-service/ports"
	"newsdesk/contracts/accesspolicy"
)

type fakeRepo struct {
	sections      map[string]bool
	articles      []entities.Article
	notifications []ports.NotificationRecord
	recipients    []string
	tags          []string
	deleted       []string
}

func (r *fakeRepo) SectionExists(ctx context.Context, id string) (bool, error) {
	return r.sections[id], nil
}

func (r *fakeRepo) CreateArticle(ctx context.Context, input ports.CreateArticleInput) error {
	r.articles = append(r.articles, input.Article)
	r.notifications = append(r.notifications, input.Notifications...)
	return nil
}

func (r *fakeRepo) GetArticle(ctx context.Context, id string) (entities.Article, bool, error) {
	for _, a := range r.articles {
		if a.ID == id {
			return a, true, nil
		}
	}
	return entities.Article{}, false, nil
}

func (r *fakeRepo) ListArticles(ctx context.Context) ([]entities.Article, error) {
	return r.articles, nil
}

func (r *fakeRepo) UpdateArticle(ctx context.Context, input ports.UpdateArticleInput) error {
	for i, a := range r.articles {
		if a.ID == input.Article.ID {
			r.articles[i] = input.Article
		}
	}
	r.notifications = append(r.notifications, input.Notifications...)
	return nil
}

func (r *fakeRepo) DeleteArticleCascade(ctx context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	for i, a := range r.articles {
		if a.ID == id {
			r.articles = append(r.articles[:i], r.articles[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeRepo) ListTags(ctx context.Context) ([]string, error) {
	return r.tags, nil
}

func (r *fakeRepo) ListRecipientIDs(ctx context.Context) ([]string, error) {
	return r.recipients, nil
}

type fakeDirectory struct {
	actors map[string]accesspolicy.Actor
	grants map[string]accesspolicy.GrantSet
}

func (d fakeDirectory) GetActor(ctx context.Context, userID string) (accesspolicy.Actor, bool, error) {
	actor, ok := d.actors[userID]
	return actor, ok, nil
}

func (d fakeDirectory) GrantSet(ctx context.Context, userID string) (accesspolicy.GrantSet, error) {
	return d.grants[userID], nil
}

type passSanitizer struct{}

func (passSanitizer) SanitizeHTML(raw string) string { return raw }

type seqIDs struct{ n int }

func (s *seqIDs) NewID(ctx context.Context) (string, error) {
	s.n++
	return fmt.Sprintf("id-%d", s.n), nil
}

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

func testDirectory() fakeDirectory {
	return fakeDirectory{
		actors: map[string]accesspolicy.Actor{
			"u1": {ID: "u1", Name: "Alice Admin", Role: accesspolicy.RoleAdmin},
			"u2": {ID: "u2", Name: "Eddie Editor", Role: accesspolicy.RoleEditor},
			"u3": {ID: "u3", Name: "John User", Role: accesspolicy.RoleUser},
		},
		grants: map[string]accesspolicy.GrantSet{
			"u2": {"euc": {}},
		},
	}
}

func newTestService(repo *fakeRepo) Service {
	return Service{
		Repo:      repo,
		Directory: testDirectory(),
		Sanitizer: passSanitizer{},
		IDs:       &seqIDs{},
		Clock:     fixedClock{at: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
	}
}

func TestCreateFansOutToEveryoneButAuthor(t *testing.T) {
	repo := &fakeRepo{
		sections:   map[string]bool{"euc": true},
		recipients: []string{"u1", "u2", "u3"},
	}
	svc := newTestService(repo)

	article, err := svc.Create(context.Background(), "u2", ports.ArticleInput{
		Title:     "VDI Rollout",
		SectionID: "euc",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if article.Status != entities.StatusPublished {
		t.Fatalf("expected default status published, got %q", article.Status)
	}
	if article.Excerpt != defaultExcerpt {
		t.Fatalf("expected default excerpt, got %q", article.Excerpt)
	}
	if len(repo.notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(repo.notifications))
	}
	for _, n := range repo.notifications {
		if n.UserID == "u2" {
			t.Fatal("author must not be notified")
		}
		if n.Type != ports.NotificationNewArticle {
			t.Fatalf("unexpected notification type %q", n.Type)
		}
		if n.Message != `Eddie Editor published "VDI Rollout"` {
			t.Fatalf("unexpected message %q", n.Message)
		}
		if n.ArticleID != article.ID {
			t.Fatalf("notification bound to %q, want %q", n.ArticleID, article.ID)
		}
	}
}

func TestCreateDraftSkipsFanOut(t *testing.T) {
	repo := &fakeRepo{
		sections:   map[string]bool{"euc": true},
		recipients: []string{"u1", "u2", "u3"},
	}
	svc := newTestService(repo)

	if _, err := svc.Create(context.Background(), "u2", ports.ArticleInput{
		Title:     "Half-written",
		SectionID: "euc",
		Status:    entities.StatusDraft,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(repo.notifications) != 0 {
		t.Fatalf("draft must not notify, got %d rows", len(repo.notifications))
	}
}

func TestCreateRequiresSectionCapability(t *testing.T) {
	repo := &fakeRepo{sections: map[string]bool{"euc": true, "hr": true}}
	svc := newTestService(repo)

	if _, err := svc.Create(context.Background(), "u3", ports.ArticleInput{Title: "X", SectionID: "euc"}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for plain user, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "u2", ports.ArticleInput{Title: "X", SectionID: "hr"}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden outside grant, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "", ports.ArticleInput{Title: "X", SectionID: "euc"}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for anonymous, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	repo := &fakeRepo{sections: map[string]bool{"euc": true}}
	svc := newTestService(repo)

	if _, err := svc.Create(context.Background(), "u1", ports.ArticleInput{Title: "  ", SectionID: "euc"}); !errors.Is(err, domainerrors.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "u1", ports.ArticleInput{Title: "X", SectionID: "missing"}); !errors.Is(err, domainerrors.ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "u1", ports.ArticleInput{Title: "X", SectionID: "euc", Status: "archived"}); !errors.Is(err, domainerrors.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCreateNormalizesTags(t *testing.T) {
	repo := &fakeRepo{sections: map[string]bool{"euc": true}}
	svc := newTestService(repo)

	article, err := svc.Create(context.Background(), "u1", ports.ArticleInput{
		Title:     "X",
		SectionID: "euc",
		Tags:      []string{"Team Building", "team-building", " "},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(article.Tags) != 1 || article.Tags[0] != "team-building" {
		t.Fatalf("unexpected tags %v", article.Tags)
	}
}

func TestUpdatePublishEdgeNotifiesOnce(t *testing.T) {
	repo := &fakeRepo{
		sections:   map[string]bool{"euc": true},
		recipients: []string{"u1", "u2", "u3"},
	}
	svc := newTestService(repo)

	draft, err := svc.Create(context.Background(), "u2", ports.ArticleInput{
		Title:     "Slow Burn",
		SectionID: "euc",
		Status:    entities.StatusDraft,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	input := ports.ArticleInput{Title: "Slow Burn", SectionID: "euc", Status: entities.StatusPublished}
	if _, err := svc.Update(context.Background(), "u2", draft.ID, input); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if len(repo.notifications) != 2 {
		t.Fatalf("expected 2 notifications after publish, got %d", len(repo.notifications))
	}

	// A second save of an already-published article must not notify again.
	if _, err := svc.Update(context.Background(), "u2", draft.ID, input); err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if len(repo.notifications) != 2 {
		t.Fatalf("republish must not re-notify, got %d rows", len(repo.notifications))
	}
}

func TestUpdateKeepsAuthorSnapshot(t *testing.T) {
	repo := &fakeRepo{sections: map[string]bool{"euc": true}}
	svc := newTestService(repo)

	article, err := svc.Create(context.Background(), "u2", ports.ArticleInput{Title: "Original", SectionID: "euc"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	updated, err := svc.Update(context.Background(), "u1", article.ID, ports.ArticleInput{Title: "Edited", SectionID: "euc"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.AuthorID != "u2" || updated.AuthorName != "Eddie Editor" {
		t.Fatalf("author snapshot changed: %q %q", updated.AuthorID, updated.AuthorName)
	}
	if updated.Title != "Edited" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
}

func TestUpdateAllowsAuthorWithoutGrant(t *testing.T) {
	repo := &fakeRepo{sections: map[string]bool{"euc": true}}
	svc := newTestService(repo)

	article, err := svc.Create(context.Background(), "u2", ports.ArticleInput{Title: "Mine", SectionID: "euc"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	// Simulate the grant being revoked after authorship.
	svc.Directory = fakeDirectory{
		actors: testDirectory().actors,
		grants: map[string]accesspolicy.GrantSet{},
	}
	if _, err := svc.Update(context.Background(), "u2", article.ID, ports.ArticleInput{Title: "Still mine", SectionID: "euc"}); err != nil {
		t.Fatalf("author update failed: %v", err)
	}
	if _, err := svc.Update(context.Background(), "u3", article.ID, ports.ArticleInput{Title: "Hijack", SectionID: "euc"}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for stranger, got %v", err)
	}
}

func TestDeleteRequiresSectionCapability(t *testing.T) {
	repo := &fakeRepo{sections: map[string]bool{"euc": true}}
	svc := newTestService(repo)

	article, err := svc.Create(context.Background(), "u2", ports.ArticleInput{Title: "Doomed", SectionID: "euc"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "u3", article.ID); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), "u2", article.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != article.ID {
		t.Fatalf("cascade not invoked: %v", repo.deleted)
	}
	if err := svc.Delete(context.Background(), "u2", article.ID); !errors.Is(err, domainerrors.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestListVisibleHidesForeignDrafts(t *testing.T) {
	repo := &fakeRepo{
		sections: map[string]bool{"euc": true},
		articles: []entities.Article{
			{ID: "a1", Title: "Public", SectionID: "euc", AuthorID: "u2", Status: entities.StatusPublished},
			{ID: "a2", Title: "Eddie draft", SectionID: "euc", AuthorID: "u2", Status: entities.StatusDraft},
			{ID: "a3", Title: "John draft", SectionID: "euc", AuthorID: "u3", Status: entities.StatusDraft},
		},
	}
	svc := newTestService(repo)

	anonymous, err := svc.ListVisible(context.Background(), "", ports.ListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(anonymous) != 1 || anonymous[0].ID != "a1" {
		t.Fatalf("anonymous should see published only, got %v", anonymous)
	}

	asEddie, err := svc.ListVisible(context.Background(), "u2", ports.ListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(asEddie) != 2 {
		t.Fatalf("author should see own draft, got %d", len(asEddie))
	}

	asAdmin, err := svc.ListVisible(context.Background(), "u1", ports.ListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(asAdmin) != 3 {
		t.Fatalf("admin should see everything, got %d", len(asAdmin))
	}
}

func TestListVisibleFilters(t *testing.T) {
	repo := &fakeRepo{
		articles: []entities.Article{
			{ID: "a1", Title: "VDI Rollout", Content: "thin clients", SectionID: "euc", SubsectionID: "endpoints", Tags: []string{"vdi"}, Status: entities.StatusPublished},
			{ID: "a2", Title: "Benefits Update", Content: "dental plan", SectionID: "hr", Tags: []string{"benefits"}, Status: entities.StatusPublished},
		},
	}
	svc := newTestService(repo)

	bySection, _ := svc.ListVisible(context.Background(), "", ports.ListFilter{SectionID: "hr"})
	if len(bySection) != 1 || bySection[0].ID != "a2" {
		t.Fatalf("section filter wrong: %v", bySection)
	}
	bySub, _ := svc.ListVisible(context.Background(), "", ports.ListFilter{SubsectionID: "endpoints"})
	if len(bySub) != 1 || bySub[0].ID != "a1" {
		t.Fatalf("subsection filter wrong: %v", bySub)
	}
	byTag, _ := svc.ListVisible(context.Background(), "", ports.ListFilter{Tag: "VDI"})
	if len(byTag) != 1 || byTag[0].ID != "a1" {
		t.Fatalf("tag filter wrong: %v", byTag)
	}
	byQuery, _ := svc.ListVisible(context.Background(), "", ports.ListFilter{Query: "DENTAL"})
	if len(byQuery) != 1 || byQuery[0].ID != "a2" {
		t.Fatalf("query filter wrong: %v", byQuery)
	}
}

func TestGetHidesForeignDraftAsNotFound(t *testing.T) {
	repo := &fakeRepo{
		articles: []entities.Article{
			{ID: "a1", Title: "Draft", SectionID: "euc", AuthorID: "u2", Status: entities.StatusDraft},
		},
	}
	svc := newTestService(repo)

	if _, err := svc.Get(context.Background(), "u3", "a1"); !errors.Is(err, domainerrors.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound for hidden draft, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "u2", "a1"); err != nil {
		t.Fatalf("author read failed: %v", err)
	}
}

func TestCreateAssignsAttachmentIDs(t *testing.T) {
	repo := &fakeRepo{sections: map[string]bool{"euc": true}}
	svc := newTestService(repo)

	article, err := svc.Create(context.Background(), "u1", ports.ArticleInput{
		Title:     "With files",
		SectionID: "euc",
		Attachments: []ports.AttachmentInput{
			{Filename: "plan.pdf", MimeType: "application/pdf", Data: "aGVsbG8="},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(article.Attachments) != 1 || article.Attachments[0].ID == "" {
		t.Fatalf("attachment id missing: %+v", article.Attachments)
	}
}
