package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsdesk/contexts/community-experience/digest-service/domain/entities"
	domainerrors "newsdesk/contexts/community-experience/digest-service/domain/errors"
	"newsdesk/contexts/community-experience/digest-service/ports"
	"newsdesk/contracts/accesspolicy"
)

type fakeRepo struct {
	preferences map[string]entities.DigestPreference
	settings    *entities.MailSettings
	recipients  []ports.DigestRecipient
	published   []ports.DigestArticle
	sentAt      map[string]time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		preferences: map[string]entities.DigestPreference{},
		sentAt:      map[string]time.Time{},
	}
}

func (r *fakeRepo) GetDigestPreference(ctx context.Context, userID string) (entities.DigestPreference, bool, error) {
	p, ok := r.preferences[userID]
	return p, ok, nil
}

func (r *fakeRepo) UpsertDigestPreference(ctx context.Context, p entities.DigestPreference) error {
	r.preferences[p.UserID] = p
	return nil
}

func (r *fakeRepo) GetMailSettings(ctx context.Context) (entities.MailSettings, bool, error) {
	if r.settings == nil {
		return entities.MailSettings{}, false, nil
	}
	return *r.settings, true, nil
}

func (r *fakeRepo) SaveMailSettings(ctx context.Context, s entities.MailSettings) error {
	r.settings = &s
	return nil
}

func (r *fakeRepo) ListDigestRecipients(ctx context.Context) ([]ports.DigestRecipient, error) {
	return r.recipients, nil
}

func (r *fakeRepo) ListPublishedSince(ctx context.Context, since time.Time) ([]ports.DigestArticle, error) {
	var out []ports.DigestArticle
	for _, a := range r.published {
		if !a.Timestamp.Before(since) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) RecordDigestSent(ctx context.Context, userID string, at time.Time) error {
	r.sentAt[userID] = at
	return nil
}

type fakeDirectory map[string]accesspolicy.Actor

func (d fakeDirectory) GetActor(ctx context.Context, userID string) (accesspolicy.Actor, bool, error) {
	actor, ok := d[userID]
	return actor, ok, nil
}

type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, settings entities.MailSettings, to string, subject string, htmlBody string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

func testDirectory() fakeDirectory {
	return fakeDirectory{
		"u1": {ID: "u1", Name: "Alice Admin", Role: accesspolicy.RoleAdmin},
		"u3": {ID: "u3", Name: "John User", Role: accesspolicy.RoleUser},
	}
}

func TestGetPreferenceDefaultsOnMiss(t *testing.T) {
	svc := Service{Repo: newFakeRepo(), Directory: testDirectory()}

	preference, err := svc.GetPreference(context.Background(), "u3", "u3")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if preference.Enabled || preference.Frequency != entities.FrequencyWeekly {
		t.Fatalf("unexpected default %+v", preference)
	}
	if _, err := svc.GetPreference(context.Background(), "u3", "u1"); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for foreign preference, got %v", err)
	}
}

func TestSetPreferenceValidatesFrequency(t *testing.T) {
	repo := newFakeRepo()
	svc := Service{Repo: repo, Directory: testDirectory()}

	if _, err := svc.SetPreference(context.Background(), "u3", "u3", true, "hourly"); !errors.Is(err, domainerrors.ErrInvalidFrequency) {
		t.Fatalf("expected ErrInvalidFrequency, got %v", err)
	}
	preference, err := svc.SetPreference(context.Background(), "u3", "u3", true, entities.FrequencyDaily)
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !preference.Enabled || preference.Frequency != entities.FrequencyDaily {
		t.Fatalf("unexpected preference %+v", preference)
	}
}

func TestSetPreferenceKeepsLastSentAt(t *testing.T) {
	repo := newFakeRepo()
	sent := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	repo.preferences["u3"] = entities.DigestPreference{
		UserID: "u3", Enabled: true, Frequency: entities.FrequencyWeekly, LastSentAt: sent,
	}
	svc := Service{Repo: repo, Directory: testDirectory()}

	preference, err := svc.SetPreference(context.Background(), "u3", "u3", true, entities.FrequencyDaily)
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !preference.LastSentAt.Equal(sent) {
		t.Fatalf("last send time lost: %v", preference.LastSentAt)
	}
}

func TestMailSettingsAdminGateAndPasswordElision(t *testing.T) {
	repo := newFakeRepo()
	svc := Service{Repo: repo, Directory: testDirectory()}

	if _, err := svc.GetMailSettings(context.Background(), "u3"); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}
	if err := svc.SetMailSettings(context.Background(), "u1", entities.MailSettings{
		Host: "smtp.internal", Port: 587, Password: "secret", Enabled: true,
	}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	settings, err := svc.GetMailSettings(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if settings.Password != "" {
		t.Fatal("password must be elided on reads")
	}

	// Re-saving with a blank password keeps the stored secret.
	if err := svc.SetMailSettings(context.Background(), "u1", entities.MailSettings{
		Host: "smtp.internal", Port: 587, Enabled: true,
	}); err != nil {
		t.Fatalf("resave failed: %v", err)
	}
	if repo.settings.Password != "secret" {
		t.Fatalf("stored password lost: %q", repo.settings.Password)
	}
}

func TestSendTest(t *testing.T) {
	repo := newFakeRepo()
	mailer := &recordingMailer{}
	svc := Service{Repo: repo, Directory: testDirectory(), Mailer: mailer}

	if err := svc.SendTest(context.Background(), "u1", "ops@example.com"); !errors.Is(err, domainerrors.ErrMailDisabled) {
		t.Fatalf("expected ErrMailDisabled without settings, got %v", err)
	}
	repo.settings = &entities.MailSettings{Host: "smtp.internal", Enabled: true}
	if err := svc.SendTest(context.Background(), "u1", "  "); !errors.Is(err, domainerrors.ErrRecipientRequired) {
		t.Fatalf("expected ErrRecipientRequired, got %v", err)
	}
	if err := svc.SendTest(context.Background(), "u1", "ops@example.com"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "ops@example.com" {
		t.Fatalf("unexpected sends %v", mailer.sent)
	}
}
