package application

import (
	"context"
	"log/slog"
	"strings"

	"newsdesk/contexts/community-experience/digest-service/domain/entities"
	domainerrors "newsdesk/contexts/community-experience/digest-service/domain/errors"
	"newsdesk/contexts/community-experience/digest-service/ports"
	"newsdesk/contracts/accesspolicy"
)

type Service struct {
	Repo      ports.Repository
	Directory ports.Directory
	Mailer    ports.Mailer
	Clock     ports.Clock
	Logger    *slog.Logger
}

// GetPreference returns the caller's digest preference, falling back to
// the disabled-weekly default when no row exists.
func (s Service) GetPreference(ctx context.Context, actorID string, userID string) (entities.DigestPreference, error) {
	if err := requireSelf(actorID, userID); err != nil {
		return entities.DigestPreference{}, err
	}
	preference, found, err := s.Repo.GetDigestPreference(ctx, userID)
	if err != nil {
		return entities.DigestPreference{}, err
	}
	if !found {
		return entities.DefaultPreference(userID), nil
	}
	return preference, nil
}

func (s Service) SetPreference(ctx context.Context, actorID string, userID string, enabled bool, frequency string) (entities.DigestPreference, error) {
	if err := requireSelf(actorID, userID); err != nil {
		return entities.DigestPreference{}, err
	}
	if !entities.ValidFrequency(frequency) {
		return entities.DigestPreference{}, domainerrors.ErrInvalidFrequency
	}
	existing, found, err := s.Repo.GetDigestPreference(ctx, userID)
	if err != nil {
		return entities.DigestPreference{}, err
	}
	preference := entities.DigestPreference{
		UserID:    userID,
		Enabled:   enabled,
		Frequency: frequency,
	}
	if found {
		preference.LastSentAt = existing.LastSentAt
	}
	if err := s.Repo.UpsertDigestPreference(ctx, preference); err != nil {
		return entities.DigestPreference{}, err
	}
	resolveLogger(s.Logger).Info("digest preference saved",
		"event", "digest_preference_saved",
		"module", "community-experience/digest-service",
		"layer", "application",
		"user_id", userID,
		"enabled", enabled,
		"frequency", frequency,
	)
	return preference, nil
}

// GetMailSettings returns the stored SMTP configuration with the password
// blanked. A missing singleton reads as the zero value.
func (s Service) GetMailSettings(ctx context.Context, actorID string) (entities.MailSettings, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return entities.MailSettings{}, err
	}
	settings, _, err := s.Repo.GetMailSettings(ctx)
	if err != nil {
		return entities.MailSettings{}, err
	}
	settings.Password = ""
	return settings, nil
}

// SetMailSettings replaces the SMTP configuration. A blank incoming
// password keeps the stored one, so admins can edit settings from the
// elided read without re-entering the secret.
func (s Service) SetMailSettings(ctx context.Context, actorID string, settings entities.MailSettings) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if settings.Password == "" {
		stored, found, err := s.Repo.GetMailSettings(ctx)
		if err != nil {
			return err
		}
		if found {
			settings.Password = stored.Password
		}
	}
	if err := s.Repo.SaveMailSettings(ctx, settings); err != nil {
		return err
	}
	resolveLogger(s.Logger).Info("mail settings saved",
		"event", "digest_mail_settings_saved",
		"module", "community-experience/digest-service",
		"layer", "application",
		"host", settings.Host,
		"enabled", settings.Enabled,
	)
	return nil
}

// SendTest delivers a probe message so admins can verify the SMTP
// configuration before enabling digests.
func (s Service) SendTest(ctx context.Context, actorID string, to string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	to = strings.TrimSpace(to)
	if to == "" {
		return domainerrors.ErrRecipientRequired
	}
	settings, found, err := s.Repo.GetMailSettings(ctx)
	if err != nil {
		return err
	}
	if !found || !settings.Enabled {
		return domainerrors.ErrMailDisabled
	}
	return s.Mailer.Send(ctx, settings, to,
		"Test message",
		"<p>This is a test message confirming your mail settings work.</p>")
}

func (s Service) requireAdmin(ctx context.Context, actorID string) error {
	if strings.TrimSpace(actorID) == "" {
		return domainerrors.ErrForbidden
	}
	actor, found, err := s.Directory.GetActor(ctx, actorID)
	if err != nil {
		return err
	}
	if !found || !accesspolicy.IsAdmin(&actor) {
		return domainerrors.ErrForbidden
	}
	return nil
}

func requireSelf(actorID string, userID string) error {
	if strings.TrimSpace(actorID) == "" || actorID != userID {
		return domainerrors.ErrForbidden
	}
	return nil
}
