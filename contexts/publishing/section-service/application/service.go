package application

import (
	"context"
	"log/slog"
	"strings"

	"newsdesk/contexts/publishing/section-service/domain/entities"
	domainerrors "newsdesk/contexts/publishing/section-service/domain/errors"
	"newsdesk/contexts/publishing/section-service/ports"
	"newsdesk/contracts/accesspolicy"
)

type Service struct {
	Repo      ports.Repository
	Directory ports.Directory
	Logger    *slog.Logger
}

func (s Service) List(ctx context.Context) ([]entities.Section, error) {
	return s.Repo.ListSections(ctx)
}

// ListEditable narrows the section tree to what the caller may author in,
// preserving registry order. It backs the composer's section picker.
func (s Service) ListEditable(ctx context.Context, actorID string) ([]entities.Section, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, domainerrors.ErrForbidden
	}
	actor, found, err := s.Directory.GetActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainerrors.ErrForbidden
	}
	sections, err := s.Repo.ListSections(ctx)
	if err != nil {
		return nil, err
	}
	grants, err := s.Directory.GrantSet(ctx, actorID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(sections))
	byID := make(map[string]entities.Section, len(sections))
	for _, section := range sections {
		ids = append(ids, section.ID)
		byID[section.ID] = section
	}
	editable := make([]entities.Section, 0, len(sections))
	for _, id := range accesspolicy.EditableSections(&actor, ids, grants) {
		editable = append(editable, byID[id])
	}
	return editable, nil
}

// CreateSection derives the section id from its title the way the reference
// navigation does: lowercase, whitespace runs collapsed to a hyphen.
func (s Service) CreateSection(ctx context.Context, actorID string, title string) (entities.Section, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return entities.Section{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Section{}, domainerrors.ErrTitleRequired
	}
	section := entities.Section{ID: slugify(title), Title: title}
	if err := s.Repo.CreateSection(ctx, section); err != nil {
		return entities.Section{}, err
	}
	resolveLogger(s.Logger).Info("section created",
		"event", "sections_created",
		"module", "publishing/section-service",
		"layer", "application",
		"section_id", section.ID,
	)
	return section, nil
}

func (s Service) DeleteSection(ctx context.Context, actorID string, sectionID string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	exists, err := s.Repo.SectionExists(ctx, sectionID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrSectionNotFound
	}
	if err := s.Repo.DeleteSectionCascade(ctx, sectionID); err != nil {
		return err
	}
	resolveLogger(s.Logger).Info("section deleted",
		"event", "sections_deleted",
		"module", "publishing/section-service",
		"layer", "application",
		"section_id", sectionID,
	)
	return nil
}

func (s Service) CreateSubsection(ctx context.Context, actorID string, sectionID string, title string) (entities.Subsection, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return entities.Subsection{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Subsection{}, domainerrors.ErrTitleRequired
	}
	exists, err := s.Repo.SectionExists(ctx, sectionID)
	if err != nil {
		return entities.Subsection{}, err
	}
	if !exists {
		return entities.Subsection{}, domainerrors.ErrSectionNotFound
	}
	subsection := entities.Subsection{ID: slugify(title), Title: title}
	if err := s.Repo.CreateSubsection(ctx, sectionID, subsection); err != nil {
		return entities.Subsection{}, err
	}
	return subsection, nil
}

func (s Service) ListGrants(ctx context.Context, actorID string) ([]entities.EditorGrant, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	return s.Repo.ListGrants(ctx)
}

// Grant gives a user editor capability over one section. Guests hold no
// capabilities, so granting to a guest account is rejected outright.
func (s Service) Grant(ctx context.Context, actorID string, userID string, sectionID string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	target, found, err := s.Directory.GetActor(ctx, userID)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrUserNotFound
	}
	if target.Role == accesspolicy.RoleGuest {
		return domainerrors.ErrGuestGrant
	}
	exists, err := s.Repo.SectionExists(ctx, sectionID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrSectionNotFound
	}
	if err := s.Repo.CreateGrant(ctx, entities.EditorGrant{UserID: userID, SectionID: sectionID}); err != nil {
		return err
	}
	resolveLogger(s.Logger).Info("editor grant created",
		"event", "sections_grant_created",
		"module", "publishing/section-service",
		"layer", "application",
		"user_id", userID,
		"section_id", sectionID,
	)
	return nil
}

func (s Service) Revoke(ctx context.Context, actorID string, userID string, sectionID string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	return s.Repo.DeleteGrant(ctx, userID, sectionID)
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

func slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}
