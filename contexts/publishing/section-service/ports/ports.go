package ports

import (
	"context"

	"newsdesk/contexts/publishing/section-service/domain/entities"
	"newsdesk/contracts/accesspolicy"
)

// Directory resolves the calling user and their editor grants for
// permission checks.
type Directory interface {
	GetActor(ctx context.Context, userID string) (accesspolicy.Actor, bool, error)
	GrantSet(ctx context.Context, userID string) (accesspolicy.GrantSet, error)
}

// Repository is the section tree and grant registry boundary.
// DeleteSectionCascade removes the section with its subsections and editor
// grants in one atomic unit; articles filed under it are left in place.
type Repository interface {
	ListSections(ctx context.Context) ([]entities.Section, error)
	SectionExists(ctx context.Context, id string) (bool, error)
	CreateSection(ctx context.Context, section entities.Section) error
	DeleteSectionCascade(ctx context.Context, id string) error
	CreateSubsection(ctx context.Context, sectionID string, subsection entities.Subsection) error

	ListGrants(ctx context.Context) ([]entities.EditorGrant, error)
	CreateGrant(ctx context.Context, grant entities.EditorGrant) error
	DeleteGrant(ctx context.Context, userID string, sectionID string) error
}
