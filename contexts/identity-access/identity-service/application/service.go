package application

import (
	"context"
	"log/slog"
	"strings"

	"newsdesk/contexts/identity-access/identity-service/domain/entities"
	domainerrors "newsdesk/contexts/identity-access/identity-service/domain/errors"
	"newsdesk/contexts/identity-access/identity-service/ports"
	"newsdesk/contracts/accesspolicy"
)

const (
	defaultPassword   = "password"
	minPasswordLength = 4
)

type Service struct {
	Repo   ports.Repository
	Hasher ports.PasswordHasher
	IDs    ports.IDGenerator
	Logger *slog.Logger
}

// List returns every account without credential material; PasswordHash is
// blanked so transport mapping cannot leak it.
func (s Service) List(ctx context.Context) ([]entities.User, error) {
	users, err := s.Repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s Service) Register(ctx context.Context, input ports.RegisterInput) (entities.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" {
		return entities.User{}, domainerrors.ErrNameRequired
	}
	if email == "" {
		return entities.User{}, domainerrors.ErrEmailRequired
	}
	if _, exists, err := s.Repo.GetUserByEmail(ctx, email); err != nil {
		return entities.User{}, err
	} else if exists {
		return entities.User{}, domainerrors.ErrEmailTaken
	}

	password := input.Password
	if password == "" {
		password = defaultPassword
	}
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return entities.User{}, err
	}
	id, err := s.IDs.NewID(ctx)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         string(accesspolicy.RoleUser),
		Avatar:       strings.TrimSpace(input.Avatar),
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return entities.User{}, err
	}

	resolveLogger(s.Logger).Info("user registered",
		"event", "identity_user_registered",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", user.ID,
	)
	user.PasswordHash = ""
	return user, nil
}

// Login checks credentials and returns the user record. There is no session
// token in this design; callers carry the user id on subsequent requests.
func (s Service) Login(ctx context.Context, email string, password string) (entities.User, error) {
	user, exists, err := s.Repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return entities.User{}, err
	}
	if !exists {
		return entities.User{}, domainerrors.ErrInvalidCredentials
	}
	if err := s.Hasher.Compare(user.PasswordHash, password); err != nil {
		return entities.User{}, domainerrors.ErrInvalidCredentials
	}
	user.PasswordHash = ""
	return user, nil
}

func (s Service) ChangeRole(ctx context.Context, actorID string, userID string, role string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if !accesspolicy.Role(role).Valid() {
		return domainerrors.ErrInvalidRole
	}
	if _, err := s.Repo.GetUser(ctx, userID); err != nil {
		return err
	}
	if err := s.Repo.UpdateUserRole(ctx, userID, role); err != nil {
		return err
	}
	resolveLogger(s.Logger).Info("user role changed",
		"event", "identity_role_changed",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", userID,
		"role", role,
	)
	return nil
}

func (s Service) ChangePassword(ctx context.Context, actorID string, userID string, password string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if len(password) < minPasswordLength {
		return domainerrors.ErrPasswordTooShort
	}
	if _, err := s.Repo.GetUser(ctx, userID); err != nil {
		return err
	}
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return err
	}
	return s.Repo.UpdateUserPassword(ctx, userID, hash)
}

// Delete removes the account and cascades grants, notifications and digest
// preference. Authorship records on articles and comments are left intact so
// attribution stays historically accurate.
func (s Service) Delete(ctx context.Context, actorID string, userID string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if actorID == userID {
		return domainerrors.ErrSelfDelete
	}
	if _, err := s.Repo.GetUser(ctx, userID); err != nil {
		return err
	}
	if err := s.Repo.DeleteUserCascade(ctx, userID); err != nil {
		return err
	}
	resolveLogger(s.Logger).Info("user deleted",
		"event", "identity_user_deleted",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", userID,
	)
	return nil
}

func (s Service) requireAdmin(ctx context.Context, actorID string) error {
	if strings.TrimSpace(actorID) == "" {
		return domainerrors.ErrForbidden
	}
	actor, err := s.Repo.GetUser(ctx, actorID)
	if err != nil {
		return domainerrors.ErrForbidden
	}
	if actor.Role != string(accesspolicy.RoleAdmin) {
		return domainerrors.ErrForbidden
	}
	return nil
}
