package ports

import (
	"context"

	"newsdesk/contexts/identity-access/identity-service/domain/entities"
)

// IDGenerator abstracts id generation for new user records.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// PasswordHasher abstracts the credential hash so the application layer
// stays crypto-free.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// RegisterInput carries a registration request after transport decoding.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Avatar   string
}

// Repository is the user registry boundary. DeleteUserCascade removes the
// user together with their editor grants, received notifications and digest
// preference in one atomic unit; authored articles and comments keep their
// author snapshots.
type Repository interface {
	CreateUser(ctx context.Context, user entities.User) error
	GetUser(ctx context.Context, id string) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, bool, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	UpdateUserRole(ctx context.Context, id string, role string) error
	UpdateUserPassword(ctx context.Context, id string, passwordHash string) error
	DeleteUserCascade(ctx context.Context, id string) error
}
