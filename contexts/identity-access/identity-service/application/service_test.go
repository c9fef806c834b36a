package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"newsdesk/contexts/identity-access/identity-service/domain/entities"
	domainerrors "newsdesk/contexts/identity-access/identity-service/domain/errors"
	"newsdesk/contexts/identity-access/identity-service/ports"
)

type fakeRepo struct {
	users    map[string]entities.User
	cascaded []string
}

func newFakeRepo(users ...entities.User) *fakeRepo {
	r := &fakeRepo{users: make(map[string]entities.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeRepo) CreateUser(ctx context.Context, user entities.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domainerrors.ErrEmailTaken
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeRepo) GetUser(ctx context.Context, id string) (entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeRepo) GetUserByEmail(ctx context.Context, email string) (entities.User, bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return entities.User{}, false, nil
}

func (r *fakeRepo) ListUsers(ctx context.Context) ([]entities.User, error) {
	out := make([]entities.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeRepo) UpdateUserRole(ctx context.Context, id string, role string) error {
	u := r.users[id]
	u.Role = role
	r.users[id] = u
	return nil
}

func (r *fakeRepo) UpdateUserPassword(ctx context.Context, id string, hash string) error {
	u := r.users[id]
	u.PasswordHash = hash
	r.users[id] = u
	return nil
}

func (r *fakeRepo) DeleteUserCascade(ctx context.Context, id string) error {
	delete(r.users, id)
	r.cascaded = append(r.cascaded, id)
	return nil
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "h:" + password, nil }

func (plainHasher) Compare(hash string, password string) error {
	if hash != "h:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type seqIDs struct{ n int }

func (g *seqIDs) NewID(ctx context.Context) (string, error) {
	g.n++
	return fmt.Sprintf("u_%d", g.n), nil
}

func newService(repo *fakeRepo) Service {
	return Service{Repo: repo, Hasher: plainHasher{}, IDs: &seqIDs{}}
}

func admin() entities.User {
	return entities.User{ID: "u1", Name: "Alice Admin", Email: "alice@corp.test", PasswordHash: "h:password", Role: "admin"}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeRepo(admin())
	svc := newService(repo)

	_, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Other", Email: "Alice@corp.test"})
	if !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterDefaultsRoleAndPassword(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Jane Doe", Email: "jane@corp.test"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != "user" {
		t.Fatalf("expected default role user, got %q", user.Role)
	}
	if user.PasswordHash != "" {
		t.Fatal("register must not return credential material")
	}
	if _, err := svc.Login(context.Background(), "jane@corp.test", "password"); err != nil {
		t.Fatalf("default password should log in: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newService(newFakeRepo(admin()))

	if _, err := svc.Login(context.Background(), "alice@corp.test", "wrong"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@corp.test", "password"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestChangeRoleRequiresAdmin(t *testing.T) {
	repo := newFakeRepo(admin(), entities.User{ID: "u3", Email: "john@corp.test", Role: "user"})
	svc := newService(repo)

	if err := svc.ChangeRole(context.Background(), "u3", "u3", "admin"); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.ChangeRole(context.Background(), "u1", "u3", "editor"); err != nil {
		t.Fatalf("admin role change failed: %v", err)
	}
	if repo.users["u3"].Role != "editor" {
		t.Fatalf("role not applied: %q", repo.users["u3"].Role)
	}
	if err := svc.ChangeRole(context.Background(), "u1", "u3", "owner"); !errors.Is(err, domainerrors.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestChangePasswordEnforcesMinLength(t *testing.T) {
	repo := newFakeRepo(admin(), entities.User{ID: "u3", Email: "john@corp.test", Role: "user"})
	svc := newService(repo)

	if err := svc.ChangePassword(context.Background(), "u1", "u3", "abc"); !errors.Is(err, domainerrors.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	if err := svc.ChangePassword(context.Background(), "u1", "u3", "abcd"); err != nil {
		t.Fatalf("password change failed: %v", err)
	}
}

func TestDeleteForbidsSelfAndNonAdmin(t *testing.T) {
	repo := newFakeRepo(admin(), entities.User{ID: "u3", Email: "john@corp.test", Role: "user"})
	svc := newService(repo)

	if err := svc.Delete(context.Background(), "u1", "u1"); !errors.Is(err, domainerrors.ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
	if err := svc.Delete(context.Background(), "u3", "u1"); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), "u1", "u3"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(repo.cascaded) != 1 || repo.cascaded[0] != "u3" {
		t.Fatalf("expected cascade for u3, got %v", repo.cascaded)
	}
}
