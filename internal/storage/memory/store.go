// Package memory is the process-local store used for demos and tests. One
// mutex-guarded Store implements every service repository port plus the
// cross-context Directory, so multi-entity cascades are trivially atomic.
package memory

import (
	"context"
	"strconv"
	"sync"

	digestentities "newsdesk/contexts/community-experience/digest-service/domain/entities"
	notificationentities "newsdesk/contexts/community-experience/notification-service/domain/entities"
	identityentities "newsdesk/contexts/identity-access/identity-service/domain/entities"
	identityerrors "newsdesk/contexts/identity-access/identity-service/domain/errors"
	articleentities "newsdesk/contexts/publishing/article-service/domain/entities"
	commententities "newsdesk/contexts/publishing/comment-service/domain/entities"
	sectionentities "newsdesk/contexts/publishing/section-service/domain/entities"
	"newsdesk/contracts/accesspolicy"
)

type Store struct {
	mu sync.Mutex

	users    []identityentities.User
	sections []sectionentities.Section
	grants   []sectionentities.EditorGrant

	articles []articleentities.Article
	comments []commententities.Comment

	notifications []notificationentities.Notification
	digests       map[string]digestentities.DigestPreference
	mail          *digestentities.MailSettings

	nextID int
}

func NewStore() *Store {
	return &Store{
		digests: make(map[string]digestentities.DigestPreference),
		nextID:  1000,
	}
}

// NewID issues process-local sequential ids.
func (s *Store) NewID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return strconv.Itoa(s.nextID), nil
}

// GetActor implements the Directory port shared by the publishing and
// community services.
func (s *Store) GetActor(ctx context.Context, userID string) (accesspolicy.Actor, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.ID == userID {
			return accesspolicy.Actor{
				ID:     user.ID,
				Name:   user.Name,
				Avatar: user.Avatar,
				Role:   accesspolicy.Role(user.Role),
			}, true, nil
		}
	}
	return accesspolicy.Actor{}, false, nil
}

func (s *Store) GrantSet(ctx context.Context, userID string) (accesspolicy.GrantSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := make(accesspolicy.GrantSet)
	for _, grant := range s.grants {
		if grant.UserID == userID {
			set[grant.SectionID] = struct{}{}
		}
	}
	return set, nil
}

func (s *Store) CreateUser(ctx context.Context, user identityentities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return identityerrors.ErrEmailTaken
		}
	}
	s.users = append(s.users, user)
	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (identityentities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return identityentities.User{}, identityerrors.ErrUserNotFound
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (identityentities.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			return user, true, nil
		}
	}
	return identityentities.User{}, false, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]identityentities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]identityentities.User(nil), s.users...), nil
}

func (s *Store) UpdateUserRole(ctx context.Context, id string, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Role = role
			return nil
		}
	}
	return identityerrors.ErrUserNotFound
}

func (s *Store) UpdateUserPassword(ctx context.Context, id string, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].PasswordHash = passwordHash
			return nil
		}
	}
	return identityerrors.ErrUserNotFound
}

// DeleteUserCascade removes the user together with their grants,
// notifications and digest preference. Author snapshots on articles and
// comments are untouched.
func (s *Store) DeleteUserCascade(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for i, user := range s.users {
		if user.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return identityerrors.ErrUserNotFound
	}
	kept := s.grants[:0]
	for _, grant := range s.grants {
		if grant.UserID != id {
			kept = append(kept, grant)
		}
	}
	s.grants = kept
	keptNotifications := s.notifications[:0]
	for _, n := range s.notifications {
		if n.UserID != id {
			keptNotifications = append(keptNotifications, n)
		}
	}
	s.notifications = keptNotifications
	delete(s.digests, id)
	return nil
}
