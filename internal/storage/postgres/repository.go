// Package postgres is the shared gorm repository backing every service
// port. One adapter owning all tables keeps multi-entity cascades and
// notification fan-out inside single database transactions.
package postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	digestports "newsdesk/contexts/community-experience/digest-service/ports"
	notificationports "newsdesk/contexts/community-experience/notification-service/ports"
	identityentities "newsdesk/contexts/identity-access/identity-service/domain/entities"
	identityerrors "newsdesk/contexts/identity-access/identity-service/domain/errors"
	identityports "newsdesk/contexts/identity-access/identity-service/ports"
	articleports "newsdesk/contexts/publishing/article-service/ports"
	commentports "newsdesk/contexts/publishing/comment-service/ports"
	sectionports "newsdesk/contexts/publishing/section-service/ports"
	"newsdesk/contracts/accesspolicy"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// AutoMigrate creates or updates every table the platform uses.
func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&userModel{},
		&sectionModel{},
		&subsectionModel{},
		&grantModel{},
		&articleModel{},
		&articleTagModel{},
		&attachmentModel{},
		&commentModel{},
		&notificationModel{},
		&digestPreferenceModel{},
		&mailSettingsModel{},
	)
}

func (r *Repository) GetActor(ctx context.Context, userID string) (accesspolicy.Actor, bool, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return accesspolicy.Actor{}, false, nil
		}
		return accesspolicy.Actor{}, false, r.logError("storage_get_actor_failed", err, "user_id", userID)
	}
	return accesspolicy.Actor{
		ID:     row.ID,
		Name:   row.Name,
		Avatar: row.Avatar,
		Role:   accesspolicy.Role(row.Role),
	}, true, nil
}

func (r *Repository) GrantSet(ctx context.Context, userID string) (accesspolicy.GrantSet, error) {
	var rows []grantModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Find(&rows).Error; err != nil {
		return nil, r.logError("storage_grant_set_failed", err, "user_id", userID)
	}
	set := make(accesspolicy.GrantSet, len(rows))
	for _, row := range rows {
		set[row.SectionID] = struct{}{}
	}
	return set, nil
}

func (r *Repository) CreateUser(ctx context.Context, user identityentities.User) error {
	row := userModelFromEntity(user)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return identityerrors.ErrEmailTaken
		}
		return r.logError("storage_create_user_failed", err, "user_id", user.ID)
	}
	return nil
}

func (r *Repository) GetUser(ctx context.Context, id string) (identityentities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(id)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return identityentities.User{}, identityerrors.ErrUserNotFound
		}
		return identityentities.User{}, r.logError("storage_get_user_failed", err, "user_id", id)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (identityentities.User, bool, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(email)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return identityentities.User{}, false, nil
		}
		return identityentities.User{}, false, r.logError("storage_get_user_by_email_failed", err)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]identityentities.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("storage_list_users_failed", err)
	}
	users := make([]identityentities.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toEntity())
	}
	return users, nil
}

func (r *Repository) UpdateUserRole(ctx context.Context, id string, role string) error {
	result := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", strings.TrimSpace(id)).
		Update("role", role)
	if result.Error != nil {
		return r.logError("storage_update_user_role_failed", result.Error, "user_id", id)
	}
	if result.RowsAffected == 0 {
		return identityerrors.ErrUserNotFound
	}
	return nil
}

func (r *Repository) UpdateUserPassword(ctx context.Context, id string, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", strings.TrimSpace(id)).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return r.logError("storage_update_user_password_failed", result.Error, "user_id", id)
	}
	if result.RowsAffected == 0 {
		return identityerrors.ErrUserNotFound
	}
	return nil
}

// DeleteUserCascade removes the user with their grants, notifications and
// digest preference in one transaction. Author snapshots on articles and
// comments stay untouched.
func (r *Repository) DeleteUserCascade(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&userModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return identityerrors.ErrUserNotFound
		}
		if err := tx.Where("user_id = ?", id).Delete(&grantModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&notificationModel{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", id).Delete(&digestPreferenceModel{}).Error
	})
	if err != nil {
		if errors.Is(err, identityerrors.ErrUserNotFound) {
			return err
		}
		return r.logError("storage_delete_user_cascade_failed", err, "user_id", id)
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "storage/postgres",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("storage operation failed", fields...)
	return err
}

func userModelFromEntity(user identityentities.User) userModel {
	return userModel{
		ID:           strings.TrimSpace(user.ID),
		Name:         user.Name,
		Email:        strings.TrimSpace(user.Email),
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		Avatar:       user.Avatar,
	}
}

func (m userModel) toEntity() identityentities.User {
	return identityentities.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		Avatar:       m.Avatar,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ identityports.Repository = (*Repository)(nil)
var _ sectionports.Repository = (*Repository)(nil)
var _ articleports.Repository = (*Repository)(nil)
var _ commentports.Repository = (*Repository)(nil)
var _ notificationports.Repository = (*Repository)(nil)
var _ digestports.Repository = (*Repository)(nil)
var _ sectionports.Directory = (*Repository)(nil)
var _ articleports.Directory = (*Repository)(nil)
