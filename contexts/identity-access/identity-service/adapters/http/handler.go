package httpadapter

import (
	"context"
	"log/slog"

	"newsdesk/contexts/identity-access/identity-service/application"
	"newsdesk/contexts/identity-access/identity-service/domain/entities"
	"newsdesk/contexts/identity-access/identity-service/ports"
	httptransport "newsdesk/contexts/identity-access/identity-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// ListUsersHandler godoc
// @Summary List users
// @Description Returns all accounts without credential material.
// @Tags identity
// @Produce json
// @Success 200 {object} httptransport.ListUsersResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /users [get]
func (h Handler) ListUsersHandler(ctx context.Context) (httptransport.ListUsersResponse, error) {
	users, err := h.Service.List(ctx)
	if err != nil {
		return httptransport.ListUsersResponse{}, err
	}
	return httptransport.ListUsersResponse{Items: mapUsers(users)}, nil
}

// RegisterHandler godoc
// @Summary Register a user
// @Description Creates an account with a unique email; role defaults to user.
// @Tags identity
// @Accept json
// @Produce json
// @Param request body httptransport.RegisterRequest true "Registration"
// @Success 200 {object} httptransport.UserDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /users [post]
func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterRequest) (httptransport.UserDTO, error) {
	user, err := h.Service.Register(ctx, ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

// LoginHandler godoc
// @Summary Log in
// @Description Checks credentials and returns the user record.
// @Tags identity
// @Accept json
// @Produce json
// @Param request body httptransport.LoginRequest true "Credentials"
// @Success 200 {object} httptransport.UserDTO
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /login [post]
func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.UserDTO, error) {
	user, err := h.Service.Login(ctx, req.Email, req.Password)
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

// ChangeRoleHandler godoc
// @Summary Change a user's global role
// @Tags identity
// @Accept json
// @Param X-User-Id header string true "Acting admin"
// @Param id path string true "User id"
// @Param request body httptransport.ChangeRoleRequest true "New role"
// @Success 204
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /users/{id}/role [put]
func (h Handler) ChangeRoleHandler(ctx context.Context, actorID string, userID string, req httptransport.ChangeRoleRequest) error {
	return h.Service.ChangeRole(ctx, actorID, userID, req.Role)
}

// ChangePasswordHandler godoc
// @Summary Change a user's password
// @Tags identity
// @Accept json
// @Param X-User-Id header string true "Acting admin"
// @Param id path string true "User id"
// @Param request body httptransport.ChangePasswordRequest true "New password"
// @Success 204
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /users/{id}/password [put]
func (h Handler) ChangePasswordHandler(ctx context.Context, actorID string, userID string, req httptransport.ChangePasswordRequest) error {
	return h.Service.ChangePassword(ctx, actorID, userID, req.Password)
}

// DeleteUserHandler godoc
// @Summary Delete a user
// @Description Cascades grants, notifications and digest preference.
// @Tags identity
// @Param X-User-Id header string true "Acting admin"
// @Param id path string true "User id"
// @Success 204
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /users/{id} [delete]
func (h Handler) DeleteUserHandler(ctx context.Context, actorID string, userID string) error {
	return h.Service.Delete(ctx, actorID, userID)
}

func mapUser(user entities.User) httptransport.UserDTO {
	return httptransport.UserDTO{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Avatar: user.Avatar,
	}
}

func mapUsers(users []entities.User) []httptransport.UserDTO {
	items := make([]httptransport.UserDTO, 0, len(users))
	for _, user := range users {
		items = append(items, mapUser(user))
	}
	return items
}
