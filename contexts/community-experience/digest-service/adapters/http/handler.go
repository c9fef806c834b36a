package httpadapter

import (
	"context"
	"log/slog"

	"newsdesk/contexts/community-experience/digest-service/application"
	"newsdesk/contexts/community-experience/digest-service/domain/entities"
	httptransport "newsdesk/contexts/community-experience/digest-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// GetPreferenceHandler godoc
// @Summary Get a user's digest preference
// @Description Self only. Missing rows read as disabled weekly.
// @Tags digest
// @Produce json
// @Param X-User-Id header string true "Caller"
// @Param userID path string true "User id"
// @Success 200 {object} httptransport.DigestPreferenceDTO
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /digest/{userID} [get]
func (h Handler) GetPreferenceHandler(ctx context.Context, actorID string, userID string) (httptransport.DigestPreferenceDTO, error) {
	preference, err := h.Service.GetPreference(ctx, actorID, userID)
	if err != nil {
		return httptransport.DigestPreferenceDTO{}, err
	}
	return mapPreference(preference), nil
}

// SetPreferenceHandler godoc
// @Summary Set a user's digest preference
// @Tags digest
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Caller"
// @Param userID path string true "User id"
// @Param request body httptransport.SetPreferenceRequest true "Preference"
// @Success 200 {object} httptransport.DigestPreferenceDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /digest/{userID} [put]
func (h Handler) SetPreferenceHandler(ctx context.Context, actorID string, userID string, req httptransport.SetPreferenceRequest) (httptransport.DigestPreferenceDTO, error) {
	preference, err := h.Service.SetPreference(ctx, actorID, userID, req.Enabled, req.Frequency)
	if err != nil {
		return httptransport.DigestPreferenceDTO{}, err
	}
	return mapPreference(preference), nil
}

// GetMailSettingsHandler godoc
// @Summary Get SMTP settings
// @Description Admin only; the password is never returned.
// @Tags digest
// @Produce json
// @Param X-User-Id header string true "Acting admin"
// @Success 200 {object} httptransport.MailSettingsDTO
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /mail-settings [get]
func (h Handler) GetMailSettingsHandler(ctx context.Context, actorID string) (httptransport.MailSettingsDTO, error) {
	settings, err := h.Service.GetMailSettings(ctx, actorID)
	if err != nil {
		return httptransport.MailSettingsDTO{}, err
	}
	return httptransport.MailSettingsDTO{
		Host:        settings.Host,
		Port:        settings.Port,
		Username:    settings.Username,
		Encryption:  settings.Encryption,
		FromAddress: settings.FromAddress,
		FromName:    settings.FromName,
		Enabled:     settings.Enabled,
	}, nil
}

// SetMailSettingsHandler godoc
// @Summary Save SMTP settings
// @Description Admin only. A blank password keeps the stored secret.
// @Tags digest
// @Accept json
// @Param X-User-Id header string true "Acting admin"
// @Param request body httptransport.SetMailSettingsRequest true "Settings"
// @Success 204
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /mail-settings [put]
func (h Handler) SetMailSettingsHandler(ctx context.Context, actorID string, req httptransport.SetMailSettingsRequest) error {
	return h.Service.SetMailSettings(ctx, actorID, entities.MailSettings{
		Host:        req.Host,
		Port:        req.Port,
		Username:    req.Username,
		Password:    req.Password,
		Encryption:  req.Encryption,
		FromAddress: req.FromAddress,
		FromName:    req.FromName,
		Enabled:     req.Enabled,
	})
}

// SendTestHandler godoc
// @Summary Send a test message
// @Tags digest
// @Accept json
// @Param X-User-Id header string true "Acting admin"
// @Param request body httptransport.SendTestRequest true "Recipient"
// @Success 204
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /mail-settings/test [post]
func (h Handler) SendTestHandler(ctx context.Context, actorID string, req httptransport.SendTestRequest) error {
	return h.Service.SendTest(ctx, actorID, req.To)
}

func mapPreference(preference entities.DigestPreference) httptransport.DigestPreferenceDTO {
	return httptransport.DigestPreferenceDTO{
		Enabled:   preference.Enabled,
		Frequency: preference.Frequency,
	}
}
