package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	digesterrors "newsdesk/contexts/community-experience/digest-service/domain/errors"
	digesthttp "newsdesk/contexts/community-experience/digest-service/transport/http"
)

func writeDigestError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, digesthttp.ErrorResponse{Code: code, Message: message})
}

func writeDigestDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, digesterrors.ErrForbidden):
		writeDigestError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, digesterrors.ErrInvalidFrequency),
		errors.Is(err, digesterrors.ErrRecipientRequired):
		writeDigestError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, digesterrors.ErrMailDisabled):
		writeDigestError(w, http.StatusConflict, "mail_disabled", err.Error())
	default:
		writeDigestError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleGetDigestPreference(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeDigestError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	resp, err := s.digest.Handler.GetPreferenceHandler(r.Context(), caller, r.PathValue("userID"))
	if err != nil {
		writeDigestDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetDigestPreference(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeDigestError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req digesthttp.SetPreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDigestError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.digest.Handler.SetPreferenceHandler(r.Context(), caller, r.PathValue("userID"), req)
	if err != nil {
		writeDigestDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetMailSettings(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeDigestError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	resp, err := s.digest.Handler.GetMailSettingsHandler(r.Context(), caller)
	if err != nil {
		writeDigestDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetMailSettings(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeDigestError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req digesthttp.SetMailSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDigestError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := s.digest.Handler.SetMailSettingsHandler(r.Context(), caller, req); err != nil {
		writeDigestDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSendTestMail(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeDigestError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req digesthttp.SendTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDigestError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := s.digest.Handler.SendTestHandler(r.Context(), caller, req); err != nil {
		writeDigestDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
