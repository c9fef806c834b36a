package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	sectionerrors "newsdesk/contexts/publishing/section-service/domain/errors"
	sectionhttp "newsdesk/contexts/publishing/section-service/transport/http"
)

func writeSectionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, sectionhttp.ErrorResponse{Code: code, Message: message})
}

func writeSectionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sectionerrors.ErrForbidden):
		writeSectionError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, sectionerrors.ErrSectionExists),
		errors.Is(err, sectionerrors.ErrDuplicateGrant):
		writeSectionError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, sectionerrors.ErrSectionNotFound),
		errors.Is(err, sectionerrors.ErrUserNotFound),
		errors.Is(err, sectionerrors.ErrGrantNotFound):
		writeSectionError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, sectionerrors.ErrTitleRequired),
		errors.Is(err, sectionerrors.ErrGuestGrant):
		writeSectionError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeSectionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	resp, err := s.sections.Handler.ListSectionsHandler(r.Context())
	if err != nil {
		writeSectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListEditableSections(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeSectionError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	resp, err := s.sections.Handler.ListEditableSectionsHandler(r.Context(), caller)
	if err != nil {
		writeSectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateSection(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeSectionError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req sectionhttp.CreateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSectionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.sections.Handler.CreateSectionHandler(r.Context(), caller, req)
	if err != nil {
		writeSectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteSection(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeSectionError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	if err := s.sections.Handler.DeleteSectionHandler(r.Context(), caller, r.PathValue("id")); err != nil {
		writeSectionDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateSubsection(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeSectionError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req sectionhttp.CreateSubsectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSectionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.sections.Handler.CreateSubsectionHandler(r.Context(), caller, r.PathValue("id"), req)
	if err != nil {
		writeSectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListGrants(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeSectionError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	resp, err := s.sections.Handler.ListGrantsHandler(r.Context(), caller)
	if err != nil {
		writeSectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateGrant(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeSectionError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req sectionhttp.CreateGrantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSectionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := s.sections.Handler.CreateGrantHandler(r.Context(), caller, req); err != nil {
		writeSectionDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteGrant(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeSectionError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	err := s.sections.Handler.DeleteGrantHandler(
		r.Context(),
		caller,
		r.PathValue("userID"),
		r.PathValue("sectionID"),
	)
	if err != nil {
		writeSectionDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
