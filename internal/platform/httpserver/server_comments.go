package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	commenterrors "newsdesk/contexts/publishing/comment-service/domain/errors"
	commenthttp "newsdesk/contexts/publishing/comment-service/transport/http"
)

func writeCommentError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, commenthttp.ErrorResponse{Code: code, Message: message})
}

func writeCommentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, commenterrors.ErrForbidden):
		writeCommentError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, commenterrors.ErrArticleNotFound),
		errors.Is(err, commenterrors.ErrCommentNotFound):
		writeCommentError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, commenterrors.ErrCommentsDisabled):
		writeCommentError(w, http.StatusConflict, "comments_disabled", err.Error())
	case errors.Is(err, commenterrors.ErrContentRequired),
		errors.Is(err, commenterrors.ErrParentNotFound),
		errors.Is(err, commenterrors.ErrParentMismatch):
		writeCommentError(w, http.StatusUnprocessableEntity, "invalid_comment", err.Error())
	default:
		writeCommentError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	resp, err := s.comments.Handler.ListCommentsHandler(r.Context(), actorID(r), r.PathValue("id"))
	if err != nil {
		writeCommentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePostComment(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeCommentError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req commenthttp.PostCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCommentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.comments.Handler.PostCommentHandler(r.Context(), caller, r.PathValue("id"), req)
	if err != nil {
		writeCommentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeCommentError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	if err := s.comments.Handler.DeleteCommentHandler(r.Context(), caller, r.PathValue("id")); err != nil {
		writeCommentDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
