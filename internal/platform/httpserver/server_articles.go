package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	articleerrors "newsdesk/contexts/publishing/article-service/domain/errors"
	articleports "newsdesk/contexts/publishing/article-service/ports"
	articlehttp "newsdesk/contexts/publishing/article-service/transport/http"
)

func writeArticleError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, articlehttp.ErrorResponse{Code: code, Message: message})
}

func writeArticleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, articleerrors.ErrForbidden):
		writeArticleError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, articleerrors.ErrArticleNotFound),
		errors.Is(err, articleerrors.ErrSectionNotFound):
		writeArticleError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, articleerrors.ErrTitleRequired),
		errors.Is(err, articleerrors.ErrInvalidStatus):
		writeArticleError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeArticleError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := articleports.ListFilter{
		SectionID:    query.Get("section"),
		SubsectionID: query.Get("subsection"),
		Tag:          query.Get("tag"),
		Query:        query.Get("q"),
	}

	resp, err := s.articles.Handler.ListArticlesHandler(r.Context(), actorID(r), filter)
	if err != nil {
		writeArticleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	resp, err := s.articles.Handler.GetArticleHandler(r.Context(), actorID(r), r.PathValue("id"))
	if err != nil {
		writeArticleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeArticleError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req articlehttp.ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeArticleError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.articles.Handler.CreateArticleHandler(r.Context(), caller, req)
	if err != nil {
		writeArticleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateArticle(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeArticleError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req articlehttp.ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeArticleError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.articles.Handler.UpdateArticleHandler(r.Context(), caller, r.PathValue("id"), req)
	if err != nil {
		writeArticleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteArticle(w http.ResponseWriter, r *http.Request) {
	caller := actorID(r)
	if caller == "" {
		writeArticleError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	if err := s.articles.Handler.DeleteArticleHandler(r.Context(), caller, r.PathValue("id")); err != nil {
		writeArticleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	resp, err := s.articles.Handler.ListTagsHandler(r.Context())
	if err != nil {
		writeArticleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
