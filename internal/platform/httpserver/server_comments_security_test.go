package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	commenthttp "newsdesk/contexts/publishing/comment-service/transport/http"
)

func postComment(t *testing.T, server *Server, userID string, articleID string, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/articles/"+articleID+"/comments", bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func TestPostCommentRequiresUserHeader(t *testing.T) {
	server := newTestServer()
	rr := postComment(t, server, "", "a1", `{"content":"hello"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestGuestCannotComment(t *testing.T) {
	server := newTestServer()
	rr := postComment(t, server, "u4", "a1", `{"content":"hello"}`)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPostCommentSuccessNotifiesAuthor(t *testing.T) {
	server := newTestServer()
	rr := postComment(t, server, "u3", "a1", `{"content":"great read"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/u1", nil)
	req.Header.Set("X-User-Id", "u1")
	rec := httptest.NewRecorder()
	server.mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("John User commented on")) {
		t.Fatalf("expected comment notification for the article author, got %s", rec.Body.String())
	}
}

func TestPostEmptyCommentRejected(t *testing.T) {
	server := newTestServer()
	rr := postComment(t, server, "u3", "a1", `{"content":"   "}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPostCommentUnknownArticle(t *testing.T) {
	server := newTestServer()
	rr := postComment(t, server, "u3", "missing", `{"content":"hello"}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDeleteCommentForbiddenForOtherUser(t *testing.T) {
	server := newTestServer()
	rr := postComment(t, server, "u3", "a1", `{"content":"great read"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("post comment failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var dto commenthttp.CommentDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// u2's grant covers euc, not the welcome article's section.
	req := httptest.NewRequest(http.MethodDelete, "/api/comments/"+dto.ID, nil)
	req.Header.Set("X-User-Id", "u2")
	rec := httptest.NewRecorder()
	server.mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestDeleteCommentSubtreeAsAdmin(t *testing.T) {
	server := newTestServer()
	rr := postComment(t, server, "u3", "a1", `{"content":"root"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("post comment failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var root commenthttp.CommentDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &root); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if rr = postComment(t, server, "u1", "a1", `{"content":"reply","parent_id":"`+root.ID+`"}`); rr.Code != http.StatusOK {
		t.Fatalf("post reply failed: %d body=%s", rr.Code, rr.Body.String())
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/comments/"+root.ID, nil)
	req.Header.Set("X-User-Id", "u1")
	rec := httptest.NewRecorder()
	server.mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/articles/a1/comments", nil)
	rec = httptest.NewRecorder()
	server.mux.ServeHTTP(rec, req)
	var list commenthttp.ListCommentsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(list.Items) != 0 {
		t.Fatalf("expected subtree removed, got %+v", list.Items)
	}
}
