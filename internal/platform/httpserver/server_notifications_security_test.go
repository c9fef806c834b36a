package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	notificationhttp "newsdesk/contexts/community-experience/notification-service/transport/http"
)

func TestListNotificationsRequiresUserHeader(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/u3", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListNotificationsCrossUserForbidden(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/u2", nil)
	req.Header.Set("X-User-Id", "u3")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestMarkReadUnknownNotification(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPut, "/api/notifications/missing/read", nil)
	req.Header.Set("X-User-Id", "u3")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestMarkReadOwnNotification(t *testing.T) {
	server := newTestServer()
	if rr := postArticle(t, server, "u1", `{"title":"All hands","section_id":"general"}`); rr.Code != http.StatusOK {
		t.Fatalf("seed article failed: %d body=%s", rr.Code, rr.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/u3", nil)
	req.Header.Set("X-User-Id", "u3")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	var list notificationhttp.ListNotificationsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(list.Items) == 0 {
		t.Fatal("expected a publish notification for u3")
	}

	// Another user cannot mark it read.
	req = httptest.NewRequest(http.MethodPut, "/api/notifications/"+list.Items[0].ID+"/read", nil)
	req.Header.Set("X-User-Id", "u2")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodPut, "/api/notifications/"+list.Items[0].ID+"/read", nil)
	req.Header.Set("X-User-Id", "u3")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestMarkAllReadScopedToCaller(t *testing.T) {
	server := newTestServer()
	if rr := postArticle(t, server, "u1", `{"title":"All hands","section_id":"general"}`); rr.Code != http.StatusOK {
		t.Fatalf("seed article failed: %d body=%s", rr.Code, rr.Body.String())
	}

	req := httptest.NewRequest(http.MethodPut, "/api/notifications/read-all", nil)
	req.Header.Set("X-User-Id", "u3")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/notifications/u3", nil)
	req.Header.Set("X-User-Id", "u3")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	var mine notificationhttp.ListNotificationsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &mine); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, n := range mine.Items {
		if !n.Read {
			t.Fatalf("expected all read for u3, got %+v", mine.Items)
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/api/notifications/u2", nil)
	req.Header.Set("X-User-Id", "u2")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	var theirs notificationhttp.ListNotificationsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &theirs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(theirs.Items) == 0 || theirs.Items[0].Read {
		t.Fatalf("expected u2 notifications untouched, got %+v", theirs.Items)
	}
}
