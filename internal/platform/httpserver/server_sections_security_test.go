package httpserver

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestListSectionsIsPublic(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/sections", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"euc"`) {
		t.Fatalf("expected seeded section in body, got %s", rr.Body.String())
	}
}

func TestListEditableSectionsRequiresUserHeader(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/sections/editable", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListEditableSectionsScopedToGrants(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/sections/editable", nil)
	req.Header.Set("X-User-Id", "u2")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	if !strings.Contains(body, `"euc"`) {
		t.Fatalf("expected granted section in body, got %s", body)
	}
	if strings.Contains(body, `"hr"`) || strings.Contains(body, `"general"`) {
		t.Fatalf("ungranted sections must be filtered out, got %s", body)
	}
}

func TestListEditableSectionsEmptyForPlainUser(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/sections/editable", nil)
	req.Header.Set("X-User-Id", "u3")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"items":[]`) {
		t.Fatalf("expected empty items for ungranted user, got %s", rr.Body.String())
	}
}

func TestCreateSectionRequiresUserHeader(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"title":"Engineering"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sections", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateSectionForbiddenForEditor(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"title":"Engineering"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sections", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "u2")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateSectionAdminSuccess(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"title":"Engineering News"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sections", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "u1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"engineering-news"`) {
		t.Fatalf("expected slug id in body, got %s", rr.Body.String())
	}
}

func TestDeleteSectionNotFound(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodDelete, "/api/sections/missing", nil)
	req.Header.Set("X-User-Id", "u1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListGrantsForbiddenForUser(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/section-editors", nil)
	req.Header.Set("X-User-Id", "u3")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateGrantForGuestRejected(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"user_id":"u4","section_id":"hr"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/section-editors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "u1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDuplicateGrantConflicts(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"user_id":"u2","section_id":"euc"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/section-editors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "u1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDeleteGrantNotFound(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodDelete, "/api/section-editors/u3/hr", nil)
	req.Header.Set("X-User-Id", "u1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}
