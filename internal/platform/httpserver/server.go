package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	digest "newsdesk/contexts/community-experience/digest-service"
	notifications "newsdesk/contexts/community-experience/notification-service"
	identity "newsdesk/contexts/identity-access/identity-service"
	articles "newsdesk/contexts/publishing/article-service"
	comments "newsdesk/contexts/publishing/comment-service"
	sections "newsdesk/contexts/publishing/section-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "newsdesk/internal/platform/httpserver/docs"
)

type Server struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	addr          string
	identity      identity.Module
	sections      sections.Module
	articles      articles.Module
	comments      comments.Module
	notifications notifications.Module
	digest        digest.Module
}

func New(
	identityModule identity.Module,
	sectionsModule sections.Module,
	articlesModule articles.Module,
	commentsModule comments.Module,
	notificationsModule notifications.Module,
	digestModule digest.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		identity:      identityModule,
		sections:      sectionsModule,
		articles:      articlesModule,
		comments:      commentsModule,
		notifications: notificationsModule,
		digest:        digestModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/users", s.handleListUsers)
	s.mux.HandleFunc("POST /api/users", s.handleRegister)
	s.mux.HandleFunc("POST /api/login", s.handleLogin)
	s.mux.HandleFunc("PUT /api/users/{id}/role", s.handleChangeRole)
	s.mux.HandleFunc("PUT /api/users/{id}/password", s.handleChangePassword)
	s.mux.HandleFunc("DELETE /api/users/{id}", s.handleDeleteUser)

	s.mux.HandleFunc("GET /api/sections", s.handleListSections)
	s.mux.HandleFunc("GET /api/sections/editable", s.handleListEditableSections)
	s.mux.HandleFunc("POST /api/sections", s.handleCreateSection)
	s.mux.HandleFunc("DELETE /api/sections/{id}", s.handleDeleteSection)
	s.mux.HandleFunc("POST /api/sections/{id}/subsections", s.handleCreateSubsection)
	s.mux.HandleFunc("GET /api/section-editors", s.handleListGrants)
	s.mux.HandleFunc("POST /api/section-editors", s.handleCreateGrant)
	s.mux.HandleFunc("DELETE /api/section-editors/{userID}/{sectionID}", s.handleDeleteGrant)

	s.mux.HandleFunc("GET /api/articles", s.handleListArticles)
	s.mux.HandleFunc("POST /api/articles", s.handleCreateArticle)
	s.mux.HandleFunc("GET /api/articles/{id}", s.handleGetArticle)
	s.mux.HandleFunc("PUT /api/articles/{id}", s.handleUpdateArticle)
	s.mux.HandleFunc("DELETE /api/articles/{id}", s.handleDeleteArticle)
	s.mux.HandleFunc("GET /api/tags", s.handleListTags)

	s.mux.HandleFunc("GET /api/articles/{id}/comments", s.handleListComments)
	s.mux.HandleFunc("POST /api/articles/{id}/comments", s.handlePostComment)
	s.mux.HandleFunc("DELETE /api/comments/{id}", s.handleDeleteComment)

	s.mux.HandleFunc("GET /api/notifications/{userID}", s.handleListNotifications)
	s.mux.HandleFunc("PUT /api/notifications/read-all", s.handleMarkAllNotificationsRead)
	s.mux.HandleFunc("PUT /api/notifications/{id}/read", s.handleMarkNotificationRead)

	s.mux.HandleFunc("GET /api/digest/{userID}", s.handleGetDigestPreference)
	s.mux.HandleFunc("PUT /api/digest/{userID}", s.handleSetDigestPreference)
	s.mux.HandleFunc("GET /api/mail-settings", s.handleGetMailSettings)
	s.mux.HandleFunc("PUT /api/mail-settings", s.handleSetMailSettings)
	s.mux.HandleFunc("POST /api/mail-settings/test", s.handleSendTestMail)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// actorID reads the caller identity header. Anonymous reads are allowed
// on public routes, so the empty string is a valid result here; handlers
// that need a caller reject it themselves.
func actorID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-User-Id"))
}
