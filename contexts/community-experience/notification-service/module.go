package notifications

import (
	"log/slog"

	httpadapter "newsdesk/contexts/community-experience/notification-service/adapters/http"
	"newsdesk/contexts/community-experience/notification-service/application"
	"newsdesk/contexts/community-experience/notification-service/ports"
)

// Module is the notification-service composition root exposed to runtime
// wiring.
type Module struct {
	Handler httpadapter.Handler
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}
