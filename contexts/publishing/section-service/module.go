package sections

import (
	"log/slog"

	httpadapter "newsdesk/contexts/publishing/section-service/adapters/http"
	"newsdesk/contexts/publishing/section-service/application"
	"newsdesk/contexts/publishing/section-service/ports"
)

// Module is the section-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Directory  ports.Directory
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:      deps.Repository,
		Directory: deps.Directory,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}
