package comments

import (
	"log/slog"

	httpadapter "newsdesk/contexts/publishing/comment-service/adapters/http"
	"newsdesk/contexts/publishing/comment-service/application"
	"newsdesk/contexts/publishing/comment-service/ports"
)

// Module is the comment-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Directory  ports.Directory
	IDs        ports.IDGenerator
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:      deps.Repository,
		Directory: deps.Directory,
		IDs:       deps.IDs,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}
