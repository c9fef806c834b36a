package digest

import (
	"log/slog"

	httpadapter "newsdesk/contexts/community-experience/digest-service/adapters/http"
	"newsdesk/contexts/community-experience/digest-service/application"
	"newsdesk/contexts/community-experience/digest-service/application/workers"
	"newsdesk/contexts/community-experience/digest-service/ports"
)

// Module is the digest-service composition root exposed to runtime wiring.
// The API process uses Handler; the worker process uses Dispatcher.
type Module struct {
	Handler    httpadapter.Handler
	Dispatcher workers.DigestDispatcher
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Directory  ports.Directory
	Mailer     ports.Mailer
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:      deps.Repository,
		Directory: deps.Directory,
		Mailer:    deps.Mailer,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Dispatcher: workers.DigestDispatcher{
			Repo:   deps.Repository,
			Mailer: deps.Mailer,
			Clock:  deps.Clock,
			Logger: deps.Logger,
		},
	}
}
