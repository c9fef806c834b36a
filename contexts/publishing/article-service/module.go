package articles

import (
	"log/slog"

	httpadapter "newsdesk/contexts/publishing/article-service/adapters/http"
	"newsdesk/contexts/publishing/article-service/adapters/sanitizer"
	"newsdesk/contexts/publishing/article-service/application"
	"newsdesk/contexts/publishing/article-service/ports"
)

// Module is the article-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
}

// Dependencies captures all runtime ports required by NewModule. Sanitizer
// defaults to the bluemonday policy when left nil.
type Dependencies struct {
	Repository ports.Repository
	Directory  ports.Directory
	Sanitizer  ports.Sanitizer
	IDs        ports.IDGenerator
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	if deps.Sanitizer == nil {
		deps.Sanitizer = sanitizer.NewHTMLSanitizer()
	}
	service := application.Service{
		Repo:      deps.Repository,
		Directory: deps.Directory,
		Sanitizer: deps.Sanitizer,
		IDs:       deps.IDs,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}
