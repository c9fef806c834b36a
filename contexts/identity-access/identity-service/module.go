package identity

import (
	"log/slog"

	"newsdesk/contexts/identity-access/identity-service/adapters/crypto"
	httpadapter "newsdesk/contexts/identity-access/identity-service/adapters/http"
	"newsdesk/contexts/identity-access/identity-service/application"
	"newsdesk/contexts/identity-access/identity-service/ports"
)

// Module is the identity-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Hasher     ports.PasswordHasher
	IDs        ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	hasher := deps.Hasher
	if hasher == nil {
		hasher = crypto.BcryptHasher{}
	}
	service := application.Service{
		Repo:   deps.Repository,
		Hasher: hasher,
		IDs:    deps.IDs,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}
