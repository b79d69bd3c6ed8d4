package wire

import (
	"movie-booking/internal/api"
	"movie-booking/internal/data/session"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/transport"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

// App holds all wired dependencies
type App struct {
	Config  *utils.Config
	Session *session.Store
	API     *api.API
	Service *usecase.Service
}

// Wiring initializes the session store, transport, API facade and
// controllers in dependency order.
func Wiring(config *utils.Config, logger *zap.Logger) *App {
	sessionStore := session.NewStore()
	client := transport.NewClient(config.API, sessionStore, logger)
	apiGroup := api.NewAPI(client, logger)
	service := usecase.NewService(apiGroup, config, logger)

	return &App{
		Config:  config,
		Session: sessionStore,
		API:     apiGroup,
		Service: service,
	}
}
