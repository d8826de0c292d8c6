package handler

import (
	"github.com/Elayaraja1609/TodoApplication/internal/config"
	"github.com/Elayaraja1609/TodoApplication/internal/handler/http"
	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
