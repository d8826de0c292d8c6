package http

import (
	"net/http"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/utils"
	"github.com/Elayaraja1609/TodoApplication/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if !h.decodeBody(w, r, &request) {
		return
	}

	session, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user registration failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", session.User.ID).Msg("user registered")

	utils.WriteJSON(w, session, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if !h.decodeBody(w, r, &request) {
		return
	}

	session, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user login failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", session.User.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RefreshRequest
	if !h.decodeBody(w, r, &request) {
		return
	}

	session, err := h.services.AuthService.Refresh(ctx, request)
	if err != nil {
		log.Err(err).Msg("token refresh failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}
