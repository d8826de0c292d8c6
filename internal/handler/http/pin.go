package http

import (
	"net/http"

	"github.com/Elayaraja1609/TodoApplication/internal/app"
	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/utils"
	"github.com/Elayaraja1609/TodoApplication/models"
)

func (h *Handler) setupPin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.SetupPinRequest
	if !h.decodeBody(w, r, &request) {
		return
	}

	if err := h.services.AuthService.SetupPin(ctx, userID, request); err != nil {
		log.Err(err).Int64("userID", userID).Msg("pin setup failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": app.MsgPinSetUp}, http.StatusOK)
}

func (h *Handler) verifyPin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.VerifyPinRequest
	if !h.decodeBody(w, r, &request) {
		return
	}

	valid, err := h.services.AuthService.VerifyPin(ctx, userID, request)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("pin verification failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]bool{"valid": valid}, http.StatusOK)
}

func (h *Handler) changePin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.ChangePinRequest
	if !h.decodeBody(w, r, &request) {
		return
	}

	if err := h.services.AuthService.ChangePin(ctx, userID, request); err != nil {
		log.Err(err).Int64("userID", userID).Msg("pin change failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": app.MsgPinChanged}, http.StatusOK)
}

func (h *Handler) hasPin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	hasPin, err := h.services.AuthService.HasPin(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("pin existence check failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]bool{"hasPin": hasPin}, http.StatusOK)
}
