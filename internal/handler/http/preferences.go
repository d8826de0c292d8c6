package http

import (
	"net/http"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/utils"
	"github.com/Elayaraja1609/TodoApplication/models"
)

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	preferences, err := h.services.PreferencesService.Get(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, preferences, http.StatusOK)
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.UpdatePreferencesRequest
	if !h.decodeBody(w, r, &request) {
		return
	}

	preferences, err := h.services.PreferencesService.Update(ctx, userID, request)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("updating preferences failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, preferences, http.StatusOK)
}
