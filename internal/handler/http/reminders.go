package http

import (
	"net/http"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/utils"
	"github.com/Elayaraja1609/TodoApplication/models"
)

func (h *Handler) listReminders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	reminders, err := h.services.ReminderService.List(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reminders, http.StatusOK)
}

func (h *Handler) getReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	reminderID, ok := urlParamID(w, r)
	if !ok {
		return
	}

	reminder, err := h.services.ReminderService.Get(ctx, userID, reminderID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reminder, http.StatusOK)
}

func (h *Handler) createReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.CreateReminderRequest
	if !h.decodeBody(w, r, &request) {
		return
	}

	reminder, err := h.services.ReminderService.Create(ctx, userID, request)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("creating reminder failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reminder, http.StatusCreated)
}

func (h *Handler) updateReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	reminderID, ok := urlParamID(w, r)
	if !ok {
		return
	}

	var request models.UpdateReminderRequest
	if !h.decodeBody(w, r, &request) {
		return
	}

	reminder, err := h.services.ReminderService.Update(ctx, userID, reminderID, request)
	if err != nil {
		log.Err(err).Int64("userID", userID).Int64("reminderID", reminderID).Msg("updating reminder failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reminder, http.StatusOK)
}

func (h *Handler) deleteReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	reminderID, ok := urlParamID(w, r)
	if !ok {
		return
	}

	if err := h.services.ReminderService.Delete(ctx, userID, reminderID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
