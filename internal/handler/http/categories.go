package http

import (
	"net/http"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/utils"
	"github.com/Elayaraja1609/TodoApplication/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	categories, err := h.services.CategoryService.List(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	categoryID, ok := urlParamID(w, r)
	if !ok {
		return
	}

	category, err := h.services.CategoryService.Get(ctx, userID, categoryID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.CreateCategoryRequest
	if !h.decodeBody(w, r, &request) {
		return
	}

	category, err := h.services.CategoryService.Create(ctx, userID, request)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("creating category failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, category, http.StatusCreated)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	categoryID, ok := urlParamID(w, r)
	if !ok {
		return
	}

	var request models.UpdateCategoryRequest
	if !h.decodeBody(w, r, &request) {
		return
	}

	category, err := h.services.CategoryService.Update(ctx, userID, categoryID, request)
	if err != nil {
		log.Err(err).Int64("userID", userID).Int64("categoryID", categoryID).Msg("updating category failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	categoryID, ok := urlParamID(w, r)
	if !ok {
		return
	}

	if err := h.services.CategoryService.Delete(ctx, userID, categoryID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
