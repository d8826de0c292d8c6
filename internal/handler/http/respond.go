package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Elayaraja1609/TodoApplication/internal/app"
	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/utils"
	"github.com/go-chi/chi/v5"
)

// writeError maps a service or storage error to its HTTP status and
// client-facing message and writes the `{"message": ...}` body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	response := responseFromError(err)
	if response.status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	}

	utils.WriteJSONError(w, response.message, response.status)
}

// decodeBody decodes the JSON request body into dst and runs struct
// validation on it. A false return means the error response has already
// been written.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	log := logger.FromRequest(r)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		log.Err(err).Msg("request body failed validation")
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}

	return true
}

// userIDFromRequest returns the authenticated user's ID placed in the
// context by the auth middleware. A false return means the 401 response has
// already been written; it only happens when a route was registered outside
// the authenticated group by mistake.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user ID in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

// urlParamID parses the {id} URL parameter. A false return means the 404
// response has already been written.
func urlParamID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteJSONError(w, app.MsgNotFound, http.StatusNotFound)
		return 0, false
	}
	return id, true
}
