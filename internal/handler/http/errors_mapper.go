package http

import (
	"errors"
	"net/http"

	"github.com/Elayaraja1609/TodoApplication/internal/app"
	"github.com/Elayaraja1609/TodoApplication/internal/service"
	"github.com/Elayaraja1609/TodoApplication/internal/store"
)

// apiError pairs the HTTP status with the client-facing message for one
// known error value. Internal storage errors deliberately surface as an
// opaque 500 so that SQL details never leak into response bodies.
type apiError struct {
	status  int
	message string
}

var errorResponseMap = map[error]apiError{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrWrongPassword:           {http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgInvalidToken},
	service.ErrPinTooShort:             {http.StatusBadRequest, app.MsgPinTooShort},
	service.ErrPinMismatch:             {http.StatusBadRequest, app.MsgPinMismatch},
	service.ErrWrongPin:                {http.StatusUnauthorized, app.MsgWrongCurrentPin},

	store.ErrEmailAlreadyExists: {http.StatusConflict, app.MsgEmailAlreadyExists},
	store.ErrNoUserWasFound:     {http.StatusNotFound, app.MsgNotFound},
	store.ErrNotFound:           {http.StatusNotFound, app.MsgNotFound},

	store.ErrBuildingSQLQuery:     {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrBeginningTransaction: {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrCommitingTransaction: {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrExecutingStatement:   {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrScanningRow:          {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrScanningRows:         {http.StatusInternalServerError, app.MsgInternalServerError},
}

func responseFromError(err error) apiError {
	for target, response := range errorResponseMap {
		if errors.Is(err, target) {
			return response
		}
	}
	return apiError{http.StatusInternalServerError, app.MsgInternalServerError}
}
