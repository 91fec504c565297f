package controllers

import (
	"errors"
	"net/http"

	"github.com/lintang-b-s/speedmodel/pkg/util"
	"go.uber.org/zap"
)

func (api *speedAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int,
	code string, message string) {
	var response errorResponse
	response.Error.Code = code
	response.Error.Message = message

	headers := make(http.Header)
	if err := api.writeJSON(w, status, envelope{"error": response.Error}, headers); err != nil {
		api.log.Error("failed to write error response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *speedAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error())
}

func (api *speedAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, "NOT_FOUND", err.Error())
}

func (api *speedAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("internal server error", zap.String("path", r.URL.Path), zap.Error(err))
	api.errorResponse(w, r, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR",
		"the server encountered a problem and could not process your request")
}

// getStatusCode maps the wrapped error code of the usecase layer to an http
// error response.
func (api *speedAPI) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	var wrapped *util.Error
	if !errors.As(err, &wrapped) {
		api.ServerErrorResponse(w, r, err)
		return
	}

	switch wrapped.Code() {
	case util.ErrNotFound:
		api.NotFoundResponse(w, r, err)
	case util.ErrBadParamInput, util.ErrInvalidSpeedTable:
		api.BadRequestResponse(w, r, err)
	case util.ErrConflict:
		api.errorResponse(w, r, http.StatusConflict, "CONFLICT", err.Error())
	default:
		api.ServerErrorResponse(w, r, err)
	}
}
