// Package httperr maps domain error kinds to HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/pkg/utils"
)

func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrCascadeIncomplete):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// Respond writes err with its mapped status. Internal failures are not echoed to the client.
func Respond(w http.ResponseWriter, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		utils.RespondWithError(w, status, "Internal server error")
		return
	}
	utils.RespondWithError(w, status, err.Error())
}
