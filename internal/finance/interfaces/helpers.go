package interfaces

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	financeErrors "github.com/matferreira/finance-tracker/internal/finance/errors"
)

// parseIDParam reads a numeric path variable registered on the router.
func parseIDParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// respondServiceError translates a domain error into the matching HTTP status.
// Anything that is not a typed domain error is a server fault and gets the
// generic fallback message.
func respondServiceError(respondError func(w http.ResponseWriter, status int, message string), w http.ResponseWriter, err error, fallback string) {
	switch {
	case financeErrors.IsNotFoundError(err):
		respondError(w, http.StatusNotFound, err.Error())
	case financeErrors.IsConflictError(err):
		respondError(w, http.StatusConflict, err.Error())
	case financeErrors.IsValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("unexpected service error: %v", err)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
