package http

import (
	"errors"
	"net/http"

	"github.com/adushkin/userdir/internal/store"
	"github.com/adushkin/userdir/internal/validators"
)

// errorStatusMap translates sentinel errors surfaced by the service layer
// into HTTP status codes. Duplicate creates map to 400, not 409: the wire
// format of the directory API predates this implementation and existing
// clients expect 400.
var errorStatusMap = map[error]int{
	validators.ErrNameEmpty:              http.StatusBadRequest,
	validators.ErrNameTooShort:           http.StatusBadRequest,
	validators.ErrNameContainsWhitespace: http.StatusBadRequest,
	validators.ErrAgeOutOfRange:          http.StatusBadRequest,

	store.ErrUserAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:      http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
