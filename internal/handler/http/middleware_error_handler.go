package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/adushkin/userdir/internal/app"
	"github.com/adushkin/userdir/internal/logger"
	"github.com/adushkin/userdir/internal/utils"
	"github.com/adushkin/userdir/models"
)

// withErrorHandling is the outermost fault boundary of the pipeline.
//
// It recovers any panic raised by inner middleware or route handlers,
// logs it together with the stack trace, and converts it into a 500
// response with a JSON body {error, details}. No fault ever escapes to
// net/http. Responses produced by inner stages — including the auth
// middleware's short-circuits — pass through untouched, since no panic
// occurred.
//
// http.ErrAbortHandler is re-raised: it is the net/http idiom for
// deliberately aborting a response and must not be turned into a 500.
func (h *Handler) withErrorHandling(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			log := logger.FromRequest(r)
			log.Error().
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic in request handler")

			utils.WriteJSON(w, models.ErrorResponse{
				Error:   app.MsgInternalServerError,
				Details: fmt.Sprintf("%v", rec),
			}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
