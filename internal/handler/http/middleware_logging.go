package http

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/adushkin/userdir/internal/app"
	"github.com/adushkin/userdir/internal/logger"
	"github.com/adushkin/userdir/internal/utils"
	"github.com/adushkin/userdir/models"
)

// withLogging records both sides of a request: method, URI, headers, and
// body on the way in; status code, response body, size, and duration on
// the way out.
//
// The request body is consumed to log it and then restored with a fresh
// reader, so the downstream handler still sees an unread body. The
// response is observed through the responseWriter decorator and never
// mutated.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		var body []byte
		if r.Body != nil && r.Body != http.NoBody {
			var err error
			body, err = io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Msg("failed to read request body")
				utils.WriteJSON(w, models.ErrorResponse{
					Error:   app.MsgInternalServerError,
					Details: err.Error(),
				}, http.StatusInternalServerError)
				return
			}
			// restore request body
			r.Body = io.NopCloser(bytes.NewReader(body))
		}

		requestEntry := log.Info().
			Str("uri", uri).
			Str("method", method).
			Any("headers", r.Header)
		if len(body) > 0 {
			requestEntry = requestEntry.Bytes("body", body)
		}
		requestEntry.Msg("request received")

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		responseEntry := log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size)
		if len(lw.body) > 0 {
			responseEntry = responseEntry.Bytes("response", lw.body)
		}
		responseEntry.Msg("request completed")
	})
}
