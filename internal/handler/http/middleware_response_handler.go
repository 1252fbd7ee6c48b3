package http

import "net/http"

// responseWriter is a thin decorator around [http.ResponseWriter] that
// intercepts WriteHeader and Write calls so middleware can observe the
// status code, body size, and payload after the downstream handler has
// returned.
//
// WriteHeader is forwarded to the underlying writer exactly once;
// subsequent calls are silently ignored, mirroring the contract of the
// standard library's response writer.
type responseWriter struct {
	http.ResponseWriter

	// status is the code recorded on the first WriteHeader call. It stays
	// zero until WriteHeader runs, explicitly or implicitly via Write.
	status int

	// wroteHeader guards against forwarding a second WriteHeader.
	wroteHeader bool

	// size accumulates the bytes successfully written across all Write calls.
	size int

	// body accumulates everything passed to Write, so handlers that emit
	// the response in chunks are still logged in full.
	body []byte
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer, implicitly emitting a 200
// header if none was written yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	w.body = append(w.body, b[:n]...)
	return n, err
}
