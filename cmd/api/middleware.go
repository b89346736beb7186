package main

import (
	"net/http"

	"github.com/google/uuid"
)

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		requestID := uuid.NewString()
		ip := r.RemoteAddr
		uri := r.URL.RequestURI()

		app.logger.Info("received request", "request-id", requestID, "method", r.Method, "ip", ip, "uri", uri)
		next.ServeHTTP(w, r)
	})
}

// enableCORS answers preflight requests and marks every response as
// cross-origin accessible, matching the permissive policy browser clients
// of this API expect.
func (app *application) enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
