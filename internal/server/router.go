package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ventiq/ventiq-terminal/pkg/debug"
)

// RequestIDHeader carries the id assigned to every request
const RequestIDHeader = "X-Request-ID"

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/tutorials", s.listTutorialsHandler).Methods("GET")
	api.HandleFunc("/search", s.searchHandler).Methods("GET")
	api.HandleFunc("/tutorials/{key}", s.getTutorialHandler).Methods("GET")
	api.HandleFunc("/tutorials/{key}/steps/{n:[0-9]+}", s.getStepHandler).Methods("GET")
	api.HandleFunc("/screenshots/{key}/{n:[0-9]+}", s.getScreenshotHandler).Methods("GET")

	assets := http.StripPrefix("/assets/", http.FileServer(http.Dir(s.settings.Assets.Dir)))
	r.PathPrefix("/assets/").Handler(assets).Methods("GET")

	return r
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		debug.Log("server: %s %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
