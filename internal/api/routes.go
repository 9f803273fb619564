package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.HandleIndex)
	mux.HandleFunc("POST /api/transcript", handler.HandleTranscript)
	mux.HandleFunc("POST /api/summary", handler.HandleSummary)
	mux.HandleFunc("POST /api/languages", handler.HandleLanguages)
}
