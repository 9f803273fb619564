package main

import (
	"fmt"
	"net/http"

	"ytbrief/internal/api"
	"ytbrief/internal/config"
	"ytbrief/internal/utils"
	"ytbrief/internal/youtube"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := utils.NewLogger("error", false)
		log.Fatal("Failed to load configuration:", err)
	}
	if err := cfg.Validate(); err != nil {
		log := utils.NewLogger("error", cfg.App.RawBodyLog)
		log.Fatal("Invalid configuration:", err)
	}

	logger := utils.NewLogger(cfg.App.LogLevel, cfg.App.RawBodyLog)
	logger.Info(nil, "Starting ytbrief")
	logger.Info(nil, "Environment: %s", cfg.App.Env)
	logger.Info(nil, "Log level: %s", cfg.App.LogLevel)

	youtubeClient := youtube.NewClient(cfg, logger)
	handler := api.NewHandler(logger, youtubeClient, cfg)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "ytbrief is running\n")
	})

	api.RegisterRoutes(mux, handler)

	logger.Info(nil, "Starting server on port %s", cfg.App.ServerPort)
	logger.Info(nil, "Endpoints:")
	logger.Info(nil, "  GET  /health")
	logger.Info(nil, "  GET  /")
	logger.Info(nil, "  POST /api/transcript")
	logger.Info(nil, "  POST /api/summary")
	logger.Info(nil, "  POST /api/languages")
	logger.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.App.ServerPort, api.Wrap(mux, logger)))
}
