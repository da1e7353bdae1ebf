package mobile

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"tiaoqi/internal/config"
	httpserver "tiaoqi/internal/server/http"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, port string) {
	cfg := config.Default()
	cfg.WebDir = webDir
	cfg.WebMobileDir = webDir

	h := httpserver.NewHandler(cfg)
	mux := httpserver.NewMux(h, cfg.WebDir, cfg.WebMobileDir)

	// Run in background so it doesn't block the UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, mux); err != nil {
			log.Error().Msgf("server error: %v", err)
		}
	}()
}
