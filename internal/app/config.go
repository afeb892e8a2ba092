package app

import (
	"net/http"

	"go.uber.org/zap"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string       // config directory, e.g. $HOME/.vaultsync
	APIBase string       // remote API base URL, e.g. http://127.0.0.1:8080
	HTTP    *http.Client // optional; defaults to http.DefaultClient
	Logger  *zap.Logger  // optional; defaults to zap.NewNop
}
