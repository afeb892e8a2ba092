package app

import (
	"net/http"

	"go.uber.org/zap"

	"vaultsync/internal/api"
	"vaultsync/internal/domain"
	feedsvc "vaultsync/internal/services/feed"
	identitysvc "vaultsync/internal/services/identity"
	ingestsvc "vaultsync/internal/services/ingest"
	settingssvc "vaultsync/internal/services/settings"
	"vaultsync/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Identity domain.IdentityService
	Settings domain.SettingsService
	Client   *api.Client
	Stream   *api.Stream
	Feed     *feedsvc.Service
	Ingest   *ingestsvc.Service
	HTTP     *http.Client
	Logger   *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	// File-based stores
	identityStore := store.NewIdentityFileStore(cfg.Home)
	settingsStore := store.NewSettingsFileStore(cfg.Home)

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// High-level services
	settingsSvc := settingssvc.New(settingsStore)
	identitySvc := identitysvc.New(identityStore, settingsSvc)

	// Remote API clients authenticate with the current bearer token.
	token := api.TokenSource(identitySvc.BearerToken)
	client := api.NewClient(cfg.APIBase, httpClient, token)
	stream := api.NewStream(cfg.APIBase, token)

	feedSvc := feedsvc.New(client, stream, logger)
	ingestSvc := ingestsvc.New(settingsSvc, client)

	return &Wire{
		Identity: identitySvc,
		Settings: settingsSvc,
		Client:   client,
		Stream:   stream,
		Feed:     feedSvc,
		Ingest:   ingestSvc,
		HTTP:     httpClient,
		Logger:   logger,
	}, nil
}
