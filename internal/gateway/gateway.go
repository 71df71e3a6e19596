// ABOUTME: Gateway orchestrator that wires the HTTP server to the query pipeline
// ABOUTME: Manages lookup clients, session store, and server lifecycle

package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Tahasaif3/FarmSmart-AI/internal/config"
	"github.com/Tahasaif3/FarmSmart-AI/internal/lookup"
	"github.com/Tahasaif3/FarmSmart-AI/internal/orchestrator"
	"github.com/Tahasaif3/FarmSmart-AI/internal/session"
	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

// Service identity reported by the health and landing endpoints.
const (
	ServiceName    = "FarmSmart AgriTech API"
	ServiceVersion = "3.5.0"
)

// Query length bounds enforced at the HTTP boundary.
const (
	minQueryLen = 3
	maxQueryLen = 1000
)

// Gateway owns the HTTP server and the components behind it.
type Gateway struct {
	config       *config.Config
	orchestrator *orchestrator.Orchestrator
	store        session.Store
	weather      *lookup.WeatherClient
	market       *lookup.MarketClient
	knowledge    *lookup.KnowledgeBase
	httpServer   *http.Server
	logger       *slog.Logger

	landingHTML []byte

	now func() time.Time // injectable for tests
}

// New creates a gateway around an existing store and dispatcher. The lookup
// clients are built here from the cache bounds in the config.
func New(cfg *config.Config, store session.Store, dispatcher specialist.Dispatcher) (*Gateway, error) {
	logger := slog.Default().With("component", "gateway")

	continuity := session.NewContinuity(cfg.Session.IdleWindow)
	orch := orchestrator.New(store, continuity, dispatcher, orchestrator.Options{
		DispatchTimeout: cfg.Specialists.DispatchTimeout,
		MaxTurns:        cfg.Session.MaxContextTurns,
	})

	landing, err := renderLanding()
	if err != nil {
		return nil, fmt.Errorf("rendering landing page: %w", err)
	}

	g := &Gateway{
		config:       cfg,
		orchestrator: orch,
		store:        store,
		weather:      lookup.NewWeatherClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Caches.Weather.TTL, cfg.Caches.Weather.MaxSize),
		market:       lookup.NewMarketClient(lookup.StaticQuoteSource{}, cfg.Caches.Market.TTL, cfg.Caches.Market.MaxSize),
		knowledge:    lookup.NewKnowledgeBase(cfg.Caches.Knowledge.TTL, cfg.Caches.Knowledge.MaxSize),
		logger:       logger,
		landingHTML:  landing,
		now:          time.Now,
	}
	return g, nil
}

// Weather exposes the weather lookup client for specialist tooling.
func (g *Gateway) Weather() *lookup.WeatherClient { return g.weather }

// Market exposes the market lookup client for specialist tooling.
func (g *Gateway) Market() *lookup.MarketClient { return g.market }

// Knowledge exposes the knowledge base for specialist tooling.
func (g *Gateway) Knowledge() *lookup.KnowledgeBase { return g.knowledge }

// routes builds the HTTP mux.
func (g *Gateway) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/query", g.handleQuery)
	mux.HandleFunc("/health", g.handleHealth)
	mux.HandleFunc("/session/", g.handleSession)
	mux.HandleFunc("/sessions/active", g.handleActiveSessions)
	mux.HandleFunc("/agents", g.handleAgents)
	mux.HandleFunc("/", g.handleLanding)
	return mux
}

// Start runs the HTTP server until Shutdown is called. It blocks.
func (g *Gateway) Start() error {
	g.httpServer = &http.Server{
		Addr:              g.config.Server.HTTPAddr,
		Handler:           g.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.logger.Info("HTTP server listening", "addr", g.config.Server.HTTPAddr)
	if err := g.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and releases the lookup caches.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.logger.Info("shutting down gateway")

	var err error
	if g.httpServer != nil {
		err = g.httpServer.Shutdown(ctx)
	}

	g.weather.Close()
	g.market.Close()
	g.knowledge.Close()
	return err
}
