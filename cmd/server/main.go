package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"travelmaker/catalog"
	"travelmaker/config"
	"travelmaker/database"
	"travelmaker/handlers"
	"travelmaker/logging"
	"travelmaker/middleware"
	"travelmaker/store"
	"travelmaker/worker"
)

// main loads configuration, opens the state store, warms the catalog and
// serves the API until interrupted.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeStore, err := openStore(ctx, cfg.Store)
	if err != nil {
		logging.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("Failed to open state store")
	}
	defer closeStore()

	loader := catalog.NewLoader(catalog.NewSource(cfg.Catalog.Source, cfg.Catalog.Timeout))
	warmed := worker.StartCatalogWarmer(ctx, loader, cfg.Catalog.WarmInterval)

	bus := &store.Broadcaster{}
	unsubscribe := bus.Subscribe(func(e store.Event) {
		logging.Debug().Str("event", e.Name).Str("scope", e.Scope).Msg("State changed")
	})
	defer unsubscribe()

	deps := handlers.NewDeps(loader, kv, bus)
	deps.RecommendLimit = cfg.Recommend.Limit

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/courses", handlers.HomeHandler(deps))
	mux.HandleFunc("GET /api/explore", handlers.ExploreHandler(deps))
	mux.HandleFunc("GET /api/courses/{id}", handlers.CourseHandler(deps))
	mux.HandleFunc("GET /api/courses/{id}/similar", handlers.SimilarHandler(deps))
	mux.HandleFunc("GET /api/items/{type}", handlers.ItemsHandler(deps))
	mux.HandleFunc("GET /api/provinces", handlers.ProvincesHandler(deps))
	mux.HandleFunc("GET /api/detect-province", handlers.DetectProvinceHandler())

	mux.HandleFunc("GET /api/wishlist", handlers.WishlistHandler(deps))
	mux.HandleFunc("POST /api/wishlist/{id}/toggle", handlers.ToggleWishlistHandler(deps))
	mux.HandleFunc("GET /api/notifications/{kind}", handlers.NotificationsHandler(deps))
	mux.HandleFunc("POST /api/notifications/{kind}", handlers.UpdateNotificationsHandler(deps))
	mux.HandleFunc("DELETE /api/notifications/{kind}", handlers.UpdateNotificationsHandler(deps))
	mux.HandleFunc("GET /api/subscriptions/{creator}", handlers.SubscriptionHandler(deps))
	mux.HandleFunc("POST /api/subscriptions/{creator}", handlers.ToggleSubscriptionHandler(deps))
	mux.HandleFunc("GET /api/ads", handlers.AdsHandler(deps))

	mux.HandleFunc("GET /api/chat/faq", handlers.FAQHandler())
	var chat http.Handler = handlers.ChatHandler()
	if cfg.Chat.RateLimit > 0 {
		chat = httprate.LimitByIP(cfg.Chat.RateLimit, time.Minute)(chat)
	}
	mux.Handle("POST /api/chat", chat)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if loader.Loaded() {
			_, _ = w.Write([]byte(`{"status":"ok","catalog":"loaded"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok","catalog":"fallback"}`))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", handlers.ClientIDHeader, handlers.SessionIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})
	handler := chimw.Recoverer(chimw.RealIP(middleware.RequestID(middleware.Observe(c.Handler(mux)))))

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logging.Info().Str("addr", srv.Addr).Str("store", cfg.Store.Driver).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}
	<-warmed
}

// openStore builds the configured backend for client-local state. The
// returned func releases the backend and any pool behind it.
func openStore(ctx context.Context, cfg config.StoreConfig) (store.KV, func(), error) {
	switch cfg.Driver {
	case "badger":
		kv, err := store.OpenBadgerKV(cfg.BadgerPath)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { _ = kv.Close() }, nil
	case "postgres":
		db, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		kv := store.NewPostgresKV(db)
		return kv, func() {
			_ = kv.Close()
			_ = db.Close()
		}, nil
	default:
		kv := store.NewMemoryKV()
		return kv, func() { _ = kv.Close() }, nil
	}
}
