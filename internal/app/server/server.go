package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"schoolhr/internal/domain/audit"
	"schoolhr/internal/domain/auth"
	"schoolhr/internal/domain/chatbot"
	"schoolhr/internal/domain/directory"
	"schoolhr/internal/domain/documents"
	"schoolhr/internal/domain/family"
	"schoolhr/internal/domain/leave"
	"schoolhr/internal/domain/notifications"
	"schoolhr/internal/domain/performance"
	"schoolhr/internal/domain/recruitment"
	"schoolhr/internal/domain/reports"
	"schoolhr/internal/domain/schedule"
	"schoolhr/internal/platform/config"
	"schoolhr/internal/platform/crypto"
	"schoolhr/internal/platform/db"
	"schoolhr/internal/platform/email"
	"schoolhr/internal/platform/jobs"
	"schoolhr/internal/platform/metrics"
	audithandler "schoolhr/internal/transport/http/handlers/audit"
	authhandler "schoolhr/internal/transport/http/handlers/auth"
	chatbothandler "schoolhr/internal/transport/http/handlers/chatbot"
	directoryhandler "schoolhr/internal/transport/http/handlers/directory"
	documentshandler "schoolhr/internal/transport/http/handlers/documents"
	familyhandler "schoolhr/internal/transport/http/handlers/family"
	leavehandler "schoolhr/internal/transport/http/handlers/leave"
	notificationshandler "schoolhr/internal/transport/http/handlers/notifications"
	performancehandler "schoolhr/internal/transport/http/handlers/performance"
	recruitmenthandler "schoolhr/internal/transport/http/handlers/recruitment"
	reportshandler "schoolhr/internal/transport/http/handlers/reports"
	schedulehandler "schoolhr/internal/transport/http/handlers/schedule"
	"schoolhr/internal/transport/http/middleware"
	"schoolhr/migrations"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, migrations.FS); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	sealer, err := crypto.NewSealer(cfg.DataEncryptionKey)
	if err != nil {
		log.Fatalf("invalid DATA_ENCRYPTION_KEY: %v", err)
	}

	authStore := auth.NewStore(pool, sealer)
	directoryStore := directory.NewStore(pool)
	familyService := family.NewService(family.NewStore(pool))
	leaveStore := leave.NewStore(pool)
	recruitmentStore := recruitment.NewStore(pool)
	performanceStore := performance.NewStore(pool)
	scheduleStore := schedule.NewStore(pool)
	documentStore := documents.NewStore(pool)
	chatbotStore := chatbot.NewStore(pool)
	auditService := audit.New(pool)
	notifier := notifications.New(notifications.NewStore(pool), email.New(cfg), cfg.EmailFrom)
	reportsService := reports.NewService(reports.NewStore(pool))

	jobsService := jobs.New(pool, cfg)
	jobsService.Start(ctx)

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.SensitiveMutationRateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.Auth(cfg.JWTSecret))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(collector))
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(collector.Snapshot())
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(authStore, directoryStore, cfg.JWTSecret, cfg.TokenTTL).RegisterRoutes(r)
		directoryhandler.NewHandler(directoryStore, leaveStore, authStore, auditService, cfg.DirectoryPageSize).RegisterRoutes(r)
		familyhandler.NewHandler(familyService, authStore).RegisterRoutes(r)
		leavehandler.NewHandler(leaveStore, authStore, notifier).RegisterRoutes(r)
		recruitmenthandler.NewHandler(recruitmentStore, authStore).RegisterRoutes(r)
		performancehandler.NewHandler(performanceStore, authStore).RegisterRoutes(r)
		schedulehandler.NewHandler(scheduleStore, authStore).RegisterRoutes(r)
		documentshandler.NewHandler(documentStore, directoryStore, authStore).RegisterRoutes(r)
		chatbothandler.NewHandler(chatbotStore, authStore).RegisterRoutes(r)
		notificationshandler.NewHandler(notifier).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService, jobsService, authStore).RegisterRoutes(r)
		audithandler.NewHandler(auditService, authStore).RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("school HR server listening", "addr", cfg.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "err", err)
	}
}

// spaHandler serves the frontend build, falling back to index.html so
// client-side routes resolve after a hard refresh.
type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
