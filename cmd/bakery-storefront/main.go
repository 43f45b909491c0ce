package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/cache"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/checkout"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/config"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/health"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/metrics"
	repository "github.com/aaravmahajanofficial/bakery-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/bakery-storefront/internal/services"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/telemetry"
	"github.com/aaravmahajanofficial/bakery-storefront/pkg/bakeryapi"
	"github.com/aaravmahajanofficial/bakery-storefront/pkg/sendgrid"
	"github.com/aaravmahajanofficial/bakery-storefront/pkg/stripe"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const janitorInterval = 10 * time.Minute

// purger is implemented by cart stores that do not expire entries on
// their own.
type purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

func main() {

	// Logger setup
	logger := telemetry.NewLogger(os.Stdout, slog.LevelInfo)
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, &cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdownTracer(shutdownCtx); err != nil {
			slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(&cfg.RedisConnect)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	// Cart storage
	cartRepo, db, err := openCartStore(cfg, redisClient)
	if err != nil {
		slog.Error("❌ Error opening the cart store", slog.String("driver", cfg.CartStore.Driver), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if db != nil {
		defer func() {
			if err := db.Close(); err != nil {
				slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
			} else {
				slog.Info("✅ Database connection closed")
			}
		}()
	}

	if p, ok := cartRepo.(purger); ok {
		go runJanitor(ctx, p, janitorInterval)
	}

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	paymentGuard := repository.NewPaymentGuardRepo(redisClient, &cfg.RateConfig)
	backend := bakeryapi.New(&cfg.Backend)

	// without a key checkout answers PAYMENT_UNAVAILABLE and Stripe is never called
	var stripeClient stripe.Client
	if cfg.PaymentsEnabled() {
		stripeClient = stripe.NewStripeClient(cfg.Stripe.APIKey)
	} else {
		slog.Warn("Stripe keys not set; online checkout is disabled")
	}

	var emailService sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		slog.Warn("SendGrid key not set; order receipts are disabled")
	}

	machine := checkout.NewMachine(backend, stripeClient, backend, cfg.Stripe.Currency)

	catalogService := service.NewCatalogService(backend, redisCache, cfg.Cache.DefaultTTL)
	sessionLocks := service.NewSessionLocks()
	cartService := service.NewCartService(cartRepo, catalogService, redisCache, sessionLocks)
	timeslotService := service.NewTimeslotService(backend, catalogService, cartService, cfg.Backend.TimeslotDaysOut, time.Local)
	notificationService := service.NewNotificationService(backend, emailService)
	checkoutService := service.NewCheckoutService(machine, cartService, timeslotService, notificationService, redisCache, paymentGuard, sessionLocks,
		service.CheckoutOptions{
			PublishableKey:  cfg.Stripe.PublishableKey,
			Currency:        cfg.Stripe.Currency,
			SessionTTL:      cfg.CartStore.TTL,
			UpstreamTimeout: cfg.Backend.Timeout,
		})

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, timeslotService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	sessions := middleware.NewSessionMiddleware(&cfg.Session)

	endpoints := &health.Endpoints{DB: db, Backend: backend}
	if stripeClient != nil {
		endpoints.Stripe = stripeClient
	}

	healthChecker, err := health.NewHealthHandler(cfg, endpoints)
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("cart_store", cfg.CartStore.Driver), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/menu", catalogHandler.GetMenu())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/specials", catalogHandler.ListSpecials())
	routerMux.HandleFunc("GET /api/v1/specials/{id}", catalogHandler.GetSpecial())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PATCH /api/v1/cart/items/{index}", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{index}", cartHandler.RemoveItem())
	routerMux.HandleFunc("PUT /api/v1/cart/mode", cartHandler.SwitchMode())
	routerMux.HandleFunc("POST /api/v1/cart/switch", cartHandler.ConfirmSwitch())
	routerMux.HandleFunc("DELETE /api/v1/cart/switch", cartHandler.CancelSwitch())
	routerMux.HandleFunc("GET /api/v1/checkout", checkoutHandler.Current())
	routerMux.HandleFunc("DELETE /api/v1/checkout", checkoutHandler.Discard())
	routerMux.HandleFunc("GET /api/v1/checkout/config", checkoutHandler.GetConfig())
	routerMux.HandleFunc("GET /api/v1/checkout/timeslots", checkoutHandler.ListTimeslots())
	routerMux.HandleFunc("POST /api/v1/checkout/timeslot", checkoutHandler.SelectTimeslot())
	routerMux.HandleFunc("POST /api/v1/checkout/back", checkoutHandler.Back())
	routerMux.HandleFunc("POST /api/v1/checkout/submit", checkoutHandler.Submit())
	routerMux.HandleFunc("POST /api/v1/unsubscribe", notificationHandler.Unsubscribe())

	// Middleware chaining
	var handler http.Handler = metrics.Middleware(routerMux)
	handler = sessions.Session(handler)
	handler = middleware.Logging(handler)
	handler = chimiddleware.Recoverer(handler)

	rootMux := http.NewServeMux()
	rootMux.Handle("GET /health", healthChecker.Handler())
	rootMux.Handle("GET /metrics", metrics.Handler())
	rootMux.Handle("/", handler)

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      otelhttp.NewHandler(rootMux, "bakery-storefront"),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	go func() { // Starts the HTTP server in a new goroutine so it doesn't block the main thread.

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown; submits in flight run on a detached context and get
	// the same grace period.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}

// openCartStore builds the configured cart repository. The returned
// *sql.DB is nil unless the store is SQL backed.
func openCartStore(cfg *config.Config, redisClient *redis.Client) (repository.CartRepository, *sql.DB, error) {
	switch cfg.CartStore.Driver {
	case config.DriverRedis:
		return repository.NewRedisCartRepo(redisClient, &cfg.CartStore), nil, nil

	case config.DriverPostgres:
		db, err := repository.OpenPostgres(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}

		if err := repository.Migrate(db, config.DriverPostgres); err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return repository.NewPostgresCartRepo(db, &cfg.CartStore), db, nil

	case config.DriverSQLite:
		db, err := repository.OpenSQLite(&cfg.SQLite)
		if err != nil {
			return nil, nil, err
		}

		if err := repository.Migrate(db, config.DriverSQLite); err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return repository.NewSQLiteCartRepo(db, &cfg.CartStore), db, nil

	case config.DriverMemory:
		return repository.NewMemoryCartRepo(&cfg.CartStore), nil, nil
	}

	return nil, nil, fmt.Errorf("unknown cart store driver %q", cfg.CartStore.Driver)
}

func runJanitor(ctx context.Context, p purger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.PurgeExpired(ctx)
			if err != nil {
				slog.Error("Failed to purge expired carts", slog.String("error", err.Error()))
				continue
			}

			metrics.ExpiredCartsPurged.Add(float64(n))
		}
	}
}
