package mealaggregator

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/meal-aggregator/internal/cache"
	"github.com/magabrotheeeer/meal-aggregator/internal/config"
	appjwt "github.com/magabrotheeeer/meal-aggregator/internal/lib/jwt"
	"github.com/magabrotheeeer/meal-aggregator/internal/migrations"
	"github.com/magabrotheeeer/meal-aggregator/internal/paymentprovider"
	mealrequestservice "github.com/magabrotheeeer/meal-aggregator/internal/services/mealrequest"
	mealservice "github.com/magabrotheeeer/meal-aggregator/internal/services/meal"
	membershipservice "github.com/magabrotheeeer/meal-aggregator/internal/services/membership"
	paymentservice "github.com/magabrotheeeer/meal-aggregator/internal/services/payment"
	reviewservice "github.com/magabrotheeeer/meal-aggregator/internal/services/review"
	userservice "github.com/magabrotheeeer/meal-aggregator/internal/services/user"
	"github.com/magabrotheeeer/meal-aggregator/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	tokenMaker := appjwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	providerClient := paymentprovider.NewClient(cfg.StripeSecretKey)

	userService := userservice.New(db, logger)
	mealService := mealservice.New(db, cacheRedis, logger)
	reviewService := reviewservice.New(db, logger)
	requestService := mealrequestservice.New(db, logger)
	planService := membershipservice.New(db, cacheRedis, logger)
	paymentService := paymentservice.New(db, providerClient, cfg.Currency, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, &Services{
		TokenMaker:   tokenMaker,
		Users:        userService,
		Meals:        mealService,
		Reviews:      reviewService,
		MealRequests: requestService,
		Plans:        planService,
		Payments:     paymentService,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
