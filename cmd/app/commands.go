package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airports/api"
	"github.com/Domenick1991/airports/config"
	"github.com/Domenick1991/airports/internal/auth"
	"github.com/Domenick1991/airports/internal/bootstrap"
	"github.com/Domenick1991/airports/internal/cache"
	"github.com/Domenick1991/airports/internal/kafka"
	"github.com/Domenick1991/airports/internal/media"
	"github.com/Domenick1991/airports/internal/pkg/logger"
	"github.com/Domenick1991/airports/internal/repository"
	"github.com/Domenick1991/airports/internal/service/flights"
	"github.com/Domenick1991/airports/internal/service/orders"
	"github.com/Domenick1991/airports/internal/service/reference"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	cfg        *config.Config
	log        logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	defaultPath := os.Getenv("CONFIG_PATH")
	if defaultPath == "" {
		defaultPath = "config.yaml"
	}

	root := &cobra.Command{
		Use:           "airports",
		Short:         "Airport and flight booking administration service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", defaultPath, "path to the YAML config file")

	root.AddCommand(
		a.serveCmd(),
		a.migrateCmd(),
		a.waitForDBCmd(),
		a.tokenCmd(),
	)
	return root
}

// load reads an optional .env file before the config so ${VAR} references in
// the YAML resolve against it.
func (a *app) load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	a.cfg, a.log = cfg, log
	return nil
}

func (a *app) connect(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, a.cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return pool, nil
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg

	pool, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := repository.WaitForDB(ctx, pool, cfg.Database.WaitAttempts, time.Second); err != nil {
		return err
	}

	store := media.NewStore(cfg.Media)
	referenceOpts := []reference.ReferenceServiceOption{reference.WithLogger(a.log)}
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			a.log.Warn("redis unavailable, reference lists are served uncached: ", err)
		} else {
			referenceOpts = append(referenceOpts, reference.WithCache(redisCache))
		}
	}

	var producer orders.Producer
	if cfg.Kafka.Enabled() {
		kafkaProducer := kafka.NewProducer(cfg.Kafka.Brokers, a.log)
		defer kafkaProducer.Close()
		producer = kafkaProducer
	}

	flightRepo := repository.NewFlightRepository(pool)
	referenceService := reference.NewReferenceService(reference.Repositories{
		Countries: repository.NewCountryRepository(pool),
		Cities:    repository.NewCityRepository(pool),
		Crews:     repository.NewCrewRepository(pool),
		Fleet:     repository.NewFleetRepository(pool),
		Airports:  repository.NewAirportRepository(pool),
		Routes:    repository.NewRouteRepository(pool),
	}, store, referenceOpts...)
	flightService := flights.NewFlightService(flightRepo)
	orderService := orders.NewOrderService(
		repository.NewOrderRepository(pool),
		flightRepo,
		producer,
		cfg.Kafka.OrdersTopic,
		orders.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		orders.WithLogger(a.log),
	)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.Dependencies{
		HTTP:          cfg.HTTP,
		Pagination:    cfg.Pagination,
		Media:         cfg.Media,
		Logger:        a.log,
		Authenticator: auth.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer),
		Reference:     referenceService,
		Flights:       flightService,
		Orders:        orderService,
		MediaURL:      store.URL,
		Health:        pool.Ping,
	})

	return bootstrap.Run(ctx, cfg.HTTP, router, a.log)
}

func (a *app) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := repository.WaitForDB(ctx, pool, a.cfg.Database.WaitAttempts, time.Second); err != nil {
				return err
			}
			if err := repository.Migrate(ctx, pool); err != nil {
				return err
			}
			a.log.Info("schema is up to date")
			return nil
		},
	}
}

func (a *app) waitForDBCmd() *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "wait-for-db",
		Short: "Block until the database accepts connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			a.log.Info("waiting for database...")
			if err := repository.WaitForDB(ctx, pool, a.cfg.Database.WaitAttempts, interval); err != nil {
				return err
			}
			a.log.Info("database available")
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "delay between attempts")
	return cmd
}

func (a *app) tokenCmd() *cobra.Command {
	var (
		userID int64
		staff  bool
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a signed identity token for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID <= 0 {
				return errors.New("--user-id must be positive")
			}
			authenticator := auth.NewAuthenticator(a.cfg.Auth.JWTSecret, a.cfg.Auth.Issuer)
			token, err := authenticator.NewToken(auth.Identity{UserID: userID, IsStaff: staff}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user-id", 0, "user id claim")
	cmd.Flags().BoolVar(&staff, "staff", false, "grant staff permissions")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
