package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rigledger/internal/config"
	"github.com/GlebRadaev/rigledger/internal/events"
	"github.com/GlebRadaev/rigledger/internal/handlers"
	"github.com/GlebRadaev/rigledger/internal/pg"
	"github.com/GlebRadaev/rigledger/internal/repo"
	"github.com/GlebRadaev/rigledger/internal/service"
	"github.com/GlebRadaev/rigledger/pkg/auth"
	"github.com/GlebRadaev/rigledger/pkg/clients"
	"github.com/GlebRadaev/rigledger/pkg/idgen"
	"github.com/GlebRadaev/rigledger/pkg/keylock"
	"github.com/GlebRadaev/rigledger/pkg/logger"
	"github.com/GlebRadaev/rigledger/pkg/ratelimit"
)

const lockPrefix = "rigledger:lock:"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg        *config.Config
	api        *handlers.Handlers
	srv        *service.Services
	repo       *repo.Repositories
	dispatcher *events.Dispatcher
	producer   sarama.SyncProducer
	pool       *pgxpool.Pool
	redis      *redis.Client

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	return a.start(ctx, cfg)
}

func (a *Application) start(ctx context.Context, cfg *config.Config) error {
	a.cfg = cfg

	repos, err := a.buildRepositories(ctx)
	if err != nil {
		return err
	}
	a.repo = repos

	locker, err := a.buildLocker(ctx)
	if err != nil {
		return err
	}

	ids, err := idgen.NewSnowflake(cfg.WorkerID)
	if err != nil {
		return fmt.Errorf("can't build id generator: %w", err)
	}

	sinks, err := a.buildSinks()
	if err != nil {
		return err
	}
	a.dispatcher = events.NewDispatcher(cfg.NotifyWorkers, sinks...)
	a.dispatcher.Start(ctx)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.srv = service.New(a.repo, service.Options{
		Locker:        locker,
		IDs:           ids,
		Publisher:     a.dispatcher,
		JWT:           jwtService,
		Hash:          &auth.HashService{},
		AdminLogin:    cfg.AdminLogin,
		ReferrerBonus: cfg.ReferrerBonus,
		SignupBonus:   cfg.SignupBonus,
	})
	var limiter *ratelimit.Limiter
	if cfg.AuthRateLimit > 0 {
		limiter = ratelimit.New(cfg.AuthRateLimit, cfg.AuthRateBurst)
	}
	a.api = handlers.New(a.srv, jwtService, cfg.AdminLogin, limiter)

	if err := a.srv.AccountService.EnsureAdmin(ctx, cfg.AdminPassword); err != nil {
		zap.L().Error("admin bootstrap failed: ", zap.Error(err))
		return fmt.Errorf("can't create admin account: %w", err)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("storage", cfg.Storage))
	return nil
}

func (a *Application) buildRepositories(ctx context.Context) (*repo.Repositories, error) {
	if a.cfg.Storage == config.StorageMemory {
		zap.L().Warn("using in-memory storage, data is lost on restart")
		return repo.NewMemory(), nil
	}

	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return nil, fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool

	return repo.New(pg.New(pool), pg.NewTXManager(pool)), nil
}

func (a *Application) buildLocker(ctx context.Context) (keylock.Locker, error) {
	if a.cfg.RedisAddress == "" {
		return keylock.NewLocal(), nil
	}

	client := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddress})
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Error("redis ping failed: ", zap.Error(err))
		client.Close()
		return nil, fmt.Errorf("can't connect to redis: %w", err)
	}
	a.redis = client
	zap.L().Info("using redis account locks", zap.String("address", a.cfg.RedisAddress))
	return keylock.NewRedis(client, lockPrefix), nil
}

func (a *Application) buildSinks() ([]events.Sink, error) {
	sinks := []events.Sink{
		events.NewNotificationSink(a.repo.NotificationRepo),
		events.NewActivitySink(a.repo.ActivityRepo),
	}

	if len(a.cfg.KafkaBrokers) > 0 {
		producer, err := events.NewKafkaProducer(a.cfg.KafkaBrokers)
		if err != nil {
			zap.L().Error("kafka producer failed: ", zap.Error(err))
			return nil, err
		}
		a.producer = producer
		sinks = append(sinks, events.NewKafkaSink(producer, a.cfg.KafkaTopic))
	}
	if a.cfg.WebhookURL != "" {
		sinks = append(sinks, events.NewWebhookSink(clients.NewHTTPClient(), a.cfg.WebhookURL))
	}
	return sinks, nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
		a.close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// close releases everything behind the http server once it stopped taking requests.
func (a *Application) close() {
	if a.dispatcher != nil {
		a.dispatcher.Close()
	}
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			zap.L().Warn("kafka producer close failed", zap.Error(err))
		}
	}
	if a.redis != nil {
		a.redis.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
