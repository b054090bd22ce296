package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	server "github.com/SagarBajaj14/CelestAI.io/internal/adapters/primary/http"
	astroController "github.com/SagarBajaj14/CelestAI.io/internal/adapters/primary/http/controllers/astro"
	healthcheckController "github.com/SagarBajaj14/CelestAI.io/internal/adapters/primary/http/controllers/healthcheck"
	metricsController "github.com/SagarBajaj14/CelestAI.io/internal/adapters/primary/http/controllers/metrics"
	astroApiAdapter "github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/astroApi"
	kafkaAdapter "github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/kafka"
	"github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/llm"
	"github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/storage/postgrest"
	redisAdapter "github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/storage/s3"
	"github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/storage/sqldb"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/events"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/persistence"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/storage"
	chartRepo "github.com/SagarBajaj14/CelestAI.io/internal/repository/chart"
	compatibilityRepo "github.com/SagarBajaj14/CelestAI.io/internal/repository/compatibility"
	queryRepo "github.com/SagarBajaj14/CelestAI.io/internal/repository/query"
	userRepo "github.com/SagarBajaj14/CelestAI.io/internal/repository/user"
	astroApiService "github.com/SagarBajaj14/CelestAI.io/internal/services/astroApi"
	astroUsecase "github.com/SagarBajaj14/CelestAI.io/internal/usecases/astro"
)

type Dependencies struct {
	Store      persistence.RecordStore
	StoreClose io.Closer // nil for the REST store
	HTTPServer *http.Server
	Publisher  events.IPublisher
}

func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	store, closer, err := a.initStore()
	if err != nil {
		return nil, fmt.Errorf("failed to init record store: %w", err)
	}

	publisher := a.initPublisher()
	archive := a.initArchive()

	astroService := a.initUseCases(store, publisher, archive)
	httpServer := a.initHTTP(store, astroService)

	return &Dependencies{
		Store:      store,
		StoreClose: closer,
		HTTPServer: httpServer,
		Publisher:  publisher,
	}, nil
}

// initStore opens the configured record store. SQL stores are migrated on start.
func (a *App) initStore() (persistence.RecordStore, io.Closer, error) {
	driver := strings.ToLower(a.Cfg.Store.Driver)
	if driver == StoreDriverPostgREST {
		a.Log.Info("using REST record store", "url", a.Cfg.PostgREST.URL, "schema", a.Cfg.PostgREST.Schema)
		return postgrest.NewClient(a.Cfg.PostgREST, a.Log), nil, nil
	}

	driver = sqldb.NormalizeDriver(driver)
	db, err := a.Cfg.SQL.NewConnection(driver)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}
	a.Log.Info("sql store connected successfully", "driver", driver)

	if a.Cfg.Store.RunMigrations {
		if err := sqldb.RunMigrations(db, driver, a.Log); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	store := sqldb.NewDB(db, driver, a.Log)
	return store, store, nil
}

// initPublisher returns nil when events are off or the sink cannot be reached
func (a *App) initPublisher() events.IPublisher {
	switch a.Cfg.Events.Sink {
	case EventSinkKafka:
		producer, err := kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
		if err != nil {
			a.Log.Warn("failed to init kafka producer, continuing without events", "error", err)
			return nil
		}
		return producer
	case EventSinkRedis:
		client, err := a.Cfg.Redis.NewConnection()
		if err != nil {
			a.Log.Warn("failed to init redis, continuing without events", "error", err)
			return nil
		}
		a.Log.Info("redis connected successfully", "stream", a.Cfg.Redis.Stream)
		return redisAdapter.NewStreamPublisher(client, a.Cfg.Redis.Stream, a.Cfg.Redis.StreamMaxLen, a.Log)
	default:
		return nil
	}
}

// initArchive returns nil when object storage is not configured or unreachable
func (a *App) initArchive() storage.IS3Client {
	if a.Cfg.S3 == nil || !a.Cfg.S3.Enabled() {
		return nil
	}

	client, err := a.Cfg.S3.NewClient()
	if err != nil {
		a.Log.Warn("failed to init chart archive, continuing without it", "error", err)
		return nil
	}
	a.Log.Info("chart archive connected", "host", a.Cfg.S3.Host, "bucket", a.Cfg.S3.Bucket)
	return s3Adapter.NewClient(client, a.Cfg.S3.Bucket, a.Log)
}

func (a *App) initUseCases(
	store persistence.RecordStore,
	publisher events.IPublisher,
	archive storage.IS3Client,
) *astroUsecase.Service {
	astroClient := astroApiAdapter.NewClient(a.Cfg.AstroAPI, a.Log)

	return astroUsecase.New(
		userRepo.New(store, a.Log),
		chartRepo.New(store, a.Log),
		compatibilityRepo.New(store, a.Log),
		queryRepo.New(store, a.Log),
		astroApiService.New(astroClient),
		llm.NewClient(a.Cfg.LLM, a.Log),
		publisher,
		archive,
		a.Log,
	)
}

func (a *App) initHTTP(store persistence.RecordStore, astroService *astroUsecase.Service) *http.Server {
	controllers := []server.Controller{
		healthcheckController.New(store, a.Log),
		metricsController.New(a.Cfg.Metrics.Route),
		astroController.New(astroService, a.Log),
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)
}
