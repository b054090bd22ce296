package app

import (
	"fmt"
	"os"
	"strings"

	server "github.com/SagarBajaj14/CelestAI.io/internal/adapters/primary/http"
	astroApi "github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/astroApi"
	kafkaAdapter "github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/kafka"
	"github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/llm"
	"github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/storage/postgrest"
	redisAdapter "github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/storage/redis"
	"github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/storage/s3"
	"github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/storage/sqldb"
	"github.com/SagarBajaj14/CelestAI.io/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDriverPostgREST = "postgrest"

	EventSinkNone  = "none"
	EventSinkKafka = "kafka"
	EventSinkRedis = "redis"
)

type Config struct {
	Log       *logger.Config       `envconfig:"LOG"`
	Server    *server.Config       `envconfig:"APISERVER"`
	Store     StoreConfig          `envconfig:"STORE"`
	PostgREST *postgrest.Config    `envconfig:"SUPABASE"`
	SQL       *sqldb.Config        `envconfig:"DB"`
	AstroAPI  *astroApi.Config     `envconfig:"VEDASTRO"`
	LLM       *llm.Config          `envconfig:"GROQ"`
	Events    EventsConfig         `envconfig:"EVENTS"`
	Kafka     *kafkaAdapter.Config `envconfig:"KAFKA"`
	Redis     *redisAdapter.Config `envconfig:"REDIS"`
	S3        *s3.Config           `envconfig:"S3"`
	Metrics   MetricsConfig        `envconfig:"METRICS"`
}

// StoreConfig selects the record store backend: postgrest, postgres or sqlite
type StoreConfig struct {
	Driver        string `envconfig:"DRIVER" default:"postgrest"`
	RunMigrations bool   `envconfig:"RUN_MIGRATIONS" default:"true"` // sql drivers only
}

// EventsConfig selects where interaction events go: none, kafka or redis
type EventsConfig struct {
	Sink string `envconfig:"SINK" default:"none"`
}

type MetricsConfig struct {
	Route string `envconfig:"ROUTE" default:"/metrics"`
}

// legacyEnv lets deployments keep the variable names of the Supabase/Groq setup
var legacyEnv = map[string]string{
	"SUPABASE_URL": "NEXT_PUBLIC_SUPABASE_URL",
	"SUPABASE_KEY": "NEXT_PUBLIC_SUPABASE_ANON_KEY",
	"GROQ_API_KEY": "GROQ_API_KEY",
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	// existing variables win over both files
	_ = godotenv.Load(".env")
	_ = godotenv.Load("deployments/local/.env")

	applyLegacyEnv(envPrefix)

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func applyLegacyEnv(envPrefix string) {
	for name, legacy := range legacyEnv {
		key := strings.ToUpper(envPrefix) + "_" + name
		if os.Getenv(key) != "" {
			continue
		}
		if v := os.Getenv(legacy); v != "" {
			_ = os.Setenv(key, v)
		}
	}
}

// Validate fails on settings the service cannot start without.
// The language model key is deliberately absent: it is only checked on first use.
func (c *Config) Validate() error {
	switch driver := strings.ToLower(c.Store.Driver); driver {
	case StoreDriverPostgREST:
		if c.PostgREST == nil {
			return fmt.Errorf("missing record store URL or key")
		}
		if err := c.PostgREST.Validate(); err != nil {
			return err
		}
	default:
		if c.SQL == nil {
			return fmt.Errorf("missing sql store configuration")
		}
		if err := c.SQL.Validate(driver); err != nil {
			return err
		}
	}

	switch c.Events.Sink {
	case "", EventSinkNone, EventSinkKafka, EventSinkRedis:
	default:
		return fmt.Errorf("unsupported events sink %q", c.Events.Sink)
	}

	return nil
}
