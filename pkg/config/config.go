package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int           `env:"HTTP_PORT" envDefault:"3000"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	PostgresDSN      string        `env:"POSTGRES_DSN"`
	PostgresMaxConns int32         `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	RedisURL         string        `env:"REDIS_URL"`
	CacheTTL         time.Duration `env:"CACHE_TTL" envDefault:"24h"`
	CORSOrigins      []string      `env:"CORS_ORIGINS" envSeparator:","`
	JobExpiringScan  time.Duration `env:"JOB_EXPIRING_SCAN_INTERVAL" envDefault:"12h"`
	JobPruneAttempts time.Duration `env:"JOB_PRUNE_ATTEMPTS_INTERVAL" envDefault:"1h"`
	JWT              JWT
	Login            Login
	Registry         Registry
	IBGE             IBGE
	Storage          Storage
	Kafka            Kafka
}

type JWT struct {
	Secret string        `env:"JWT_SECRET"`
	TTL    time.Duration `env:"LOGIN_TOKEN_TTL" envDefault:"1h"`
}

type Login struct {
	MaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS" envDefault:"5"`
	Window      time.Duration `env:"LOGIN_ATTEMPTS_WINDOW" envDefault:"15m"`
}

type Registry struct {
	BaseURL        string        `env:"RECEITAWS_URL" envDefault:"https://receitaws.com.br/v1"`
	Timeout        time.Duration `env:"RECEITAWS_TIMEOUT" envDefault:"15s"`
	RequestsPerMin int           `env:"RECEITAWS_REQUESTS_PER_MINUTE" envDefault:"3"`
	RetryAttempts  int           `env:"RECEITAWS_RETRY_ATTEMPTS" envDefault:"0"`
}

type IBGE struct {
	BaseURL string        `env:"IBGE_URL" envDefault:"https://servicodados.ibge.gov.br/api/v1/localidades"`
	Timeout time.Duration `env:"IBGE_TIMEOUT" envDefault:"10s"`
}

type Storage struct {
	Type      string `env:"STORAGE_TYPE" envDefault:"local"`
	LocalDir  string `env:"STORAGE_LOCAL_DIR" envDefault:"./uploads"`
	S3BaseURL string `env:"STORAGE_S3_URL"`
	S3Token   string `env:"STORAGE_S3_TOKEN"`
	MaxSizeMB int64  `env:"STORAGE_MAX_SIZE_MB" envDefault:"20"`
}

type Kafka struct {
	Brokers             []string `env:"KAFKA_BROKERS" envSeparator:","`
	ConsumerID          string   `env:"KAFKA_CONSUMER_ID" envDefault:"alvaras"`
	PermitChangedTopic  string   `env:"KAFKA_PERMIT_CHANGED_TOPIC" envDefault:"permit.changed"`
	PermitExpiringTopic string   `env:"KAFKA_PERMIT_EXPIRING_TOPIC" envDefault:"permit.expiring"`
	CompanyCreatedTopic string   `env:"KAFKA_COMPANY_CREATED_TOPIC" envDefault:"company.created"`
}

// Console configures the terminal client.
type Console struct {
	APIURL        string        `env:"ALVARAS_API_URL" envDefault:"http://localhost:3000/api"`
	SessionFile   string        `env:"ALVARAS_SESSION_FILE" envDefault:".alvaras-session.json"`
	SessionTTL    time.Duration `env:"ALVARAS_SESSION_TTL" envDefault:"1h"`
	Timeout       time.Duration `env:"ALVARAS_HTTP_TIMEOUT" envDefault:"30s"`
	RetryAttempts int           `env:"ALVARAS_RETRY_ATTEMPTS" envDefault:"0"`
	LogFile       string        `env:"ALVARAS_LOG_FILE" envDefault:"alvaras-console.log"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	Author        string        `env:"ALVARAS_NOTE_AUTHOR"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := load(envPath, &c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func NewConsole(envPath string) (Console, error) {
	var c Console

	err := load(envPath, &c)
	if err != nil {
		return Console{}, err
	}

	return c, nil
}

func load(envPath string, target any) error {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return env.Parse(target)
}
