package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StoreBackendAuto     = "auto"
	StoreBackendKV       = "kv"
	StoreBackendDynamoDB = "dynamodb"
	StoreBackendMemory   = "memory"

	// DevelopmentTokenSecret is only accepted outside production.
	DevelopmentTokenSecret = "CHANGE_ME_IN_PROD"

	defaultPort           = 8080
	defaultGatewayTimeout = 8 * time.Second
	defaultStoreTimeout   = 5 * time.Second
)

var (
	ErrMissingTokenSecret = errors.New("PAYMENT_TOKEN_SECRET is required in production")
	ErrSharedSecret       = errors.New("PAYMENT_TOKEN_SECRET must differ from WEBHOOK_SECRET")
)

// Config aggregates application configuration values.
type Config struct {
	App      AppConfig
	Gateway  GatewayConfig
	Security SecurityConfig
	Store    StoreConfig
	Events   EventsConfig
	Pix      PixConfig
}

type AppConfig struct {
	Env  string
	Port int
}

type GatewayConfig struct {
	Provider               string
	InPagamentosURL        string
	InPagamentosPublicKey  string
	InPagamentosSecretKey  string
	MercadoPagoAccessToken string
	Mock                   bool
	Timeout                time.Duration
}

// SecurityConfig holds the two independent HMAC secrets. WebhookSecret empty
// means webhook signatures are not checked.
type SecurityConfig struct {
	TokenSecret   string
	WebhookSecret string
}

type StoreConfig struct {
	Backend  string
	KVURL    string
	KVToken  string
	Table    string
	Endpoint string
	Region   string
	Timeout  time.Duration
}

type EventsConfig struct {
	RabbitMQURL string
	Exchange    string
	RoutingKey  string
}

type PixConfig struct {
	Key          string
	MerchantName string
	MerchantCity string
}

func (c Config) Production() bool {
	return c.App.Env == EnvProduction
}

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		App: AppConfig{
			Env: strings.ToLower(valueOrDefault(EnvDevelopment, "APP_ENV")),
		},
		Gateway: GatewayConfig{
			Provider:               strings.ToLower(valueOrDefault("inpagamentos", "PAYMENT_GATEWAY_PROVIDER")),
			InPagamentosURL:        os.Getenv("INPAGAMENTOS_API_URL"),
			InPagamentosPublicKey:  valueOrDefault("", "INPAGAMENTOS_PUBLIC_KEY", "INP_PUBLIC_KEY"),
			InPagamentosSecretKey:  valueOrDefault("", "INPAGAMENTOS_SECRET_KEY", "INP_PRIVATE_KEY"),
			MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			Mock:                   isMockEnabled("PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"),
		},
		Security: SecurityConfig{
			TokenSecret:   os.Getenv("PAYMENT_TOKEN_SECRET"),
			WebhookSecret: valueOrDefault("", "WEBHOOK_SECRET", "INPAGAMENTOS_WEBHOOK_SECRET"),
		},
		Store: StoreConfig{
			Backend:  strings.ToLower(valueOrDefault(StoreBackendAuto, "STATUS_STORE_BACKEND")),
			KVURL:    os.Getenv("UPSTASH_REDIS_REST_URL"),
			KVToken:  os.Getenv("UPSTASH_REDIS_REST_TOKEN"),
			Table:    valueOrDefault("payment_status", "PAYMENT_STATUS_TABLE"),
			Endpoint: os.Getenv("DYNAMODB_ENDPOINT"),
			Region:   valueOrDefault("us-east-1", "AWS_REGION"),
		},
		Events: EventsConfig{
			RabbitMQURL: os.Getenv("RABBITMQ_URL"),
			Exchange:    valueOrDefault("payments", "PAYMENT_EVENTS_EXCHANGE"),
			RoutingKey:  valueOrDefault("payment.approved", "PAYMENT_EVENTS_ROUTING_KEY"),
		},
		Pix: PixConfig{
			Key:          os.Getenv("PIX_KEY"),
			MerchantName: os.Getenv("PIX_MERCHANT_NAME"),
			MerchantCity: os.Getenv("PIX_MERCHANT_CITY"),
		},
	}

	switch cfg.App.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV value %q", cfg.App.Env)
	}

	port, err := parsePort("PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.App.Port = port

	if cfg.Gateway.Timeout, err = parseDuration("GATEWAY_TIMEOUT", defaultGatewayTimeout); err != nil {
		return Config{}, err
	}
	if cfg.Store.Timeout, err = parseDuration("STORE_TIMEOUT", defaultStoreTimeout); err != nil {
		return Config{}, err
	}

	switch cfg.Store.Backend {
	case StoreBackendAuto, StoreBackendKV, StoreBackendDynamoDB, StoreBackendMemory:
	default:
		return Config{}, fmt.Errorf("invalid STATUS_STORE_BACKEND value %q", cfg.Store.Backend)
	}

	if cfg.Security.TokenSecret == "" {
		if cfg.Production() {
			return Config{}, ErrMissingTokenSecret
		}
		log.Printf("[config] PAYMENT_TOKEN_SECRET not set; using development placeholder")
		cfg.Security.TokenSecret = DevelopmentTokenSecret
	}
	if cfg.Production() && cfg.Security.TokenSecret == DevelopmentTokenSecret {
		return Config{}, ErrMissingTokenSecret
	}
	if cfg.Security.TokenSecret == cfg.Security.WebhookSecret {
		return Config{}, ErrSharedSecret
	}
	if cfg.Security.WebhookSecret == "" {
		log.Printf("[config] WEBHOOK_SECRET not set; webhook signatures will not be checked")
	}

	return cfg, nil
}

// valueOrDefault returns the first non-empty variable among keys.
func valueOrDefault(fallback string, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return fallback
}

func isMockEnabled(keys ...string) bool {
	for _, key := range keys {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

func parsePort(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}
