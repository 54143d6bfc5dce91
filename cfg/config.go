package cfg

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AmadeusConfig struct {
	BaseURL            string
	ClientID           string
	ClientSecret       string
	RequestTimeoutSecs int
	TokenMarginSecs    int
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type StripeConfig struct {
	SecretKey  string
	SuccessURL string
	CancelURL  string
}

type ObservabilityConfig struct {
	ServiceName  string
	Environment  string
	OTLPEndpoint string
}

type Config struct {
	AppEnv          string
	AppPort         string
	Amadeus         AmadeusConfig
	Redis           RedisConfig
	SMTP            SMTPConfig
	Stripe          StripeConfig
	Observability   ObservabilityConfig
	CacheTTLMinutes int
}

func Load() (*Config, error) {
	var errs []error

	if err := godotenv.Load(); err != nil {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := optEnv("APP_PORT", "4000")

	amadeusBaseURL := mustEnv("AMADEUS_BASE_URL", &errs)
	amadeusClientID := mustEnv("AMADEUS_CLIENT_ID", &errs)
	amadeusClientSecret := mustEnv("AMADEUS_CLIENT_SECRET", &errs)
	amadeusTimeoutSecs := intEnv("AMADEUS_REQUEST_TIMEOUT_SECONDS", "10", &errs)
	amadeusMarginSecs := intEnv("AMADEUS_TOKEN_MARGIN_SECONDS", "60", &errs)

	redisHost := mustEnv("REDIS_HOST", &errs)
	redisPort := mustEnv("REDIS_PORT", &errs)
	redisPassword := os.Getenv("REDIS_PASSWORD")

	cacheTTLMinutes := intEnv("CACHE_TTL_MINUTES", "10", &errs)

	smtpHost := mustEnv("SMTP_HOST", &errs)
	smtpPort := intEnv("SMTP_PORT", "587", &errs)
	smtpUser := mustEnv("SMTP_USER", &errs)
	smtpPass := mustEnv("SMTP_PASS", &errs)
	smtpFrom := optEnv("SMTP_FROM", "bookings@skanditravels.example")

	stripeSecretKey := mustEnv("STRIPE_SECRET_KEY", &errs)
	stripeSuccessURL := mustEnv("STRIPE_SUCCESS_URL", &errs)
	stripeCancelURL := mustEnv("STRIPE_CANCEL_URL", &errs)

	serviceName := optEnv("OTEL_SERVICE_NAME", "travelbroker")
	otlpEndpoint := mustEnv("OTLP_ENDPOINT", &errs)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		Amadeus: AmadeusConfig{
			BaseURL:            amadeusBaseURL,
			ClientID:           amadeusClientID,
			ClientSecret:       amadeusClientSecret,
			RequestTimeoutSecs: amadeusTimeoutSecs,
			TokenMarginSecs:    amadeusMarginSecs,
		},
		Redis: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: redisPassword,
		},
		SMTP: SMTPConfig{
			Host:     smtpHost,
			Port:     smtpPort,
			Username: smtpUser,
			Password: smtpPass,
			From:     smtpFrom,
		},
		Stripe: StripeConfig{
			SecretKey:  stripeSecretKey,
			SuccessURL: stripeSuccessURL,
			CancelURL:  stripeCancelURL,
		},
		Observability: ObservabilityConfig{
			ServiceName:  serviceName,
			Environment:  appEnv,
			OTLPEndpoint: otlpEndpoint,
		},
		CacheTTLMinutes: cacheTTLMinutes,
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func optEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func intEnv(key, fallback string, errs *[]error) int {
	value := optEnv(key, fallback)
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
	}
	return n
}
