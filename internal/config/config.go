package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process configuration. Pricing rules are business data and live in business_config.
type Config struct {
	Port string

	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBMaxOpenConns int
	DBMaxIdleConns int

	JWTSecret   string
	CORSOrigins []string

	IdentityServiceURL  string
	WalletServiceURL    string
	IntegrationToken    string
	CollaboratorTimeout time.Duration

	SchedulerEnabled  bool
	PenaltyDailyCron  string
	PenaltyHourlyCron string
	PenaltyWeeklyCron string
	SchedulerTimeout  time.Duration
}

// Load reads configs/.env when present and then the process environment.
func Load() Config {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	return Config{
		Port: getEnvOrDefault("PORT", "8080"),

		DBHost:         getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:         getEnvOrDefault("DB_PORT", "5432"),
		DBUser:         getEnvOrDefault("DB_USER", "postgres"),
		DBPassword:     getEnvOrDefault("DB_PASSWORD", "postgres"),
		DBName:         getEnvOrDefault("DB_NAME", "postgres"),
		DBSSLMode:      getEnvOrDefault("DB_SSLMODE", "disable"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:5173", "http://127.0.0.1:5173"}),

		IdentityServiceURL:  os.Getenv("IDENTITY_SERVICE_URL"),
		WalletServiceURL:    os.Getenv("WALLET_SERVICE_URL"),
		IntegrationToken:    os.Getenv("INTEGRATION_TOKEN"),
		CollaboratorTimeout: getEnvDuration("COLLABORATOR_TIMEOUT", 5*time.Second),

		SchedulerEnabled:  getEnvBool("SCHEDULER_ENABLED", true),
		PenaltyDailyCron:  getEnvOrDefault("PENALTY_DAILY_CRON", "0 2 * * *"),
		PenaltyHourlyCron: getEnvOrDefault("PENALTY_HOURLY_CRON", "0 * * * *"),
		PenaltyWeeklyCron: getEnvOrDefault("PENALTY_WEEKLY_CRON", "0 3 * * 1"),
		SchedulerTimeout:  getEnvDuration("SCHEDULER_TIMEOUT", 10*time.Minute),
	}
}

// DSN builds the postgres connection URL.
func (c Config) DSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

func getEnvOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("[CONFIG] invalid %s=%q, using %d", key, v, def)
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("[CONFIG] invalid %s=%q, using %v", key, v, def)
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Printf("[CONFIG] invalid %s=%q, using %s", key, v, def)
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
