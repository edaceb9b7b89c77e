package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultJWTSecret    = "your-secret-key-change-in-production"
	defaultJWTAlgorithm = "HS256"
	defaultJWTExpiry    = 30 * time.Minute

	defaultPosthogEndpoint = "https://eu.i.posthog.com"
)

var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://localhost:8000",
}

// Config holds application configuration.
// It is built once at startup and handed to every component that needs it.
type Config struct {
	AppName       string
	APIVersion    string
	DatabaseURL   string
	Port          string
	IsProduction  bool
	Debug         bool
	EnableDBCheck bool

	// DBMaxConns caps the pgx pool size. Zero keeps the driver default.
	DBMaxConns     int32
	MigrationsPath string

	JWTSecret         string
	JWTAlgorithm      string
	JWTExpiryDuration time.Duration

	AllowedOrigins []string

	// PasswordHashCost is the bcrypt work factor.
	PasswordHashCost int

	// LoginRateLimit uses the limiter formatted syntax, e.g. "5-M".
	LoginRateLimit string
	// RedisURL switches the rate limiter to a shared redis store when set.
	RedisURL string

	// PosthogAPIKey enables product analytics when set.
	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_NAME", "Immobilier API")
	v.SetDefault("API_VERSION", "0.0.1")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("DEBUG", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("DB_MAX_CONNS", 0)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ALGORITHM", defaultJWTAlgorithm)
	v.SetDefault("JWT_EXPIRY_DURATION", defaultJWTExpiry.String())
	v.SetDefault("ALLOWED_ORIGINS", strings.Join(defaultAllowedOrigins, ","))
	v.SetDefault("PASSWORD_HASH_COST", bcrypt.DefaultCost)
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", defaultPosthogEndpoint)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		AppName:        v.GetString("APP_NAME"),
		APIVersion:     v.GetString("API_VERSION"),
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		Debug:          v.GetBool("DEBUG"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		LoginRateLimit: v.GetString("LOGIN_RATE_LIMIT"),
		RedisURL:       v.GetString("REDIS_URL"),
		PosthogAPIKey:  v.GetString("POSTHOG_API_KEY"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	maxConns := v.GetInt("DB_MAX_CONNS")
	if maxConns < 0 || maxConns > 1000 {
		log.Printf("Warning: Invalid value for DB_MAX_CONNS (%d). Using the driver default.\n", maxConns)
		maxConns = 0
	}
	cfg.DBMaxConns = int32(maxConns)

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTAlgorithm = strings.ToUpper(strings.TrimSpace(v.GetString("JWT_ALGORITHM")))
	switch cfg.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		log.Printf("Warning: Unsupported JWT_ALGORITHM ('%s'). Defaulting to %s.\n", cfg.JWTAlgorithm, defaultJWTAlgorithm)
		cfg.JWTAlgorithm = defaultJWTAlgorithm
	}

	// Load JWT Expiry Duration (e.g., "30m", "1h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiry <= 0 {
		jwtExpiry = defaultJWTExpiry
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry.String())
	}
	cfg.JWTExpiryDuration = jwtExpiry

	cfg.AllowedOrigins = splitList(v.GetString("ALLOWED_ORIGINS"))
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = defaultAllowedOrigins
	}

	cost := v.GetInt("PASSWORD_HASH_COST")
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		log.Printf("Warning: Invalid value for PASSWORD_HASH_COST (%d). Defaulting to %d.\n", cost, bcrypt.DefaultCost)
		cost = bcrypt.DefaultCost
	}
	cfg.PasswordHashCost = cost

	cfg.PosthogEndpoint = strings.TrimSpace(v.GetString("POSTHOG_ENDPOINT"))
	if cfg.PosthogEndpoint == "" {
		cfg.PosthogEndpoint = defaultPosthogEndpoint
	}

	if cfg.LoginRateLimit == "" {
		cfg.LoginRateLimit = "5-M"
	}

	return cfg
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
