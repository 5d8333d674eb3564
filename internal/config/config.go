package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/seoforge/contentiq/internal/quality"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port"`
	Env             string        `json:"env"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	HTTPTimeout     time.Duration `json:"http_timeout"`

	// Redis configuration; the in-memory store is used when unset
	RedisURL    string `json:"redis_url"`
	RedisPrefix string `json:"redis_prefix"`

	// Scoring configuration
	Scoring quality.Config `json:"scoring"`

	// Dedup thresholds
	CampaignSimilarityThreshold float64 `json:"campaign_similarity_threshold"`
	GlobalSimilarityThreshold   float64 `json:"global_similarity_threshold"`

	// Report archive
	ReportPath    string `json:"report_path"`
	RetentionDays int    `json:"retention_days"`

	// S3-compatible archive (R2/MinIO); the file archive is used when unset
	S3Endpoint  string `json:"s3_endpoint"`
	S3Region    string `json:"s3_region"`
	S3AccessKey string `json:"s3_access_key"`
	S3SecretKey string `json:"s3_secret_key"`
	S3Bucket    string `json:"s3_bucket"`

	// Enrichment (fact-check / backlink API); optional
	EnrichBaseURL string        `json:"enrich_base_url"`
	EnrichAPIKey  string        `json:"enrich_api_key"`
	EnrichTimeout time.Duration `json:"enrich_timeout"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`

	// Security
	AdminAPIKey string `json:"admin_api_key"`
}

// Load loads configuration from environment variables and validates it
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	defaults := quality.DefaultConfig()

	cfg := &Config{
		// Server configuration
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),

		// Redis configuration
		RedisURL:    getEnv("REDIS_URL", ""),
		RedisPrefix: getEnv("REDIS_PREFIX", "contentiq:"),

		// Scoring configuration
		Scoring: quality.Config{
			Weights: quality.Weights{
				Experience:        getEnvAsFloat("WEIGHT_EXPERIENCE", defaults.Weights.Experience),
				Expertise:         getEnvAsFloat("WEIGHT_EXPERTISE", defaults.Weights.Expertise),
				Authoritativeness: getEnvAsFloat("WEIGHT_AUTHORITATIVENESS", defaults.Weights.Authoritativeness),
				Trustworthiness:   getEnvAsFloat("WEIGHT_TRUSTWORTHINESS", defaults.Weights.Trustworthiness),
			},
			TechnicalAccuracy:      getEnvAsFloat("PLACEHOLDER_TECHNICAL_ACCURACY", defaults.TechnicalAccuracy),
			BacklinksQuality:       getEnvAsFloat("PLACEHOLDER_BACKLINKS_QUALITY", defaults.BacklinksQuality),
			FactCheckScore:         getEnvAsFloat("PLACEHOLDER_FACT_CHECK_SCORE", defaults.FactCheckScore),
			DefaultDomainAuthority: getEnvAsFloat("DEFAULT_DOMAIN_AUTHORITY", defaults.DefaultDomainAuthority),
		},

		// Dedup thresholds
		CampaignSimilarityThreshold: getEnvAsFloat("CAMPAIGN_SIMILARITY_THRESHOLD", 0.8),
		GlobalSimilarityThreshold:   getEnvAsFloat("GLOBAL_SIMILARITY_THRESHOLD", 0.9),

		// Report archive
		ReportPath:    getEnv("REPORT_PATH", "./data/reports"),
		RetentionDays: getEnvAsInt("RETENTION_DAYS", 90),

		// S3-compatible archive
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3Region:    getEnv("S3_REGION", "auto"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Bucket:    getEnv("S3_BUCKET", ""),

		// Enrichment
		EnrichBaseURL: getEnv("ENRICH_BASE_URL", ""),
		EnrichAPIKey:  getEnv("ENRICH_API_KEY", ""),
		EnrichTimeout: getEnvAsDuration("ENRICH_TIMEOUT", 15*time.Second),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),

		// Security
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

// Validate validates the configuration. The weight-sum check lives
// here so the scoring hot path never re-validates.
func (c *Config) Validate() error {
	return c.Scoring.Weights.Validate()
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %d", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsFloat(name string, defaultVal float64) float64 {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %f", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
