package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends understood by the backend factory.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMongo    = "mongo"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Persistence
	StorageBackend string
	SQLitePath     string

	// Postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisAddr string
	RedisDB   int

	// Mongo
	MongoURI      string
	MongoDatabase string

	// Feedback delivery
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Localization
	DefaultLanguage string

	// AdminAPIKey guards feedback administration routes; empty disables them.
	AdminAPIKey string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendSQLite)),
		SQLitePath:     getEnv("SQLITE_PATH", "./data/budgetly.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "budgetly"),
		DBPassword: getEnv("DB_PASSWORD", "budgetly"),
		DBName:     getEnv("DB_NAME", "budgetly"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "budgetly"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "budgetly"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "feedback"),

		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),

		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
	}

	redisDB := getEnv("REDIS_DB", "0")
	db, err := strconv.Atoi(redisDB)
	if err != nil {
		log.Printf("Warning: invalid REDIS_DB value '%s', falling back to 0\n", redisDB)
		db = 0
	}
	config.RedisDB = db

	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// Validate checks the configuration and returns an error describing every problem found.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.StorageBackend {
	case BackendMemory, BackendSQLite, BackendPostgres, BackendRedis, BackendMongo:
	default:
		problems = append(problems, fmt.Sprintf("invalid storage backend '%s'", c.StorageBackend))
	}

	if c.StorageBackend == BackendSQLite && c.SQLitePath == "" {
		problems = append(problems, "SQLITE_PATH is required for the sqlite backend")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(problems, "; "))
	}
	return nil
}

// PostgresDSN returns the connection string used by the gorm postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// PostgresURL returns the URL form used by golang-migrate.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
