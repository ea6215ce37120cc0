package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	Server        ServerConfig        `json:"server"`
	Database      DatabaseConfig      `json:"database"`
	Mongo         MongoConfig         `json:"mongo"`
	AWS           AWSConfig           `json:"aws"`
	Elasticsearch ElasticsearchConfig `json:"elasticsearch"`
	Auth          AuthConfig          `json:"auth"`
	Notifications NotificationsConfig `json:"notifications"`
	Logging       LoggingConfig       `json:"logging"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host         string        `json:"host"`
	Port         int           `json:"port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
}

// DatabaseConfig represents the Postgres configuration
type DatabaseConfig struct {
	Host           string        `json:"host"`
	Port           int           `json:"port"`
	User           string        `json:"user"`
	Password       string        `json:"password"`
	DBName         string        `json:"db_name"`
	SSLMode        string        `json:"ssl_mode"`
	MaxConnections int           `json:"max_connections"`
	MaxIdleConns   int           `json:"max_idle_conns"`
	MaxLifetime    time.Duration `json:"max_lifetime"`
}

// MongoConfig represents the notification archive store configuration
type MongoConfig struct {
	URI      string `json:"uri"`
	Database string `json:"database"`
}

// AWSConfig covers S3 uploads, SES email, and SNS texts
type AWSConfig struct {
	Region        string `json:"region"`
	UploadsBucket string `json:"uploads_bucket"`
	SESSender     string `json:"ses_sender"`
	ReviewerPhone string `json:"reviewer_phone"`
}

// ElasticsearchConfig represents the search cluster configuration
type ElasticsearchConfig struct {
	Addresses []string `json:"addresses"`
	Username  string   `json:"username"`
	Password  string   `json:"password"`
}

// AuthConfig represents token issuing configuration
type AuthConfig struct {
	JWTSecret string        `json:"jwt_secret"`
	TokenTTL  time.Duration `json:"token_ttl"`
}

// NotificationsConfig represents notification retention and digest settings
type NotificationsConfig struct {
	RetentionDays int `json:"retention_days"`
}

// LoggingConfig
type LoggingConfig struct {
	Level string `json:"level"`
}

// LoadConfig loads configuration from an optional .env file, an optional
// JSON file, and environment variable overrides, in that order.
func LoadConfig(configPath string) (*Config, error) {
	// Missing .env is fine; containers set real env vars.
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			User:    os.Getenv("USER"),
			DBName:  "kollabee_sellers",
			SSLMode: "disable",
		},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "kollabee",
		},
		AWS: AWSConfig{
			Region: "us-east-1",
		},
		Elasticsearch: ElasticsearchConfig{
			Addresses: []string{"http://localhost:9200"},
		},
		Auth: AuthConfig{
			TokenTTL: 24 * time.Hour,
		},
		Notifications: NotificationsConfig{
			RetentionDays: 90,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	overrideWithEnv(config)

	if config.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

func overrideWithEnv(config *Config) {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if dbHost := os.Getenv("DATABASE_HOST"); dbHost != "" {
		config.Database.Host = dbHost
	}
	if dbPort := os.Getenv("DATABASE_PORT"); dbPort != "" {
		if p, err := strconv.Atoi(dbPort); err == nil {
			config.Database.Port = p
		}
	}
	if dbUser := os.Getenv("DATABASE_USER"); dbUser != "" {
		config.Database.User = dbUser
	}
	if dbPass := os.Getenv("DATABASE_PASSWORD"); dbPass != "" {
		config.Database.Password = dbPass
	}
	if dbName := os.Getenv("DATABASE_DBNAME"); dbName != "" {
		config.Database.DBName = dbName
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		config.Mongo.URI = uri
	}
	if db := os.Getenv("MONGO_DATABASE"); db != "" {
		config.Mongo.Database = db
	}
	if region := os.Getenv("AWS_REGION"); region != "" {
		config.AWS.Region = region
	}
	if bucket := os.Getenv("UPLOADS_BUCKET"); bucket != "" {
		config.AWS.UploadsBucket = bucket
	}
	if sender := os.Getenv("SES_SENDER"); sender != "" {
		config.AWS.SESSender = sender
	}
	if phone := os.Getenv("REVIEWER_PHONE"); phone != "" {
		config.AWS.ReviewerPhone = phone
	}
	if addr := os.Getenv("ELASTICSEARCH_URL"); addr != "" {
		config.Elasticsearch.Addresses = []string{addr}
	}
	if user := os.Getenv("ELASTICSEARCH_USERNAME"); user != "" {
		config.Elasticsearch.Username = user
	}
	if pass := os.Getenv("ELASTICSEARCH_PASSWORD"); pass != "" {
		config.Elasticsearch.Password = pass
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.Auth.JWTSecret = secret
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// GetDatabaseURL returns the database connection string
func (c *DatabaseConfig) GetDatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// GetServerAddr returns the server address
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
