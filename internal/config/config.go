package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Store       StoreConfig
	AWS         AWSConfig
}

// StoreConfig holds backing-store configuration
type StoreConfig struct {
	Type      string // "dynamodb", "sqlite" or "memory"
	TableName string // name of the backing collection
	Path      string // database file path for the sqlite store
}

// AWSConfig holds AWS client configuration
type AWSConfig struct {
	Region   string
	Endpoint string // optional override for DynamoDB Local
}

// Load loads configuration from environment variables and a .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("STORE_TYPE", "dynamodb")
	viper.SetDefault("STORE_PATH", "./data/items.db")

	// TABLE_NAME deliberately has no default and is not validated: a
	// missing table name surfaces as a store fault on first use.
	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Store: StoreConfig{
			Type:      viper.GetString("STORE_TYPE"),
			TableName: viper.GetString("TABLE_NAME"),
			Path:      viper.GetString("STORE_PATH"),
		},
		AWS: AWSConfig{
			Region:   viper.GetString("AWS_REGION"),
			Endpoint: viper.GetString("DYNAMODB_ENDPOINT"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
