package config

import (
	"fmt"
	"os"
)

// defaultDBHost is the Atlas cluster the hosted deployment runs against.
const defaultDBHost = "cluster0.h73vuqp.mongodb.net"

type Config struct {
	Port              string
	DBUser            string
	DBPass            string
	DBHost            string
	DBName            string
	MongoURI          string // full override, skips the assembled SRV URI
	AccessTokenSecret string
}

// Load reads configuration from environment variables, falling back to the
// defaults the hosted deployment uses.
func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "5000"),
		DBUser:            os.Getenv("DB_USER"),
		DBPass:            os.Getenv("DB_PASS"),
		DBHost:            getEnv("DB_HOST", defaultDBHost),
		DBName:            getEnv("DB_NAME", "bistroDb"),
		MongoURI:          os.Getenv("MONGO_URI"),
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
	}
}

// URI returns the MongoDB connection string. MONGO_URI wins when set,
// otherwise the Atlas SRV form is assembled from DB_USER/DB_PASS/DB_HOST.
func (c *Config) URI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		c.DBUser, c.DBPass, c.DBHost)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
