package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv pulls a local .env file into the environment if one exists.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}

// Config is read from environment variables.
type Config struct {
	Port        string
	WebOrigin   string
	StoreDriver string // memory | redis | postgres | sqlite

	RedisAddr string
	RedisPwd  string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	SQLitePath string
}

func Load() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	return Config{
		Port:        get("PORT", "3001"),
		WebOrigin:   get("WEB_ORIGIN", "http://localhost:5173"),
		StoreDriver: get("STORE_DRIVER", "memory"),
		RedisAddr:   get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:    os.Getenv("REDIS_PASSWORD"),
		DBHost:      get("DB_HOST", "127.0.0.1"),
		DBUser:      get("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      get("DB_NAME", "rental"),
		DBPort:      get("DB_PORT", "5432"),
		SQLitePath:  get("SQLITE_PATH", "rental.db"),
	}
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
