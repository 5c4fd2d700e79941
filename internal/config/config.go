package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// App holds everything the server reads from the environment.
type App struct {
	Port       string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
}

// Load reads configuration from the environment, picking up a local
// .env file first when one exists.
func Load() App {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	return App{
		Port:       getenv("PORT", "8080"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBName:     getenv("DB_NAME", "campusmarket"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
