package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string
	DBSource string
	Port     string
	BaseURL  string

	JWTSecret string
	JWTTTL    time.Duration

	AdminEmail     string
	AdminPassword  string
	AdminClaimCode string

	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseServiceKey string

	RedisAddr string

	KafkaBroker string
	KafkaTopic  string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBSource: getEnv("DB_SOURCE", "app.db"),
		Port:     getEnv("PORT", "8000"),
		BaseURL:  getEnv("BASE_URL", "http://localhost:8000"),

		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    24 * time.Hour,

		AdminEmail:     getEnv("ADMIN_EMAIL", ""),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
		AdminClaimCode: getEnv("ADMIN_CLAIM_CODE", ""),

		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "order-events"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
