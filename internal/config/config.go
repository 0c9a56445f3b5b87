package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	JWTSecret       string
	JWTAlgorithm    string
	AccessTokenTTL  time.Duration
	AllowOrigins    []string
	FrontendBaseURL string
	LogstashTCPAddr string
	SwaggerSpecPath string
	MinIOEndpoint   string
	MinIOAccessKey  string
	MinIOSecretKey  string
	MinIOUseSSL     bool
	MinIOBucket     string
	MinIOPublicURL  string
	SMTPHost        string
	SMTPPort        string
	SMTPUsername    string
	SMTPPassword    string
	SMTPFrom        string
	SMTPUseTLS      bool
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	tokenTTL := 30 * time.Minute
	if raw := getenv("ACCESS_TOKEN_TTL", ""); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			tokenTTL = d
		} else {
			log.Printf("Warning: invalid ACCESS_TOKEN_TTL %q, using %s", raw, tokenTTL)
		}
	}

	return Config{
		Port:            getenv("PORT", "8080"),
		DatabaseURL:     must("DATABASE_URL"),
		JWTSecret:       must("JWT_SECRET"),
		JWTAlgorithm:    getenv("JWT_ALGORITHM", "HS256"),
		AccessTokenTTL:  tokenTTL,
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		FrontendBaseURL: getenv("FRONTEND_BASE_URL", ""),
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),
		SwaggerSpecPath: getenv("SWAGGER_SPEC_PATH", filepath.Join("docs", "swagger.yaml")),
		MinIOEndpoint:   getenv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:  getenv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:  getenv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:     getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucket:     getenv("MINIO_BUCKET_MEDIA", "artistdesk-media"),
		MinIOPublicURL:  getenv("MINIO_PUBLIC_URL", ""),
		SMTPHost:        getenv("SMTP_HOST", ""),
		SMTPPort:        getenv("SMTP_PORT", ""),
		SMTPUsername:    getenv("SMTP_USERNAME", ""),
		SMTPPassword:    getenv("SMTP_PASSWORD", ""),
		SMTPFrom:        getenv("SMTP_FROM", ""),
		SMTPUseTLS:      getenv("SMTP_USE_TLS", "false") == "true",
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
