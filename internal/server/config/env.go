package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a
// .env file first when one exists. Missing variables leave the current
// value untouched.
//
// Recognized variables: ADDRESS, DATABASE_DSN, JWT_SECRET,
// ACCESS_TOKEN_TTL, REFRESH_TOKEN_TTL (Go duration strings),
// S3_ACCESS_KEY, S3_SECRET_KEY, S3_BUCKET, S3_REGION, S3_ENDPOINT,
// S3_PUBLIC_BASE_URL, ALLOWED_ORIGINS, MAX_UPLOAD_BYTES.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	setString := func(name string, target *string) {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*target = v
		}
	}

	setString("ADDRESS", &cfg.EndpointAddrHTTP)
	setString("DATABASE_DSN", &cfg.DatabaseDSN)
	setString("JWT_SECRET", &cfg.SecretKey)
	setString("S3_ACCESS_KEY", &cfg.S3AccessKey)
	setString("S3_SECRET_KEY", &cfg.S3SecretKey)
	setString("S3_BUCKET", &cfg.S3Bucket)
	setString("S3_REGION", &cfg.S3Region)
	setString("S3_ENDPOINT", &cfg.S3BaseEndpoint)
	setString("S3_PUBLIC_BASE_URL", &cfg.S3PublicBaseURL)
	setString("ALLOWED_ORIGINS", &cfg.AllowedOrigins)

	if v, ok := os.LookupEnv("ACCESS_TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.AccessTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("REFRESH_TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RefreshTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("MAX_UPLOAD_BYTES"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}
}
