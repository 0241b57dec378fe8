package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a
// .env file first if one is present in the working directory. A missing
// .env is not an error. This overlay runs last, so environment values win
// over the JSON file and flags.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v, ok := os.LookupEnv(key); ok {
			if d, err := time.ParseDuration(v); err == nil {
				*dst = d
			}
		}
	}

	setString("ADDRESS", &config.EndpointAddr)
	setString("STORE_BACKEND", &config.StoreBackend)
	setString("DATABASE_DSN", &config.DatabaseDSN)
	setString("REST_BASE_URL", &config.RestBaseURL)
	setString("REST_API_KEY", &config.RestAPIKey)
	setDuration("STORE_READ_TIMEOUT", &config.ReadTimeout)
	setDuration("STORE_WRITE_TIMEOUT", &config.WriteTimeout)
	setString("SECRET_KEY", &config.SecretKey)
	setDuration("ACCESS_TOKEN_VALIDITY", &config.AccessTokenValidityDuration)
	setString("S3_ACCESS_KEY", &config.S3AccessKey)
	setString("S3_SECRET_KEY", &config.S3SecretKey)
	setString("S3_BUCKET", &config.S3Bucket)
	setString("S3_REGION", &config.S3Region)
	setString("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)

	if v, ok := os.LookupEnv("AUDIO_MAX_BYTES"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.AudioMaxBytes = n
		}
	}
}
