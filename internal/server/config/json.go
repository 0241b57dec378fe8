package config

import (
	"encoding/json"
	"os"

	"digidiary/internal/flagx"
	"digidiary/internal/timex"
)

// JsonConfig is the JSON-file shape of Config. Interval fields use
// timex.Duration so both "2s" strings and integer nanoseconds parse.
type JsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	StoreBackend                string         `json:"store_backend"`
	DatabaseDSN                 string         `json:"database_dsn"`
	RestBaseURL                 string         `json:"rest_base_url"`
	RestAPIKey                  string         `json:"rest_api_key"`
	ReadTimeout                 timex.Duration `json:"store_read_timeout"`
	WriteTimeout                timex.Duration `json:"store_write_timeout"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	S3AccessKey                 string         `json:"s3_access_key"`
	S3SecretKey                 string         `json:"s3_secret_key"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
	AudioMaxBytes               int64          `json:"audio_max_bytes"`
}

// parseJson overlays configuration from the JSON file named by the -c or
// -config flags. No flag means no file is loaded; an unreadable or invalid
// file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.StoreBackend != "" {
		config.StoreBackend = c.StoreBackend
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.RestBaseURL != "" {
		config.RestBaseURL = c.RestBaseURL
	}
	if c.RestAPIKey != "" {
		config.RestAPIKey = c.RestAPIKey
	}
	if c.ReadTimeout.Duration != 0 {
		config.ReadTimeout = c.ReadTimeout.Duration
	}
	if c.WriteTimeout.Duration != 0 {
		config.WriteTimeout = c.WriteTimeout.Duration
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.S3AccessKey != "" {
		config.S3AccessKey = c.S3AccessKey
	}
	if c.S3SecretKey != "" {
		config.S3SecretKey = c.S3SecretKey
	}
	if c.S3Bucket != "" {
		config.S3Bucket = c.S3Bucket
	}
	if c.S3Region != "" {
		config.S3Region = c.S3Region
	}
	if c.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = c.S3BaseEndpoint
	}
	if c.AudioMaxBytes != 0 {
		config.AudioMaxBytes = c.AudioMaxBytes
	}
}
