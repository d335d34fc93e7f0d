package config

import (
	"encoding/json"
	"os"
	"strings"

	"fitprogress/internal/flagx"
	"fitprogress/internal/timex"
)

// JsonConfig is the JSON-shaped counterpart of Config, used only for
// unmarshalling configuration files. Duration fields use timex.Duration so
// values can be strings ("15m") or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	S3AccessKey                  string         `json:"s3_access_key"`
	S3SecretKey                  string         `json:"s3_secret_key"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	S3PublicBaseURL              string         `json:"s3_public_base_url"`
	AllowedOrigins               string         `json:"allowed_origins"`
	MaxUploadBytes               int64          `json:"max_upload_bytes"`
}

// parseJson loads configuration values from the JSON file named by the -c
// or -config flag into the provided Config. If no flag is given, nothing is
// loaded. An unreadable or invalid file panics: a config file that exists
// but cannot be used is a startup error.
func parseJson(cfg *Config) {
	path := jsonConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	jc := &JsonConfig{}
	if err := json.Unmarshal(data, jc); err != nil {
		panic(err)
	}

	apply := func(v string, target *string) {
		if v != "" {
			*target = v
		}
	}
	apply(jc.EndpointAddrHTTP, &cfg.EndpointAddrHTTP)
	apply(jc.DatabaseDSN, &cfg.DatabaseDSN)
	apply(jc.SecretKey, &cfg.SecretKey)
	apply(jc.S3AccessKey, &cfg.S3AccessKey)
	apply(jc.S3SecretKey, &cfg.S3SecretKey)
	apply(jc.S3Bucket, &cfg.S3Bucket)
	apply(jc.S3Region, &cfg.S3Region)
	apply(jc.S3BaseEndpoint, &cfg.S3BaseEndpoint)
	apply(jc.S3PublicBaseURL, &cfg.S3PublicBaseURL)
	apply(jc.AllowedOrigins, &cfg.AllowedOrigins)
	if jc.AccessTokenValidityDuration.Duration > 0 {
		cfg.AccessTokenValidityDuration = jc.AccessTokenValidityDuration.Duration
	}
	if jc.RefreshTokenValidityDuration.Duration > 0 {
		cfg.RefreshTokenValidityDuration = jc.RefreshTokenValidityDuration.Duration
	}
	if jc.MaxUploadBytes > 0 {
		cfg.MaxUploadBytes = jc.MaxUploadBytes
	}
}

// jsonConfigPath extracts the config file path from -c/-config, tolerating
// both "-c path" and "-c=path" forms.
func jsonConfigPath() string {
	args := flagx.FilterArgs(os.Args[1:], []string{"-c", "-config", "--config"})
	for i := 0; i < len(args); i++ {
		if eq := strings.IndexByte(args[i], '='); eq >= 0 {
			return args[i][eq+1:]
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
