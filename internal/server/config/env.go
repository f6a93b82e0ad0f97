package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config with pointer fields so that only variables
// actually present in the environment overlay the current values.
type envConfig struct {
	EndpointAddr             *string `env:"SERVER_ADDRESS"`
	DatabaseDSN              *string `env:"DATABASE_DSN"`
	SecretKey                *string `env:"SECRET_KEY"`
	AccessTokenExpireMinutes *int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES"`
	S3RootUser               *string `env:"S3_ROOT_USER"`
	S3RootPassword           *string `env:"S3_ROOT_PASSWORD"`
	S3Bucket                 *string `env:"S3_BUCKET"`
	S3Region                 *string `env:"S3_REGION"`
	S3BaseEndpoint           *string `env:"S3_BASE_ENDPOINT"`
}

// parseEnv overlays Config fields from environment variables.
func parseEnv(config *Config) {
	ec := envConfig{}
	if err := env.Parse(&ec); err != nil {
		return
	}

	if ec.EndpointAddr != nil {
		config.EndpointAddr = *ec.EndpointAddr
	}
	if ec.DatabaseDSN != nil {
		config.DatabaseDSN = *ec.DatabaseDSN
	}
	if ec.SecretKey != nil {
		config.SecretKey = *ec.SecretKey
	}
	if ec.AccessTokenExpireMinutes != nil {
		config.AccessTokenValidityDuration = time.Duration(*ec.AccessTokenExpireMinutes) * time.Minute
	}
	if ec.S3RootUser != nil {
		config.S3RootUser = *ec.S3RootUser
	}
	if ec.S3RootPassword != nil {
		config.S3RootPassword = *ec.S3RootPassword
	}
	if ec.S3Bucket != nil {
		config.S3Bucket = *ec.S3Bucket
	}
	if ec.S3Region != nil {
		config.S3Region = *ec.S3Region
	}
	if ec.S3BaseEndpoint != nil {
		config.S3BaseEndpoint = *ec.S3BaseEndpoint
	}
}
