package config

import (
	"os"
	"time"
)

// parseEnv overlays configuration from the process environment. Unset
// variables leave the current value untouched.
//
// Recognized variables:
//
//	SERVER_ADDR             HTTP bind address
//	DATABASE_DSN            PostgreSQL DSN
//	JWT_SECRET              HMAC signing secret
//	TOKEN_VALIDITY          token lifetime, e.g. "24h"
//	R2_ACCOUNT_ID           Cloudflare account id
//	R2_ACCESS_KEY_ID        storage access key id
//	R2_SECRET_ACCESS_KEY    storage secret access key
//	R2_ENDPOINT             explicit S3-compatible endpoint
//	R2_REGION               bucket region
func parseEnv(config *Config) {

	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setString(&config.EndpointAddr, "SERVER_ADDR")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.SecretKey, "JWT_SECRET")
	setString(&config.R2AccountID, "R2_ACCOUNT_ID")
	setString(&config.R2AccessKeyID, "R2_ACCESS_KEY_ID")
	setString(&config.R2SecretAccessKey, "R2_SECRET_ACCESS_KEY")
	setString(&config.R2Endpoint, "R2_ENDPOINT")
	setString(&config.R2Region, "R2_REGION")

	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}
