package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/r2vault/internal/flagx"
	"github.com/dmitrijs2005/r2vault/internal/timex"
)

// JsonConfig is the JSON file DTO. Duration fields use timex.Duration so
// both "24h" strings and integer nanoseconds parse.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	R2AccountID           string         `json:"r2_account_id"`
	R2AccessKeyID         string         `json:"r2_access_key_id"`
	R2SecretAccessKey     string         `json:"r2_secret_access_key"`
	R2Endpoint            string         `json:"r2_endpoint"`
	R2Region              string         `json:"r2_region"`
}

// parseJson overlays values from the JSON file named by the -c/-config
// flag, if any. Empty fields leave the current value untouched, so the file
// can be partial. Unreadable or invalid files panic: a config file that was
// explicitly pointed at must parse.
func parseJson(config *Config) {

	jsonConfigFile := flagx.ConfigFilePath()
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
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.R2AccountID != "" {
		config.R2AccountID = c.R2AccountID
	}
	if c.R2AccessKeyID != "" {
		config.R2AccessKeyID = c.R2AccessKeyID
	}
	if c.R2SecretAccessKey != "" {
		config.R2SecretAccessKey = c.R2SecretAccessKey
	}
	if c.R2Endpoint != "" {
		config.R2Endpoint = c.R2Endpoint
	}
	if c.R2Region != "" {
		config.R2Region = c.R2Region
	}
}
