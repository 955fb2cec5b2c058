// Package config holds small viper helpers shared by the command layer.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/agentstation/gbcatalog/pkg/constants"
	"github.com/agentstation/gbcatalog/pkg/taxonomy"
)

// EnvPrefix prefixes every environment variable read through viper.
const EnvPrefix = "GBCATALOG"

// Viper keys.
const (
	KeyTaxonomyEndpoint = "taxonomy_endpoint"
	KeySourceDir        = "source_dir"
	KeyHTTPTimeout      = "http_timeout"
	KeyUserAgent        = "user_agent"
	KeyStrictPairs      = "strict_pairs"
)

// EnvName returns the environment variable viper consults for key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(EnvName(key))
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// Endpoint returns the configured taxonomy endpoint template, falling back
// to the NCBI default, and validates its placeholder.
func Endpoint() (string, error) {
	endpoint := GetString(KeyTaxonomyEndpoint)
	if endpoint == "" {
		endpoint = constants.DefaultTaxonomyEndpoint
	}
	if err := taxonomy.ValidateEndpoint(endpoint); err != nil {
		return "", err
	}
	return endpoint, nil
}

// HTTPTimeout returns the configured lookup timeout or the default.
func HTTPTimeout() time.Duration {
	if d := viper.GetDuration(KeyHTTPTimeout); d > 0 {
		return d
	}
	return constants.DefaultHTTPTimeout
}
