package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/gbcatalog/internal/cmd/globals"
	"github.com/agentstation/gbcatalog/internal/config"
	"github.com/agentstation/gbcatalog/pkg/constants"
	"github.com/agentstation/gbcatalog/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose   bool
	Quiet     bool
	NoColor   bool
	Format    string
	SourceDir string

	// Config file
	ConfigFile string

	// Taxonomy lookups
	TaxonomyEndpoint string
	HTTPTimeout      time.Duration
	UserAgent        string

	// Reconciliation
	StrictPairs bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (GBCATALOG_*)
// 3. .env files
// 4. Config file (configFile, or ~/.gbcatalog.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.GetViper()
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(config.KeyTaxonomyEndpoint, constants.DefaultTaxonomyEndpoint)
	v.SetDefault(config.KeyHTTPTimeout, constants.DefaultHTTPTimeout)
	v.SetDefault(config.KeyUserAgent, constants.DefaultUserAgent)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "reading "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".gbcatalog")
		// A missing default config file is not an error
		_ = v.ReadInConfig()
	}

	endpoint, err := config.Endpoint()
	if err != nil {
		return nil, err
	}

	return &Config{
		Verbose:   v.GetBool("verbose"),
		Quiet:     v.GetBool("quiet"),
		NoColor:   v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		Format:    v.GetString("format"),
		SourceDir: config.GetString(config.KeySourceDir),

		ConfigFile: v.ConfigFileUsed(),

		TaxonomyEndpoint: endpoint,
		HTTPTimeout:      config.HTTPTimeout(),
		UserAgent:        v.GetString(config.KeyUserAgent),

		StrictPairs: v.GetBool(config.KeyStrictPairs),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}, nil
}

// UpdateFromFlags applies the flags the user actually set, so that flags
// take precedence over config file and env vars without unset flags
// clobbering them.
func (c *Config) UpdateFromFlags(flags *globals.Flags, changed func(name string) bool, logLevel string) {
	if changed("verbose") {
		c.Verbose = flags.Verbose
	}
	if changed("quiet") {
		c.Quiet = flags.Quiet
	}
	if changed("no-color") {
		c.NoColor = flags.NoColor
	}
	if changed("format") {
		c.Format = flags.Output
	}
	if changed("source-dir") {
		c.SourceDir = flags.SourceDir
	}
	if changed("log-level") {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
