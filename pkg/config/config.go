// Package config provides the configuration for ClubReads.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrNilConfig is returned when a nil config is passed around.
var ErrNilConfig = errors.New("nil config")

// HTTPConfig is the HTTP configuration for the server.
type HTTPConfig struct {
	// ListenAddr is the address on which the HTTP server will listen.
	ListenAddr string `env:"LISTEN_ADDR" yaml:"listen_addr"`

	// PublicURL is the public URL of the HTTP server.
	PublicURL string `env:"PUBLIC_URL" yaml:"public_url"`
}

// StatsConfig is the configuration for the stats server.
type StatsConfig struct {
	// ListenAddr is the address on which the stats server will listen.
	ListenAddr string `env:"LISTEN_ADDR" yaml:"listen_addr"`
}

// LogConfig is the logger configuration.
type LogConfig struct {
	// Format is the format of the logs.
	// Valid values are "json", "logfmt", and "text".
	Format string `env:"FORMAT" yaml:"format"`

	// Time format for the log `ts` field.
	// Format must be described in Golang's time format.
	TimeFormat string `env:"TIME_FORMAT" yaml:"time_format"`

	// Path to a file to write logs to.
	// If not set, logs will be written to stderr.
	Path string `env:"PATH" yaml:"path"`
}

// DBConfig is the database connection configuration.
type DBConfig struct {
	// Driver is the driver for the database.
	Driver string `env:"DRIVER" yaml:"driver"`

	// DataSource is the database data source name.
	DataSource string `env:"DATA_SOURCE" yaml:"data_source"`
}

// AuthConfig configures verification of the external auth provider's
// session tokens.
type AuthConfig struct {
	// JWTSecret is the shared HS256 secret used to verify session tokens.
	JWTSecret string `env:"JWT_SECRET" yaml:"jwt_secret"`

	// Issuer is the expected token issuer. Empty disables the check.
	Issuer string `env:"ISSUER" yaml:"issuer"`

	// LoginURL is where unauthenticated requests are pointed to. The
	// original return URL is appended as a "next" query parameter.
	LoginURL string `env:"LOGIN_URL" yaml:"login_url"`
}

// BillingConfig configures the billing collaborator.
type BillingConfig struct {
	// APIURL is the base URL of the billing API.
	APIURL string `env:"API_URL" yaml:"api_url"`

	// SecretKey is the billing API secret key.
	SecretKey string `env:"SECRET_KEY" yaml:"secret_key"`

	// WebhookSecret is the shared secret used to verify webhook signatures.
	WebhookSecret string `env:"WEBHOOK_SECRET" yaml:"webhook_secret"`

	// PriceID is the premium subscription price identifier.
	PriceID string `env:"PRICE_ID" yaml:"price_id"`
}

// MailConfig configures the transactional email collaborator.
type MailConfig struct {
	// APIURL is the base URL of the email API.
	APIURL string `env:"API_URL" yaml:"api_url"`

	// APIKey is the email API key.
	APIKey string `env:"API_KEY" yaml:"api_key"`

	// From is the sender address used for all mail.
	From string `env:"FROM" yaml:"from"`
}

// AIConfig configures the question-generation collaborator.
type AIConfig struct {
	// BaseURL is the base URL of an OpenAI-compatible completion API.
	BaseURL string `env:"BASE_URL" yaml:"base_url"`

	// APIKey is the completion API key.
	APIKey string `env:"API_KEY" yaml:"api_key"`

	// Model is the model identifier to request.
	Model string `env:"MODEL" yaml:"model"`

	// MaxTokens caps the completion length.
	MaxTokens int `env:"MAX_TOKENS" yaml:"max_tokens"`
}

// MeetingsConfig configures meeting scheduling.
type MeetingsConfig struct {
	// TimeZone is the IANA zone used to interpret date and time form
	// fields. Empty means UTC.
	TimeZone string `env:"TIME_ZONE" yaml:"time_zone"`
}

// JobsConfig is the configuration for cron jobs.
type JobsConfig struct {
	// MeetingReminder is the cron spec for the meeting reminder job.
	MeetingReminder string `env:"MEETING_REMINDER" yaml:"meeting_reminder"`
}

// Config is the configuration for ClubReads.
type Config struct {
	// Name is the name of the server.
	Name string `env:"NAME" yaml:"name"`

	// HTTP is the configuration for the HTTP server.
	HTTP HTTPConfig `envPrefix:"HTTP_" yaml:"http"`

	// Stats is the configuration for the stats server.
	Stats StatsConfig `envPrefix:"STATS_" yaml:"stats"`

	// Log is the logger configuration.
	Log LogConfig `envPrefix:"LOG_" yaml:"log"`

	// DB is the database configuration.
	DB DBConfig `envPrefix:"DB_" yaml:"db"`

	// Auth is the auth provider configuration.
	Auth AuthConfig `envPrefix:"AUTH_" yaml:"auth"`

	// Billing is the billing provider configuration.
	Billing BillingConfig `envPrefix:"BILLING_" yaml:"billing"`

	// Mail is the email provider configuration.
	Mail MailConfig `envPrefix:"MAIL_" yaml:"mail"`

	// AI is the question generator configuration.
	AI AIConfig `envPrefix:"AI_" yaml:"ai"`

	// Meetings is the meeting scheduling configuration.
	Meetings MeetingsConfig `envPrefix:"MEETINGS_" yaml:"meetings"`

	// Jobs is the configuration for cron jobs.
	Jobs JobsConfig `envPrefix:"JOBS_" yaml:"jobs"`

	// DataPath is the path to the directory where ClubReads stores its data.
	DataPath string `env:"DATA_PATH" yaml:"-"`
}

// IsDebug returns true if the server is running in debug mode.
func IsDebug() bool {
	debug, _ := strconv.ParseBool(os.Getenv("CLUBREADS_DEBUG"))
	return debug
}

// IsVerbose returns true if the server is running in verbose mode.
// Verbose mode is only enabled if debug mode is enabled.
func IsVerbose() bool {
	verbose, _ := strconv.ParseBool(os.Getenv("CLUBREADS_VERBOSE"))
	return IsDebug() && verbose
}

// parseFile parses the given file as a configuration file.
// The file must be in YAML format.
func parseFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close() // nolint: errcheck
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	return cfg.Validate()
}

// ParseFile parses the config from the default file path.
// This also calls Validate() on the config.
func (c *Config) ParseFile() error {
	return parseFile(c, c.ConfigPath())
}

// ParseEnv parses the config from the environment variables.
// This also calls Validate() on the config.
func (c *Config) ParseEnv() error {
	if err := env.ParseWithOptions(c, env.Options{
		Prefix: "CLUBREADS_",
	}); err != nil {
		return fmt.Errorf("parse environment variables: %w", err)
	}

	return c.Validate()
}

// Parse parses the config from the default file path and environment
// variables. This also calls Validate() on the config.
func (c *Config) Parse() error {
	if err := c.ParseFile(); err != nil {
		return err
	}

	return c.ParseEnv()
}

// WriteConfig writes the configuration to the default file.
func (c *Config) WriteConfig() error {
	path := c.ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, b, 0o644) // nolint: gosec
}

// DefaultDataPath returns the path to the data directory.
// It uses the CLUBREADS_DATA_PATH environment variable if set, otherwise it
// uses "data".
func DefaultDataPath() string {
	dp := os.Getenv("CLUBREADS_DATA_PATH")
	if dp == "" {
		dp = "data"
	}

	return dp
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string { // nolint:revive
	return filepath.Join(c.DataPath, "config.yaml")
}

// Exist returns true if the config file exists.
func (c *Config) Exist() bool {
	_, err := os.Stat(c.ConfigPath())
	return err == nil
}

// DefaultConfig returns the default Config. All the path values are
// relative to the data directory. Use Validate() to validate the config
// and ensure absolute paths.
func DefaultConfig() *Config {
	dp := DefaultDataPath()
	return &Config{
		Name:     "ClubReads",
		DataPath: dp,
		HTTP: HTTPConfig{
			ListenAddr: ":23230",
			PublicURL:  "http://localhost:23230",
		},
		Stats: StatsConfig{
			ListenAddr: "localhost:23233",
		},
		Log: LogConfig{
			Format:     "text",
			TimeFormat: time.DateTime,
		},
		DB: DBConfig{
			Driver:     "sqlite",
			DataSource: filepath.Join(dp, "clubreads.db") +
				"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		},
		Auth: AuthConfig{
			LoginURL: "http://localhost:23230/login",
		},
		Billing: BillingConfig{
			APIURL: "https://api.stripe.com/v1",
		},
		Mail: MailConfig{
			APIURL: "https://api.resend.com",
			From:   "ClubReads <noreply@clubreads.app>",
		},
		AI: AIConfig{
			BaseURL:   "https://api.openai.com/v1",
			Model:     "gpt-4o-mini",
			MaxTokens: 1024,
		},
		Jobs: JobsConfig{
			MeetingReminder: "@hourly",
		},
	}
}

// Validate validates the configuration and normalizes relative paths.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}

	if c.DataPath == "" {
		c.DataPath = DefaultDataPath()
	}

	if c.HTTP.ListenAddr == "" {
		return fmt.Errorf("http listen address is required")
	}

	if c.HTTP.PublicURL != "" {
		if _, err := url.Parse(c.HTTP.PublicURL); err != nil {
			return fmt.Errorf("invalid http public url: %w", err)
		}
	}

	if c.DB.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	if c.DB.Driver == "sqlite" && c.DB.DataSource != "" && !filepath.IsAbs(c.DB.DataSource) {
		dp, err := filepath.Abs(c.DB.DataSource)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		c.DB.DataSource = dp
	}

	if c.Meetings.TimeZone != "" {
		if _, err := time.LoadLocation(c.Meetings.TimeZone); err != nil {
			return fmt.Errorf("invalid meetings time zone: %w", err)
		}
	}

	return nil
}

// Location returns the time zone meetings are scheduled in.
func (c *Config) Location() *time.Location {
	if c.Meetings.TimeZone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(c.Meetings.TimeZone)
	if err != nil {
		return time.UTC
	}

	return loc
}

// Environ returns the config as a list of environment variables.
func (c *Config) Environ() []string {
	if c == nil {
		return nil
	}

	return []string{
		fmt.Sprintf("CLUBREADS_DATA_PATH=%s", c.DataPath),
		fmt.Sprintf("CLUBREADS_NAME=%s", c.Name),
		fmt.Sprintf("CLUBREADS_HTTP_LISTEN_ADDR=%s", c.HTTP.ListenAddr),
		fmt.Sprintf("CLUBREADS_HTTP_PUBLIC_URL=%s", c.HTTP.PublicURL),
		fmt.Sprintf("CLUBREADS_STATS_LISTEN_ADDR=%s", c.Stats.ListenAddr),
		fmt.Sprintf("CLUBREADS_LOG_FORMAT=%s", c.Log.Format),
		fmt.Sprintf("CLUBREADS_LOG_TIME_FORMAT=%s", c.Log.TimeFormat),
		fmt.Sprintf("CLUBREADS_DB_DRIVER=%s", c.DB.Driver),
		fmt.Sprintf("CLUBREADS_DB_DATA_SOURCE=%s", c.DB.DataSource),
		fmt.Sprintf("CLUBREADS_MEETINGS_TIME_ZONE=%s", c.Meetings.TimeZone),
		fmt.Sprintf("CLUBREADS_JOBS_MEETING_REMINDER=%s", c.Jobs.MeetingReminder),
	}
}
