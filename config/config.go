// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/AsbestosServicesHampshire/ash-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
	// TrustedProxies is a list of CIDR ranges or IPs of trusted reverse proxies.
	// If empty, X-Forwarded-For headers are ignored entirely (safe default).
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES" yaml:"trusted_proxies"`
}

// EmailConfig holds configuration for sending emails through Resend.
type EmailConfig struct {
	FromAddress  string `mapstructure:"FROM_ADDRESS" yaml:"from_address"`
	FromName     string `mapstructure:"FROM_NAME" yaml:"from_name"`
	ResendAPIKey string `mapstructure:"RESEND_API_KEY" yaml:"resend_api_key"`
}

// BusinessConfig holds the fixed business contact details surfaced in pages
// and notification emails. Loaded once at startup and passed explicitly to
// the components that need it.
type BusinessConfig struct {
	SiteName     string `mapstructure:"SITE_NAME" yaml:"site_name"`
	SiteURL      string `mapstructure:"SITE_URL" yaml:"site_url"`
	InboxAddress string `mapstructure:"INBOX_ADDRESS" yaml:"inbox_address"`
	SupportPhone string `mapstructure:"SUPPORT_PHONE" yaml:"support_phone"`
	// SupportPhoneHref is the tel: form of SupportPhone used in email and page links.
	SupportPhoneHref string `mapstructure:"SUPPORT_PHONE_HREF" yaml:"support_phone_href"`
	ContactEmail     string `mapstructure:"CONTACT_EMAIL" yaml:"contact_email"`
}

// UploadConfig holds the attachment policy shared by the form client and the
// intake handler: how many files, how large, and which MIME types.
type UploadConfig struct {
	MaxFiles     int      `mapstructure:"MAX_FILES" yaml:"max_files"`
	MaxFileBytes int64    `mapstructure:"MAX_FILE_BYTES" yaml:"max_file_bytes"`
	AcceptedMIME []string `mapstructure:"ACCEPTED_MIME" yaml:"accepted_mime"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server   ServerConfig   `mapstructure:"SERVER" yaml:"server"`
	Email    EmailConfig    `mapstructure:"EMAIL" yaml:"email"`
	Business BusinessConfig `mapstructure:"BUSINESS" yaml:"business"`
	Upload   UploadConfig   `mapstructure:"UPLOAD" yaml:"upload"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, binds environment variables to config struct fields,
// unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.TRUSTED_PROXIES", []string{}) // Empty = trust no one (safe default)
	v.SetDefault("EMAIL.FROM_ADDRESS", "onboarding@resend.dev")
	v.SetDefault("EMAIL.FROM_NAME", "Asbestos Services Hampshire")
	v.SetDefault("BUSINESS.SITE_NAME", "Asbestos Services Hampshire")
	v.SetDefault("BUSINESS.SITE_URL", "https://www.asbestosserviceshampshire.uk")
	v.SetDefault("BUSINESS.INBOX_ADDRESS", "asbestoslad@gmail.com")
	v.SetDefault("BUSINESS.SUPPORT_PHONE", "07424 521865")
	v.SetDefault("BUSINESS.SUPPORT_PHONE_HREF", "tel:+447424521865")
	v.SetDefault("BUSINESS.CONTACT_EMAIL", "info@asbestosserviceshampshire.uk")
	v.SetDefault("UPLOAD.MAX_FILES", 3)
	v.SetDefault("UPLOAD.MAX_FILE_BYTES", 5*1024*1024)
	v.SetDefault("UPLOAD.ACCEPTED_MIME", []string{
		"image/jpeg",
		"image/png",
		"image/webp",
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	})
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Bind environment variables
	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.TRUSTED_PROXIES", "TRUSTED_PROXIES"},
		// Email config
		{"EMAIL.FROM_ADDRESS", "RESEND_FROM_EMAIL"},
		{"EMAIL.FROM_NAME", "EMAIL_FROM_NAME"},
		{"EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
		// Business config
		{"BUSINESS.SITE_NAME", "BUSINESS_SITE_NAME"},
		{"BUSINESS.SITE_URL", "BUSINESS_SITE_URL"},
		{"BUSINESS.INBOX_ADDRESS", "BUSINESS_INBOX_ADDRESS"},
		{"BUSINESS.SUPPORT_PHONE", "BUSINESS_SUPPORT_PHONE"},
		{"BUSINESS.SUPPORT_PHONE_HREF", "BUSINESS_SUPPORT_PHONE_HREF"},
		{"BUSINESS.CONTACT_EMAIL", "BUSINESS_CONTACT_EMAIL"},
		// Upload config
		{"UPLOAD.MAX_FILES", "UPLOAD_MAX_FILES"},
		{"UPLOAD.MAX_FILE_BYTES", "UPLOAD_MAX_FILE_BYTES"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	env := v.GetString("SERVER.ENVIRONMENT")
	log.Infow("Configuration loaded",
		"environment", env,
		"server_port", v.GetString("SERVER.PORT"),
		"allowed_origins", v.GetString("SERVER.ALLOWED_ORIGINS"),
		"business_inbox", logger.MaskEmail(v.GetString("BUSINESS.INBOX_ADDRESS")),
		"upload_max_files", v.GetInt("UPLOAD.MAX_FILES"),
		"upload_max_file_bytes", v.GetInt64("UPLOAD.MAX_FILE_BYTES"),
	)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Info("Configuration validated successfully")
	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
func validateConfig(cfg *Config) error {
	log := logger.GetLogger()

	// Validate Server Config
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	// Validate AllowedOrigins format if not wildcard
	if !containsWildcard(cfg.Server.AllowedOrigins) {
		for _, origin := range cfg.Server.AllowedOrigins {
			if _, err := url.ParseRequestURI(origin); err != nil {
				return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
			}
		}
	}

	// Validate Email Config
	if cfg.Email.FromAddress == "" {
		return fmt.Errorf("email from address is required")
	}
	if cfg.Email.ResendAPIKey == "" {
		if cfg.IsProduction() {
			return fmt.Errorf("resend API key is required")
		}
		log.Warn("Resend API key is not set. Email dispatch will fail until RESEND_API_KEY is provided.")
	}

	// Validate Business Config
	if cfg.Business.InboxAddress == "" {
		return fmt.Errorf("business inbox address is required")
	}
	if cfg.Business.SiteName == "" {
		return fmt.Errorf("business site name is required")
	}

	// Validate Upload Config
	if cfg.Upload.MaxFiles <= 0 {
		return fmt.Errorf("upload max files must be positive")
	}
	if cfg.Upload.MaxFileBytes <= 0 {
		return fmt.Errorf("upload max file bytes must be positive")
	}
	if len(cfg.Upload.AcceptedMIME) == 0 {
		return fmt.Errorf("upload accepted MIME types must not be empty")
	}

	return nil
}

// containsWildcard checks if the wildcard origin is present in the slice.
func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
