package config

import (
	"testing"

	"github.com/AsbestosServicesHampshire/ash-backend/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Server.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	assert.Equal(t, "Asbestos Services Hampshire", cfg.Business.SiteName)
	assert.Equal(t, "asbestoslad@gmail.com", cfg.Business.InboxAddress)
	assert.Equal(t, "07424 521865", cfg.Business.SupportPhone)

	assert.Equal(t, 3, cfg.Upload.MaxFiles)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxFileBytes)
	assert.Contains(t, cfg.Upload.AcceptedMIME, "image/jpeg")
	assert.Contains(t, cfg.Upload.AcceptedMIME, "application/pdf")
	assert.Contains(t, cfg.Upload.AcceptedMIME,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	assert.Len(t, cfg.Upload.AcceptedMIME, 6)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("RESEND_API_KEY", "re_test_key")
	t.Setenv("BUSINESS_INBOX_ADDRESS", "enquiries@example.co.uk")
	t.Setenv("UPLOAD_MAX_FILES", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "re_test_key", cfg.Email.ResendAPIKey)
	assert.Equal(t, "enquiries@example.co.uk", cfg.Business.InboxAddress)
	assert.Equal(t, 5, cfg.Upload.MaxFiles)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{
				Environment:    EnvDevelopment,
				Port:           "8080",
				AllowedOrigins: []string{"*"},
			},
			Email: EmailConfig{
				FromAddress:  "onboarding@resend.dev",
				FromName:     "Asbestos Services Hampshire",
				ResendAPIKey: "re_test_key",
			},
			Business: BusinessConfig{
				SiteName:     "Asbestos Services Hampshire",
				InboxAddress: "asbestoslad@gmail.com",
			},
			Upload: UploadConfig{
				MaxFiles:     3,
				MaxFileBytes: 5 * 1024 * 1024,
				AcceptedMIME: []string{"image/jpeg"},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing port", func(c *Config) { c.Server.Port = "" }, "server port is required"},
		{"missing from address", func(c *Config) { c.Email.FromAddress = "" }, "email from address is required"},
		{"missing resend key in production", func(c *Config) {
			c.Server.Environment = EnvProduction
			c.Email.ResendAPIKey = ""
		}, "resend API key is required"},
		{"missing resend key in development is tolerated", func(c *Config) {
			c.Email.ResendAPIKey = ""
		}, ""},
		{"missing inbox", func(c *Config) { c.Business.InboxAddress = "" }, "business inbox address is required"},
		{"zero max files", func(c *Config) { c.Upload.MaxFiles = 0 }, "upload max files must be positive"},
		{"zero max bytes", func(c *Config) { c.Upload.MaxFileBytes = 0 }, "upload max file bytes must be positive"},
		{"empty accepted types", func(c *Config) { c.Upload.AcceptedMIME = nil }, "upload accepted MIME types must not be empty"},
		{"bad origin", func(c *Config) {
			c.Server.AllowedOrigins = []string{"not a url"}
		}, "invalid allowed origin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
