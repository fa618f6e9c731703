package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears a variable for the duration of the test.
// t.Setenv registers the restore; the value itself must be absent, not empty.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV", "test")
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USER", "relay@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("EMAIL_TO", "inquiries@example.com")
	unsetEnv(t, "EMAIL_FROM")
	unsetEnv(t, "SMTP_PORT")
	unsetEnv(t, "PORT")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestLoad_EmailFromDefaultsToSMTPUser(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "relay@example.com", cfg.EmailFrom)
}

func TestLoad_ExplicitEmailFrom(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("EMAIL_FROM", "noreply@example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "noreply@example.com", cfg.EmailFrom)
}

func TestLoad_ImplicitTLSPort(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SMTP_PORT", "465")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 465, cfg.SMTPPort)
}
