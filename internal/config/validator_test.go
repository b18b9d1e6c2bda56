package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "decorations.xml"), []byte("<x/>"), 0o600))
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("DECORATOR_CONFIG", "decorations.xml")
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	for _, envVar := range RequiredEnvVars {
		if envVar != "ENV_SCHEMA_VERSION" {
			t.Setenv(envVar, "test_value")
		}
	}
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	unsetEnv(t, "ENV_SCHEMA_VERSION")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	unsetEnv(t, "DB_HOST")
	unsetEnv(t, "API_KEY")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "DB_HOST, API_KEY")
}

func TestValidateEnv_AllPresent(t *testing.T) {
	setRequiredEnv(t)
	assert.NoError(t, ValidateEnv())
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")
	t.Setenv("CMS_USER_ADMIN", "root")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
}

func TestValidateEnvWithWarnings_DefaultAdminName(t *testing.T) {
	setRequiredEnv(t)
	unsetEnv(t, "CMS_USER_ADMIN")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "CMS_USER_ADMIN")
}

func TestValidateEnvWithWarnings_MissingDecoratorConfig(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CMS_USER_ADMIN", "root")
	t.Setenv("DECORATOR_CONFIG", "missing.xml")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "missing.xml")
}
