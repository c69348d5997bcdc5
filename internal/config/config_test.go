package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "site_content", cfg.MongoDB.Collection)
	assert.Equal(t, 10*time.Second, cfg.MongoDB.Timeout)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "Home", cfg.Storage.DefaultFolder)
	assert.False(t, cfg.JWT.Enforce)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("ADMIN_EMAIL", "office@center.org")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "office@center.org", cfg.Admin.Email)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory driver", Config{Storage: StorageConfig{Driver: "memory"}}, false},
		{"mongodb without uri", Config{Storage: StorageConfig{Driver: "mongodb"}}, true},
		{"unknown driver", Config{Storage: StorageConfig{Driver: "s3"}}, true},
		{"enforce without secret", Config{Storage: StorageConfig{Driver: "memory"}, JWT: JWTConfig{Enforce: true}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWriteKeyPrefersServiceRole(t *testing.T) {
	key, preferred := StorageConfig{AnonKey: "anon", ServiceRoleKey: "svc"}.WriteKey()
	assert.Equal(t, "svc", key)
	assert.True(t, preferred)

	key, preferred = StorageConfig{AnonKey: "anon"}.WriteKey()
	assert.Equal(t, "anon", key)
	assert.False(t, preferred)
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("CC_ORIGINS", "a.org, b.org,,")
	assert.Equal(t, []string{"a.org", "b.org"}, GetEnvAsSlice("CC_ORIGINS", ",", nil))
	assert.Equal(t, []string{"x"}, GetEnvAsSlice("CC_MISSING", ",", []string{"x"}))
}

func TestLoadAllowedOriginsFromSingleVariable(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("ALLOWED_ORIGINS", "https://center.org, https://www.center.org")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://center.org", "https://www.center.org"}, cfg.Server.AllowedOrigins)
}
