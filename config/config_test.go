package config

import (
	"testing"
	"time"

	"github.com/Varun6712/smart-calories/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("GEMINI_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, 30*time.Second, cfg.GeminiTimeout)
	assert.False(t, cfg.HasGeminiKey())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("GEMINI_API_KEY", " abc ")
	t.Setenv("GEMINI_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 5*time.Second, cfg.GeminiTimeout)
	assert.True(t, cfg.HasGeminiKey())
}

func TestLoad_BadTimeout(t *testing.T) {
	t.Setenv("GEMINI_TIMEOUT", "soon")
	_, err := Load()
	assert.ErrorContains(t, err, "GEMINI_TIMEOUT")
}

func TestHasGeminiKey_Placeholder(t *testing.T) {
	cfg := &Config{GeminiAPIKey: "YOUR_API_KEY_HERE"}
	assert.False(t, cfg.HasGeminiKey())
}

func TestOpenDB_SQLiteMemory(t *testing.T) {
	db, err := OpenDB(&Config{DBDriver: "sqlite", DBPath: "file::memory:"})
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&models.UserProfile{}))
	assert.True(t, db.Migrator().HasTable("foods"))
	assert.True(t, db.Migrator().HasTable("logs"))
}

func TestOpenDB_UnknownDriver(t *testing.T) {
	_, err := OpenDB(&Config{DBDriver: "oracle"})
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = NewLogger("chatty")
	assert.Error(t, err)
}
