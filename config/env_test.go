package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LIB_TEST_FROM_FILE=file\nLIB_TEST_PRESET=file\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Setenv("LIB_TEST_PRESET", "env")
	t.Cleanup(func() { _ = os.Unsetenv("LIB_TEST_FROM_FILE") })

	LoadEnv()

	assert.Equal(t, "file", os.Getenv("LIB_TEST_FROM_FILE"))
	assert.Equal(t, "env", os.Getenv("LIB_TEST_PRESET"))
}

func TestLoadEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "nope.env"))
	assert.NotPanics(t, LoadEnv)
}

func TestGet(t *testing.T) {
	t.Setenv("LIB_TEST_GET", "")
	assert.Equal(t, "fallback", Get("LIB_TEST_GET", "fallback"))
	t.Setenv("LIB_TEST_GET", "set")
	assert.Equal(t, "set", Get("LIB_TEST_GET", "fallback"))
}
