package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTempHome(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	t.Cleanup(func() { os.Setenv("HOME", oldHome) })
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	withTempHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "all", cfg.SearchTypes)
	assert.Equal(t, 5, cfg.ResultLimit)
	assert.True(t, cfg.SubmitOnSelect)
	assert.Equal(t, "https://huggingface.co", cfg.BaseURL)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	withTempHome(t)

	original := Default()
	original.SearchTypes = "model,dataset"
	original.ResultLimit = 10
	original.SubmitOnSelect = false
	original.ValueFile = "/tmp/hubpick-value"
	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, original, loaded)

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestValidateAcceptsBounds(t *testing.T) {
	for _, limit := range []int{1, 5, 10, 20} {
		cfg := Default()
		cfg.ResultLimit = limit
		_, err := cfg.Validate()
		assert.NoError(t, err, "limit %d", limit)
	}
}

func TestValidateRejectsOutOfRangeLimit(t *testing.T) {
	for _, limit := range []int{0, -1, 21, 99} {
		cfg := Default()
		cfg.ResultLimit = limit
		_, err := cfg.Validate()
		require.Error(t, err, "limit %d", limit)
		assert.Contains(t, err.Error(), "result_limit")
	}
}

func TestValidateRejectsUnknownType(t *testing.T) {
	cfg := Default()
	cfg.SearchTypes = "model,notatype"
	_, err := cfg.Validate()
	assert.Error(t, err)
}

func TestValidateReturnsParsedTypes(t *testing.T) {
	cfg := Default()
	cfg.SearchTypes = "dataset,model"
	types, err := cfg.Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{"model", "dataset"}, types)
}
