package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"assume_yes", "library", "package_manager", "require_clean", "skip_install"}, Keys())
}

func TestGetValue(t *testing.T) {
	cfg := &Config{Library: "vant", SkipInstall: true}

	v, err := GetValue(cfg, "library")
	require.NoError(t, err)
	assert.Equal(t, "vant", v)

	v, err = GetValue(cfg, "skip_install")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = GetValue(cfg, "require_clean")
	require.NoError(t, err)
	assert.Equal(t, false, v)

	v, err = GetValue(cfg, "package_manager")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestGetValue_UnknownKey(t *testing.T) {
	_, err := GetValue(&Config{}, "output_format")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid keys: assume_yes, library")
}

func TestSetValue(t *testing.T) {
	data := map[string]any{}
	require.NoError(t, SetValue(data, "library", "naive-ui"))
	require.NoError(t, SetValue(data, "assume_yes", "true"))
	assert.Equal(t, map[string]any{"library": "naive-ui", "assume_yes": true}, data)
}

func TestSetValue_Errors(t *testing.T) {
	data := map[string]any{}
	assert.Error(t, SetValue(data, "", "x"))
	assert.Error(t, SetValue(data, "collectors.todos", "x"))

	err := SetValue(data, "skip_install", "maybe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expects true or false")
	assert.Empty(t, data)
}
