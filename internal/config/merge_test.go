package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_CLIOverridesFile(t *testing.T) {
	fileCfg := &Config{Library: "vant", PackageManager: "yarn"}
	cli := Config{Library: "naive-ui"}

	result := Merge(fileCfg, cli)
	assert.Equal(t, "naive-ui", result.Library)
	assert.Equal(t, "yarn", result.PackageManager)
}

func TestMerge_FileFillsInDefaults(t *testing.T) {
	fileCfg := &Config{Library: "vant", SkipInstall: true, AssumeYes: true, RequireClean: true}

	result := Merge(fileCfg, Config{})
	assert.Equal(t, *fileCfg, result)
}

func TestMerge_BoolFlagsOnlyEnable(t *testing.T) {
	fileCfg := &Config{SkipInstall: true}

	result := Merge(fileCfg, Config{RequireClean: true})
	assert.True(t, result.SkipInstall)
	assert.True(t, result.RequireClean)
}

func TestLayer_DoesNotModifyInputs(t *testing.T) {
	lower := &Config{Library: "vant"}
	upper := &Config{Library: "element-plus"}

	merged := Layer(lower, upper)
	assert.Equal(t, "element-plus", merged.Library)
	assert.Equal(t, "vant", lower.Library)
}
