// Copyright 2026 The Autoimport Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
)

// GlobalConfigDir returns the directory for global autoimport configuration.
// It uses $XDG_CONFIG_HOME/autoimport if set, otherwise ~/.config/autoimport.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "autoimport")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "autoimport")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}

// LoadGlobal loads the global config file.
// If the file does not exist, it returns a zero-value Config and nil error.
func LoadGlobal() (*Config, error) {
	return loadFile(GlobalConfigPath())
}

// LoadEffective loads the global and project configs and layers the project
// over the global one.
func LoadEffective(projectDir string) (*Config, error) {
	global, err := LoadGlobal()
	if err != nil {
		return nil, err
	}
	project, err := Load(projectDir)
	if err != nil {
		return nil, err
	}
	return Layer(global, project), nil
}
