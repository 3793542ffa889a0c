// Package config handles .autoimport.yaml configuration files.
package config

// Config represents the contents of a .autoimport.yaml file. Every field is
// a default that a command-line flag can override.
type Config struct {
	Library        string `yaml:"library,omitempty"`
	PackageManager string `yaml:"package_manager,omitempty"`
	SkipInstall    bool   `yaml:"skip_install,omitempty"`
	AssumeYes      bool   `yaml:"assume_yes,omitempty"`
	RequireClean   bool   `yaml:"require_clean,omitempty"`
}

// FileName is the expected config file name in a project root.
const FileName = ".autoimport.yaml"
