package config

// Layer combines two file configs. Non-zero fields of upper win; zero fields
// fall through to lower. Neither argument is modified.
func Layer(lower, upper *Config) *Config {
	merged := *lower

	if upper.Library != "" {
		merged.Library = upper.Library
	}
	if upper.PackageManager != "" {
		merged.PackageManager = upper.PackageManager
	}
	if upper.SkipInstall {
		merged.SkipInstall = true
	}
	if upper.AssumeYes {
		merged.AssumeYes = true
	}
	if upper.RequireClean {
		merged.RequireClean = true
	}

	return &merged
}

// Merge combines file-based config with CLI-provided values.
// CLI values take precedence; zero-value CLI fields fall through to file config.
// Boolean flags can only switch a setting on.
func Merge(fileCfg *Config, cliCfg Config) Config {
	return *Layer(fileCfg, &cliCfg)
}
