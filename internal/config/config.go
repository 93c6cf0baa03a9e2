// Package config provides configuration loading for create-module.
package config

// FileName is the project-level config file looked up in the project root.
const FileName = ".create-module.yaml"

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Env: CREATE_MODULE_LOG_TIMESTAMPS, Default: false
	Timestamps bool `mapstructure:"timestamps" yaml:"timestamps"`
}

// Config represents the create-module configuration.
type Config struct {
	// SourceDir is the project source directory, relative to the project root.
	// Env: CREATE_MODULE_SOURCE_DIR, Default: src
	SourceDir string `mapstructure:"sourceDir" yaml:"sourceDir"`

	// ContainerDirs lists the module container directories under SourceDir,
	// in order of preference.
	// Env: CREATE_MODULE_CONTAINER_DIRS (comma separated), Default: features, modules
	ContainerDirs []string `mapstructure:"containerDirs" yaml:"containerDirs"`

	// TsconfigFiles lists candidate alias configuration files, in order of preference.
	// Env: CREATE_MODULE_TSCONFIG_FILES, Default: tsconfig.json, tsconfig.base.json
	TsconfigFiles []string `mapstructure:"tsconfigFiles" yaml:"tsconfigFiles"`

	// TemplatesDir overrides built-in templates with files of the same name.
	// Relative paths resolve against the project root.
	// Env: CREATE_MODULE_TEMPLATES_DIR, Default: none
	TemplatesDir string `mapstructure:"templatesDir" yaml:"templatesDir"`

	// AddTsconfigPath enables path-alias mode without the flag.
	// Env: CREATE_MODULE_ADD_TSCONFIG_PATH, Default: false
	AddTsconfigPath bool `mapstructure:"addTsconfigPath" yaml:"addTsconfigPath"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		SourceDir:     "src",
		ContainerDirs: []string{"features", "modules"},
		TsconfigFiles: []string{"tsconfig.json", "tsconfig.base.json"},
	}
}
