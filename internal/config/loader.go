package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Environment variable prefix for create-module configuration.
const envPrefix = "CREATE_MODULE"

// Loader handles loading and merging configuration from defaults, the
// project config file and environment variables.
type Loader struct {
	v  *viper.Viper
	fs afero.Fs
}

// NewLoader creates a new configuration loader reading files from fsys.
func NewLoader(fsys afero.Fs) *Loader {
	v := viper.New()
	v.SetFs(fsys)

	defaults := DefaultConfig()
	v.SetDefault("sourceDir", defaults.SourceDir)
	v.SetDefault("containerDirs", defaults.ContainerDirs)
	v.SetDefault("tsconfigFiles", defaults.TsconfigFiles)
	v.SetDefault("templatesDir", defaults.TemplatesDir)
	v.SetDefault("addTsconfigPath", defaults.AddTsconfigPath)
	v.SetDefault("log.timestamps", defaults.Log.Timestamps)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.BindEnv("sourceDir", envPrefix+"_SOURCE_DIR")
	_ = v.BindEnv("containerDirs", envPrefix+"_CONTAINER_DIRS")
	_ = v.BindEnv("tsconfigFiles", envPrefix+"_TSCONFIG_FILES")
	_ = v.BindEnv("templatesDir", envPrefix+"_TEMPLATES_DIR")
	_ = v.BindEnv("addTsconfigPath", envPrefix+"_ADD_TSCONFIG_PATH")
	_ = v.BindEnv("log.timestamps", envPrefix+"_LOG_TIMESTAMPS")

	return &Loader{v: v, fs: fsys}
}

// Load loads configuration for the project at projectRoot.
// If configFile is empty, FileName in projectRoot is used and may be absent.
// An explicitly named configFile must exist.
// Environment variables take precedence over file values.
func (l *Loader) Load(projectRoot, configFile string) (*Config, error) {
	explicit := configFile != ""
	if !explicit {
		configFile = filepath.Join(projectRoot, FileName)
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if !missing || explicit {
			return nil, fmt.Errorf("reading config file %s: %w", expandedPath, err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFile returns the file the last Load read, or "" when none was found.
func (l *Loader) ConfigFile() string {
	if l.v.ConfigFileUsed() == "" {
		return ""
	}
	if ok, _ := afero.Exists(l.fs, l.v.ConfigFileUsed()); !ok {
		return ""
	}
	return l.v.ConfigFileUsed()
}
