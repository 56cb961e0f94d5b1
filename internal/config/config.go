// Package config provides configuration management for expressor using
// Viper for loading from files, environment variables and command-line
// flags.
//
// Values resolve in this order: flags, EXPRESSOR_* environment variables,
// the config file (.expressor.yml by default), then the defaults set by
// SetDefaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultRepository is the template project cloned by `expressor new`.
const DefaultRepository = "https://github.com/thuraaung2493/express-app-template.git"

type Config struct {
	Project        ProjectConfig   `mapstructure:"project" yaml:"project" json:"project"`
	Generator      GeneratorConfig `mapstructure:"generator" yaml:"generator" json:"generator"`
	Bootstrap      BootstrapConfig `mapstructure:"bootstrap" yaml:"bootstrap" json:"bootstrap"`
	Log            LogConfig       `mapstructure:"log" yaml:"log" json:"log"`
	NonInteractive bool            `mapstructure:"non_interactive" yaml:"non_interactive" json:"non_interactive"`
}

type ProjectConfig struct {
	Root string `mapstructure:"root" yaml:"root" json:"root" validate:"required"`
}

type GeneratorConfig struct {
	Extension    string `mapstructure:"extension" yaml:"extension" json:"extension" validate:"required,alphanum"`
	TemplatesDir string `mapstructure:"templates_dir" yaml:"templates_dir,omitempty" json:"templates_dir,omitempty"`
}

type BootstrapConfig struct {
	Repository     string   `mapstructure:"repository" yaml:"repository" json:"repository" validate:"required"`
	Fetcher        string   `mapstructure:"fetcher" yaml:"fetcher" json:"fetcher" validate:"oneof=git go-git"`
	PackageManager string   `mapstructure:"package_manager" yaml:"package_manager" json:"package_manager" validate:"oneof=npm pnpm yarn bun"`
	InstallArgs    []string `mapstructure:"install_args" yaml:"install_args" json:"install_args" validate:"min=1,dive,required"`
	Lockfile       string   `mapstructure:"lockfile" yaml:"lockfile" json:"lockfile"`
	EnvExample     string   `mapstructure:"env_example" yaml:"env_example" json:"env_example"`
	EnvFile        string   `mapstructure:"env_file" yaml:"env_file" json:"env_file"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" json:"format" validate:"oneof=text json"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("project.root", "")
	v.SetDefault("generator.extension", "ts")
	v.SetDefault("generator.templates_dir", "")
	v.SetDefault("bootstrap.repository", DefaultRepository)
	v.SetDefault("bootstrap.fetcher", "git")
	v.SetDefault("bootstrap.package_manager", "npm")
	v.SetDefault("bootstrap.install_args", []string{"install"})
	v.SetDefault("bootstrap.lockfile", "pnpm-lock.yaml")
	v.SetDefault("bootstrap.env_example", ".env.example")
	v.SetDefault("bootstrap.env_file", ".env")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("non_interactive", false)
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads, completes and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Slices set through env vars arrive as a single string.
	if v.IsSet("bootstrap.install_args") {
		if args := v.GetStringSlice("bootstrap.install_args"); len(args) > 0 {
			config.Bootstrap.InstallArgs = args
		}
	}

	if config.Project.Root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		config.Project.Root = cwd
	}

	root, err := filepath.Abs(config.Project.Root)
	if err != nil {
		return nil, fmt.Errorf("invalid project root %q: %w", config.Project.Root, err)
	}
	config.Project.Root = root

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
