package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/conneroisu/expressor/internal/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	config, err := Load()
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, cwd, config.Project.Root)
	assert.Equal(t, "ts", config.Generator.Extension)
	assert.Equal(t, DefaultRepository, config.Bootstrap.Repository)
	assert.Equal(t, "git", config.Bootstrap.Fetcher)
	assert.Equal(t, "npm", config.Bootstrap.PackageManager)
	assert.Equal(t, []string{"install"}, config.Bootstrap.InstallArgs)
	assert.Equal(t, "pnpm-lock.yaml", config.Bootstrap.Lockfile)
	assert.Equal(t, ".env.example", config.Bootstrap.EnvExample)
	assert.Equal(t, ".env", config.Bootstrap.EnvFile)
	assert.Equal(t, "warn", config.Log.Level)
	assert.False(t, config.NonInteractive)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(v *viper.Viper)
		expectError bool
		check       func(t *testing.T, c *Config)
	}{
		{
			name: "relative root becomes absolute",
			setup: func(v *viper.Viper) {
				v.Set("project.root", "some/app")
			},
			check: func(t *testing.T, c *Config) {
				assert.True(t, filepath.IsAbs(c.Project.Root))
				assert.Equal(t, "app", filepath.Base(c.Project.Root))
			},
		},
		{
			name: "custom package manager and args",
			setup: func(v *viper.Viper) {
				v.Set("bootstrap.package_manager", "pnpm")
				v.Set("bootstrap.install_args", []string{"install", "--frozen-lockfile"})
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "pnpm", c.Bootstrap.PackageManager)
				assert.Equal(t, []string{"install", "--frozen-lockfile"}, c.Bootstrap.InstallArgs)
			},
		},
		{
			name: "unknown package manager",
			setup: func(v *viper.Viper) {
				v.Set("bootstrap.package_manager", "make")
			},
			expectError: true,
		},
		{
			name: "unknown fetcher",
			setup: func(v *viper.Viper) {
				v.Set("bootstrap.fetcher", "svn")
			},
			expectError: true,
		},
		{
			name: "unsafe repository url",
			setup: func(v *viper.Viper) {
				v.Set("bootstrap.repository", "https://github.com/x/y.git;rm -rf /")
			},
			expectError: true,
		},
		{
			name: "extension must be alphanumeric",
			setup: func(v *viper.Viper) {
				v.Set("generator.extension", ".ts")
			},
			expectError: true,
		},
		{
			name: "bad log level",
			setup: func(v *viper.Viper) {
				v.Set("log.level", "chatty")
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			tt.setup(v)

			config, err := LoadFrom(v)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, config)
				assert.Equal(t, errors.ErrorTypeConfig, errors.TypeOf(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, config)
			if tt.check != nil {
				tt.check(t, config)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".expressor.yml")
	content := `generator:
  extension: js
bootstrap:
  package_manager: yarn
  fetcher: go-git
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	config, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "js", config.Generator.Extension)
	assert.Equal(t, "yarn", config.Bootstrap.PackageManager)
	assert.Equal(t, "go-git", config.Bootstrap.Fetcher)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
}
