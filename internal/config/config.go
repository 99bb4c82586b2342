package config

import (
	"os"
	"path/filepath"
	"strings"

	"coverreport/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	// Workspace settings
	EnvVar     string
	ImportPath string
	SourceDir  string

	// Separator splits the workspace variable; empty means the platform list separator
	Separator string

	// Toolchain settings
	GoBinary    string
	ProfileFile string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ImportPath string
	EnvVar     string
	Separator  string
	Profile    string
	GoBinary   string
	HTMLOut    string
	Summary    bool
	View       bool
	EnvFile    string
	Debug      bool
	DebugFile  string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		EnvVar:      DefaultEnvVar,
		ImportPath:  DefaultImportPath,
		SourceDir:   DefaultSourceDir,
		GoBinary:    DefaultGoBinary,
		ProfileFile: DefaultProfileFile,
		Flags:       Flags{Summary: true},
	}
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Apply(flags)
	return cfg
}

// Apply stores the flags and overrides defaults with the non-empty ones
func (c *Config) Apply(flags Flags) {
	c.Flags = flags

	if flags.ImportPath != "" {
		c.ImportPath = flags.ImportPath
	}
	if flags.EnvVar != "" {
		c.EnvVar = flags.EnvVar
	}
	if flags.Separator != "" {
		c.Separator = flags.Separator
	}
	if flags.Profile != "" {
		c.ProfileFile = flags.Profile
	}
	if flags.GoBinary != "" {
		c.GoBinary = flags.GoBinary
	}

	// Resolved against the invocation directory, before the switch into the project
	if flags.HTMLOut != "" && !filepath.IsAbs(flags.HTMLOut) {
		if abs, err := filepath.Abs(flags.HTMLOut); err == nil {
			c.Flags.HTMLOut = abs
		}
	}
}

// GetProjectSubpath returns the path of the project relative to a workspace root
func (c *Config) GetProjectSubpath() string {
	parts := append([]string{c.SourceDir}, strings.Split(c.ImportPath, "/")...)
	return filepath.Join(parts...)
}

// GetListSeparator returns the separator used to split the workspace variable
func (c *Config) GetListSeparator() string {
	if c.Separator != "" {
		return c.Separator
	}
	return string(os.PathListSeparator)
}

// Steps returns the toolchain invocations in execution order
func (c *Config) Steps() []domain.Step {
	render := []string{"tool", "cover", "-html=" + c.ProfileFile}
	if c.Flags.HTMLOut != "" {
		render = append(render, "-o", c.Flags.HTMLOut)
	}

	return []domain.Step{
		{Stage: domain.StageInstall, Name: c.GoBinary, Args: []string{"install"}},
		{Stage: domain.StageTest, Name: c.GoBinary, Args: []string{"test", "-coverprofile=" + c.ProfileFile, "-cover"}},
		{Stage: domain.StageRender, Name: c.GoBinary, Args: render},
	}
}
