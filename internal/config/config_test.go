package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coverreport/internal/domain"
)

func TestNew(t *testing.T) {
	cfg := New()

	assert.Equal(t, DefaultEnvVar, cfg.EnvVar)
	assert.Equal(t, DefaultImportPath, cfg.ImportPath)
	assert.Equal(t, DefaultProfileFile, cfg.ProfileFile)
	assert.Equal(t, DefaultGoBinary, cfg.GoBinary)
	assert.True(t, cfg.Flags.Summary)
}

func TestConfig_Apply(t *testing.T) {
	tests := []struct {
		name     string
		flags    Flags
		expected func(t *testing.T, cfg *Config)
	}{
		{
			name:  "empty flags keep defaults",
			flags: Flags{},
			expected: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultImportPath, cfg.ImportPath)
				assert.Equal(t, DefaultEnvVar, cfg.EnvVar)
				assert.Empty(t, cfg.Separator)
			},
		},
		{
			name: "overrides",
			flags: Flags{
				ImportPath: "example.com/acme/tool",
				EnvVar:     "WORKSPACES",
				Separator:  ";",
				Profile:    "c.out",
				GoBinary:   "/usr/local/go/bin/go",
			},
			expected: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "example.com/acme/tool", cfg.ImportPath)
				assert.Equal(t, "WORKSPACES", cfg.EnvVar)
				assert.Equal(t, ";", cfg.Separator)
				assert.Equal(t, "c.out", cfg.ProfileFile)
				assert.Equal(t, "/usr/local/go/bin/go", cfg.GoBinary)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expected(t, Load(tt.flags))
		})
	}
}

func TestConfig_GetProjectSubpath(t *testing.T) {
	cfg := New()
	assert.Equal(t, filepath.Join("src", "github.com", "rafaeljusto", "crawler"), cfg.GetProjectSubpath())
}

func TestConfig_GetListSeparator(t *testing.T) {
	cfg := New()
	assert.Equal(t, string(os.PathListSeparator), cfg.GetListSeparator())

	cfg.Separator = ";"
	assert.Equal(t, ";", cfg.GetListSeparator())
}

func TestConfig_Steps(t *testing.T) {
	t.Run("default steps", func(t *testing.T) {
		steps := New().Steps()
		require.Len(t, steps, 3)

		assert.Equal(t, domain.StageInstall, steps[0].Stage)
		assert.Equal(t, []string{"install"}, steps[0].Args)

		assert.Equal(t, domain.StageTest, steps[1].Stage)
		assert.Equal(t, []string{"test", "-coverprofile=cover-profile.out", "-cover"}, steps[1].Args)

		assert.Equal(t, domain.StageRender, steps[2].Stage)
		assert.Equal(t, []string{"tool", "cover", "-html=cover-profile.out"}, steps[2].Args)

		for _, step := range steps {
			assert.Equal(t, "go", step.Name)
		}
	})

	t.Run("html written to file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "coverage.html")
		cfg := Load(Flags{HTMLOut: out})
		steps := cfg.Steps()
		assert.Equal(t, []string{"tool", "cover", "-html=cover-profile.out", "-o", out}, steps[2].Args)
	})

	t.Run("relative html output resolves against the invocation directory", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)

		cfg := Load(Flags{HTMLOut: "coverage.html"})
		want, err := filepath.Abs("coverage.html")
		require.NoError(t, err)

		// later directory changes do not move the output
		chdir(t, t.TempDir())
		steps := cfg.Steps()
		assert.Equal(t, want, steps[2].Args[len(steps[2].Args)-1])
		assert.True(t, filepath.IsAbs(cfg.Flags.HTMLOut))
	})
}
