package discovery

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coverreport/internal/domain"
)

func TestRequireEnv(t *testing.T) {
	const name = "COVER_REPORT_TEST_ROOTS"

	t.Run("unset variable", func(t *testing.T) {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))

		_, err := RequireEnv(name)
		require.ErrorIs(t, err, domain.ErrMissingEnv)
		assert.Contains(t, err.Error(), name)
	})

	t.Run("empty variable is present", func(t *testing.T) {
		t.Setenv(name, "")

		value, err := RequireEnv(name)
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("set variable", func(t *testing.T) {
		t.Setenv(name, "/a;/b")

		value, err := RequireEnv(name)
		require.NoError(t, err)
		assert.Equal(t, "/a;/b", value)
	})
}
