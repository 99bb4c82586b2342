package discovery

import (
	"fmt"
	"os"

	"coverreport/internal/domain"
)

// RequireEnv returns the value of the named variable or ErrMissingEnv when it is unset.
// A variable set to the empty string counts as present.
func RequireEnv(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrMissingEnv, name)
	}
	return value, nil
}
