package discovery

import (
	"fmt"
	"os"

	"coverreport/internal/domain"
)

// Switch changes the process working directory to the project path
func Switch(projectPath string) error {
	if projectPath == "" {
		return domain.ErrProjectNotFound
	}

	if err := os.Chdir(projectPath); err != nil {
		return fmt.Errorf("change directory to %s: %w", projectPath, err)
	}
	return nil
}
