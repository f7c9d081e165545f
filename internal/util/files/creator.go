package files_utils

import (
	"fmt"
	"os"
)

// EnsureDirectories creates every missing directory with owner-only access.
// Existing directories keep their permissions.
func EnsureDirectories(directories ...string) error {
	const directoryPermissions = 0700

	for _, directory := range directories {
		info, err := os.Stat(directory)
		switch {
		case os.IsNotExist(err):
			if err := os.MkdirAll(directory, directoryPermissions); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", directory, err)
			}
		case err != nil:
			return fmt.Errorf("failed to check directory %s: %w", directory, err)
		case !info.IsDir():
			return fmt.Errorf("%s exists and is not a directory", directory)
		}
	}

	return nil
}
