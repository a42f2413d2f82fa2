package project

import (
	"os"
	"path/filepath"
)

// GitInitialized reports whether root carries git metadata. Worktrees and
// submodules use a .git file instead of a directory, so either form counts.
func GitInitialized(root string) bool {
	_, err := os.Stat(filepath.Join(root, gitMetaDir))
	return err == nil
}
