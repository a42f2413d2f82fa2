//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arweaver-labs/arweaver/internal/project"
)

// writeMarkerSets creates tracking files for marker sets 1..count under
// root/markers/, the way the NFT generator output would be dropped in.
func writeMarkerSets(t *testing.T, root string, count int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, project.MarkersDir), 0755); err != nil {
		t.Fatalf("creating markers dir: %v", err)
	}
	for _, rel := range project.MarkerFiles(count) {
		path := filepath.Join(root, rel)
		if err := os.WriteFile(path, []byte("tracking data\n"), 0644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
}

// snapshotTree records the byte content of every regular file under root,
// keyed by path relative to root.
func snapshotTree(t *testing.T, root string) map[string][]byte {
	t.Helper()
	snapshot := make(map[string][]byte)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		snapshot[rel] = data
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return snapshot
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
