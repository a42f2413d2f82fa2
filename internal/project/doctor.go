package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// markerGeneratorURL is where the tracking files come from; printed as a
// hint when marker files are missing.
const markerGeneratorURL = "https://carnaux.github.io/NFT-Marker-Creator/#/"

// CheckLayout verifies that all scaffold directories and files exist under root.
func CheckLayout(w io.Writer, root string) {
	fmt.Fprintln(w, "Layout check:")
	for _, name := range Dirs() {
		checkDir(w, root, name)
	}
	for _, name := range Files() {
		checkFile(w, root, name)
	}
}

// CheckMarkers verifies that the tracking files for marker sets 1..count
// are in place under markers/.
func CheckMarkers(w io.Writer, root string, count int) {
	fmt.Fprintf(w, "Marker check (%d sets):\n", count)

	missing := 0
	for _, rel := range MarkerFiles(count) {
		if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
			fmt.Fprintf(w, "  [MISS] %s\n", rel)
			missing++
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s\n", rel)
	}

	if missing > 0 {
		fmt.Fprintf(w, "         Generate markers at %s\n", markerGeneratorURL)
	}
}

// CheckGit reports whether root is under version control.
func CheckGit(w io.Writer, root string) {
	fmt.Fprintln(w, "Git check:")
	if GitInitialized(root) {
		fmt.Fprintln(w, "  [ OK ] Git repository detected")
		return
	}
	fmt.Fprintln(w, "  [MISS] Git not initialized. Run: git init")
}

func checkDir(w io.Writer, root, name string) {
	info, err := os.Stat(filepath.Join(root, name))
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s/ does not exist\n", name)
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s/: %v\n", name, err)
		return
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [WARN] %s exists but is not a directory\n", name)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s/\n", name)
}

func checkFile(w io.Writer, root, name string) {
	info, err := os.Stat(filepath.Join(root, name))
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", name)
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", name, err)
		return
	}
	if info.IsDir() {
		fmt.Fprintf(w, "  [WARN] %s is a directory, expected a file\n", name)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s\n", name)
}
