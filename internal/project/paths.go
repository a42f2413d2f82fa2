package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// Directory and file name constants for the scaffold convention.
const (
	MarkersDir = "markers"
	ModelsDir  = "models"
	AssetsDir  = "assets"
	CSSDir     = "css"
	JSDir      = "js"

	ReadmeFile    = "README.md"
	GitignoreFile = ".gitignore"
	RenderFile    = "render.yaml"

	gitMetaDir = ".git"
)

// Permission constants.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// DefaultMarkerCount is the number of marker sets the narrative uses,
// one per chapter.
const DefaultMarkerCount = 3

// markerExts are the tracking files the NFT Marker Creator produces per image.
var markerExts = []string{".fset", ".fset3", ".iset"}

// Dirs returns the scaffold directories in creation order.
func Dirs() []string {
	return []string{MarkersDir, ModelsDir, AssetsDir, CSSDir, JSDir}
}

// Files returns the scaffold files in creation order.
func Files() []string {
	return []string{ReadmeFile, GitignoreFile, RenderFile}
}

// MarkerFiles returns the relative paths of the tracking files expected
// under markers/ for marker sets 1..count.
func MarkerFiles(count int) []string {
	var files []string
	for n := 1; n <= count; n++ {
		for _, ext := range markerExts {
			files = append(files, filepath.Join(MarkersDir, fmt.Sprintf("marker%d%s", n, ext)))
		}
	}
	return files
}
