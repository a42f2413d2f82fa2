package scaffold

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arweaver-labs/arweaver/internal/deploy"
	"github.com/arweaver-labs/arweaver/internal/project"
)

//go:embed templates
var templatesFS embed.FS

// Result holds the outcome of a scaffold run.
type Result struct {
	Root     string
	Dirs     []string
	Files    []string
	Warnings []string
}

// templatePaths maps starter file names to their embedded template paths.
// render.yaml is absent here; it is serialized from a typed config instead
// of copied verbatim.
var templatePaths = map[string]string{
	project.ReadmeFile:    "templates/README.md",
	project.GitignoreFile: "templates/gitignore",
}

// Run creates the project layout under root and writes the starter files,
// printing progress to w. Directories that already exist are skipped; files
// are rewritten on every run so a repeat invocation restores their content.
func Run(root string, w io.Writer) (*Result, error) {
	result := &Result{Root: root}

	fmt.Fprintln(w, "Creating directory structure:")
	for _, name := range project.Dirs() {
		if err := ensureDir(w, root, name); err != nil {
			return nil, err
		}
		result.Dirs = append(result.Dirs, name)
	}

	fmt.Fprintln(w, "Writing starter files:")
	for _, name := range []string{project.ReadmeFile, project.GitignoreFile} {
		if err := writeTemplate(w, root, name); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, name)
	}

	renderPath := filepath.Join(root, project.RenderFile)
	if err := deploy.Write(renderPath, deploy.Default()); err != nil {
		return nil, fmt.Errorf("writing %s: %w", renderPath, err)
	}
	fmt.Fprintf(w, "  [ OK ] Wrote %s\n", project.RenderFile)
	result.Files = append(result.Files, project.RenderFile)

	// Validate the written deploy config against JSON Schema.
	valResult, valErr := deploy.ValidateFile(renderPath)
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate %s: %v", project.RenderFile, valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			result.Warnings = append(result.Warnings, msg)
		}
	}

	return result, nil
}

// ensureDir creates a project directory if it doesn't exist.
func ensureDir(w io.Writer, root, name string) error {
	path := filepath.Join(root, name)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s/ already exists\n", name)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, project.DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s/\n", name)
	return nil
}

// writeTemplate copies an embedded template to the project root, replacing
// any existing file.
func writeTemplate(w io.Writer, root, name string) error {
	data, err := fs.ReadFile(templatesFS, templatePaths[name])
	if err != nil {
		return fmt.Errorf("reading template for %s: %w", name, err)
	}

	path := filepath.Join(root, name)
	if err := os.WriteFile(path, data, project.FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Wrote %s\n", name)
	return nil
}
