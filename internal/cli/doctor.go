package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/arweaver-labs/arweaver/internal/config"
	"github.com/arweaver-labs/arweaver/internal/deploy"
	"github.com/arweaver-labs/arweaver/internal/project"
	"github.com/spf13/cobra"
)

var (
	checkLayout  bool
	checkMarkers bool
	checkDeploy  bool
	checkGit     bool
	checkBuild   bool
	markerSets   int
)

func init() {
	doctorCmd.Flags().BoolVar(&checkLayout, "check-layout", false, "Verify the project directory layout")
	doctorCmd.Flags().BoolVar(&checkMarkers, "check-markers", false, "Verify NFT marker tracking files are present")
	doctorCmd.Flags().BoolVar(&checkDeploy, "check-deploy", false, "Validate render.yaml against its schema")
	doctorCmd.Flags().BoolVar(&checkGit, "check-git", false, "Check for a git repository")
	doctorCmd.Flags().BoolVar(&checkBuild, "check-build", false, "Check the CLI build version")
	doctorCmd.Flags().IntVar(&markerSets, "markers", 0, "Number of marker sets to expect (defaults to the 'markers' config key)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for an AR project directory",
	Long:  `Run diagnostic checks on the AR project in the current directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		anyFlag := checkLayout || checkMarkers || checkDeploy || checkGit || checkBuild

		// If no specific flag, run all checks.
		if !anyFlag {
			runAllChecks(root)
			return nil
		}

		if checkLayout {
			project.CheckLayout(os.Stdout, root)
		}
		if checkMarkers {
			project.CheckMarkers(os.Stdout, root, resolveMarkerSets())
		}
		if checkDeploy {
			if err := runDeployCheck(filepath.Join(root, project.RenderFile)); err != nil {
				return err
			}
		}
		if checkGit {
			project.CheckGit(os.Stdout, root)
		}
		if checkBuild {
			runBuildCheck()
		}

		return nil
	},
}

func runAllChecks(root string) {
	project.CheckLayout(os.Stdout, root)
	project.CheckMarkers(os.Stdout, root, resolveMarkerSets())

	// The layout check already reports a missing render.yaml; only validate
	// content when the file is there.
	renderPath := filepath.Join(root, project.RenderFile)
	if _, err := os.Stat(renderPath); err == nil {
		if err := runDeployCheck(renderPath); err != nil {
			fmt.Printf("[WARN] Deploy check failed: %v\n", err)
		}
	}

	project.CheckGit(os.Stdout, root)
	runBuildCheck()
}

func runDeployCheck(path string) error {
	fmt.Printf("Deploy config validation: %s\n", path)

	// Validate against JSON Schema.
	result, err := deploy.ValidateFile(path)
	if err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		return fmt.Errorf("deploy config validation failed: %w", err)
	}

	if result.Valid {
		// Parse to get the service identity for the success message.
		cfg, err := deploy.Load(path)
		if err != nil || len(cfg.Services) == 0 {
			fmt.Printf("  [ OK ] Valid deploy config\n")
			return nil
		}
		svc := cfg.Services[0]
		fmt.Printf("  [ OK ] Valid deploy config: %s (%s %s site)\n", svc.Name, svc.Type, svc.Env)
		return nil
	}

	// Report validation issues.
	fmt.Printf("  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Printf("    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Printf("    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("deploy config %s has %d validation issue(s)", path, len(result.Issues))
}

// runBuildCheck reports whether the running binary is a tagged release.
func runBuildCheck() {
	fmt.Println("Build check:")
	if buildVersion == "" || buildVersion == "dev" {
		fmt.Println("  [WARN] Development build, no release version")
		return
	}

	v, err := semver.NewVersion(strings.TrimPrefix(buildVersion, "v"))
	if err != nil {
		fmt.Printf("  [WARN] Version %q is not valid semver: %v\n", buildVersion, err)
		return
	}
	if v.Prerelease() != "" {
		fmt.Printf("  [WARN] Pre-release build %s\n", v)
		return
	}
	fmt.Printf("  [ OK ] Release build %s\n", v)
}

// resolveMarkerSets returns the number of marker sets to check: the --markers
// flag when given, then the "markers" config key, then the built-in default.
func resolveMarkerSets() int {
	if markerSets > 0 {
		return markerSets
	}
	config.Load()
	if n := config.GetInt("markers"); n > 0 {
		return n
	}
	return project.DefaultMarkerCount
}
