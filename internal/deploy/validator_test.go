package deploy

import (
	"path/filepath"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"
)

func TestValidateDefaultConfig(t *testing.T) {
	data, err := yaml.Marshal(Default())
	if err != nil {
		t.Fatalf("marshaling default config: %v", err)
	}

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !result.Valid {
		t.Errorf("default config should be valid, issues: %v", result.Issues)
	}
}

func TestValidateMissingServices(t *testing.T) {
	result, err := Validate([]byte("{}\n"))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("empty document should be invalid")
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
}

func TestValidateEmptyServices(t *testing.T) {
	result, err := Validate([]byte("services: []\n"))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("empty services list should be invalid")
	}
}

func TestValidateWrongServiceType(t *testing.T) {
	doc := `services:
  - type: worker
    name: ar-narrative-experience
    env: static
    buildCommand: ""
    staticPublishPath: .
`
	result, err := Validate([]byte(doc))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("worker service type should be invalid")
	}
	assertIssueAt(t, result, "/services/0")
}

func TestValidateUnknownField(t *testing.T) {
	doc := `services:
  - type: web
    name: ar-narrative-experience
    env: static
    buildCommand: ""
    staticPublishPath: .
    publishPth: dist
`
	result, err := Validate([]byte(doc))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("unknown service field should be invalid")
	}
}

func TestValidateHeaderMissingValue(t *testing.T) {
	doc := `services:
  - type: web
    name: ar-narrative-experience
    env: static
    buildCommand: ""
    staticPublishPath: .
    headers:
      - path: /*
        name: X-Frame-Options
`
	result, err := Validate([]byte(doc))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("header without a value should be invalid")
	}
	assertIssueAt(t, result, "/services/0/headers/0")
}

func TestValidateBadYAML(t *testing.T) {
	_, err := Validate([]byte("services: [unclosed\n"))
	if err == nil {
		t.Fatal("expected error for unparseable YAML")
	}
	if !strings.Contains(err.Error(), "parsing YAML") {
		t.Errorf("error should mention YAML parsing, got: %v", err)
	}
}

func TestValidateFileMissing(t *testing.T) {
	_, err := ValidateFile(filepath.Join(t.TempDir(), "render.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	if err := Write(path, Default()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if !result.Valid {
		t.Errorf("written default config should be valid, issues: %v", result.Issues)
	}
}

// assertIssueAt fails unless some issue's path starts with prefix.
func assertIssueAt(t *testing.T, result *ValidationResult, prefix string) {
	t.Helper()
	for _, issue := range result.Issues {
		if strings.HasPrefix(issue.Path, prefix) {
			return
		}
	}
	t.Errorf("no issue at %s, got: %v", prefix, result.Issues)
}
