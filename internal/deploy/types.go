package deploy

// Config is the root document of a render.yaml deployment descriptor.
type Config struct {
	Services []Service `yaml:"services" json:"services"`
}

// Service describes one render.com service entry.
type Service struct {
	Type string `yaml:"type" json:"type"`
	Name string `yaml:"name" json:"name"`
	// Env marks the deployment environment; "static" selects static-site hosting.
	Env string `yaml:"env" json:"env"`
	// BuildCommand stays present even when empty: render.com treats a
	// missing key differently from an explicitly empty command.
	BuildCommand      string   `yaml:"buildCommand" json:"buildCommand"`
	StaticPublishPath string   `yaml:"staticPublishPath" json:"staticPublishPath"`
	Headers           []Header `yaml:"headers,omitempty" json:"headers,omitempty"`
}

// Header is an HTTP response header applied to a path pattern.
type Header struct {
	Path  string `yaml:"path" json:"path"`
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// ServiceTypeWeb and EnvStatic are the values for the one service kind
// the scaffolder emits.
const (
	ServiceTypeWeb = "web"
	EnvStatic      = "static"
)

// DefaultServiceName is the service name written into the scaffold's render.yaml.
const DefaultServiceName = "ar-narrative-experience"
