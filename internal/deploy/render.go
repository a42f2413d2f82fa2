package deploy

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Default returns the fixed deployment descriptor the setup sequence
// writes: a single static-site service publishing the repository root
// with clickjacking and MIME-sniffing protection headers.
func Default() *Config {
	return &Config{
		Services: []Service{{
			Type:              ServiceTypeWeb,
			Name:              DefaultServiceName,
			Env:               EnvStatic,
			BuildCommand:      "",
			StaticPublishPath: ".",
			Headers: []Header{
				{Path: "/*", Name: "X-Frame-Options", Value: "SAMEORIGIN"},
				{Path: "/*", Name: "X-Content-Type-Options", Value: "nosniff"},
			},
		}},
	}
}

// Write marshals cfg and writes it to path, overwriting any existing file.
func Write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling deployment descriptor: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// Load reads and parses a render.yaml from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing deployment descriptor %s: %w", path, err)
	}

	return &cfg, nil
}
