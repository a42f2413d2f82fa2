// Package config manages user-level settings stored at ~/.arweaver/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the expected marker-set count consulted by the doctor command. The setup
// sequence itself never reads configuration; scaffold output is fixed.
package config
