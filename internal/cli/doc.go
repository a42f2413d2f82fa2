// Package cli defines the Cobra command tree for the arweaver CLI. The bare
// root command runs the full project setup; each other file in this package
// registers one subcommand (doctor, config, version) with the root command.
// Command implementations delegate to internal packages for business logic
// and only handle flag parsing, I/O formatting, and user interaction.
package cli
