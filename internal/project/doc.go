// Package project defines the directory and file conventions of a
// scaffolded AR project and the health checks the doctor command runs
// against them. The project root is the process working directory; every
// name in this package is a relative child of it.
package project
