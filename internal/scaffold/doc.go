// Package scaffold creates the working tree for an AR narrative project. It
// powers the bare "arweaver" invocation, producing the standard directory
// layout (markers, models, assets, css, js) and the starter files (README.md,
// .gitignore, render.yaml) in the project root.
package scaffold
