// Package deploy models the render.yaml static-site deployment descriptor
// written by the setup sequence. It provides the fixed default document,
// YAML serialization, and JSON Schema validation against the schema
// embedded in this package.
package deploy
