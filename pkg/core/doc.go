// Package core exposes the breachwatch pipeline as a stable library
// surface for programs that want to embed the scan instead of shelling
// out to the CLI.
package core
