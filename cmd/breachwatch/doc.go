// Package breachwatch provides the command-line interface for the
// breachwatch tool. It configures subcommands (scan, history), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/breachwatch/breachwatch/cmd/breachwatch"
//	func main() { breachwatch.Execute() }
package breachwatch
