// Package config loads breachwatch YAML configuration files. Settings
// resolve with CLI flags first, then the local file, then the global
// file.
package config
