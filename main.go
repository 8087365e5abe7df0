package main

import "github.com/breachwatch/breachwatch/cmd/breachwatch"

func main() { breachwatch.Execute() }
