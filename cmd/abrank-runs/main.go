// cmd/abrank-runs/main.go
package main

import (
	"abrank/internal/appshell"
	"abrank/internal/runsapp"
)

func main() { appshell.Main(runsapp.RunContext) }
