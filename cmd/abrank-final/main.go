// cmd/abrank-final/main.go
package main

import (
	"abrank/internal/appshell"
	"abrank/internal/finalapp"
)

func main() { appshell.Main(finalapp.RunContext) }
