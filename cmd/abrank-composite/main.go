// cmd/abrank-composite/main.go
package main

import (
	"abrank/internal/appshell"
	"abrank/internal/compositeapp"
)

func main() { appshell.Main(compositeapp.RunContext) }
