// cmd/abrank/main.go
package main

import (
	"abrank/internal/appshell"
	"abrank/internal/app"
)

func main() { appshell.Main(app.RunContext) }
