// cmd/abrank-af2/main.go
package main

import (
	"abrank/internal/appshell"
	"abrank/internal/af2app"
)

func main() { appshell.Main(af2app.RunContext) }
