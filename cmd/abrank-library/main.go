// cmd/abrank-library/main.go
package main

import (
	"abrank/internal/appshell"
	"abrank/internal/libraryapp"
)

func main() { appshell.Main(libraryapp.RunContext) }
