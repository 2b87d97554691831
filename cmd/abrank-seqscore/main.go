// cmd/abrank-seqscore/main.go
package main

import (
	"abrank/internal/appshell"
	"abrank/internal/seqscoreapp"
)

func main() { appshell.Main(seqscoreapp.RunContext) }
