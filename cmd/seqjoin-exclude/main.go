// cmd/seqjoin-exclude/main.go
package main

import (
	"seqjoin/internal/appshell"
	"seqjoin/internal/excludeapp"
)

func main() { appshell.Main(excludeapp.Run) }
