// cmd/seqjoin-collect/main.go
package main

import (
	"seqjoin/internal/appshell"
	"seqjoin/internal/collectapp"
)

func main() { appshell.Main(collectapp.Run) }
