// cmd/seqjoin-merge/main.go
package main

import (
	"seqjoin/internal/appshell"
	"seqjoin/internal/mergeapp"
)

func main() { appshell.Main(mergeapp.Run) }
