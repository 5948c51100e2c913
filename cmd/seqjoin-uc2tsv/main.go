// cmd/seqjoin-uc2tsv/main.go
package main

import (
	"seqjoin/internal/appshell"
	"seqjoin/internal/convertapp"
)

func main() { appshell.Main(convertapp.RunUC2TSV) }
